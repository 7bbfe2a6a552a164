package respond

// WelcomeMessage opens every new session.
const WelcomeMessage = "Namaste. I am here to listen, without judgment and without hurry. " +
	"What has been weighing on your heart lately?"

// ClosureMessage ends a conversation that has reached its natural close.
const ClosureMessage = "May what we spoke of stay with you gently. Whenever you wish to talk again, I will be here. Om shanti."

// EmptyMessagePrompt answers an empty message without counting it as a turn.
const EmptyMessagePrompt = "Take whatever time you need. When you are ready, share in a few words what has been on your mind."

// OversizedMessagePrompt answers a message too long to process as one turn.
const OversizedMessagePrompt = "That is a great deal to hold at once. Could you share the heart of it in a few sentences, so we can sit with it together?"

var acknowledgments = map[string]string{
	"anxiety":      "I can feel the worry running through your words.",
	"sadness":      "I hear the sadness you are carrying, and it matters.",
	"anger":        "There is real fire in what you describe, and it deserves to be heard.",
	"fear":         "It takes courage to name what frightens you.",
	"confusion":    "Standing at a crossroads without a map is exhausting.",
	"hopelessness": "When hope feels far away, even speaking takes strength. You did that.",
	"frustration":  "Pushing against something that will not move wears anyone down.",
	"guilt":        "Carrying guilt is heavy work; thank you for setting it down here.",
	"loneliness":   "Feeling unseen is one of the deepest aches there is.",
	"stress":       "You have been carrying more than one person should.",
	"overwhelm":    "When everything comes at once, even small things feel impossible.",
	"grief":        "Grief is love with nowhere to go. I am sorry for what you have lost.",
}

const defaultAcknowledgment = "Thank you for trusting me with this."

var conceptInsights = map[string]string{
	"karma_yoga":     "The Gita teaches that our duty is the effort, not the outcome. You can pour yourself into the work and still release its result.",
	"nishkama_karma": "Acting without clinging to results is not indifference; it frees the action itself to be whole.",
	"surrender":      "Surrender is not defeat. It is setting down what was never yours to carry alone.",
	"impermanence":   "Every season of feeling, however heavy, is passing through you rather than staying in you.",
	"shanti":         "Peace is less something to find than something to stop disturbing.",
	"viveka":         "Clarity comes from separating what is truly yours to decide from what is only noise.",
	"kshama":         "Forbearance is strength that has learned patience.",
	"abhaya":         "Fearlessness begins with naming the fear out loud, as you just did.",
	"shraddha":       "Faith is trusting that you are held even when you cannot see by what.",
	"present_moment": "The mind suffers in the past and the future; the breath only ever happens now.",
	"svadharma":      "Your path does not have to look like anyone else's to be the right one.",
	"balance":        "The Gita praises moderation in work, rest and food; balance is itself a practice.",
	"connection":     "You are less alone than this moment makes you feel.",
	"forgiveness":    "What you did is not the whole of who you are.",
	"impatience":     "Growth keeps its own calendar.",
}

const defaultInsight = "The tradition teaches that turning inward with honesty, as you are doing now, is itself the first step."

var practicalSteps = map[string]string{
	"anxiety":      "Tonight, try five slow breaths where the exhale is longer than the inhale, and let one worry go unanswered until morning.",
	"sadness":      "Let yourself feel this fully for a few minutes today without fixing it; feelings witnessed lose some of their weight.",
	"anger":        "Before responding to what angers you, take one full breath and ask what the anger is protecting.",
	"fear":         "Write the fear down in one sentence; on paper it is usually smaller than it is at night.",
	"confusion":    "Take one small decision today, however minor, and act on it; motion brings clarity that thinking cannot.",
	"hopelessness": "Do one small act of care today, for yourself or someone else; meaning returns through the hands before the head.",
	"frustration":  "Name one thing in the situation that is actually in your control, and move only that.",
	"guilt":        "If amends are possible, take one step toward them today; if not, offer yourself the forgiveness you would offer a friend.",
	"loneliness":   "Reach out to one person today, even briefly; connection rebuilds in small touches.",
	"stress":       "Choose one obligation this week to set down or hand over, and guard ten quiet minutes each day.",
	"overwhelm":    "Pick the single smallest task in front of you and do only that; the rest can wait its turn.",
	"grief":        "Set aside a few minutes to remember freely, with a photo or a place; grief softens when it is given room.",
}

const defaultStep = "Set aside ten unhurried minutes today to sit quietly with what you have shared here."

var closes = []string{
	"How does this land with you?",
	"Would you like to sit with this, or shall we explore it further?",
	"Does any part of this speak to your situation?",
	"Take your time with this. I am here if more surfaces.",
}

var probesByArea = map[string][]string{
	"work": {
		"What part of your work weighs on you most: the load itself, or what it is costing you elsewhere?",
		"If one thing about your work could change tomorrow, what would you choose?",
		"When did work begin to feel this way?",
	},
	"family": {
		"What would you most want the people at home to understand about how you feel?",
		"Is there one relationship at home where this feeling is strongest?",
	},
	"relationships": {
		"What do you find yourself wishing for most in this relationship?",
		"When things were good between you, what was different?",
	},
	"health": {
		"How has this been affecting your days, beyond the body itself?",
		"What worries you most when you think about your health?",
	},
	"financial": {
		"Is the weight mostly the money itself, or what it makes you fear for the future?",
	},
	"spiritual": {
		"What did your practice feel like when it nourished you most?",
	},
}

var probesByEmotion = map[string][]string{
	"anxiety":      {"When does the worry press hardest: in the morning, at night, or all through the day?"},
	"sadness":      {"Has something changed recently, or has this sadness been building for a while?"},
	"anger":        {"What happened most recently that brought this to the surface?"},
	"confusion":    {"If you set aside what others expect, what do you yourself lean toward?"},
	"stress":       {"What would need to ease for you to breathe a little?"},
	"overwhelm":    {"If we looked at just one piece of all this, which piece would you pick?"},
	"loneliness":   {"Who in your life, past or present, made you feel most understood?"},
	"grief":        {"Would you like to tell me about them?"},
	"fear":         {"What does the fear say will happen?"},
	"hopelessness": {"Was there a time, even long ago, when things felt different?"},
}

var genericProbes = []string{
	"Tell me a little more about what has been happening.",
	"How long have you been feeling this way?",
	"What does a typical day look like for you right now?",
	"Is there a moment recently when this felt strongest?",
}

// reengagementProbes are used after a disengaged turn to hand the
// conversation back as a concrete question.
var reengagementProbes = []string{
	"I may have moved ahead too quickly. What matters most to you in all of this right now?",
	"Let me step back. In your own words, what would feel like relief?",
	"Perhaps I spoke past what you needed. What would you like to focus on?",
}
