package signal

// keywordRule binds a substring to a label. Rules are evaluated in slice
// order and the first match wins, so precedence is explicit rather than an
// accident of map iteration.
type keywordRule struct {
	keyword    string
	label      string
	confidence float64
}

var emotionRules = []keywordRule{
	// Anxiety / fear
	{"anxious", "anxiety", 1.0},
	{"anxiety", "anxiety", 1.0},
	{"worried", "anxiety", 1.0},
	{"worry", "anxiety", 1.0},
	{"nervous", "anxiety", 1.0},
	{"uneasy", "anxiety", 1.0},
	{"panic", "anxiety", 1.0},
	{"afraid", "fear", 1.0},
	{"scared", "fear", 1.0},
	{"terrified", "fear", 1.0},
	{"frightened", "fear", 1.0},
	{"fear", "fear", 1.0},

	// Sadness / grief
	{"heartbroken", "sadness", 1.0},
	{"devastated", "sadness", 1.0},
	{"depressed", "sadness", 1.0},
	{"depression", "sadness", 1.0},
	{"miserable", "sadness", 1.0},
	{"unhappy", "sadness", 1.0},
	{"grieving", "grief", 1.0},
	{"grief", "grief", 1.0},
	{"sadness", "sadness", 1.0},
	{"sad", "sadness", 1.0},

	// Anger / frustration
	{"furious", "anger", 1.0},
	{"rage", "anger", 1.0},
	{"angry", "anger", 1.0},
	{"anger", "anger", 1.0},
	{"frustrated", "frustration", 1.0},
	{"frustration", "frustration", 1.0},
	{"irritated", "frustration", 1.0},
	{"annoyed", "frustration", 1.0},
	{"fed up", "frustration", 1.0},
	{"stuck", "frustration", 0.8},

	// Confusion
	{"confused", "confusion", 1.0},
	{"confusion", "confusion", 1.0},
	{"don't know", "confusion", 0.8},
	{"dont know", "confusion", 0.8},
	{"unclear", "confusion", 0.8},
	{"lost", "confusion", 0.7},

	// Hopelessness
	{"hopeless", "hopelessness", 1.0},
	{"pointless", "hopelessness", 1.0},
	{"meaningless", "hopelessness", 1.0},
	{"worthless", "hopelessness", 1.0},
	{"give up", "hopelessness", 0.9},

	// Loneliness
	{"lonely", "loneliness", 1.0},
	{"loneliness", "loneliness", 1.0},
	{"isolated", "loneliness", 1.0},
	{"disconnected", "loneliness", 0.9},
	{"abandoned", "loneliness", 0.9},
	{"alone", "loneliness", 0.8},

	// Stress / overwhelm
	{"stressed", "stress", 1.0},
	{"stress", "stress", 1.0},
	{"pressure", "stress", 0.9},
	{"overwhelmed", "overwhelm", 1.0},
	{"overwhelm", "overwhelm", 1.0},
	{"too much", "overwhelm", 0.8},
	{"drowning", "overwhelm", 0.8},
	{"suffocating", "overwhelm", 0.8},

	// Guilt
	{"guilty", "guilt", 1.0},
	{"guilt", "guilt", 1.0},
	{"ashamed", "guilt", 0.9},
}

var lifeAreaRules = []keywordRule{
	{"workplace", "work", 1.0},
	{"colleague", "work", 1.0},
	{"deadline", "work", 1.0},
	{"office", "work", 1.0},
	{"boss", "work", 1.0},
	{"job", "work", 1.0},
	{"meeting", "work", 0.8},
	{"promotion", "career", 1.0},
	{"career", "career", 1.0},
	{"work", "work", 1.0},

	{"family", "family", 1.0},
	{"parents", "family", 1.0},
	{"parent", "family", 1.0},
	{"mother", "family", 1.0},
	{"father", "family", 1.0},
	{"brother", "family", 1.0},
	{"sister", "family", 1.0},
	{"sibling", "family", 1.0},
	{"home", "family", 0.7},

	{"relationship", "relationships", 1.0},
	{"marriage", "relationships", 1.0},
	{"married", "relationships", 1.0},
	{"husband", "relationships", 1.0},
	{"wife", "relationships", 1.0},
	{"partner", "relationships", 1.0},
	{"girlfriend", "relationships", 1.0},
	{"boyfriend", "relationships", 1.0},
	{"breakup", "relationships", 1.0},

	{"health", "health", 1.0},
	{"illness", "health", 1.0},
	{"sick", "health", 1.0},
	{"disease", "health", 1.0},
	{"pain", "health", 0.8},
	{"exercise", "health", 0.7},

	{"spiritual", "spiritual", 1.0},
	{"spirituality", "spiritual", 1.0},
	{"meditation", "spiritual", 1.0},
	{"prayer", "spiritual", 1.0},
	{"faith", "spiritual", 0.9},
	{"purpose", "spiritual", 0.7},
	{"meaning", "spiritual", 0.7},

	{"financial", "financial", 1.0},
	{"money", "financial", 1.0},
	{"debt", "financial", 1.0},
	{"income", "financial", 1.0},
	{"broke", "financial", 0.8},
}

var durationRules = []keywordRule{
	{"as long as i can remember", "for as long as they can remember", 1.0},
	{"long time", "for a long time", 1.0},
	{"always", "for as long as they can remember", 0.8},
	{"years", "for years", 1.0},
	{"year", "for about a year", 1.0},
	{"months", "for months", 1.0},
	{"month", "for about a month", 1.0},
	{"weeks", "for weeks", 1.0},
	{"week", "for about a week", 1.0},
	{"days", "for several days", 1.0},
	{"recently", "recently", 1.0},
	{"since", "for a while", 0.7},
}

var professionRules = []keywordRule{
	{"university", "student", 1.0},
	{"college", "student", 1.0},
	{"studying", "student", 1.0},
	{"student", "student", 1.0},
	{"exam", "student", 0.8},
	{"engineer", "professional", 1.0},
	{"developer", "professional", 1.0},
	{"programmer", "professional", 1.0},
	{"manager", "professional", 1.0},
	{"doctor", "professional", 1.0},
	{"teacher", "professional", 1.0},
	{"lawyer", "professional", 1.0},
	{"consultant", "professional", 1.0},
	{"retired", "retired", 1.0},
	{"entrepreneur", "business", 1.0},
	{"startup", "business", 1.0},
	{"business", "business", 0.8},
	{"homemaker", "homemaker", 1.0},
	{"housewife", "homemaker", 1.0},
}

// needRules fire only when the message carries wanting language ("need",
// "want", "wish", "hope").
var needRules = []keywordRule{
	{"peace", "peace", 1.0},
	{"calm", "peace", 1.0},
	{"balance", "balance", 1.0},
	{"help", "support", 1.0},
	{"support", "support", 1.0},
	{"understand", "understanding", 1.0},
	{"strength", "strength", 1.0},
	{"clarity", "clarity", 1.0},
	{"rest", "rest", 1.0},
}

var wantingMarkers = []string{"need", "want", "wish", "hope", "looking for", "seeking"}

// inferenceRules map indirect phrasing to an emotion when no direct emotion
// keyword matched. Evaluated top to bottom; only the first match applies.
var inferenceRules = []keywordRule{
	// (a) negation of a positive state
	{"no peace", "stress", 0.6},
	{"lack of peace", "stress", 0.6},
	{"peace is missing", "stress", 0.6},
	{"no calm", "stress", 0.6},
	// (b) overload / overwork phrasing
	{"overworked", "stress", 0.6},
	{"overwork", "stress", 0.6},
	{"too much work", "stress", 0.6},
	{"working too hard", "stress", 0.6},
	// (c) absence of time
	{"no time", "overwhelm", 0.6},
	{"no break", "overwhelm", 0.6},
	{"no day off", "overwhelm", 0.6},
}

// minimalVocabulary is the fixed set of acknowledgment tokens used by the
// disengagement detector; messages made only of these never become quotes.
var minimalVocabulary = map[string]struct{}{
	"sure":    {},
	"ok":      {},
	"okay":    {},
	"yes":     {},
	"fine":    {},
	"alright": {},
	"yeah":    {},
}

// EmotionConcepts maps an emotion label to dharmic concepts used for
// retrieval and response framing.
var EmotionConcepts = map[string][]string{
	"anxiety":      {"vairagya", "surrender", "present_moment", "shraddha"},
	"sadness":      {"impermanence", "acceptance", "karma", "compassion"},
	"anger":        {"kshama", "ahimsa", "viveka", "shanti"},
	"confusion":    {"viveka", "dharma", "guidance", "clarity"},
	"fear":         {"abhaya", "shraddha", "surrender", "courage"},
	"hopelessness": {"shraddha", "karma", "divine_plan", "hope"},
	"frustration":  {"patience", "acceptance", "karma", "perseverance"},
	"guilt":        {"prayaschitta", "forgiveness", "dharma", "redemption"},
	"loneliness":   {"connection", "seva", "bhakti", "sangha"},
	"stress":       {"shanti", "balance", "present_moment", "pranayama"},
	"overwhelm":    {"surrender", "one_step", "simplicity", "breath"},
	"grief":        {"impermanence", "acceptance", "eternal_soul", "compassion"},
}

// LifeAreaConcepts maps a life area to dharmic concepts.
var LifeAreaConcepts = map[string][]string{
	"work":          {"karma_yoga", "nishkama_karma", "svadharma", "excellence"},
	"family":        {"dharma", "duty", "love", "patience"},
	"relationships": {"love", "attachment", "boundaries", "communication"},
	"health":        {"body_temple", "balance", "healing", "acceptance"},
	"spiritual":     {"sadhana", "devotion", "self_inquiry", "surrender"},
	"financial":     {"artha", "contentment", "effort", "trust"},
	"career":        {"svadharma", "purpose", "growth", "patience"},
}
