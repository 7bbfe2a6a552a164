package scripture

var builtinVerses = []verse{
	{
		reference: "Bhagavad Gita 2.47",
		scripture: "Bhagavad Gita",
		text:      "You have a right to perform your prescribed duties, but you are not entitled to the fruits of your actions. Never consider yourself the cause of the results, and never be attached to inaction.",
		emotions:  []string{"anxiety", "stress", "frustration"},
		concepts:  []string{"karma_yoga", "nishkama_karma", "surrender", "present_moment"},
	},
	{
		reference: "Bhagavad Gita 18.66",
		scripture: "Bhagavad Gita",
		text:      "Abandon all varieties of dharma and simply surrender unto Me alone. I shall deliver you from all sinful reactions; do not fear.",
		emotions:  []string{"fear", "overwhelm", "guilt", "anxiety"},
		concepts:  []string{"surrender", "abhaya", "shraddha", "redemption"},
	},
	{
		reference: "Bhagavad Gita 2.14",
		scripture: "Bhagavad Gita",
		text:      "The contacts of the senses with their objects give rise to happiness and distress. These are impermanent, appearing and disappearing like winter and summer; learn to endure them.",
		emotions:  []string{"sadness", "grief", "frustration"},
		concepts:  []string{"impermanence", "acceptance", "patience"},
	},
	{
		reference: "Bhagavad Gita 2.13",
		scripture: "Bhagavad Gita",
		text:      "As the embodied soul continuously passes, in this body, from boyhood to youth to old age, the soul similarly passes into another body at death. A sober person is not bewildered by such a change.",
		emotions:  []string{"grief", "sadness", "fear"},
		concepts:  []string{"eternal_soul", "impermanence", "acceptance"},
	},
	{
		reference: "Bhagavad Gita 2.62-63",
		scripture: "Bhagavad Gita",
		text:      "While contemplating the objects of the senses, attachment develops; from attachment desire is born, and from desire anger arises. From anger comes delusion, and from delusion the loss of memory and discrimination.",
		emotions:  []string{"anger", "frustration"},
		concepts:  []string{"kshama", "viveka", "attachment"},
	},
	{
		reference: "Bhagavad Gita 6.17",
		scripture: "Bhagavad Gita",
		text:      "One who is regulated in eating, recreation, work, sleep and wakefulness can mitigate all sorrow through the practice of yoga.",
		emotions:  []string{"stress", "overwhelm"},
		concepts:  []string{"balance", "simplicity", "shanti"},
	},
	{
		reference: "Bhagavad Gita 2.48",
		scripture: "Bhagavad Gita",
		text:      "Perform your duty with an even mind, abandoning attachment to success and failure. Such evenness of mind is called yoga.",
		emotions:  []string{"stress", "anxiety", "frustration"},
		concepts:  []string{"karma_yoga", "balance", "excellence", "shanti"},
	},
	{
		reference: "Bhagavad Gita 4.34",
		scripture: "Bhagavad Gita",
		text:      "Learn the truth by approaching a spiritual master. Inquire submissively and render service; the self-realized can impart knowledge because they have seen the truth.",
		emotions:  []string{"confusion"},
		concepts:  []string{"guidance", "viveka", "clarity", "sadhana"},
	},
	{
		reference: "Bhagavad Gita 2.7",
		scripture: "Bhagavad Gita",
		text:      "Now I am confused about my duty and have lost all composure. In this condition I ask You to tell me clearly what is best for me.",
		emotions:  []string{"confusion", "hopelessness"},
		concepts:  []string{"dharma", "guidance", "surrender"},
	},
	{
		reference: "Bhagavad Gita 9.22",
		scripture: "Bhagavad Gita",
		text:      "To those who are constantly devoted and who worship Me with love, I carry what they lack and preserve what they have.",
		emotions:  []string{"hopelessness", "fear", "loneliness"},
		concepts:  []string{"shraddha", "divine_plan", "bhakti", "trust", "hope"},
	},
	{
		reference: "Bhagavad Gita 6.30",
		scripture: "Bhagavad Gita",
		text:      "For one who sees Me everywhere and sees everything in Me, I am never lost, nor are they ever lost to Me.",
		emotions:  []string{"loneliness"},
		concepts:  []string{"connection", "bhakti", "sangha"},
	},
	{
		reference: "Bhagavad Gita 9.30",
		scripture: "Bhagavad Gita",
		text:      "Even if one commits the most abominable action, if engaged in devotional service such a person is to be considered saintly because of rightly resolved determination.",
		emotions:  []string{"guilt"},
		concepts:  []string{"prayaschitta", "forgiveness", "redemption"},
	},
	{
		reference: "Bhagavad Gita 6.5",
		scripture: "Bhagavad Gita",
		text:      "Elevate yourself through the power of your mind, and not degrade yourself, for the mind can be the friend and also the enemy of the self.",
		emotions:  []string{"hopelessness", "sadness", "guilt"},
		concepts:  []string{"self_inquiry", "strength", "hope", "perseverance"},
	},
	{
		reference: "Bhagavad Gita 12.15",
		scripture: "Bhagavad Gita",
		text:      "One by whom no one is put into difficulty and who is not disturbed by anyone, who is equipoised in happiness and distress, fear and anxiety, is very dear to Me.",
		emotions:  []string{"anxiety", "fear"},
		concepts:  []string{"shanti", "abhaya", "balance"},
	},
	{
		reference: "Bhagavad Gita 3.35",
		scripture: "Bhagavad Gita",
		text:      "It is far better to discharge one's own duty, even imperfectly, than another's duty perfectly. Destruction in the course of performing one's own duty is better than engaging in another's.",
		emotions:  []string{"confusion", "frustration"},
		concepts:  []string{"svadharma", "purpose", "dharma", "duty"},
	},
	{
		reference: "Bhagavad Gita 17.3",
		scripture: "Bhagavad Gita",
		text:      "The faith of all beings conforms to their nature. A person is made of faith; whatever faith one has, that one is.",
		emotions:  []string{"hopelessness", "confusion"},
		concepts:  []string{"shraddha", "faith", "self_inquiry"},
	},
}
