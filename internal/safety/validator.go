// Package safety screens user messages for crisis language and keeps
// outgoing responses within the companion's guardrails.
package safety

import (
	"regexp"
	"strings"
)

// crisisKeywords are checked against the lowercased user message. Any hit
// overrides the normal conversation flow.
var crisisKeywords = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"end my life",
	"ending my life",
	"end it all",
	"want to die",
	"wanna die",
	"self harm",
	"self-harm",
	"hurt myself",
	"hurting myself",
	"harm myself",
	"no reason to live",
	"better off dead",
	"take my own life",
}

// CrisisResponse is served verbatim when crisis language is detected. It
// deliberately contains no citations or guidance.
const CrisisResponse = "I hear how much pain you are carrying right now, and I want you to know that your life has value. " +
	"What you are feeling deserves real human support, more than I can offer here. " +
	"Please reach out to someone right now: AASRA helpline 91-9820466726 (24x7), iCall 9152987821, " +
	"or the emergency number 112. If you can, tell a person near you how you are feeling. You do not have to face this alone."

// Validator applies crisis detection and response softening. Detection can be
// disabled by configuration for evaluation environments.
type Validator struct {
	crisisEnabled bool
}

func NewValidator(crisisEnabled bool) *Validator {
	return &Validator{crisisEnabled: crisisEnabled}
}

// IsCrisis reports whether the message contains crisis language.
func (v *Validator) IsCrisis(message string) bool {
	if !v.crisisEnabled {
		return false
	}
	lower := strings.ToLower(message)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// bannedPatterns rewrite absolute or prescriptive claims into softer
// phrasing. Order matters: earlier rules must not produce text a later rule
// would mangle.
var bannedPatterns = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\byou must\b`), "you may wish to"},
	{regexp.MustCompile(`(?i)\byou should\b`), "you could consider"},
	{regexp.MustCompile(`(?i)\byou have to\b`), "it may help to"},
	{regexp.MustCompile(`(?i)\bguaranteed?\b`), "often"},
	{regexp.MustCompile(`(?i)\bwill definitely\b`), "may well"},
	{regexp.MustCompile(`(?i)\bthe only way\b`), "one way"},
	{regexp.MustCompile(`(?i)\bnever fails?\b`), "often helps"},
	{regexp.MustCompile(`(?i)\bcure[sd]?\b`), "can ease"},
	{regexp.MustCompile(`(?i)\bmedical advice\b`), "general reflection"},
}

// Soften rewrites prescriptive phrasing in a composed response.
func (v *Validator) Soften(response string) string {
	for _, p := range bannedPatterns {
		response = p.re.ReplaceAllString(response, p.replacement)
	}
	return response
}
