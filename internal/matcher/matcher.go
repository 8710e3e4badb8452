package matcher

import "strings"

// abbreviations maps common shorthand tokens to their expanded form. Both
// the candidate and the user input are expanded, so "bs", "b.s." and
// "bachelor" all normalize toward "bachelor of science".
var abbreviations = map[string]string{
	"bs":       "bachelor of science",
	"bsc":      "bachelor of science",
	"bachelor": "bachelor of science",
	"ba":       "bachelor of arts",
	"ab":       "bachelor of arts",
	"ms":       "master of science",
	"msc":      "master of science",
	"tech":     "technology",
	"engg":     "engineering",
	"comsci":   "computer science",
	"cs":       "computer science",
	"hrm":      "hospitality management",
	"acctg":    "accountancy",
}

// Normalize lowercases s, strips everything that is not a letter, digit or
// space, expands known abbreviations and collapses whitespace.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		default:
			// dropped: punctuation collapses "b.s." into "bs"
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		if expanded, ok := abbreviations[w]; ok {
			words[i] = expanded
		}
	}
	return strings.Join(words, " ")
}

// Matches reports whether a candidate option should surface for the user's
// free-text input. The rule is deliberately recall-biased: a normalized
// substring hit matches, and failing that, any input word that is a prefix
// of any candidate word matches. False positives are acceptable; a real
// option must never fail to surface for a reasonable partial query.
func Matches(candidate, input string) bool {
	normCandidate := Normalize(candidate)
	normInput := Normalize(input)

	if normInput == "" {
		return true
	}
	if strings.Contains(normCandidate, normInput) {
		return true
	}

	candidateWords := strings.Fields(normCandidate)
	for _, inputWord := range strings.Fields(normInput) {
		for _, candidateWord := range candidateWords {
			if strings.HasPrefix(candidateWord, inputWord) {
				return true
			}
		}
	}
	return false
}

// Filter returns the options matching input, preserving the reference-list
// order. No relevance ranking is applied.
func Filter(options []string, input string) []string {
	matched := []string{}
	for _, opt := range options {
		if Matches(opt, input) {
			matched = append(matched, opt)
		}
	}
	return matched
}
