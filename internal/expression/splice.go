package expression

import "strings"

// Splice replaces the segment being typed with the token for name/value and
// returns the new text. The token is always joined with " + ", so an operator
// typed before choosing the suggestion is dropped.
//
// A trailing segment that already is a token stays confirmed: "Apple (5)" is
// kept as is and "Orange (3" is closed to "Orange (3)".
func Splice(text, name, value string) string {
	token := FormatToken(name, value)
	prefix := confirmedPrefix(text)
	if prefix == "" {
		return token
	}
	return prefix + " + " + token
}

func confirmedPrefix(text string) string {
	cut := strings.LastIndexAny(text, Operators)
	tail := strings.TrimSpace(text[cut+1:])
	switch {
	case tail == "":
	case completeTokenPattern.MatchString(tail):
		return strings.TrimRight(text, " \t")
	case truncatedTokenPattern.MatchString(tail):
		return strings.TrimRight(text, " \t") + ")"
	}
	if cut < 0 {
		return ""
	}
	return strings.TrimRight(text[:cut], " \t")
}
