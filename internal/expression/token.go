package expression

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Operators lists the single-character operators that separate tokens.
const Operators = "+-*/^"

const (
	operatorClass = `[+\-*/^]`
	nameWord      = `[\p{L}\p{N}_]+`
	namePattern   = nameWord + `(?: ` + nameWord + `)*`
	valuePattern  = `\(\d+\)`
)

var (
	operatorPattern = regexp.MustCompile(operatorClass)

	// " + Apple (5)" or "Apple (5)" at the very end of the text.
	trailingTokenPattern = regexp.MustCompile(`\s*(?:` + operatorClass + `\s*)?` + namePattern + `\s*` + valuePattern + `\s*$`)
	// "Apple (5)" or " + Apple (5)" at the very start of the text.
	leadingTokenPattern = regexp.MustCompile(`^\s*(?:` + operatorClass + `\s*)?` + namePattern + `\s*` + valuePattern)

	completeTokenPattern  = regexp.MustCompile(`^` + namePattern + `\s*` + valuePattern + `$`)
	truncatedTokenPattern = regexp.MustCompile(`^` + namePattern + `\s*\(\d+$`)
)

// Span is a half-open range of rune offsets.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// FormatToken renders the label a suggestion contributes to the text.
func FormatToken(name, value string) string {
	return name + " (" + value + ")"
}

// IsOperator reports whether r separates tokens.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// Segments splits text on operators and trims every piece. The result always
// has at least one element; the last one is the active search term.
func Segments(text string) []string {
	parts := operatorPattern.Split(text, -1)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// ActiveTerm returns the trimmed text after the last operator.
func ActiveTerm(text string) string {
	parts := Segments(text)
	return parts[len(parts)-1]
}

// MatchTrailingToken finds a token, optionally preceded by an operator, that
// ends the text. Surrounding whitespace belongs to the span.
func MatchTrailingToken(text string) (Span, bool) {
	loc := trailingTokenPattern.FindStringIndex(text)
	if loc == nil {
		return Span{}, false
	}
	return runeSpan(text, loc), true
}

// MatchLeadingToken finds a token, optionally preceded by whitespace and an
// operator, that starts the text.
func MatchLeadingToken(text string) (Span, bool) {
	loc := leadingTokenPattern.FindStringIndex(text)
	if loc == nil {
		return Span{}, false
	}
	return runeSpan(text, loc), true
}

func runeSpan(text string, loc []int) Span {
	start := utf8.RuneCountInString(text[:loc[0]])
	return Span{Start: start, End: start + utf8.RuneCountInString(text[loc[0]:loc[1]])}
}
