package expression

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

const (
	NoValidInput      = "No valid input"
	InvalidExpression = "Invalid expression"
)

var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrNonFinite       = errors.New("expression result is not finite")
)

var (
	extractPattern = regexp.MustCompile(`(` + operatorClass + `?)\s*` + namePattern + `\s*\((\d+)\)`)
	integerLiteral = regexp.MustCompile(`\d+`)
)

// Evaluator turns an arithmetic string such as "5+3*2" into a number.
type Evaluator interface {
	Evaluate(input string) (float64, error)
}

// ExprEvaluator evaluates with expr-lang. Integer operands are promoted to
// floating point so large products do not wrap; "^" is exponentiation.
type ExprEvaluator struct{}

// NewEvaluator returns the default evaluator.
func NewEvaluator() Evaluator {
	return ExprEvaluator{}
}

func (ExprEvaluator) Evaluate(input string) (float64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, ErrEmptyExpression
	}
	out, err := expr.Eval(integerLiteral.ReplaceAllString(input, "${0}.0"), nil)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", input, err)
	}
	var v float64
	switch n := out.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	default:
		return 0, fmt.Errorf("evaluate %q: unexpected result type %T", input, out)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("evaluate %q: %w", input, ErrNonFinite)
	}
	return v, nil
}

// Extract builds the arithmetic string for text: every token contributes its
// operator immediately followed by its value, names are dropped. Tokens with
// no operator between them therefore run their digits together. It reports
// false when text holds no token.
func Extract(text string) (string, bool) {
	matches := extractPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, match := range matches {
		b.WriteString(match[1])
		b.WriteString(match[2])
	}
	return b.String(), true
}

// ResultKind tags what a Result holds.
type ResultKind int

const (
	ResultUnset ResultKind = iota
	ResultNumber
	ResultNoValidInput
	ResultInvalidExpression
)

// Result is the cached outcome of evaluating the input text.
type Result struct {
	Kind  ResultKind
	Value float64
}

// Number wraps a successful evaluation.
func Number(v float64) Result {
	return Result{Kind: ResultNumber, Value: v}
}

// IsSentinel reports whether the result is one of the placeholder texts.
func (r Result) IsSentinel() bool {
	return r.Kind == ResultNoValidInput || r.Kind == ResultInvalidExpression
}

func (r Result) String() string {
	switch r.Kind {
	case ResultNumber:
		return strconv.FormatFloat(r.Value, 'f', -1, 64)
	case ResultNoValidInput:
		return NoValidInput
	case ResultInvalidExpression:
		return InvalidExpression
	default:
		return ""
	}
}

// Calculate evaluates the tokens in text. It never fails: missing tokens and
// rejected expressions come back as sentinel results.
func Calculate(text string, ev Evaluator) Result {
	arithmetic, ok := Extract(text)
	if !ok {
		return Result{Kind: ResultNoValidInput}
	}
	if ev == nil {
		ev = ExprEvaluator{}
	}
	v, err := ev.Evaluate(arithmetic)
	if err != nil {
		return Result{Kind: ResultInvalidExpression}
	}
	return Number(v)
}
