package suggest

import "github.com/atomicstack/tokencalc/internal/expression"

// Record is one candidate returned by the suggestion source.
type Record struct {
	ID       string
	Name     string
	Category string
	Value    string
}

// Label is the token text the record contributes when selected.
func (r Record) Label() string {
	return expression.FormatToken(r.Name, r.Value)
}

// CloneRecords produces a shallow copy of the provided records.
func CloneRecords(records []Record) []Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]Record, len(records))
	copy(dup, records)
	return dup
}
