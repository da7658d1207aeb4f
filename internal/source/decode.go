package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/tokencalc/internal/logging"
	"github.com/atomicstack/tokencalc/internal/suggest"
	"github.com/tidwall/gjson"
)

var errNotArray = errors.New("suggestion response is not a JSON array")

// DecodeRecords parses the endpoint payload. Values may arrive as strings or
// numbers; entries whose value is not a non-negative integer are skipped
// because they could never form a token.
func DecodeRecords(body []byte) ([]suggest.Record, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("decoding suggestions: invalid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, errNotArray
	}
	entries := root.Array()
	records := make([]suggest.Record, 0, len(entries))
	for i, entry := range entries {
		record := suggest.Record{
			ID:       strings.TrimSpace(entry.Get("id").String()),
			Name:     strings.TrimSpace(entry.Get("name").String()),
			Category: strings.TrimSpace(entry.Get("category").String()),
			Value:    strings.TrimSpace(entry.Get("value").String()),
		}
		if record.Name == "" || !isDigits(record.Value) {
			logging.Warn("skipping suggestion record", "index", i, "name", record.Name, "value", record.Value)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
