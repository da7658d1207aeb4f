package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/tokencalc/internal/expression"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Mode selects how the active search term is compared with record names.
type Mode string

const (
	ModeSubstring Mode = "substring"
	ModePrefix    Mode = "prefix"
	ModeFuzzy     Mode = "fuzzy"
)

// ParseMode validates a configured match mode. Empty selects substring.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeSubstring:
		return ModeSubstring, nil
	case ModePrefix:
		return ModePrefix, nil
	case ModeFuzzy:
		return ModeFuzzy, nil
	}
	return "", fmt.Errorf("unknown match mode %q (want substring, prefix or fuzzy)", value)
}

// Index is the cached record list plus whatever lookup structure the mode
// needs. It is built once per fetch and never mutated afterwards.
type Index struct {
	mode    Mode
	records []Record
	names   []string
	lowered []string
	trie    *patricia.Trie
}

// NewIndex builds an index over records.
func NewIndex(records []Record, mode Mode) *Index {
	ix := &Index{
		mode:    mode,
		records: CloneRecords(records),
		names:   make([]string, len(records)),
		lowered: make([]string, len(records)),
	}
	for i, r := range records {
		ix.names[i] = r.Name
		ix.lowered[i] = strings.ToLower(r.Name)
	}
	if mode == ModePrefix {
		ix.trie = patricia.NewTrie()
		for i, name := range ix.lowered {
			if name == "" {
				continue
			}
			key := patricia.Prefix(name)
			if existing := ix.trie.Get(key); existing != nil {
				ix.trie.Set(key, append(existing.([]int), i))
				continue
			}
			ix.trie.Insert(key, []int{i})
		}
	}
	return ix
}

// Mode reports the match mode the index was built for.
func (ix *Index) Mode() Mode {
	return ix.mode
}

// Len returns the number of cached records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Records returns a copy of the cached records.
func (ix *Index) Records() []Record {
	return CloneRecords(ix.records)
}

// Match returns the records whose name matches term, in fetch order. An empty
// term matches nothing.
func (ix *Index) Match(term string) []Record {
	trimmed := strings.TrimSpace(term)
	if ix == nil || trimmed == "" || len(ix.records) == 0 {
		return nil
	}
	switch ix.mode {
	case ModePrefix:
		return ix.pick(ix.prefixMatches(strings.ToLower(trimmed)))
	case ModeFuzzy:
		return ix.pick(ix.fuzzyMatches(trimmed))
	default:
		lower := strings.ToLower(trimmed)
		matched := make([]int, 0, len(ix.records))
		for i, name := range ix.lowered {
			if strings.Contains(name, lower) {
				matched = append(matched, i)
			}
		}
		return ix.pick(matched)
	}
}

func (ix *Index) prefixMatches(lower string) []int {
	var matched []int
	_ = ix.trie.VisitSubtree(patricia.Prefix(lower), func(_ patricia.Prefix, item patricia.Item) error {
		matched = append(matched, item.([]int)...)
		return nil
	})
	sort.Ints(matched)
	return matched
}

func (ix *Index) fuzzyMatches(term string) []int {
	ranks := fuzzy.RankFindNormalizedFold(term, ix.names)
	if len(ranks) == 0 {
		return nil
	}
	matched := make([]int, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, rank.OriginalIndex)
	}
	sort.Ints(matched)
	return matched
}

func (ix *Index) pick(indexes []int) []Record {
	if len(indexes) == 0 {
		return nil
	}
	out := make([]Record, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, ix.records[i])
	}
	return out
}

// Filter returns the suggestions for text: the records matching its active
// search term. A nil index (records not loaded yet, or the fetch failed)
// yields no suggestions.
func Filter(ix *Index, text string) []Record {
	if ix == nil {
		return nil
	}
	return ix.Match(expression.ActiveTerm(text))
}
