package milestone

import "strings"

// Results accumulates classified entries for one engine run. Each run owns
// its Results; it is not safe for concurrent use and is never shared between
// runs.
type Results struct {
	byCategory map[Category][]Entry
}

// NewResults returns an empty accumulator with every known category present.
func NewResults() *Results {
	byCategory := make(map[Category][]Entry, len(Categories))
	for _, cat := range Categories {
		byCategory[cat] = []Entry{}
	}
	return &Results{byCategory: byCategory}
}

// Append records an entry under a category, preserving insertion order.
// Entries for unknown categories are dropped.
func (r *Results) Append(cat Category, entry Entry) {
	if _, ok := r.byCategory[cat]; !ok {
		return
	}
	r.byCategory[cat] = append(r.byCategory[cat], entry)
}

// ToMap snapshots the results as plain key -> entries data. Every known
// category is present even when empty, and the slices are copies: mutating
// the snapshot does not touch the accumulator.
func (r *Results) ToMap() map[string][]Entry {
	out := make(map[string][]Entry, len(Categories))
	for _, cat := range Categories {
		entries := make([]Entry, len(r.byCategory[cat]))
		copy(entries, r.byCategory[cat])
		out[string(cat)] = entries
	}
	return out
}

// Count returns the total number of recorded entries across all categories.
func (r *Results) Count() int {
	total := 0
	for _, entries := range r.byCategory {
		total += len(entries)
	}
	return total
}

// Summary returns per-category entry counts for every known category,
// zero-count categories included.
func (r *Results) Summary() map[string]int {
	out := make(map[string]int, len(Categories))
	for _, cat := range Categories {
		out[string(cat)] = len(r.byCategory[cat])
	}
	return out
}

// Entries returns the recorded entries for one category in insertion order.
func (r *Results) Entries(cat Category) []Entry {
	return r.byCategory[cat]
}

// PlayerMilestones returns every entry for the named player, matched
// case-insensitively, walking categories in registry order.
func (r *Results) PlayerMilestones(name string) []Entry {
	var out []Entry
	for _, cat := range Categories {
		for _, entry := range r.byCategory[cat] {
			if strings.EqualFold(entry.Player, name) {
				out = append(out, entry)
			}
		}
	}
	return out
}
