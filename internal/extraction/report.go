// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/goccy/go-yaml"
)

// Entry holds the matches found for one category.
type Entry struct {
	Category Category
	Matches  []string
}

// Report maps every registered category to its matches, in registration order.
// A category without matches maps to an empty slice.
type Report struct {
	entries []Entry
	index   map[Category]int
}

func newReport(size int) *Report {
	return &Report{
		entries: make([]Entry, 0, size),
		index:   make(map[Category]int, size),
	}
}

func (r *Report) add(category Category, matches []string) {
	r.index[category] = len(r.entries)
	r.entries = append(r.entries, Entry{Category: category, Matches: matches})
}

// Categories returns the report's categories in order.
func (r *Report) Categories() []Category {
	cats := make([]Category, len(r.entries))
	for i, e := range r.entries {
		cats[i] = e.Category
	}
	return cats
}

// Matches returns the matches for category. The second result is false when
// the category is not part of the report.
func (r *Report) Matches(category Category) ([]string, bool) {
	i, ok := r.index[category]
	if !ok {
		return nil, false
	}
	return slices.Clone(r.entries[i].Matches), true
}

// Entries returns a copy of the report's entries in order.
func (r *Report) Entries() []Entry {
	entries := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		entries[i] = Entry{Category: e.Category, Matches: slices.Clone(e.Matches)}
	}
	return entries
}

// Len returns the number of categories in the report.
func (r *Report) Len() int {
	return len(r.entries)
}

// Total returns the number of matches across all categories.
func (r *Report) Total() int {
	n := 0
	for _, e := range r.entries {
		n += len(e.Matches)
	}
	return n
}

// Clone returns a deep copy of the report.
func (r *Report) Clone() *Report {
	c := newReport(len(r.entries))
	for _, e := range r.entries {
		c.add(e.Category, slices.Clone(e.Matches))
	}
	return c
}

// Equal reports whether both reports hold the same categories, in the same
// order, with the same matches.
func (r *Report) Equal(other *Report) bool {
	if r == nil || other == nil {
		return r == other
	}
	return slices.EqualFunc(r.entries, other.entries, func(a, b Entry) bool {
		return a.Category == b.Category && slices.Equal(a.Matches, b.Matches)
	})
}

// MarshalJSON encodes the report as an object whose keys keep registration order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, string(e.Category)); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, nonNil(e.Matches)); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the report as an ordered mapping.
func (r *Report) MarshalYAML() (any, error) {
	items := make(yaml.MapSlice, 0, len(r.entries))
	for _, e := range r.entries {
		items = append(items, yaml.MapItem{Key: string(e.Category), Value: nonNil(e.Matches)})
	}
	return items, nil
}

// writeJSON appends v to buf without escaping HTML, so tags stay readable.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
