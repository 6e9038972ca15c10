// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"fmt"
	"regexp"
)

// Definition binds a category to an expression in Go regexp syntax.
type Definition struct {
	Category Category
	Expr     string
}

// defaultDefinitions is the fixed extraction table. Order is report order.
var defaultDefinitions = []Definition{
	{Category: CategoryEmail, Expr: `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`},
	// Stops only at whitespace, so trailing punctuation stays in the match.
	{Category: CategoryURL, Expr: `https?://[^\s]+`},
	{Category: CategoryPhone, Expr: `\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`},
	{Category: CategoryCreditCard, Expr: `\b(?:\d{4}[-\s]?){3}\d{4}\b`},
	// 24-hour HH:MM, or 12-hour H:MM with an AM/PM suffix.
	{Category: CategoryTime, Expr: `\b(?:(?:[01]\d|2[0-3]):[0-5]\d|(?:1[0-2]|0?[1-9]):[0-5]\d\s?(?:AM|PM|am|pm))\b`},
	{Category: CategoryHTMLTag, Expr: `<[^>]+>`},
	{Category: CategoryHashtag, Expr: `#[A-Za-z0-9_]+`},
	// Whole-dollar amounts such as $20 do not match: the cents are required.
	{Category: CategoryCurrency, Expr: `\$\d{1,3}(?:,\d{3})*(?:\.\d{2})`},
}

var defaultRegistry = MustNewRegistry(defaultDefinitions...)

// Pattern is a compiled Definition.
type Pattern struct {
	Category Category
	re       *regexp.Regexp
}

// Expr returns the source expression of the pattern.
func (p Pattern) Expr() string {
	return p.re.String()
}

// FindAll returns every non-overlapping full match in text, left to right.
// The result is never nil.
func (p Pattern) FindAll(text string) []string {
	matches := p.re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// Registry is an ordered, read-only set of patterns.
type Registry struct {
	patterns []Pattern
	index    map[Category]int
}

// NewRegistry compiles defs in order. Any invalid definition fails the whole
// registry so that bad patterns surface before any text is scanned.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		patterns: make([]Pattern, 0, len(defs)),
		index:    make(map[Category]int, len(defs)),
	}
	for _, def := range defs {
		if def.Category == "" {
			return nil, fmt.Errorf("invalid definition %q: %w", def.Expr, ErrEmptyCategory)
		}
		if _, ok := r.index[def.Category]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, def.Category)
		}
		re, err := regexp.Compile(def.Expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q: %w", def.Category, err)
		}
		r.index[def.Category] = len(r.patterns)
		r.patterns = append(r.patterns, Pattern{Category: def.Category, re: re})
	}
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
func MustNewRegistry(defs ...Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the process-wide registry of built-in categories.
func Default() *Registry {
	return defaultRegistry
}

// DefaultDefinitions returns a copy of the built-in definition table.
func DefaultDefinitions() []Definition {
	defs := make([]Definition, len(defaultDefinitions))
	copy(defs, defaultDefinitions)
	return defs
}

// Len returns the number of registered categories.
func (r *Registry) Len() int {
	return len(r.patterns)
}

// Categories returns the registered categories in registration order.
func (r *Registry) Categories() []Category {
	cats := make([]Category, len(r.patterns))
	for i, p := range r.patterns {
		cats[i] = p.Category
	}
	return cats
}

// Patterns returns the compiled patterns in registration order.
func (r *Registry) Patterns() []Pattern {
	patterns := make([]Pattern, len(r.patterns))
	copy(patterns, r.patterns)
	return patterns
}

// Lookup returns the pattern registered for category.
func (r *Registry) Lookup(category Category) (Pattern, bool) {
	i, ok := r.index[category]
	if !ok {
		return Pattern{}, false
	}
	return r.patterns[i], true
}

// Subset returns a registry holding only the named categories. The result
// keeps registration order regardless of the order of the arguments.
func (r *Registry) Subset(categories ...Category) (*Registry, error) {
	want := make(map[Category]bool, len(categories))
	for _, c := range categories {
		if _, ok := r.index[c]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		want[c] = true
	}

	sub := &Registry{
		patterns: make([]Pattern, 0, len(want)),
		index:    make(map[Category]int, len(want)),
	}
	for _, p := range r.patterns {
		if want[p.Category] {
			sub.index[p.Category] = len(sub.patterns)
			sub.patterns = append(sub.patterns, p)
		}
	}
	return sub, nil
}
