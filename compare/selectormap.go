package compare

import (
	"fmt"
	"iter"

	"cssdiff/css"
	"cssdiff/utils/debug"
)

// SelectorMap maps individual selectors to their declarations. Iteration
// order is the order in which keys were first inserted.
type SelectorMap struct {
	keys  []string
	decls map[string]css.Declarations
}

// NewSelectorMap returns an empty map.
func NewSelectorMap() *SelectorMap {
	return &SelectorMap{decls: make(map[string]css.Declarations)}
}

// Set stores declarations for selector. Existing key keeps its position and
// gets new declarations.
func (m *SelectorMap) Set(selector string, decls css.Declarations) {
	if _, exists := m.decls[selector]; !exists {
		m.keys = append(m.keys, selector)
	}
	m.decls[selector] = decls
}

// Get returns declarations stored for selector.
func (m *SelectorMap) Get(selector string) (css.Declarations, bool) {
	d, ok := m.decls[selector]
	return d, ok
}

// Has reports whether selector is present.
func (m *SelectorMap) Has(selector string) bool {
	_, ok := m.decls[selector]
	return ok
}

// Len returns number of distinct selectors.
func (m *SelectorMap) Len() int {
	return len(m.keys)
}

// All iterates over selectors and their declarations in insertion order.
func (m *SelectorMap) All() iter.Seq2[string, css.Declarations] {
	return func(yield func(string, css.Declarations) bool) {
		for _, k := range m.keys {
			if !yield(k, m.decls[k]) {
				return
			}
		}
	}
}

// Build flattens stylesheet groups into a selector map. Selector lists are
// split on commas and trimmed, every selector gets the group declarations.
// When the same selector appears in several groups the last group wins.
func Build(sheet *css.Stylesheet) (*SelectorMap, error) {
	if sheet == nil || sheet.Rules == nil {
		return nil, fmt.Errorf("%w: no rule collection", css.ErrMalformedStylesheet)
	}

	m := NewSelectorMap()
	for _, group := range sheet.Rules {
		for _, selector := range group.Selectors() {
			m.Set(selector, group.Declarations)
		}
	}
	return m, nil
}

// Dump renders map as indented text, selectors in insertion order and
// properties sorted by name.
func (m *SelectorMap) Dump() string {
	tw := debug.NewTreeWriter("")
	for selector, decls := range m.All() {
		tw.Line(0, "%s", selector)
		for _, name := range decls.Names() {
			tw.Field(1, name, decls[name])
		}
	}
	return tw.String()
}
