package compare

import (
	"cmp"
	"errors"
	"slices"

	"github.com/maruel/natural"

	"cssdiff/css"
)

// ErrDifferent is returned by the command when differences were found and
// caller asked to treat them as failure.
var ErrDifferent = errors.New("CSS files are different")

// ChangeKind describes what happened to a property.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeChanged ChangeKind = "changed"
)

// Change is a single property difference between two declaration sets.
type Change struct {
	Property string     `json:"property" yaml:"property"`
	Kind     ChangeKind `json:"kind" yaml:"kind"`
	Old      string     `json:"old,omitempty" yaml:"old,omitempty"`
	New      string     `json:"new,omitempty" yaml:"new,omitempty"`
}

// Result holds outcome of comparing two selector maps A and B.
type Result struct {
	OnlyInA   []string            // present in A, missing in B
	OnlyInB   []string            // present in B, missing in A
	Differing []string            // present in both with unequal declarations
	Changes   map[string][]Change // property changes for every differing selector
}

// Empty reports whether maps were equal.
func (r *Result) Empty() bool {
	return len(r.OnlyInA) == 0 && len(r.OnlyInB) == 0 && len(r.Differing) == 0
}

// SortNatural orders all lists using natural sort order so "h2" goes before "h10".
func (r *Result) SortNatural() {
	for _, list := range [][]string{r.OnlyInA, r.OnlyInB, r.Differing} {
		slices.SortStableFunc(list, func(a, b string) int {
			switch {
			case natural.Less(a, b):
				return -1
			case natural.Less(b, a):
				return 1
			default:
				return 0
			}
		})
	}
}

// Diff compares two selector maps. Lists follow insertion order of a for
// OnlyInA and Differing and insertion order of b for OnlyInB.
func Diff(a, b *SelectorMap) *Result {
	r := &Result{
		OnlyInA:   make([]string, 0),
		OnlyInB:   make([]string, 0),
		Differing: make([]string, 0),
		Changes:   make(map[string][]Change),
	}

	for selector, da := range a.All() {
		db, ok := b.Get(selector)
		if !ok {
			r.OnlyInA = append(r.OnlyInA, selector)
			continue
		}
		if !da.Equal(db) {
			r.Differing = append(r.Differing, selector)
			r.Changes[selector] = Changes(da, db)
		}
	}

	for selector := range b.All() {
		if !a.Has(selector) {
			r.OnlyInB = append(r.OnlyInB, selector)
		}
	}
	return r
}

// Changes lists property differences going from a to b sorted by property name.
func Changes(a, b css.Declarations) []Change {
	var changes []Change
	for _, name := range a.Names() {
		vb, ok := b[name]
		switch {
		case !ok:
			changes = append(changes, Change{Property: name, Kind: ChangeRemoved, Old: a[name]})
		case vb != a[name]:
			changes = append(changes, Change{Property: name, Kind: ChangeChanged, Old: a[name], New: vb})
		}
	}
	for _, name := range b.Names() {
		if _, ok := a[name]; !ok {
			changes = append(changes, Change{Property: name, Kind: ChangeAdded, New: b[name]})
		}
	}
	slices.SortStableFunc(changes, func(x, y Change) int {
		return cmp.Compare(x.Property, y.Property)
	})
	return changes
}
