package css

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// ErrMalformedStylesheet is returned when CSS text could not be turned into a
// usable rule collection.
var ErrMalformedStylesheet = errors.New("CSS file was not in a readable format")

// Declarations is a single rule body: property name -> property value.
type Declarations map[string]string

// Equal reports whether both declaration sets have the same properties with
// the same values. Property order is irrelevant.
func (d Declarations) Equal(other Declarations) bool {
	return maps.Equal(d, other)
}

// Names returns property names sorted alphabetically.
func (d Declarations) Names() []string {
	return slices.Sorted(maps.Keys(d))
}

// Group is a top-level block of a stylesheet: either a selector list with
// its declarations or an at-rule block with its flattened content.
type Group struct {
	Selector     string       // Selector list or at-rule prelude as written, trimmed
	AtRule       bool         // true for @media, @supports, @font-face, etc.
	Declarations Declarations // Property name -> value
}

// Selectors returns individual selectors of the group. Selector lists are
// split on commas, at-rule preludes are returned whole.
func (g Group) Selectors() []string {
	if g.AtRule {
		return []string{g.Selector}
	}
	var selectors []string
	for s := range strings.SplitSeq(g.Selector, ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// Stylesheet represents a parsed CSS stylesheet.
type Stylesheet struct {
	Rules    []Group  // Top-level groups in source order
	Warnings []string // Things present in the source which are not compared
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a group is sorted alphabetically for deterministic output.
// At-rule blocks are written in their flattened form.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, group := range s.Rules {
		if i > 0 {
			n, err := fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := writeGroup(w, &group)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the normalized CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeGroup(w io.Writer, group *Group) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", group.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, name := range group.Declarations.Names() {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, group.Declarations[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
