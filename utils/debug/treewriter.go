// Package debug produces indented text dumps stored in debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	sb     strings.Builder
	indent string
}

// NewTreeWriter returns writer which indents every level with indent, two
// spaces when empty.
func NewTreeWriter(indent string) *TreeWriter {
	if indent == "" {
		indent = "  "
	}
	return &TreeWriter{indent: indent}
}

func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(&tw.sb, format, args...)
	tw.sb.WriteByte('\n')
}

// Field writes "name: value" with value quoted so whitespace is visible.
func (tw *TreeWriter) Field(depth int, name, value string) {
	tw.pad(depth)
	tw.sb.WriteString(name)
	tw.sb.WriteString(": ")
	tw.sb.WriteString(strconv.Quote(value))
	tw.sb.WriteByte('\n')
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.sb.WriteString(tw.indent)
	}
}
