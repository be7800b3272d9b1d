package debug

import (
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	if tw := NewTreeWriter(""); tw.indent != "  " {
		t.Errorf("default indent = %q, want two spaces", tw.indent)
	}
	if tw := NewTreeWriter("\t"); tw.indent != "\t" {
		t.Errorf("indent = %q, want tab", tw.indent)
	}
	if NewTreeWriter("").String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 1", 1, "indented", nil, "  indented\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "%s (%d)", []any{".btn", 3}, "  .btn (3)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter("")
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Field(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		field string
		value string
		want  string
	}{
		{"plain", 1, "color", "red", "  color: \"red\"\n"},
		{"empty value", 0, "content", "", "content: \"\"\n"},
		{"whitespace visible", 1, "margin", "0  auto\n", "  margin: \"0  auto\\n\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter("")
			tw.Field(tt.depth, tt.field, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("Field() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Accumulates(t *testing.T) {
	tw := NewTreeWriter("\t")
	tw.Line(0, ".a")
	tw.Field(1, "color", "red")
	tw.Line(0, ".b")

	want := ".a\n\tcolor: \"red\"\n.b\n"
	if got := tw.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
