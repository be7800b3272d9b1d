// Package report prints comparison results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"cssdiff/compare"
	"cssdiff/config"
)

const (
	headingOnlyInA   = "Styles in file 1 that were not in file 2"
	headingOnlyInB   = "Styles in file 2 that were not in file 1"
	headingDiffering = "Styles present in both CSS files that were different"

	ruleShort = 46
	ruleLong  = 60

	msgEqual    = "CSS files match and are equal ✓"
	msgFinished = "Finished generating CSS report."
)

// Printer writes progress and comparison results in configured format.
type Printer struct {
	w        io.Writer
	format   config.ReportFormat
	progress bool
	details  bool

	red, yellow, cyan, green *color.Color
}

// New creates printer writing to w. Colors are only used by text format.
func New(w io.Writer, cfg *config.ReportConfig, colored bool) *Printer {
	p := &Printer{
		w:        w,
		format:   cfg.Format,
		progress: cfg.Progress,
		details:  cfg.Details,
		red:      color.New(color.FgRed),
		yellow:   color.New(color.FgYellow),
		cyan:     color.New(color.FgCyan),
		green:    color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.red, p.yellow, p.cyan, p.green} {
		if colored && p.format == config.ReportFormatText {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// ColorEnabled decides if output to stream should be colored.
func ColorEnabled(mode config.ColorMode, stream *os.File) bool {
	switch mode {
	case config.ColorModeAlways:
		return true
	case config.ColorModeNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok || stream == nil {
		return false
	}
	return config.EnableColorOutput(stream)
}

// Progress prints step indicator. Machine readable formats stay silent.
func (p *Printer) Progress(step, total int, msg string) {
	if !p.progress || p.format != config.ReportFormatText {
		return
	}
	prefix := ""
	if step == 1 {
		prefix = "\n"
	}
	p.cyan.Fprintf(p.w, "%s%s... [%d/%d]\n", prefix, msg, step, total)
}

// Report prints comparison result. File names are only used by machine
// readable formats.
func (p *Printer) Report(res *compare.Result, fileA, fileB string) error {
	switch p.format {
	case config.ReportFormatJson:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(p.document(res, fileA, fileB))
	case config.ReportFormatYaml:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(p.document(res, fileA, fileB)); err != nil {
			return err
		}
		return enc.Close()
	case config.ReportFormatText:
		return p.text(res)
	default:
		return fmt.Errorf("unsupported report format: %s", p.format)
	}
}

func (p *Printer) text(res *compare.Result) error {
	if res.Empty() {
		p.green.Fprintln(p.w, msgEqual)
	}

	var changes map[string][]compare.Change
	if p.details {
		changes = res.Changes
	}
	p.section(p.red, headingOnlyInA, ruleShort, res.OnlyInA, nil)
	p.section(p.red, headingOnlyInB, ruleShort, res.OnlyInB, nil)
	p.section(p.yellow, headingDiffering, ruleLong, res.Differing, changes)

	_, err := p.green.Fprintf(p.w, "\n%s\n\n", msgFinished)
	return err
}

func (p *Printer) section(c *color.Color, heading string, width int, keys []string, changes map[string][]compare.Change) {
	if len(keys) == 0 {
		return
	}
	title := fmt.Sprintf("%s (%s)", heading, humanize.Comma(int64(len(keys))))
	rule := strings.Repeat("-", width)

	c.Fprintln(p.w, "\n"+rule)
	c.Fprintln(p.w, title)
	c.Fprintln(p.w, rule)
	for _, key := range keys {
		c.Fprintln(p.w, "\n"+key)
		for _, ch := range changes[key] {
			fmt.Fprintln(p.w, formatChange(ch))
		}
	}
}

func formatChange(ch compare.Change) string {
	switch ch.Kind {
	case compare.ChangeAdded:
		return "  + " + ch.Property + ": " + ch.New
	case compare.ChangeRemoved:
		return "  - " + ch.Property + ": " + ch.Old
	default:
		return "  ~ " + ch.Property + ": " + ch.Old + " -> " + ch.New
	}
}

type document struct {
	FileA     string                      `json:"file_a" yaml:"file_a"`
	FileB     string                      `json:"file_b" yaml:"file_b"`
	Equal     bool                        `json:"equal" yaml:"equal"`
	OnlyInA   []string                    `json:"only_in_a" yaml:"only_in_a"`
	OnlyInB   []string                    `json:"only_in_b" yaml:"only_in_b"`
	Differing []string                    `json:"differing" yaml:"differing"`
	Changes   map[string][]compare.Change `json:"changes,omitempty" yaml:"changes,omitempty"`
}

func (p *Printer) document(res *compare.Result, fileA, fileB string) *document {
	doc := &document{
		FileA:     fileA,
		FileB:     fileB,
		Equal:     res.Empty(),
		OnlyInA:   nonNil(res.OnlyInA),
		OnlyInB:   nonNil(res.OnlyInB),
		Differing: nonNil(res.Differing),
	}
	if p.details && len(res.Changes) > 0 {
		doc.Changes = res.Changes
	}
	return doc
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
