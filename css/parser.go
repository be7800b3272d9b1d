package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into selector groups.
type Parser struct {
	log         *zap.Logger
	strict      bool
	skipAtRules bool
}

// Option changes Parser behavior.
type Option func(*Parser)

// WithStrict makes any grammar error fatal. By default grammar errors are
// recorded as warnings and parsing continues.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// WithSkipAtRules drops block at-rules (@media, @supports, ...) from the
// result instead of flattening them into groups.
func WithSkipAtRules(skip bool) Option {
	return func(p *Parser) {
		p.skipAtRules = skip
	}
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger, options ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("css-parser")}
	for _, setOpt := range options {
		setOpt(p)
	}
	return p
}

// parseRun holds state of a single Parse call.
type parseRun struct {
	*Parser
	input   *parse.Input
	grammar *css.Parser
	sheet   *Stylesheet
	lastErr string
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	r := &parseRun{
		Parser: p,
		input:  parse.NewInputBytes(data),
		sheet: &Stylesheet{
			Rules:    make([]Group, 0),
			Warnings: make([]string, 0),
		},
	}
	r.grammar = css.NewParser(r.input, false)

	selStart := -1
	for {
		start := r.input.Offset()
		gt, _, data := r.grammar.Next()

		switch gt {
		case css.ErrorGrammar:
			stop, err := r.grammarError()
			if err != nil {
				return nil, err
			}
			if stop {
				return r.sheet, nil
			}
			selStart = -1

		case css.AtRuleGrammar:
			// Statement at-rule (@import, @charset, @namespace)
			stmt := joinTokens(string(data), r.grammar.Values())
			r.warn("at-rule statement is not compared: " + stmt)

		case css.BeginAtRuleGrammar:
			prelude := joinTokens(string(data), r.grammar.Values())
			decls, err := r.parseBlock()
			if err != nil {
				return nil, err
			}
			if r.skipAtRules {
				p.log.Debug("Skipping @-rule", zap.String("rule", prelude))
				continue
			}
			r.sheet.Rules = append(r.sheet.Rules, Group{Selector: prelude, AtRule: true, Declarations: decls})

		case css.QualifiedRuleGrammar:
			// piece of a selector list, more follow
			if selStart < 0 {
				selStart = start
			}

		case css.BeginRulesetGrammar:
			if selStart < 0 {
				selStart = start
			}
			selector := r.selector(selStart, data)
			selStart = -1

			decls, err := r.parseBlock()
			if err != nil {
				return nil, err
			}
			r.sheet.Rules = append(r.sheet.Rules, Group{Selector: selector, Declarations: decls})
		}
	}
}

// parseBlock collects declarations until the block opened last is closed.
// Nested blocks are flattened into "header { property }" keys.
func (r *parseRun) parseBlock() (Declarations, error) {
	decls := make(Declarations)
	selStart := -1

	for {
		start := r.input.Offset()
		gt, _, data := r.grammar.Next()

		switch gt {
		case css.ErrorGrammar:
			stop, err := r.grammarError()
			if err != nil {
				return nil, err
			}
			if stop {
				// unterminated block at the end of input
				return decls, nil
			}

		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			return decls, nil

		case css.DeclarationGrammar:
			// repeated property: last one wins
			decls[string(data)] = joinTokens("", r.grammar.Values())

		case css.CustomPropertyGrammar:
			decls[string(data)] = collapseSpace(joinTokens("", r.grammar.Values()))

		case css.AtRuleGrammar:
			stmt := joinTokens(string(data), r.grammar.Values())
			r.warn("nested at-rule statement is not compared: " + stmt)

		case css.BeginAtRuleGrammar:
			header := joinTokens(string(data), r.grammar.Values())
			nested, err := r.parseBlock()
			if err != nil {
				return nil, err
			}
			if !r.skipAtRules {
				flatten(decls, header, nested)
			}

		case css.QualifiedRuleGrammar:
			if selStart < 0 {
				selStart = start
			}

		case css.BeginRulesetGrammar:
			if selStart < 0 {
				selStart = start
			}
			header := r.selector(selStart, data)
			selStart = -1

			nested, err := r.parseBlock()
			if err != nil {
				return nil, err
			}
			flatten(decls, header, nested)
		}
	}
}

// grammarError decides what to do with ErrorGrammar. Parsing stops at the end
// of input, on non-grammar errors and on any error in strict mode. Otherwise
// the error is recorded as a warning and parsing continues.
func (r *parseRun) grammarError() (bool, error) {
	err := r.grammar.Err()
	if err == nil || errors.Is(err, io.EOF) {
		return true, nil
	}

	var perr *parse.Error
	if !errors.As(err, &perr) || r.strict {
		return true, fmt.Errorf("%w: %w", ErrMalformedStylesheet, err)
	}
	// grammar parser did not move forward
	if perr.Error() == r.lastErr {
		return true, nil
	}
	r.lastErr = perr.Error()

	r.warn("ignoring malformed CSS: " + perr.Error())
	return false, nil
}

func (r *parseRun) warn(msg string) {
	r.sheet.Warnings = append(r.sheet.Warnings, msg)
	r.log.Debug("CSS warning", zap.String("warning", msg))
}

// flatten moves nested declarations into parent under "header { key }" names.
func flatten(parent Declarations, header string, nested Declarations) {
	for name, value := range nested {
		parent[header+" { "+name+" }"] = value
	}
}

// selector returns ruleset prelude exactly as written in the source, from
// start up to the opening brace, without comments and surrounding whitespace.
// Grammar parser normalizes whitespace in selector tokens, so tokens are only
// used when source offsets are not usable.
func (r *parseRun) selector(start int, data []byte) string {
	src, end := r.input.Bytes(), r.input.Offset()
	if start < 0 || end > len(src) || start >= end {
		return selectorText(data, r.grammar.Values())
	}
	raw := src[start:end]
	if i := bytes.LastIndexByte(raw, '{'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(stripComments(string(raw)))
}

// selectorText builds selector string from tokens.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

func stripComments(s string) string {
	for {
		i := strings.Index(s, "/*")
		if i < 0 {
			return s
		}
		j := strings.Index(s[i+2:], "*/")
		if j < 0 {
			return s[:i]
		}
		s = s[:i] + s[i+2+j+2:]
	}
}

// collapseSpace replaces whitespace runs outside of quoted strings with a
// single space.
func collapseSpace(s string) string {
	var sb strings.Builder
	var quote rune
	space := false
	for _, c := range strings.TrimSpace(s) {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case unicode.IsSpace(c):
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// joinTokens builds a value string from tokens collapsing whitespace runs to
// a single space. Non-empty prefix (at-rule name) is separated by space.
func joinTokens(prefix string, tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		switch {
		case t.TokenType == css.CommentToken:
			continue
		case t.TokenType == css.DelimToken && string(t.Data) == "!":
			// "red !important" rather than "red!important"
			if len(parts) > 0 && parts[len(parts)-1] != " " {
				parts = append(parts, " ")
			}
			parts = append(parts, "!")
		case t.TokenType != css.WhitespaceToken:
			parts = append(parts, string(t.Data))
		case len(parts) > 0 && parts[len(parts)-1] != " ":
			parts = append(parts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(parts, ""))
	switch {
	case prefix == "":
		return raw
	case raw == "":
		return prefix
	default:
		return prefix + " " + raw
	}
}
