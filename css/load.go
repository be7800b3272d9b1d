package css

import (
	"errors"
	"fmt"
	"os"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotStylesheet is returned for inputs recognized as binary files.
var ErrNotStylesheet = errors.New("file is not a CSS stylesheet")

// LookupEncoding returns encoding registered under IANA name. Empty name
// returns nil which means input is expected to be UTF-8 (or have a BOM).
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown character set '%s': %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("character set '%s' is not supported", name)
	}
	return enc, nil
}

// Decode converts raw file content to UTF-8. Byte order mark, if present,
// takes precedence over enc.
func Decode(data []byte, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		enc = unicode.UTF8
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseFile reads, decodes and parses stylesheet from file at path.
func (p *Parser) ParseFile(path string, enc encoding.Encoding) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	}

	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return nil, fmt.Errorf("%w: '%s' looks like %s", ErrNotStylesheet, path, kind.MIME.Value)
	}

	if data, err = Decode(data, enc); err != nil {
		return nil, fmt.Errorf("unable to decode '%s': %w", path, err)
	}

	sheet, err := p.Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s': %w", path, err)
	}
	if len(sheet.Warnings) > 0 {
		p.log.Debug("Stylesheet parsed with warnings", zap.String("source", path), zap.Int("warnings", len(sheet.Warnings)))
	}
	return sheet, nil
}
