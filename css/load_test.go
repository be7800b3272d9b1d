package css_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"cssdiff/css"
)

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.css")
	if err := os.WriteFile(path, []byte(".a, .b { color: red; }"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	sheet, err := css.NewParser(zap.NewNop()).ParseFile(path, nil)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 group, got %d", len(sheet.Rules))
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := css.NewParser(zap.NewNop()).ParseFile(filepath.Join(t.TempDir(), "missing.css"), nil)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestParseFile_Binary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.css")
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 0x49, 0x48, 0x44, 0x52}
	if err := os.WriteFile(path, png, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := css.NewParser(zap.NewNop()).ParseFile(path, nil)
	if !errors.Is(err, css.ErrNotStylesheet) {
		t.Errorf("Expected ErrNotStylesheet, got %v", err)
	}
}

func TestDecode_BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("p{color:red}")...)

	out, err := css.Decode(data, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if string(out) != "p{color:red}" {
		t.Errorf("Decode() = %q, BOM was not removed", out)
	}
}

func TestDecode_Forced(t *testing.T) {
	// "é" in ISO-8859-1
	data := []byte{'p', ':', ':', 'b', 'e', 'f', 'o', 'r', 'e', '{', 'c', 'o', 'n', 't', 'e', 'n', 't', ':', '"', 0xE9, '"', '}'}

	out, err := css.Decode(data, charmap.ISO8859_1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if string(out) != `p::before{content:"é"}` {
		t.Errorf("Decode() = %q", out)
	}
}

func TestLookupEncoding(t *testing.T) {
	enc, err := css.LookupEncoding("")
	if err != nil || enc != nil {
		t.Errorf("LookupEncoding(\"\") = %v, %v; want nil, nil", enc, err)
	}

	enc, err = css.LookupEncoding("windows-1251")
	if err != nil {
		t.Fatalf("LookupEncoding() error = %v", err)
	}
	if enc == nil {
		t.Error("expected encoding for windows-1251")
	}

	if _, err = css.LookupEncoding("no-such-charset"); err == nil {
		t.Error("expected error for unknown charset")
	}
}
