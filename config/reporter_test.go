package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open report archive: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	tmpDir := t.TempDir()
	dest := filepath.Join(tmpDir, "report.zip")

	r, err := (&ReporterConfig{Destination: dest}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	stored := filepath.Join(tmpDir, "a.css")
	if err := os.WriteFile(stored, []byte(".a { color: red; }"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r.Store("final.log", filepath.Join(tmpDir, "absent.log"))
	r.StoreData("result.json", []byte(`{"equal":true}`))
	if err := r.StoreCopy("input/a", stored); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	// changes after the copy must not be visible in the report
	if err := os.WriteFile(stored, []byte("changed"), 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, dest)
	if _, ok := files["MANIFEST"]; !ok {
		t.Error("expected MANIFEST in the archive")
	}
	if got := files["result.json"]; got != `{"equal":true}` {
		t.Errorf("result.json = %q", got)
	}
	if got := files["input/a"]; got != ".a { color: red; }" {
		t.Errorf("input/a = %q, want snapshot content", got)
	}
	if _, ok := files["final.log"]; ok {
		t.Error("absent file must not be archived")
	}
}

func TestReport_CloseRemovesCopies(t *testing.T) {
	tmpDir := t.TempDir()
	r, err := (&ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	src := filepath.Join(tmpDir, "b.css")
	if err := os.WriteFile(src, []byte("p{}"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := r.StoreCopy("input/b", src); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	copies := append([]string(nil), r.tmpDirs...)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	for _, dir := range copies {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			os.RemoveAll(dir)
			t.Errorf("expected %s to be removed", dir)
		}
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source file should not be removed: %v", err)
	}
}

func TestReport_StoreCopyVersionsNames(t *testing.T) {
	tmpDir := t.TempDir()
	r := &Report{entries: make(map[string]entry)}
	defer func() {
		for _, dir := range r.tmpDirs {
			os.RemoveAll(dir)
		}
	}()

	src := filepath.Join(tmpDir, "c.css")
	if err := os.WriteFile(src, []byte("p{}"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	for range 2 {
		if err := r.StoreCopy("input/c", src); err != nil {
			t.Fatalf("StoreCopy() error: %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}
}

func TestReport_StoreCopyDirectory(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.StoreCopy("dir", t.TempDir()); err == nil {
		t.Error("expected error for directory")
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("Name on nil report should be empty")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
