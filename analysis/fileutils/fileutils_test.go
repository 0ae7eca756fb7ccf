package fileutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarshalPretty_KeepsNonASCIIAndHTML(t *testing.T) {
	t.Parallel()

	b, err := MarshalPretty(map[string]string{"summary": "기분이 좋아요 <3 & café"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, "기분이 좋아요 <3 & café") {
		t.Fatalf("text escaped: %q", got)
	}
	if !strings.HasPrefix(got, "{\n  \"summary\"") {
		t.Fatalf("not indented: %q", got)
	}
	if !strings.HasSuffix(got, "}\n") {
		t.Fatalf("missing trailing newline: %q", got)
	}
}

func TestWriteJSONFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out", "report.json")

	if err := WriteJSONFileAtomic(path, map[string]int{"a": 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "{\n  \"a\": 1\n}\n" {
		t.Fatalf("content=%q", string(b))
	}

	// Overwrite in place.
	if err := WriteJSONFileAtomic(path, map[string]int{"a": 2}); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	b, _ = os.ReadFile(path)
	if !strings.Contains(string(b), "2") {
		t.Fatalf("content=%q", string(b))
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, "out", ".tmp_analysis_*"))
	if len(leftovers) != 0 {
		t.Fatalf("temp files left behind: %v", leftovers)
	}
}
