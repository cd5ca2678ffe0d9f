package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	// Добавляем файл первый раз
	id1 := fs.Add("test.java", []byte("int a;"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.java")
	if !exists || latestID != id1 {
		t.Fatalf("Expected latest ID %d, got %d (exists=%v)", id1, latestID, exists)
	}

	// Тот же путь с новым содержимым получает новый ID
	id2 := fs.Add("test.java", []byte("int b;"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}
	latestID, _ = fs.GetLatest("test.java")
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	if got := fs.Get(id1).Text(); got != "int a;" {
		t.Errorf("old version lost, got %q", got)
	}
	if got := fs.Get(id2).Text(); got != "int b;" {
		t.Errorf("unexpected content %q", got)
	}
	if fs.Get(FileID(42)) != nil {
		t.Error("out of range id must return nil")
	}
}

func TestLoadNormalizesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decl.java")
	raw := []byte("\xEF\xBB\xBFint a;\r\nint b;\r\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Text() != "int a;\nint b;\n" {
		t.Fatalf("unexpected normalized content %q", f.Text())
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if f.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", f.LineCount())
	}
	if got := f.GetLine(2); got != "int b;" {
		t.Fatalf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(3); got != "" {
		t.Fatalf("GetLine(3) = %q, want empty", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.java")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAddVirtualNFC(t *testing.T) {
	fs := NewFileSet()
	// "e" + combining acute -> "é"
	id := fs.AddVirtual("<stdin>", []byte("String s = \"e\u0301\";"))
	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 || f.Flags&FileNormalizedNFC == 0 {
		t.Fatalf("expected virtual+nfc flags, got %b", f.Flags)
	}
	if f.Text() != "String s = \"\u00e9\";" {
		t.Fatalf("content not composed: %q", f.Text())
	}
	if f.FormatPath("absolute", "") != "<stdin>" {
		t.Fatalf("virtual paths are never rewritten")
	}
}
