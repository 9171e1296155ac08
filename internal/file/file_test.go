package file

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	return path
}

func readAll(t *testing.T, path string) (*File, []byte) {
	t.Helper()

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	got, err := f.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	return f, got
}

func TestReadAll(t *testing.T) {
	path := writeTemp(t, `{"var1":1}`)

	f, got := readAll(t, path)
	if string(got) != `{"var1":1}` {
		t.Fatalf("ReadAll: got %q", got)
	}
	if f.Name() != path {
		t.Fatalf("Name: got %q", f.Name())
	}
}

func TestReadAllEmptyFile(t *testing.T) {
	f, got := readAll(t, writeTemp(t, ""))
	if f.Mapped() {
		t.Fatalf("expected os fallback for empty file")
	}
	if len(got) != 0 {
		t.Fatalf("ReadAll empty: got %q", got)
	}
}

func TestReadAllOutlivesClose(t *testing.T) {
	path := writeTemp(t, "hey")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got, err := f.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if string(got) != "hey" {
		t.Fatalf("expected %q after close, got %q", "hey", got)
	}
}

func TestReadAfterPartialRead(t *testing.T) {
	path := writeTemp(t, "hello")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	buf := make([]byte, 2)
	if _, err := io.ReadFull(f, buf); err != nil || string(buf) != "he" {
		t.Fatalf("read: buf=%q err=%v", buf, err)
	}
	rest, err := f.ReadAll()
	if err != nil || string(rest) != "llo" {
		t.Fatalf("expected remaining %q, got %q (%v)", "llo", rest, err)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
