package file

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

var _ io.ReadCloser = (*File)(nil)

// File is a read-only input backed by either a memory mapping or an os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the file into memory when supported; otherwise it falls back to
// os.Open. Empty files always use the fallback since there is nothing to map.
func Open(name string) (*File, error) {
	if info, err := os.Stat(name); err == nil && info.Size() > 0 {
		if mf, err := mmapfile.Open(name); err == nil {
			return &File{mm: mf}, nil
		}
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}

	return f.os.Read(p)
}

// Close releases the mapping or the file descriptor.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Name returns the name the file was opened with.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}

// Mapped reports whether the file is memory-mapped.
func (f *File) Mapped() bool {
	return f.mm != nil
}

// ReadAll reads from the current offset to the end of the file. The returned
// slice is a copy, so it stays valid after the file is closed.
func (f *File) ReadAll() ([]byte, error) {
	return io.ReadAll(f)
}
