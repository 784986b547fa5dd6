package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[editor]
tabSize = 8
selectStyle = "{red-bg}"
insertMode = false

[log]
level = "debug"
`)

	loader := NewTOMLLoaderWithFS(memfs, "/config.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := map[string]any{
		"editor": map[string]any{
			"tabSize":     int64(8),
			"selectStyle": "{red-bg}",
			"insertMode":  false,
		},
		"log": map[string]any{
			"level": "debug",
		},
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if loader.Path() != "/config.toml" {
		t.Errorf("Path = %q, want '/config.toml'", loader.Path())
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	loader := NewTOMLLoaderWithFS(NewMemFS(), "/nonexistent.toml")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[editor
tabSize = 4
`)

	loader := NewTOMLLoaderWithFS(memfs, "/invalid.toml")
	_, err := loader.Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line != 2 {
		t.Errorf("Line = %d, want 2", parseErr.Line)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should mention the line", err.Error())
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	loader := &TOMLLoader{}

	config, err := loader.LoadFromReader(strings.NewReader(`pageLines = 12`))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["pageLines"] != int64(12) {
		t.Errorf("pageLines = %v, want 12", config["pageLines"])
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{"tabSize": int64(4), "pageLines": int64(10)},
		"log":    map[string]any{"level": "info"},
	}
	src := map[string]any{
		"editor": map[string]any{"tabSize": int64(2)},
		"log":    "flat",
	}

	got := DeepMerge(dst, src)
	want := map[string]any{
		"editor": map[string]any{"tabSize": int64(2), "pageLines": int64(10)},
		"log":    "flat",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}

	if got := DeepMerge(nil, nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}
