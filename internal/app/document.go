package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/dshills/tagedit/internal/engine"
	"github.com/dshills/tagedit/internal/event"
)

// Document represents an open file with its associated editor state.
type Document struct {
	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// Engine is the text buffer and editing engine.
	Engine *engine.Engine

	// ReadOnly indicates the document cannot be saved.
	ReadOnly bool

	// modified is set by every text change and cleared by Save.
	modified atomic.Bool

	sub *event.Subscription
}

// NewDocument creates a document holding content. An empty path makes a
// scratch buffer.
func NewDocument(path string, content []byte, opts ...engine.Option) *Document {
	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}

	opts = append([]engine.Option{engine.WithContent(string(content))}, opts...)
	doc := &Document{
		Path:   path,
		Name:   name,
		Engine: engine.New(opts...),
	}
	doc.sub = doc.Engine.Subscribe(event.TopicText, func(event.Event) {
		doc.modified.Store(true)
	})
	return doc
}

// OpenDocument reads the file at path into a new document. A file that
// does not exist yet opens as an empty document that Save will create.
func OpenDocument(path string, opts ...engine.Option) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	content, err := os.ReadFile(absPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, NewOperationError("open", absPath, err)
	}
	return NewDocument(absPath, content, opts...), nil
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.modified.Load()
}

// SetModified sets the modified flag.
func (d *Document) SetModified(modified bool) {
	d.modified.Store(modified)
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// Content returns the full document content.
func (d *Document) Content() string {
	return d.Engine.Text()
}

// Save writes the document back to its file, keeping the file's mode when
// it already exists.
func (d *Document) Save() error {
	if d.IsScratch() {
		return NewOperationError("save", d.Name, ErrNoPath)
	}
	if d.ReadOnly {
		return NewOperationError("save", d.Path, ErrReadOnly)
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(d.Path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(d.Path, []byte(d.Content()), perm); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.modified.Store(false)
	return nil
}

// Close stops tracking changes.
func (d *Document) Close() {
	if d.sub != nil {
		d.sub.Unsubscribe()
		d.sub = nil
	}
}
