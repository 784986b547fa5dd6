// Package clipboard provides the copy/paste collaborator used by the input
// handler.
//
// Copy is fire-and-forget. Paste is asynchronous: the callback runs exactly
// once, on the goroutine that owns the editor, with either the clipboard
// text or the error that prevented reading it.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no system clipboard is available.
var ErrUnsupported = errors.New("clipboard: no system clipboard available")

// Clipboard is the copy/paste collaborator.
type Clipboard interface {
	// Copy stores text. Failures are reported out of band.
	Copy(text string)

	// Paste reads the clipboard and calls fn once with the result.
	Paste(fn func(text string, err error))
}

// Option configures a System clipboard.
type Option func(*System)

// WithErrorHandler sets the function that receives copy failures. It runs
// on the posting goroutine.
func WithErrorHandler(fn func(error)) Option {
	return func(s *System) {
		if fn != nil {
			s.onError = fn
		}
	}
}

// withBackend replaces the system calls, for tests.
func withBackend(read func() (string, error), write func(string) error, unsupported bool) Option {
	return func(s *System) {
		s.read, s.write, s.unsupported = read, write, unsupported
	}
}

// System is the operating system clipboard. Reads and writes run on their
// own goroutine and report back through post, which must run the function
// on the editor's goroutine.
type System struct {
	post        func(func())
	onError     func(error)
	read        func() (string, error)
	write       func(string) error
	unsupported bool
}

// NewSystem creates a system clipboard that delivers results through post.
func NewSystem(post func(func()), opts ...Option) *System {
	s := &System{
		post:        post,
		onError:     func(error) {},
		read:        clipboard.ReadAll,
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Copy writes text to the system clipboard in the background.
func (s *System) Copy(text string) {
	if s.unsupported {
		s.post(func() { s.onError(ErrUnsupported) })
		return
	}
	go func() {
		if err := s.write(text); err != nil {
			err = fmt.Errorf("clipboard copy: %w", err)
			s.post(func() { s.onError(err) })
		}
	}()
}

// Paste reads the system clipboard in the background and posts fn.
func (s *System) Paste(fn func(text string, err error)) {
	if s.unsupported {
		s.post(func() { fn("", ErrUnsupported) })
		return
	}
	go func() {
		text, err := s.read()
		if err != nil {
			err = fmt.Errorf("clipboard paste: %w", err)
		}
		s.post(func() { fn(text, err) })
	}()
}

// Memory is an in-process clipboard. Paste calls back synchronously.
type Memory struct {
	text string

	// Err, when set, makes Paste fail.
	Err error
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Copy stores text.
func (m *Memory) Copy(text string) {
	m.text = text
}

// Paste calls fn with the stored text or Err.
func (m *Memory) Paste(fn func(text string, err error)) {
	if m.Err != nil {
		fn("", m.Err)
		return
	}
	fn(m.text, nil)
}

// Text returns the stored text.
func (m *Memory) Text() string {
	return m.text
}
