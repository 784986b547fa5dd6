package engine

import (
	"github.com/dshills/tagedit/internal/engine/word"
	"github.com/dshills/tagedit/internal/event"
	"github.com/dshills/tagedit/internal/renderer/layout"
)

// Default configuration values.
const (
	DefaultTabWidth = layout.DefaultTabWidth
	DefaultWidth    = 80
	DefaultHeight   = 24
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabWidth sets the tab width for the engine.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithSize sets the initial viewport size in cells.
func WithSize(width, height int) Option {
	return func(e *Engine) {
		e.width, e.height = width, height
	}
}

// WithInsertMode sets the initial insert mode. The default is insert.
func WithInsertMode(insert bool) Option {
	return func(e *Engine) {
		e.initInsert = insert
	}
}

// WithWordFinder replaces the word boundary finder used by word motion.
func WithWordFinder(f word.Finder) Option {
	return func(e *Engine) {
		if f != nil {
			e.words = f
		}
	}
}

// WithBus makes the engine publish on an existing bus.
func WithBus(bus *event.Bus) Option {
	return func(e *Engine) {
		if bus != nil {
			e.bus = bus
		}
	}
}
