// Package prop provides typed state fields that normalize every assignment
// and publish a change event only when the normalized value differs.
package prop

import "github.com/dshills/tagedit/internal/event"

// Value is a single observable field.
type Value[T any] struct {
	v         T
	topic     event.Topic
	bus       *event.Bus
	normalize func(T) T
	equal     func(a, b T) bool
}

// New creates a field for a comparable type.
func New[T comparable](bus *event.Bus, topic event.Topic, initial T) *Value[T] {
	return NewFunc(bus, topic, initial, func(a, b T) bool { return a == b })
}

// NewFunc creates a field that compares values with equal.
func NewFunc[T any](bus *event.Bus, topic event.Topic, initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{
		v:     initial,
		topic: topic,
		bus:   bus,
		equal: equal,
	}
}

// WithNormalize installs the validator applied to every Set.
func (p *Value[T]) WithNormalize(fn func(T) T) *Value[T] {
	p.normalize = fn
	return p
}

// Get returns the current value.
func (p *Value[T]) Get() T {
	return p.v
}

// Topic returns the topic the field publishes on.
func (p *Value[T]) Topic() event.Topic {
	return p.topic
}

// Set normalizes v and stores it. It publishes and returns true only when
// the stored value changed.
func (p *Value[T]) Set(v T) bool {
	if p.normalize != nil {
		v = p.normalize(v)
	}
	if p.equal(p.v, v) {
		return false
	}
	old := p.v
	p.v = v
	if p.bus != nil {
		p.bus.Publish(p.topic, old, v)
	}
	return true
}

// Renormalize reapplies the validator to the stored value, for use after a
// dependency of the validator changed.
func (p *Value[T]) Renormalize() bool {
	return p.Set(p.v)
}
