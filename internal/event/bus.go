package event

import "slices"

// Subscription represents an active handler registration.
type Subscription struct {
	id    uint64
	topic Topic
	bus   *Bus
}

// Topic returns the subscribed topic, or "" for a subscription to all topics.
func (s *Subscription) Topic() Topic {
	return s.topic
}

// Unsubscribe removes this subscription. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.bus != nil {
		s.bus.unsubscribe(s.id)
		s.bus = nil
	}
}

type entry struct {
	id      uint64
	topic   Topic
	handler Handler
}

// Bus delivers events to handlers synchronously.
type Bus struct {
	entries []entry
	nextID  uint64

	published uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler for topic. An empty topic receives all events.
// A nil handler is ignored and returns a subscription that does nothing.
func (b *Bus) Subscribe(topic Topic, handler Handler) *Subscription {
	if handler == nil {
		return &Subscription{topic: topic}
	}
	id := b.nextID
	b.nextID++
	b.entries = append(b.entries, entry{id: id, topic: topic, handler: handler})
	return &Subscription{id: id, topic: topic, bus: b}
}

// SubscribeAll registers handler for every topic.
func (b *Bus) SubscribeAll(handler Handler) *Subscription {
	return b.Subscribe("", handler)
}

// Publish delivers an event to the handlers registered when Publish was
// called, in subscription order.
func (b *Bus) Publish(topic Topic, oldValue, newValue any) {
	b.published++
	ev := Event{Topic: topic, Old: oldValue, New: newValue}

	// Handlers may subscribe or unsubscribe while we deliver.
	snapshot := slices.Clone(b.entries)
	for _, e := range snapshot {
		if e.topic != "" && e.topic != topic {
			continue
		}
		if !b.active(e.id) {
			continue
		}
		e.handler(ev)
	}
}

// Published returns the number of events published so far.
func (b *Bus) Published() uint64 {
	return b.published
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	return len(b.entries)
}

func (b *Bus) active(id uint64) bool {
	return slices.ContainsFunc(b.entries, func(e entry) bool { return e.id == id })
}

func (b *Bus) unsubscribe(id uint64) {
	b.entries = slices.DeleteFunc(b.entries, func(e entry) bool { return e.id == id })
}

// On subscribes a typed handler to topic. Events whose New value is not a T
// are skipped.
func On[T any](b *Bus, topic Topic, fn func(v T)) *Subscription {
	return b.Subscribe(topic, func(ev Event) {
		if v, ok := ev.New.(T); ok {
			fn(v)
		}
	})
}
