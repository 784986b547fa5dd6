package event

// Topic names a kind of state change.
type Topic string

// Engine topics.
const (
	TopicLines      Topic = "lines"
	TopicText       Topic = "text"
	TopicCursor     Topic = "cursor"
	TopicScroll     Topic = "scroll"
	TopicSelection  Topic = "selection"
	TopicInsertMode Topic = "insertMode"
)

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// Event describes one change.
type Event struct {
	// Topic is the field that changed.
	Topic Topic

	// Old is the previous value (may be nil).
	Old any

	// New is the current value.
	New any
}

// Handler is called for every event on a subscribed topic.
type Handler func(ev Event)
