package dialogue

// EventType tags one line of the generation event stream.
type EventType string

const (
	EventPartial  EventType = "partial"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
)

// EventData carries the conversation snapshot of a partial or complete event.
type EventData struct {
	Conversation []Turn `json:"conversation"`
}

// StreamEvent is one newline-terminated JSON line on the wire. A stream is a
// sequence of zero or more partial events followed by exactly one terminal
// event (complete or error). Nothing follows a terminal event.
type StreamEvent struct {
	Type  EventType  `json:"type"`
	Data  *EventData `json:"data,omitempty"`
	Error string     `json:"error,omitempty"`
}

// Terminal reports whether the event closes its stream.
func (e StreamEvent) Terminal() bool {
	return e.Type == EventComplete || e.Type == EventError
}

// PartialEvent builds a partial snapshot event for the given turns.
func PartialEvent(turns []Turn) StreamEvent {
	return StreamEvent{Type: EventPartial, Data: &EventData{Conversation: turns}}
}

// CompleteEvent builds the terminal success event for the final turn list.
func CompleteEvent(turns []Turn) StreamEvent {
	return StreamEvent{Type: EventComplete, Data: &EventData{Conversation: turns}}
}

// ErrorEvent builds the terminal failure event.
func ErrorEvent(msg string) StreamEvent {
	return StreamEvent{Type: EventError, Error: msg}
}
