package main

// Broadcaster pushes an event to every stream client.
type Broadcaster interface {
	BroadcastEvent(eventType string, payload any)
}

// SequenceGenerator hands out the sequence numbers stamped on broadcasts.
type SequenceGenerator interface {
	Next() uint64
	Current() uint64
}
