package outbox

// Message is the outbox row shape persisted inside the same DB transaction as
// the state change that produced it. Relay workers read pending rows and
// publish to the message bus, marking them published on success.
type Message struct {
	ID         string
	EventType  string
	Payload    []byte
	Status     string // pending, published, failed
	RetryCount int
}
