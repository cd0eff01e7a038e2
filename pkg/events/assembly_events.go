package events

// ContextAssembledEvent is published when an assembly call produces a context.
type ContextAssembledEvent struct {
	Strategy    string
	Query       string
	DocumentIDs []string
	TokensUsed  int
	Remaining   int
}

// Topic returns the event topic for assembled contexts
func (e ContextAssembledEvent) Topic() string {
	return "context.assembled"
}

// DocumentSkippedEvent is published when a candidate document does not fit
// the remaining budget. Skipping is expected behavior, not an error.
type DocumentSkippedEvent struct {
	Strategy   string
	DocumentID string
	Title      string
	Cost       int
	Remaining  int
}

// Topic returns the event topic for skipped documents
func (e DocumentSkippedEvent) Topic() string {
	return "document.skipped"
}

// EvalCompletedEvent is published when an evaluation run finishes.
type EvalCompletedEvent struct {
	RunID     string
	Strategy  string
	Questions int
	MeanScore float64
}

// Topic returns the event topic for completed evaluation runs
func (e EvalCompletedEvent) Topic() string {
	return "eval.completed"
}

// NoOpPublisher is a publisher that does nothing (for testing or when events are not needed)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(topic string, event interface{}) {
	// No-op
}

// NoOpEventBus is an event bus that does nothing (for testing)
type NoOpEventBus struct{}

// Publish does nothing
func (n *NoOpEventBus) Publish(topic string, event interface{}) {
	// No-op
}

// Subscribe does nothing
func (n *NoOpEventBus) Subscribe(topic string, handler EventHandler) {
	// No-op
}
