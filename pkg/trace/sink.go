// Package trace records the state transitions of the pointer demos
// (allocation, write, read, release) and checks a run against a saved trace.
package trace

// Sink receives the events produced while the demos run.
type Sink interface {
	// OnEvent is called once per state transition, in program order.
	OnEvent(e Event)

	// OnFinalize is called after the last demo (e.g., save or check the trace).
	OnFinalize() error
}

// Recording is a sink that can save its execution trace.
type Recording interface {
	Sink
	RecordTrace() error
}

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) OnEvent(Event)     {}
func (discard) OnFinalize() error { return nil }
