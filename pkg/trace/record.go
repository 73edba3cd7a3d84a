package trace

import (
	"slices"
	"sync"
)

// Recorder records all events and writes them to a trace file.
// It doesn't check anything - just observes.
type Recorder struct {
	trace     []Event
	mu        sync.Mutex
	traceFile string
}

var _ Recording = (*Recorder)(nil)

// NewRecorder creates a new recorder. An empty traceFile keeps the
// events in memory only.
func NewRecorder(traceFile string) *Recorder {
	return &Recorder{traceFile: traceFile}
}

// OnEvent records the event.
func (s *Recorder) OnEvent(e Event) {
	s.mu.Lock()
	s.trace = append(s.trace, e)
	s.mu.Unlock()
}

// Events returns a copy of the events recorded so far.
func (s *Recorder) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.trace)
}

// OnFinalize saves the recorded trace to file.
func (s *Recorder) OnFinalize() error {
	if s.traceFile == "" {
		return nil
	}
	return s.RecordTrace()
}

// RecordTrace saves the current trace to file.
func (s *Recorder) RecordTrace() error {
	return SaveTrace(s.traceFile, s.Events())
}
