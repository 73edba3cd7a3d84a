package trace

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// ErrDiverged is returned when a run does not reproduce the saved trace.
var ErrDiverged = errors.New("trace diverged")

// Replayer checks a run against a saved trace, event by event.
// Only the first divergence is kept; later events are ignored.
type Replayer struct {
	trace     []Event
	idx       int
	err       error
	traceFile string
}

// NewReplayer creates a replayer from a trace file.
func NewReplayer(traceFile string) (*Replayer, error) {
	trace, err := LoadTrace(traceFile)
	if err != nil {
		return nil, err
	}
	return &Replayer{trace: trace, traceFile: traceFile}, nil
}

// NewReplayerFromEvents creates a replayer expecting the given events.
func NewReplayerFromEvents(events []Event) *Replayer {
	return &Replayer{trace: events}
}

// OnEvent compares e with the next expected event.
func (s *Replayer) OnEvent(e Event) {
	if s.err != nil {
		return
	}
	if s.idx >= len(s.trace) {
		s.err = fmt.Errorf("%w: unexpected event %d (%s %s[%d])", ErrDiverged, s.idx, e.Kind, e.Label, e.Index)
		return
	}

	expected := s.trace[s.idx]
	if diff := cmp.Diff(expected, e); diff != "" {
		s.err = fmt.Errorf("%w at event %d (-want +got):\n%s", ErrDiverged, s.idx, diff)
		return
	}
	s.idx++
}

// Err reports the first divergence seen so far.
func (s *Replayer) Err() error {
	return s.err
}

// OnFinalize reports a divergence, or the expected events that never happened.
func (s *Replayer) OnFinalize() error {
	if s.err != nil {
		return s.err
	}
	if missing := len(s.trace) - s.idx; missing > 0 {
		return fmt.Errorf("%w: %d expected events missing, next is %s %s in %s",
			ErrDiverged, missing, s.trace[s.idx].Kind, s.trace[s.idx].Label, s.trace[s.idx].Demo)
	}
	return nil
}

// ReplayTrace reloads the trace file and starts over.
func (s *Replayer) ReplayTrace() error {
	trace, err := LoadTrace(s.traceFile)
	if err != nil {
		return err
	}
	s.trace = trace
	s.idx = 0
	s.err = nil
	return nil
}
