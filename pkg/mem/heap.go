// Package mem provides a small tracked heap used by the pointer demos in
// place of malloc and free.
//
// Every allocation is an owning handle: a Cell holds one value, a Block
// holds a contiguous run of values. Handles are released explicitly and the
// heap checks that each allocation is released exactly once, that nothing is
// touched after release, and that a Block is not released while it still
// holds live handles. Every state transition is reported to a trace.Sink.
package mem

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

var (
	// ErrReleased is reported when a handle is used or released after release.
	ErrReleased = errors.New("use of released allocation")

	// ErrLiveHandles is returned when a Block is released while some of its
	// elements are handles that have not been released yet.
	ErrLiveHandles = errors.New("block still owns live handles")

	// ErrLeak is reported by Close for every allocation never released.
	ErrLeak = errors.New("allocation never released")
)

// Heap tracks the live allocations of one demo. It is not safe for
// concurrent use.
type Heap struct {
	scope string
	sink  trace.Sink
	next  uint64
	live  map[uint64]string
	fault error
}

// NewHeap creates a heap whose events are tagged with scope.
// A nil sink discards events.
func NewHeap(scope string, sink trace.Sink) *Heap {
	if sink == nil {
		sink = trace.Discard
	}
	return &Heap{
		scope: scope,
		sink:  sink,
		live:  make(map[uint64]string),
	}
}

// Live returns the number of allocations not yet released.
func (h *Heap) Live() int {
	return len(h.live)
}

// Close reports every use-after-release seen by the heap and every
// allocation that is still live, in allocation order.
func (h *Heap) Close() error {
	errs := []error{h.fault}
	for _, id := range slices.Sorted(maps.Keys(h.live)) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrLeak, h.live[id]))
	}
	return errors.Join(errs...)
}

func (h *Heap) acquire(label string) uint64 {
	h.next++
	h.live[h.next] = label
	return h.next
}

func (h *Heap) release(id uint64) {
	delete(h.live, id)
}

// fail records misuse that cannot be returned to the caller (Load, Store).
func (h *Heap) fail(err error) {
	h.fault = errors.Join(h.fault, err)
}

func (h *Heap) emit(kind trace.Kind, label string, index int, value string) {
	h.sink.OnEvent(trace.Event{
		Demo:  h.scope,
		Kind:  kind,
		Label: label,
		Index: index,
		Value: value,
	})
}

type labeled interface {
	Label() string
}

type owner interface {
	Live() bool
}

// describe formats v for the trace. Handles are named by label so the
// trace does not depend on addresses.
func describe(v any) string {
	if l, ok := v.(labeled); ok {
		return l.Label()
	}
	return fmt.Sprintf("%+v", v)
}
