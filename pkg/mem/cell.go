package mem

import (
	"fmt"

	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

// Cell is an owning handle to a single heap value, the counterpart of a
// pointer returned by malloc(sizeof(T)).
type Cell[T any] struct {
	heap  *Heap
	id    uint64
	label string
	v     *T
}

// Alloc allocates a zeroed T on h.
func Alloc[T any](h *Heap, label string) *Cell[T] {
	c := &Cell[T]{
		heap:  h,
		id:    h.acquire(label),
		label: label,
		v:     new(T),
	}
	h.emit(trace.KindAlloc, label, trace.NoIndex, "1")
	return c
}

// Label returns the name the cell was allocated under.
func (c *Cell[T]) Label() string {
	if c == nil {
		return "nil"
	}
	return c.label
}

// Live reports whether c points at an allocation that has not been released.
func (c *Cell[T]) Live() bool {
	return c != nil && c.v != nil
}

// Store writes v through the handle (*c = v).
func (c *Cell[T]) Store(v T) {
	if !c.check("store") {
		return
	}
	*c.v = v
	c.heap.emit(trace.KindWrite, c.label, trace.NoIndex, describe(v))
}

// Update modifies the value in place (c->field = x).
func (c *Cell[T]) Update(fn func(*T)) {
	if !c.check("update") {
		return
	}
	fn(c.v)
	c.heap.emit(trace.KindWrite, c.label, trace.NoIndex, describe(*c.v))
}

// Load reads the value through the handle (*c). After release it reports
// ErrReleased to the heap and returns the zero value.
func (c *Cell[T]) Load() T {
	if !c.check("load") {
		var zero T
		return zero
	}
	c.heap.emit(trace.KindRead, c.label, trace.NoIndex, describe(*c.v))
	return *c.v
}

// Release frees the cell. Releasing twice returns ErrReleased.
func (c *Cell[T]) Release() error {
	if !c.Live() {
		return fmt.Errorf("release %s: %w", c.Label(), ErrReleased)
	}
	c.v = nil
	c.heap.release(c.id)
	c.heap.emit(trace.KindFree, c.label, trace.NoIndex, "")
	return nil
}

func (c *Cell[T]) check(op string) bool {
	if c.v != nil {
		return true
	}
	c.heap.fail(fmt.Errorf("%s %s: %w", op, c.label, ErrReleased))
	return false
}
