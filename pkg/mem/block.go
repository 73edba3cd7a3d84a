package mem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

// Block is an owning handle to n contiguous values allocated at once, the
// counterpart of malloc(sizeof(T) * n). When T is itself a handle type the
// block owns only the slots, not what they point to.
type Block[T any] struct {
	heap     *Heap
	id       uint64
	label    string
	data     []T
	released bool
}

// AllocBlock allocates n zeroed values of T on h as one allocation.
func AllocBlock[T any](h *Heap, label string, n int) *Block[T] {
	b := &Block[T]{
		heap:  h,
		id:    h.acquire(label),
		label: label,
		data:  make([]T, n),
	}
	h.emit(trace.KindAlloc, label, trace.NoIndex, strconv.Itoa(n))
	return b
}

// Label returns the name the block was allocated under.
func (b *Block[T]) Label() string {
	if b == nil {
		return "nil"
	}
	return b.label
}

// Live reports whether b has not been released.
func (b *Block[T]) Live() bool {
	return b != nil && !b.released
}

// Len returns the number of elements; it stays fixed for the block's life.
func (b *Block[T]) Len() int {
	return len(b.data)
}

// Store sets element i (b[i] = v).
func (b *Block[T]) Store(i int, v T) {
	if !b.check("store", i) {
		return
	}
	b.data[i] = v
	b.heap.emit(trace.KindWrite, b.label, i, describe(v))
}

// Update modifies element i in place (b[i].field = x).
func (b *Block[T]) Update(i int, fn func(*T)) {
	if !b.check("update", i) {
		return
	}
	fn(&b.data[i])
	b.heap.emit(trace.KindWrite, b.label, i, describe(b.data[i]))
}

// Load reads element i (b[i]). After release it reports ErrReleased to the
// heap and returns the zero value.
func (b *Block[T]) Load(i int) T {
	if !b.check("load", i) {
		var zero T
		return zero
	}
	b.heap.emit(trace.KindRead, b.label, i, describe(b.data[i]))
	return b.data[i]
}

// Release frees the block as a whole. It fails with ErrLiveHandles if any
// element is a handle that is still live; those must be released first.
func (b *Block[T]) Release() error {
	if !b.Live() {
		return fmt.Errorf("release %s: %w", b.Label(), ErrReleased)
	}

	var live []string
	for _, v := range b.data {
		if o, ok := any(v).(owner); ok && o.Live() {
			live = append(live, describe(v))
		}
	}
	if len(live) > 0 {
		return fmt.Errorf("release %s: %w: %s", b.label, ErrLiveHandles, strings.Join(live, ", "))
	}

	b.released = true
	b.data = nil
	b.heap.release(b.id)
	b.heap.emit(trace.KindFree, b.label, trace.NoIndex, "")
	return nil
}

func (b *Block[T]) check(op string, i int) bool {
	if !b.released {
		return true
	}
	b.heap.fail(fmt.Errorf("%s %s[%d]: %w", op, b.label, i, ErrReleased))
	return false
}

// ReleaseAll releases every handle held by b, then b itself. Release
// errors are collected rather than stopping at the first one.
func ReleaseAll[T any](b *Block[*Cell[T]]) error {
	var errs []error
	for i := 0; i < b.Len(); i++ {
		errs = append(errs, b.Load(i).Release())
	}
	errs = append(errs, b.Release())
	return errors.Join(errs...)
}
