package mem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirkhaki/ptrdemo/pkg/mem"
	"github.com/amirkhaki/ptrdemo/pkg/trace"
)

func TestCellLifecycle(t *testing.T) {
	rec := trace.NewRecorder("")
	h := mem.NewHeap("cell", rec)

	c := mem.Alloc[int](h, "x")
	assert.True(t, c.Live())
	assert.Equal(t, 1, h.Live())

	c.Store(123)
	assert.Equal(t, 123, c.Load())

	require.NoError(t, c.Release())
	assert.False(t, c.Live())
	assert.Equal(t, 0, h.Live())
	require.NoError(t, h.Close())

	var kinds []trace.Kind
	for _, e := range rec.Events() {
		assert.Equal(t, "cell", e.Demo)
		assert.Equal(t, "x", e.Label)
		assert.Equal(t, trace.NoIndex, e.Index)
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []trace.Kind{trace.KindAlloc, trace.KindWrite, trace.KindRead, trace.KindFree}, kinds)
}

func TestCellDoubleRelease(t *testing.T) {
	h := mem.NewHeap("double", nil)
	c := mem.Alloc[int](h, "x")

	require.NoError(t, c.Release())
	err := c.Release()
	require.ErrorIs(t, err, mem.ErrReleased)
	assert.ErrorContains(t, err, "release x")
}

func TestCellUseAfterRelease(t *testing.T) {
	h := mem.NewHeap("uaf", nil)
	c := mem.Alloc[int](h, "x")
	c.Store(7)
	require.NoError(t, c.Release())

	assert.Equal(t, 0, c.Load())
	c.Store(8)

	err := h.Close()
	require.ErrorIs(t, err, mem.ErrReleased)
	assert.ErrorContains(t, err, "load x")
	assert.ErrorContains(t, err, "store x")
}

func TestHeapCloseReportsLeaks(t *testing.T) {
	h := mem.NewHeap("leak", nil)
	mem.Alloc[int](h, "first")
	kept := mem.Alloc[int](h, "second")
	mem.AllocBlock[int](h, "third", 3)
	require.NoError(t, kept.Release())

	err := h.Close()
	require.ErrorIs(t, err, mem.ErrLeak)
	assert.EqualError(t, err, "allocation never released: first\nallocation never released: third")
}

func TestBlockElements(t *testing.T) {
	rec := trace.NewRecorder("")
	h := mem.NewHeap("block", rec)

	b := mem.AllocBlock[int](h, "ints", 5)
	require.Equal(t, 5, b.Len())
	for i := 0; i < b.Len(); i++ {
		b.Store(i, i*10)
	}
	b.Update(2, func(v *int) { *v++ })

	assert.Equal(t, 0, b.Load(0))
	assert.Equal(t, 21, b.Load(2))
	assert.Equal(t, 40, b.Load(4))

	require.NoError(t, b.Release())
	require.NoError(t, h.Close())

	events := rec.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, trace.Event{Demo: "block", Kind: trace.KindAlloc, Label: "ints", Index: trace.NoIndex, Value: "5"}, events[0])
	assert.Equal(t, trace.Event{Demo: "block", Kind: trace.KindWrite, Label: "ints", Index: 2, Value: "21"}, events[6])
}

func TestBlockUseAfterRelease(t *testing.T) {
	h := mem.NewHeap("block-uaf", nil)
	b := mem.AllocBlock[int](h, "ints", 2)
	require.NoError(t, b.Release())

	assert.Equal(t, 0, b.Load(1))
	require.ErrorIs(t, b.Release(), mem.ErrReleased)

	err := h.Close()
	require.ErrorIs(t, err, mem.ErrReleased)
	assert.ErrorContains(t, err, "load ints[1]")
}

func TestBlockRefusesReleaseWithLiveHandles(t *testing.T) {
	h := mem.NewHeap("handles", nil)
	b := mem.AllocBlock[*mem.Cell[int]](h, "ptrs", 3)
	for i := 0; i < b.Len(); i++ {
		b.Store(i, mem.Alloc[int](h, []string{"ptrs[0]", "ptrs[1]", "ptrs[2]"}[i]))
	}
	require.NoError(t, b.Load(1).Release())

	err := b.Release()
	require.ErrorIs(t, err, mem.ErrLiveHandles)
	assert.ErrorContains(t, err, "ptrs[0], ptrs[2]")
	assert.True(t, b.Live(), "a refused release must leave the block live")
	assert.Equal(t, 3, h.Live())
}

func TestBlockReleaseDoesNotReleaseHandles(t *testing.T) {
	h := mem.NewHeap("copy", nil)
	c := mem.Alloc[int](h, "c")
	b := mem.AllocBlock[*mem.Cell[int]](h, "ptrs", 1)
	b.Store(0, c)

	// an empty slot is not an owned handle
	other := mem.AllocBlock[*mem.Cell[int]](h, "empty", 1)
	require.NoError(t, other.Release())

	require.NoError(t, c.Release())
	require.NoError(t, b.Release())
	require.NoError(t, h.Close())
}

func TestReleaseAll(t *testing.T) {
	rec := trace.NewRecorder("")
	h := mem.NewHeap("all", rec)
	b := mem.AllocBlock[*mem.Cell[string]](h, "names", 2)
	b.Store(0, mem.Alloc[string](h, "names[0]"))
	b.Store(1, mem.Alloc[string](h, "names[1]"))

	require.NoError(t, mem.ReleaseAll(b))
	require.NoError(t, h.Close())

	var freed []string
	for _, e := range rec.Events() {
		if e.Kind == trace.KindFree {
			freed = append(freed, e.Label)
		}
	}
	assert.Equal(t, []string{"names[0]", "names[1]", "names"}, freed)
}

func TestHandleValuesTracedByLabel(t *testing.T) {
	rec := trace.NewRecorder("")
	h := mem.NewHeap("labels", rec)
	b := mem.AllocBlock[*mem.Cell[int]](h, "ptrs", 1)
	c := mem.Alloc[int](h, "ptrs[0]")
	b.Store(0, c)

	events := rec.Events()
	last := events[len(events)-1]
	assert.Equal(t, trace.KindWrite, last.Kind)
	assert.Equal(t, "ptrs[0]", last.Value)

	require.NoError(t, mem.ReleaseAll(b))
}
