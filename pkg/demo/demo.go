// Package demo contains the pointer demonstrations: a pointer to an int,
// to an array of ints, to an array of pointers to ints, and the same three
// shapes for a two-field record. Each demo allocates on a mem.Heap, fills
// in its values, prints them and releases everything it allocated.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/amirkhaki/ptrdemo/pkg/config"
	"github.com/amirkhaki/ptrdemo/pkg/mem"
)

// Env is what a demo runs against.
type Env struct {
	Out    io.Writer
	Heap   *mem.Heap
	Config *config.Config
}

func (e *Env) printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}

// Demo is a single self-contained demonstration.
type Demo struct {
	Name  string
	Title string
	Run   func(env *Env) error
}

// All returns the demos in the order they are meant to be run.
func All() []Demo {
	return []Demo{
		{Name: "int", Title: "Pointer to an integer", Run: IntPointer},
		{Name: "int-array", Title: "Pointer to an array of integers", Run: IntArrayPointer},
		{Name: "int-ptr-array", Title: "Pointer to an array of pointers to integers", Run: IntPtrArrayPointer},
		{Name: "struct", Title: "Pointer to a structure", Run: StructPointer},
		{Name: "struct-array", Title: "Pointer to an array of structures", Run: StructArrayPointer},
		{Name: "struct-ptr-array", Title: "Pointer to an array of pointers to structures", Run: StructPtrArrayPointer},
	}
}

// Lookup returns the named demos in the order given. No names means all.
func Lookup(names ...string) ([]Demo, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Demo, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}

	demos := make([]Demo, 0, len(names))
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown demo %q (known: %s)", name, strings.Join(Names(), ", "))
		}
		demos = append(demos, d)
	}
	return demos, nil
}

// Names returns the demo names in run order.
func Names() []string {
	var names []string
	for _, d := range All() {
		names = append(names, d.Name)
	}
	return names
}
