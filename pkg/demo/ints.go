package demo

import (
	"fmt"

	"github.com/amirkhaki/ptrdemo/pkg/mem"
)

// IntPointer allocates a single int, sets it and reads it back.
func IntPointer(env *Env) error {
	env.printf("Pointer to an integer\n")
	env.printf("allocating someint *int...\n")
	someint := mem.Alloc[int](env.Heap, "someint")

	env.printf("setting *someint...\n")
	someint.Store(env.Config.IntValue)

	env.printf("*someint is %d\n", someint.Load())

	err := someint.Release()

	env.printf("\n")
	return err
}

// IntArrayPointer allocates room for Count ints in one block and indexes
// into it. The block is released once; the ints are not allocations of
// their own.
func IntArrayPointer(env *Env) error {
	n := env.Config.Count

	env.printf("Pointer to an array of integers\n")
	env.printf("allocating someints []int...\n")
	someints := mem.AllocBlock[int](env.Heap, "someints", n)

	env.printf("setting values...\n")
	for i := 0; i < n; i++ {
		env.printf("setting someints[%d]...\n", i)
		someints.Store(i, i)
	}

	env.printf("showing values...\n")
	for i := 0; i < n; i++ {
		env.printf("someints[%d] = %d\n", i, someints.Load(i))
	}

	err := someints.Release()

	env.printf("\n")
	return err
}

// IntPtrArrayPointer allocates a block of Count handles and then one int
// per handle. The value is two steps away: someints.Load(i) is the handle,
// someints.Load(i).Load() is the int.
func IntPtrArrayPointer(env *Env) error {
	n := env.Config.Count

	env.printf("Pointer to an array of pointers to integers\n")
	env.printf("allocating someints []*int...\n")
	someints := mem.AllocBlock[*mem.Cell[int]](env.Heap, "someints", n)

	for i := 0; i < n; i++ {
		env.printf("allocating someints[%d]...\n", i)
		someints.Store(i, mem.Alloc[int](env.Heap, fmt.Sprintf("someints[%d]", i)))

		env.printf("setting *someints[%d] to %d...\n", i, i)
		someints.Load(i).Store(i)
	}

	env.printf("showing values...\n")
	for i := 0; i < n; i++ {
		env.printf("*someints[%d] = %d\n", i, someints.Load(i).Load())
	}

	// Handles first: releasing the block does not release what it points to.
	err := mem.ReleaseAll(someints)

	env.printf("\n")
	return err
}
