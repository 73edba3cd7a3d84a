package demo

import (
	"fmt"

	"github.com/amirkhaki/ptrdemo/pkg/mem"
)

// Record is the two-field structure used by the struct demos.
type Record struct {
	FieldA int
	FieldB int
}

// RecordHandles is a block of owning handles to records.
type RecordHandles = mem.Block[*mem.Cell[Record]]

// StructPointer allocates a single record and sets its fields through the
// handle.
func StructPointer(env *Env) error {
	env.printf("Pointer to a structure\n")
	env.printf("allocating somestruct *Record...\n")
	somestruct := mem.Alloc[Record](env.Heap, "somestruct")

	env.printf("setting somestruct...\n")

	// somestruct.FieldA is shorthand for (*somestruct).FieldA
	somestruct.Update(func(r *Record) {
		r.FieldA = env.Config.RecordA
		r.FieldB = env.Config.RecordB
	})

	env.printf("showing values...\n")
	env.printf("somestruct.FieldA is %d\n", somestruct.Load().FieldA)
	env.printf("somestruct.FieldB is %d\n", somestruct.Load().FieldB)

	err := somestruct.Release()

	env.printf("\n")
	return err
}

// StructArrayPointer allocates Count records inline in one block. The
// records are elements, not handles, so the block is released once.
func StructArrayPointer(env *Env) error {
	n := env.Config.Count

	env.printf("Pointer to an array of structures\n")
	env.printf("allocating somestructs []Record...\n")
	somestructs := mem.AllocBlock[Record](env.Heap, "somestructs", n)

	env.printf("setting values...\n")
	for i := 0; i < n; i++ {
		env.printf("setting Record %d...\n", i)
		somestructs.Update(i, func(r *Record) {
			r.FieldA = i
			r.FieldB = i + env.Config.RecordOffset
		})
	}

	env.printf("showing values...\n")
	for i := 0; i < n; i++ {
		r := somestructs.Load(i)
		env.printf("somestructs[%d].FieldA = %d\n", i, r.FieldA)
		env.printf("somestructs[%d].FieldB = %d\n", i, r.FieldB)
	}

	err := somestructs.Release()

	env.printf("\n")
	return err
}

// StructPtrArrayPointer builds a block of record handles in one function,
// shows it from another and releases it here, handles first.
func StructPtrArrayPointer(env *Env) error {
	env.printf("Pointer to an array of pointers to structures\n")

	mystructs := MakeRecordHandles(env)
	ShowRecordHandles(env, mystructs)

	return mem.ReleaseAll(mystructs)
}

// MakeRecordHandles allocates a block of Count record handles, allocates
// and fills one record per slot, and hands the block to the caller. The
// caller owns the block and every record in it.
func MakeRecordHandles(env *Env) *RecordHandles {
	n := env.Config.Count

	env.printf("allocating localstructs []*Record...\n")
	localstructs := mem.AllocBlock[*mem.Cell[Record]](env.Heap, "localstructs", n)

	for i := 0; i < n; i++ {
		env.printf("allocating localstructs[%d]...\n", i)
		localstructs.Store(i, mem.Alloc[Record](env.Heap, fmt.Sprintf("localstructs[%d]", i)))
		rec := localstructs.Load(i)

		env.printf("setting localstructs[%d].FieldA to %d...\n", i, i)
		rec.Update(func(r *Record) { r.FieldA = i })
		env.printf("localstructs[%d].FieldA = %d\n", i, rec.Load().FieldA)

		b := i + env.Config.RecordOffset
		env.printf("setting localstructs[%d].FieldB to %d...\n", i, b)
		rec.Update(func(r *Record) { r.FieldB = b })
		env.printf("localstructs[%d].FieldB = %d\n", i, rec.Load().FieldB)
	}

	env.printf("\n")
	return localstructs
}

// ShowRecordHandles prints every record the block points to. It only reads.
func ShowRecordHandles(env *Env, somestructs *RecordHandles) {
	env.printf("showing somestructs []*Record...\n")
	for i := 0; i < somestructs.Len(); i++ {
		rec := somestructs.Load(i).Load()
		env.printf("somestructs[%d].FieldA = %d\n", i, rec.FieldA)
		env.printf("somestructs[%d].FieldB = %d\n", i, rec.FieldB)
	}

	env.printf("\n")
}
