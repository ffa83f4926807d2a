// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package array

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/Fantom-foundation/datastructs/common"
)

func elem(i int) []byte {
	return binary.LittleEndian.AppendUint64([]byte{}, uint64(i)*0x0101010101)
}

func newTestArray(t testing.TB, initialCapacity int) *Array {
	t.Helper()
	arr, err := NewArray(8, initialCapacity)
	if err != nil {
		t.Fatalf("cannot create array: %v", err)
	}
	t.Cleanup(arr.Release)
	return arr
}

func pushAll(t testing.TB, arr *Array, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := arr.Push(elem(i)); err != nil {
			t.Fatalf("failed to push element %d: %v", i, err)
		}
	}
}

func TestArray_CreateRejectsInvalidArguments(t *testing.T) {
	tests := []struct {
		elementSize, capacity int
	}{
		{0, 1},
		{-1, 1},
		{1, 0},
		{1, -5},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("size %d capacity %d", test.elementSize, test.capacity), func(t *testing.T) {
			arr, err := NewArray(test.elementSize, test.capacity)
			if !errors.Is(err, common.ErrInvalidArgument) {
				t.Errorf("expected invalid argument error, got %v", err)
			}
			if arr != nil {
				t.Errorf("no array should be created")
			}
		})
	}
}

func TestArray_CreateFailsForOversizedBuffers(t *testing.T) {
	tests := []struct {
		elementSize, capacity int
	}{
		{1 << 20, 1 << 30},
		{1 << 40, 1 << 40},
		{MaxBufferSize + 1, 1},
	}
	for _, test := range tests {
		if _, err := NewArray(test.elementSize, test.capacity); !errors.Is(err, common.ErrAllocation) {
			t.Errorf("expected allocation error for %d x %d, got %v", test.elementSize, test.capacity, err)
		}
	}
}

func TestArray_NewArrayIsEmpty(t *testing.T) {
	arr := newTestArray(t, 3)
	if got := arr.Size(); got != 0 {
		t.Errorf("unexpected size %d", got)
	}
	if got := arr.Capacity(); got != 3 {
		t.Errorf("unexpected capacity %d", got)
	}
	if got := arr.ElementSize(); got != 8 {
		t.Errorf("unexpected element size %d", got)
	}
	if got, want := len(arr.data), 3*8; got != want {
		t.Errorf("unexpected buffer length %d, wanted %d", got, want)
	}
}

func TestArray_PushedElementsCanBeRetrieved(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			arr := newTestArray(t, 1)
			pushAll(t, arr, n)

			if got := arr.Size(); got != n {
				t.Errorf("unexpected size %d, wanted %d", got, n)
			}
			for i := 0; i < n; i++ {
				got, err := arr.Get(i)
				if err != nil {
					t.Fatalf("failed to get element %d: %v", i, err)
				}
				if !bytes.Equal(got, elem(i)) {
					t.Errorf("unexpected element at %d: %x, wanted %x", i, got, elem(i))
				}
			}
		})
	}
}

func TestArray_PushCopiesTheElement(t *testing.T) {
	arr := newTestArray(t, 1)
	value := elem(1)
	if err := arr.Push(value); err != nil {
		t.Fatalf("failed to push: %v", err)
	}
	value[0] = 0xff
	got, _ := arr.Get(0)
	if !bytes.Equal(got, elem(1)) {
		t.Errorf("stored element was modified through the caller's slice: %x", got)
	}
}

func TestArray_CapacityDoublesWhenFull(t *testing.T) {
	arr := newTestArray(t, 1)
	wanted := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, want := range wanted {
		if err := arr.Push(elem(i)); err != nil {
			t.Fatalf("failed to push: %v", err)
		}
		if got := arr.Capacity(); got != want {
			t.Errorf("after %d pushes capacity is %d, wanted %d", i+1, got, want)
		}
		if got, want := len(arr.data), arr.Capacity()*arr.ElementSize(); got != want {
			t.Errorf("buffer length %d does not match capacity, wanted %d", got, want)
		}
	}
}

func TestArray_GrowthPreservesElements(t *testing.T) {
	arr := newTestArray(t, 2)
	pushAll(t, arr, 2)
	before := make([][]byte, 0, 2)
	arr.ForEach(func(_ int, e []byte) {
		before = append(before, bytes.Clone(e))
	})

	if err := arr.Push(elem(2)); err != nil {
		t.Fatalf("failed to push: %v", err)
	}
	for i, want := range before {
		if got, _ := arr.Get(i); !bytes.Equal(got, want) {
			t.Errorf("element %d changed by growth: %x, wanted %x", i, got, want)
		}
	}
}

func TestArray_FailedGrowthLeavesArrayUnchanged(t *testing.T) {
	defer func(limit uint64) { bufferLimit = limit }(bufferLimit)
	bufferLimit = 16

	arr := newTestArray(t, 2)
	pushAll(t, arr, 2)

	if err := arr.Push(elem(2)); !errors.Is(err, common.ErrAllocation) {
		t.Fatalf("expected allocation error, got %v", err)
	}
	if got := arr.Size(); got != 2 {
		t.Errorf("size changed by failed push: %d", got)
	}
	if got := arr.Capacity(); got != 2 {
		t.Errorf("capacity changed by failed push: %d", got)
	}
	for i := 0; i < 2; i++ {
		if got, _ := arr.Get(i); !bytes.Equal(got, elem(i)) {
			t.Errorf("element %d changed by failed push: %x", i, got)
		}
	}
}

func TestArray_PushRejectsElementsOfWrongSize(t *testing.T) {
	arr := newTestArray(t, 1)
	for _, e := range [][]byte{nil, {1}, make([]byte, 9)} {
		if err := arr.Push(e); !errors.Is(err, common.ErrInvalidArgument) {
			t.Errorf("expected invalid argument error for %d bytes, got %v", len(e), err)
		}
	}
	if got := arr.Size(); got != 0 {
		t.Errorf("rejected pushes changed the size to %d", got)
	}
}

func TestArray_GetAcceptsLastIndex(t *testing.T) {
	arr := newTestArray(t, 4)
	pushAll(t, arr, 3)
	got, err := arr.Get(2)
	if err != nil {
		t.Fatalf("last valid index rejected: %v", err)
	}
	if !bytes.Equal(got, elem(2)) {
		t.Errorf("unexpected element %x", got)
	}
}

func TestArray_OutOfRangeAccessIsRejected(t *testing.T) {
	arr := newTestArray(t, 8)
	pushAll(t, arr, 3)
	for _, index := range []int{-1, 3, 4, 8, 3 + 5} {
		if got, err := arr.Get(index); !errors.Is(err, common.ErrIndex) || got != nil {
			t.Errorf("Get(%d) should fail with index error, got %x, %v", index, got, err)
		}
		if err := arr.Remove(index); !errors.Is(err, common.ErrIndex) {
			t.Errorf("Remove(%d) should fail with index error, got %v", index, err)
		}
	}
	if got := arr.Size(); got != 3 {
		t.Errorf("failed removals changed the size to %d", got)
	}
}

func TestArray_RemoveMovesLastElementIntoSlot(t *testing.T) {
	arr := newTestArray(t, 4)
	pushAll(t, arr, 4)

	if err := arr.Remove(1); err != nil {
		t.Fatalf("failed to remove: %v", err)
	}
	if got := arr.Size(); got != 3 {
		t.Errorf("unexpected size %d", got)
	}
	want := [][]byte{elem(0), elem(3), elem(2)}
	for i, w := range want {
		if got, _ := arr.Get(i); !bytes.Equal(got, w) {
			t.Errorf("unexpected element at %d: %x, wanted %x", i, got, w)
		}
	}
}

func TestArray_RemoveLastElementOnlyShrinks(t *testing.T) {
	arr := newTestArray(t, 4)
	pushAll(t, arr, 3)

	if err := arr.Remove(2); err != nil {
		t.Fatalf("failed to remove: %v", err)
	}
	if got := arr.Size(); got != 2 {
		t.Errorf("unexpected size %d", got)
	}
	for i := 0; i < 2; i++ {
		if got, _ := arr.Get(i); !bytes.Equal(got, elem(i)) {
			t.Errorf("unexpected element at %d: %x", i, got)
		}
	}
	if _, err := arr.Get(2); !errors.Is(err, common.ErrIndex) {
		t.Errorf("removed position should not be accessible, got %v", err)
	}
}

func TestArray_RemoveAllThenReuse(t *testing.T) {
	arr := newTestArray(t, 2)
	pushAll(t, arr, 5)
	for arr.Size() > 0 {
		if err := arr.Remove(0); err != nil {
			t.Fatalf("failed to remove: %v", err)
		}
	}
	pushAll(t, arr, 2)
	if got := arr.Size(); got != 2 {
		t.Errorf("unexpected size %d", got)
	}
	if got, _ := arr.Get(1); !bytes.Equal(got, elem(1)) {
		t.Errorf("unexpected element %x", got)
	}
}

func TestArray_AppendingToViewDoesNotOverwriteNeighbours(t *testing.T) {
	arr := newTestArray(t, 4)
	pushAll(t, arr, 2)
	view, _ := arr.Get(0)
	_ = append(view, 0xff)

	if got, _ := arr.Get(1); !bytes.Equal(got, elem(1)) {
		t.Errorf("neighbour overwritten: %x", got)
	}
}

func TestArray_ForEachVisitsAllElements(t *testing.T) {
	arr := newTestArray(t, 2)
	pushAll(t, arr, 5)
	visited := 0
	arr.ForEach(func(i int, e []byte) {
		if !bytes.Equal(e, elem(i)) {
			t.Errorf("unexpected element at %d: %x", i, e)
		}
		visited++
	})
	if visited != 5 {
		t.Errorf("visited %d elements, wanted 5", visited)
	}
}

func TestArray_ReleaseDropsBuffer(t *testing.T) {
	arr, err := NewArray(4, 4)
	if err != nil {
		t.Fatalf("cannot create array: %v", err)
	}
	arr.Release()
	if arr.data != nil || arr.Size() != 0 || arr.Capacity() != 0 {
		t.Errorf("release did not drop the buffer")
	}
}

func TestArray_MemoryFootprintCoversBuffer(t *testing.T) {
	arr := newTestArray(t, 16)
	fp := arr.GetMemoryFootprint()
	if got, want := fp.GetChild("buffer").Value(), uintptr(16*8); got != want {
		t.Errorf("unexpected buffer footprint %d, wanted %d", got, want)
	}
	if fp.Total() <= 16*8 {
		t.Errorf("total should include the array header, got %d", fp.Total())
	}
}

// TestArray_MatchesReferenceModel runs random pushes and removals against a
// slice based model applying the same swap-remove rule.
func TestArray_MatchesReferenceModel(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	arr := newTestArray(t, 1)
	var model [][]byte

	for step := 0; step < 5000; step++ {
		if len(model) == 0 || r.Intn(3) != 0 {
			e := elem(step)
			if err := arr.Push(e); err != nil {
				t.Fatalf("failed to push: %v", err)
			}
			model = append(model, e)
		} else {
			i := r.Intn(len(model))
			if err := arr.Remove(i); err != nil {
				t.Fatalf("failed to remove %d: %v", i, err)
			}
			model[i] = model[len(model)-1]
			model = model[:len(model)-1]
		}

		if arr.Size() != len(model) {
			t.Fatalf("step %d: size %d, wanted %d", step, arr.Size(), len(model))
		}
	}
	for i, want := range model {
		if got, _ := arr.Get(i); !bytes.Equal(got, want) {
			t.Errorf("unexpected element at %d: %x, wanted %x", i, got, want)
		}
	}
}

func BenchmarkArray_Push(b *testing.B) {
	e := elem(7)
	for i := 0; i < b.N; i++ {
		arr, _ := NewArray(8, 2)
		for j := 0; j < 1024; j++ {
			_ = arr.Push(e)
		}
		arr.Release()
	}
}
