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
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/Fantom-foundation/datastructs/common"
)

// MaxBufferSize is the largest backing buffer, in bytes, an Array will allocate.
const MaxBufferSize = 1 << 40

// bufferLimit is the effective allocation limit, lowered in tests.
var bufferLimit uint64 = MaxBufferSize

// Array is an unordered, growable array of fixed-size elements. Elements are
// copied into a single byte buffer of capacity*elementSize bytes; the capacity
// doubles whenever a push would exceed it. Removal swaps the last element into
// the freed slot, so element order is not retained.
//
// An Array is not safe for concurrent use.
type Array struct {
	data        []byte
	elementSize int
	capacity    int
	size        int
}

// NewArray creates an empty array for elements of elementSize bytes, able to
// hold initialCapacity elements before growing.
func NewArray(elementSize, initialCapacity int) (*Array, error) {
	if elementSize < 1 {
		return nil, fmt.Errorf("%w: element size must be positive, got %d", common.ErrInvalidArgument, elementSize)
	}
	if initialCapacity < 1 {
		return nil, fmt.Errorf("%w: initial capacity must be positive, got %d", common.ErrInvalidArgument, initialCapacity)
	}
	data, err := allocate(elementSize, initialCapacity)
	if err != nil {
		return nil, err
	}
	return &Array{
		data:        data,
		elementSize: elementSize,
		capacity:    initialCapacity,
	}, nil
}

// allocate provides a zeroed buffer for capacity elements of elementSize bytes.
func allocate(elementSize, capacity int) ([]byte, error) {
	hi, length := bits.Mul64(uint64(elementSize), uint64(capacity))
	if hi != 0 || length > bufferLimit {
		return nil, fmt.Errorf("%w: %d elements of %d bytes exceed the buffer limit", common.ErrAllocation, capacity, elementSize)
	}
	return make([]byte, length), nil
}

// Push appends a copy of elem, which must be exactly ElementSize() bytes long.
func (a *Array) Push(elem []byte) error {
	if len(elem) != a.elementSize {
		return fmt.Errorf("%w: element of %d bytes pushed into array of %d byte elements", common.ErrInvalidArgument, len(elem), a.elementSize)
	}
	if a.size == a.capacity {
		if err := a.grow(); err != nil {
			return err
		}
	}
	copy(a.data[a.size*a.elementSize:], elem)
	a.size++
	return nil
}

// grow doubles the capacity. The array is left untouched if this fails.
func (a *Array) grow() error {
	newCapacity := 2 * a.capacity
	data, err := allocate(a.elementSize, newCapacity)
	if err != nil {
		return err
	}
	copy(data, a.data[:a.size*a.elementSize])
	a.data = data
	a.capacity = newCapacity
	return nil
}

// Remove deletes the element at the given index by moving the last element
// into its slot.
func (a *Array) Remove(index int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	last := a.size - 1
	if index != last {
		copy(a.slot(index), a.slot(last))
	}
	clear(a.slot(last))
	a.size--
	return nil
}

// Get provides a view of the element at the given index. The view aliases the
// array's buffer and is only valid until the next mutation of the array.
func (a *Array) Get(index int) ([]byte, error) {
	if err := a.checkIndex(index); err != nil {
		return nil, err
	}
	return a.slot(index), nil
}

// Size returns the number of elements stored in the array.
func (a *Array) Size() int {
	return a.size
}

// Capacity returns the number of elements the array can hold without growing.
func (a *Array) Capacity() int {
	return a.capacity
}

// ElementSize returns the byte size of a single element.
func (a *Array) ElementSize() int {
	return a.elementSize
}

// ForEach calls the callback for every element in storage order. The element
// views are subject to the same restrictions as those returned by Get.
func (a *Array) ForEach(callback func(index int, elem []byte)) {
	for i := 0; i < a.size; i++ {
		callback(i, a.slot(i))
	}
}

// Release drops the backing buffer. The array must not be used afterwards.
func (a *Array) Release() {
	a.data = nil
	a.capacity = 0
	a.size = 0
}

// GetMemoryFootprint provides the size of the array in memory in bytes.
func (a *Array) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*a))
	mf.AddChild("buffer", common.NewMemoryFootprint(uintptr(cap(a.data))))
	return mf
}

func (a *Array) checkIndex(index int) error {
	if index < 0 || index >= a.size {
		return fmt.Errorf("%w: index %d, size %d", common.ErrIndex, index, a.size)
	}
	return nil
}

// slot returns the bytes of the given position, capped so that appending to
// the result cannot overwrite neighbouring elements.
func (a *Array) slot(index int) []byte {
	from := index * a.elementSize
	to := from + a.elementSize
	return a.data[from:to:to]
}
