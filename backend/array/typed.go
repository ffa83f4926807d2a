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

	"github.com/Fantom-foundation/datastructs/common"
)

// Typed is an Array of values of type V, converted to and from their fixed
// size binary form by a Serializer.
type Typed[V any] struct {
	array      *Array
	serializer common.Serializer[V]
}

// NewTyped creates an empty typed array.
func NewTyped[V any](serializer common.Serializer[V], initialCapacity int) (*Typed[V], error) {
	arr, err := NewArray(serializer.Size(), initialCapacity)
	if err != nil {
		return nil, err
	}
	return &Typed[V]{array: arr, serializer: serializer}, nil
}

// TypedOf interprets an existing array as holding values of type V. The
// array's element size has to match the serializer.
func TypedOf[V any](arr *Array, serializer common.Serializer[V]) (*Typed[V], error) {
	if arr.ElementSize() != serializer.Size() {
		return nil, fmt.Errorf("%w: element size %d does not match serialized size %d", common.ErrInvalidArgument, arr.ElementSize(), serializer.Size())
	}
	return &Typed[V]{array: arr, serializer: serializer}, nil
}

func (t *Typed[V]) Push(value V) error {
	return t.array.Push(t.serializer.ToBytes(value))
}

func (t *Typed[V]) Get(index int) (V, error) {
	elem, err := t.array.Get(index)
	if err != nil {
		var empty V
		return empty, err
	}
	return t.serializer.FromBytes(elem), nil
}

func (t *Typed[V]) Remove(index int) error {
	return t.array.Remove(index)
}

func (t *Typed[V]) Size() int {
	return t.array.Size()
}

// Values returns a copy of all values in storage order.
func (t *Typed[V]) Values() []V {
	res := make([]V, 0, t.array.Size())
	t.array.ForEach(func(_ int, elem []byte) {
		res = append(res, t.serializer.FromBytes(elem))
	})
	return res
}

// Raw provides the underlying byte level array.
func (t *Typed[V]) Raw() *Array {
	return t.array
}

func (t *Typed[V]) Release() {
	t.array.Release()
}
