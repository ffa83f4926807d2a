// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

// Releaser is an interface for types owning resources that should be released
// after use to facilitate resource re-utilization.
type Releaser interface {
	// Release releases bound resources for re-use. The object this function is
	// called on becomes invalid for any future operation afterwards.
	Release()
}

type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}

// Hasher reduces a key to an integer. Implementations must be deterministic:
// the same key has to produce the same hash for the lifetime of any
// structure the hasher is installed in.
type Hasher[K any] interface {
	Hash(*K) uint64
}

// Serializer converts values of a fixed-size type to and from their
// binary form.
type Serializer[T any] interface {
	// ToBytes serializes the value, the result has exactly Size() bytes.
	ToBytes(T) []byte
	// FromBytes restores the value from its Size() bytes long binary form.
	FromBytes([]byte) T
	// Size provides the size of the binary form in bytes.
	Size() int
}
