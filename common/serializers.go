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

import "encoding/binary"

// Uint32Serializer is a Serializer of the uint32 type
type Uint32Serializer struct{}

func (a Uint32Serializer) ToBytes(value uint32) []byte {
	return binary.LittleEndian.AppendUint32([]byte{}, value)
}
func (a Uint32Serializer) FromBytes(bytes []byte) uint32 {
	return binary.LittleEndian.Uint32(bytes)
}
func (a Uint32Serializer) Size() int {
	return 4
}

// Uint64Serializer is a Serializer of the uint64 type
type Uint64Serializer struct{}

func (a Uint64Serializer) ToBytes(value uint64) []byte {
	return binary.LittleEndian.AppendUint64([]byte{}, value)
}
func (a Uint64Serializer) FromBytes(bytes []byte) uint64 {
	return binary.LittleEndian.Uint64(bytes)
}
func (a Uint64Serializer) Size() int {
	return 8
}

// Hash is a 32 byte digest, e.g. a Keccak-256 hash.
type Hash [32]byte

// HashSerializer is a Serializer of the Hash type
type HashSerializer struct{}

func (a HashSerializer) ToBytes(hash Hash) []byte {
	return hash[:]
}
func (a HashSerializer) FromBytes(bytes []byte) Hash {
	var hash Hash
	copy(hash[:], bytes)
	return hash
}
func (a HashSerializer) Size() int {
	return 32
}
