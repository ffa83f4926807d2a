// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package multimap

import (
	"encoding/binary"
	"fmt"
	"hash"
	"sync"

	"github.com/Fantom-foundation/datastructs/common"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/sha3"
)

// DefaultHasher is a weighted character sum: every byte contributes its value
// times 17 times its position. It is cheap but distributes poorly; keys
// differing only in their first byte always collide.
type DefaultHasher struct{}

func (DefaultHasher) Hash(key *string) uint64 {
	return uint64(uint32(DefaultMappingFunction(*key)))
}

// DefaultMappingFunction computes the weighted character sum of the key with
// 32 bit wrap-around arithmetic.
func DefaultMappingFunction(key string) int32 {
	var res int32
	for i := 0; i < len(key); i++ {
		res += int32(int8(key[i])) * 17 * int32(i)
	}
	return res
}

// XxHasher hashes keys using xxHash64.
type XxHasher struct{}

func (XxHasher) Hash(key *string) uint64 {
	return xxhash.Sum64String(*key)
}

// KeccakHasher uses the leading 8 bytes of the legacy Keccak-256 digest of a key.
type KeccakHasher struct{}

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

func (KeccakHasher) Hash(key *string) uint64 {
	digest := Keccak256(*key)
	return binary.BigEndian.Uint64(digest[:8])
}

// Keccak256 computes the legacy Keccak-256 digest of the key.
func Keccak256(key string) common.Hash {
	hasher := keccakHasherPool.Get().(hash.Hash)
	hasher.Reset()
	hasher.Write([]byte(key))
	var res common.Hash
	hasher.Sum(res[:0])
	keccakHasherPool.Put(hasher)
	return res
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc func(key string) uint64

func (f HasherFunc) Hash(key *string) uint64 {
	return f(*key)
}

// HasherByName resolves the hashers selectable by name: default, xxhash and keccak.
func HasherByName(name string) (common.Hasher[string], error) {
	switch name {
	case "default":
		return DefaultHasher{}, nil
	case "xxhash":
		return XxHasher{}, nil
	case "keccak":
		return KeccakHasher{}, nil
	}
	return nil, fmt.Errorf("%w: unknown hasher %q", common.ErrInvalidArgument, name)
}
