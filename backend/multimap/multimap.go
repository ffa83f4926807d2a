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
	"fmt"
	"strings"
	"unsafe"

	"github.com/Fantom-foundation/datastructs/backend/array"
	"github.com/Fantom-foundation/datastructs/common"
)

// InitialValueCapacity is the capacity of the value array created for a new key.
const InitialValueCapacity = 2

// StrMap maps string keys to lists of fixed-size values. The bucket table has
// a fixed number of buckets; the hasher's result modulo this number selects
// the bucket of a key. Keys sharing a bucket are kept in insertion order and
// told apart by full key comparison. Each key owns one array.Array with its
// values in the order they were added.
//
// A StrMap is not safe for concurrent use.
type StrMap struct {
	buckets   [][]*entry
	valueSize int
	hasher    common.Hasher[string]
	keys      int
}

type entry struct {
	key    string
	values *array.Array
}

// NewStrMap creates an empty map for values of valueSize bytes using the given
// number of buckets.
func NewStrMap(valueSize, bucketCapacity int, hasher common.Hasher[string]) (*StrMap, error) {
	if valueSize < 1 {
		return nil, fmt.Errorf("%w: value size must be positive, got %d", common.ErrInvalidArgument, valueSize)
	}
	if bucketCapacity < 1 {
		return nil, fmt.Errorf("%w: bucket capacity must be positive, got %d", common.ErrInvalidArgument, bucketCapacity)
	}
	if hasher == nil {
		return nil, fmt.Errorf("%w: missing hasher", common.ErrInvalidArgument)
	}
	if uint64(bucketCapacity) > array.MaxBufferSize/uint64(unsafe.Sizeof([]*entry{})) {
		return nil, fmt.Errorf("%w: %d buckets exceed the table limit", common.ErrAllocation, bucketCapacity)
	}
	return &StrMap{
		buckets:   make([][]*entry, bucketCapacity),
		valueSize: valueSize,
		hasher:    hasher,
	}, nil
}

// BucketOf returns the index of the bucket the key is stored in.
func (m *StrMap) BucketOf(key string) int {
	return int(m.hasher.Hash(&key) % uint64(len(m.buckets)))
}

// Add appends a copy of the value to the values of the given key. The key is
// added to the map if it is not present yet.
func (m *StrMap) Add(key string, value []byte) error {
	if len(value) != m.valueSize {
		return fmt.Errorf("%w: value of %d bytes added to map of %d byte values", common.ErrInvalidArgument, len(value), m.valueSize)
	}
	bucket := m.BucketOf(key)
	if e := m.find(bucket, key); e != nil {
		return e.values.Push(value)
	}

	values, err := array.NewArray(m.valueSize, InitialValueCapacity)
	if err != nil {
		return err
	}
	if err := values.Push(value); err != nil {
		values.Release()
		return err
	}
	m.buckets[bucket] = append(m.buckets[bucket], &entry{key: strings.Clone(key), values: values})
	m.keys++
	return nil
}

// GetValues returns the values of the given key. The second result is false
// if the key is not present in the map. The array remains owned by the map;
// it can be modified, but must not be released by the caller.
func (m *StrMap) GetValues(key string) (*array.Array, bool) {
	if e := m.find(m.BucketOf(key), key); e != nil {
		return e.values, true
	}
	return nil, false
}

func (m *StrMap) find(bucket int, key string) *entry {
	for _, e := range m.buckets[bucket] {
		if e.key == key {
			return e
		}
	}
	return nil
}

// Size returns the number of distinct keys.
func (m *StrMap) Size() int {
	return m.keys
}

// Buckets returns the number of buckets.
func (m *StrMap) Buckets() int {
	return len(m.buckets)
}

// BucketSize returns the number of keys stored in the given bucket.
func (m *StrMap) BucketSize(bucket int) int {
	return len(m.buckets[bucket])
}

// ValueSize returns the byte size of a single value.
func (m *StrMap) ValueSize() int {
	return m.valueSize
}

// ForEach iterates all keys bucket by bucket; keys of one bucket are visited
// in insertion order.
func (m *StrMap) ForEach(callback func(key string, values *array.Array)) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			callback(e.key, e.values)
		}
	}
}

// Release releases the value arrays of all keys and drops the bucket table.
// The map must not be used afterwards.
func (m *StrMap) Release() {
	for i, bucket := range m.buckets {
		for _, e := range bucket {
			e.values.Release()
		}
		m.buckets[i] = nil
	}
	m.buckets = nil
	m.keys = 0
}

// GetMemoryFootprint provides the size of the map in memory in bytes.
func (m *StrMap) GetMemoryFootprint() *common.MemoryFootprint {
	mf := common.NewMemoryFootprint(unsafe.Sizeof(*m))
	mf.AddChild("buckets", common.NewMemoryFootprint(uintptr(cap(m.buckets))*unsafe.Sizeof([]*entry{})))

	var entrySize, keySize, valueSize uintptr
	for _, bucket := range m.buckets {
		entrySize += uintptr(cap(bucket)) * unsafe.Sizeof(&entry{})
		for _, e := range bucket {
			entrySize += unsafe.Sizeof(*e)
			keySize += uintptr(len(e.key))
			valueSize += e.values.GetMemoryFootprint().Total()
		}
	}
	mf.AddChild("entries", common.NewMemoryFootprint(entrySize))
	mf.AddChild("keys", common.NewMemoryFootprint(keySize))
	mf.AddChild("values", common.NewMemoryFootprint(valueSize))
	return mf
}
