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
	"github.com/Fantom-foundation/datastructs/backend/array"
	"github.com/Fantom-foundation/datastructs/common"
	"github.com/Fantom-foundation/datastructs/common/report"
)

// Strict is a fail-fast view of a StrMap reporting every failure through the
// Reporter's Fatalf. Value lists are handed out as fail-fast arrays as well.
type Strict struct {
	m        *StrMap
	reporter report.Reporter
}

// NewStrict creates a new map, reporting a failing creation as fatal.
func NewStrict(valueSize, bucketCapacity int, hasher common.Hasher[string], reporter report.Reporter) *Strict {
	m, err := NewStrMap(valueSize, bucketCapacity, hasher)
	if err != nil {
		reporter.Fatalf("map creation failed: %v", err)
		return nil
	}
	return &Strict{m: m, reporter: reporter}
}

func (s *Strict) Add(key string, value []byte) {
	if err := s.m.Add(key, value); err != nil {
		s.reporter.Fatalf("map add of key %q failed: %v", key, err)
	}
}

// GetValues returns the values of the key, nil if the key is not present.
func (s *Strict) GetValues(key string) *array.Strict {
	values, found := s.m.GetValues(key)
	if !found {
		return nil
	}
	return array.StrictOf(values, s.reporter)
}

func (s *Strict) Size() int {
	return s.m.Size()
}

func (s *Strict) Release() {
	s.m.Release()
}

// Map returns the wrapped, error returning map.
func (s *Strict) Map() *StrMap {
	return s.m
}
