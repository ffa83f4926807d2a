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
	"github.com/Fantom-foundation/datastructs/common/report"
)

// Strict is a fail-fast view of an Array: every failing operation is reported
// once through the Reporter's Fatalf instead of being returned. With a
// terminating reporter no operation returns after a failure; otherwise
// failing operations have no effect and yield zero values.
type Strict struct {
	array    *Array
	reporter report.Reporter
}

// NewStrict creates a new array, reporting a failing creation as fatal.
func NewStrict(elementSize, initialCapacity int, reporter report.Reporter) *Strict {
	arr, err := NewArray(elementSize, initialCapacity)
	if err != nil {
		reporter.Fatalf("array creation failed: %v", err)
		return nil
	}
	return StrictOf(arr, reporter)
}

// StrictOf wraps an existing array.
func StrictOf(arr *Array, reporter report.Reporter) *Strict {
	return &Strict{array: arr, reporter: reporter}
}

func (s *Strict) Push(elem []byte) {
	if err := s.array.Push(elem); err != nil {
		s.reporter.Fatalf("array push failed: %v", err)
	}
}

func (s *Strict) Remove(index int) {
	if err := s.array.Remove(index); err != nil {
		s.reporter.Fatalf("array remove failed: %v", err)
	}
}

func (s *Strict) Get(index int) []byte {
	elem, err := s.array.Get(index)
	if err != nil {
		s.reporter.Fatalf("array overindex: %v", err)
		return nil
	}
	return elem
}

func (s *Strict) Size() int {
	return s.array.Size()
}

func (s *Strict) Release() {
	s.array.Release()
}

// Array returns the wrapped, error returning array.
func (s *Strict) Array() *Array {
	return s.array
}
