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

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryFootprint describes the memory consumption of a container and its parts.
type MemoryFootprint struct {
	value    uintptr
	note     string
	children map[string]*MemoryFootprint
}

// NewMemoryFootprint creates a new MemoryFootprint of the given own size in bytes.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{
		value:    value,
		children: make(map[string]*MemoryFootprint),
	}
}

// AddChild attaches the footprint of a sub-component under the given name.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	mf.children[name] = child
}

// GetChild returns the footprint of a named sub-component, nil if unknown.
func (mf *MemoryFootprint) GetChild(name string) *MemoryFootprint {
	return mf.children[name]
}

// SetNote attaches a free-form remark printed next to this node.
func (mf *MemoryFootprint) SetNote(note string) {
	mf.note = note
}

// Value provides the amount of bytes consumed by the component itself, excluding its children.
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total provides the amount of bytes consumed including all children.
// Children reachable along several paths are counted once.
func (mf *MemoryFootprint) Total() uintptr {
	return mf.total(make(map[*MemoryFootprint]bool))
}

func (mf *MemoryFootprint) total(visited map[*MemoryFootprint]bool) uintptr {
	if visited[mf] {
		return 0
	}
	visited[mf] = true
	sum := mf.value
	for _, child := range mf.children {
		sum += child.total(visited)
	}
	return sum
}

func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.write(&sb, ".", make(map[*MemoryFootprint]bool))
	return sb.String()
}

func (mf *MemoryFootprint) write(sb *strings.Builder, path string, visited map[*MemoryFootprint]bool) {
	if visited[mf] {
		return
	}
	visited[mf] = true
	writeMemoryAmount(sb, mf.Total())
	sb.WriteRune(' ')
	sb.WriteString(path)
	if mf.note != "" {
		sb.WriteString(" (")
		sb.WriteString(mf.note)
		sb.WriteRune(')')
	}
	sb.WriteRune('\n')

	names := make([]string, 0, len(mf.children))
	for name := range mf.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mf.children[name].write(sb, path+"/"+name, visited)
	}
}

func writeMemoryAmount(sb *strings.Builder, bytes uintptr) {
	const unit = 1024
	const prefixes = "KMGTPE"
	if bytes < unit {
		fmt.Fprintf(sb, "%d B", bytes)
		return
	}
	div, exp := uint64(unit), 0
	for n := uint64(bytes) / unit; n >= unit && exp+1 < len(prefixes); n /= unit {
		div *= unit
		exp++
	}
	fmt.Fprintf(sb, "%.1f %cB", float64(bytes)/float64(div), prefixes[exp])
}
