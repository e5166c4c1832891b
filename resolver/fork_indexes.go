// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"sort"

	"github.com/tiangolo/uv"
)

// ForkIndexes tracks which index each package resolves from within one
// exploration branch. A branch represents a single consistent installation
// plan, so a package may use different indexes across branches but never two
// indexes within the same branch. The solver clones a ForkIndexes at every
// fork point; no state is shared between clones.
type ForkIndexes struct {
	m map[uv.PackageName]uv.Index
}

// NewForkIndexes returns an empty tracker.
func NewForkIndexes() *ForkIndexes {
	return &ForkIndexes{m: make(map[uv.PackageName]uv.Index)}
}

// Get returns the index previously pinned for a package in this branch.
func (f *ForkIndexes) Get(name uv.PackageName) (uv.Index, bool) {
	idx, has := f.m[name]
	return idx, has
}

// Insert pins an index for a package in this branch. Re-pinning the same
// index is an idempotent success; pinning a different index is a hard error,
// shaped by the branch's exploration context.
func (f *ForkIndexes) Insert(name uv.PackageName, index uv.Index, markers ResolverMarkers) error {
	prev, has := f.m[name]
	if !has {
		f.m[name] = index
		return nil
	}
	if prev == index {
		return nil
	}

	conflicts := []string{prev.String(), index.String()}
	sort.Strings(conflicts)

	if markers.IsFork() {
		return &ForkConflictingIndexesError{
			Name:    name,
			Indexes: conflicts,
			Markers: markers.Markers(),
		}
	}
	return &ConflictingIndexesError{Name: name, Indexes: conflicts}
}

// Clone returns an independent copy for a new exploration branch. The copy
// reflects only the assignments made on the path leading to the fork point.
func (f *ForkIndexes) Clone() *ForkIndexes {
	m := make(map[uv.PackageName]uv.Index, len(f.m))
	for k, v := range f.m {
		m[k] = v
	}
	return &ForkIndexes{m: m}
}
