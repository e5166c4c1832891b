// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"fmt"

	"github.com/tiangolo/uv"
)

// ConflictingIndexesError reports that a package was assigned two different
// indexes during a resolution with no branching in effect. Indexes holds the
// two canonical index strings, sorted lexicographically.
type ConflictingIndexesError struct {
	Name    uv.PackageName
	Indexes []string
}

func (e *ConflictingIndexesError) Error() string {
	return fmt.Sprintf(
		"found conflicting indexes for package %q across the resolution: %s vs. %s",
		e.Name, e.Indexes[0], e.Indexes[1],
	)
}

// ForkConflictingIndexesError reports the same condition hit inside a
// marker-constrained branch, carrying the branch's markers so the diagnostic
// can name the environment subset affected.
type ForkConflictingIndexesError struct {
	Name    uv.PackageName
	Indexes []string
	Markers string
}

func (e *ForkConflictingIndexesError) Error() string {
	return fmt.Sprintf(
		"found conflicting indexes for package %q in split (%s): %s vs. %s",
		e.Name, e.Markers, e.Indexes[0], e.Indexes[1],
	)
}
