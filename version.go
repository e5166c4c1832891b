// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uv

import (
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// Version is a totally-ordered distribution version. The canonical string
// form doubles as a map key, so two versions that parse to the same release
// compare and hash identically.
type Version struct {
	raw string
	sv  *semver.Version
}

// ParseVersion parses a version string into a Version.
func ParseVersion(s string) (Version, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, errors.Wrapf(err, "invalid version %q", s)
	}
	return Version{raw: sv.String(), sv: sv}, nil
}

func (v Version) String() string {
	return v.raw
}

// Key returns the canonical form used to key per-version maps.
func (v Version) Key() string {
	return v.raw
}

func (v Version) LessThan(o Version) bool {
	return v.sv.LessThan(o.sv)
}

func (v Version) Equal(o Version) bool {
	return v.raw == o.raw
}

// Compare returns -1, 0 or 1 as v sorts before, equal to, or after o.
func (v Version) Compare(o Version) int {
	return v.sv.Compare(o.sv)
}
