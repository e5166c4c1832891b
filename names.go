// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uv

import "strings"

// PackageName is the normalized name of a distribution package. It is the
// primary key for every index and tracker map, so all lookups are insensitive
// to the casing and separator choices of the input.
type PackageName string

// NormalizePackageName lowercases s and collapses every run of hyphens,
// underscores and dots into a single hyphen, per the registry's normalization
// rules.
func NormalizePackageName(s string) PackageName {
	var sb strings.Builder
	sb.Grow(len(s))

	sep := false
	for _, r := range strings.ToLower(s) {
		if r == '-' || r == '_' || r == '.' {
			sep = true
			continue
		}
		if sep && sb.Len() > 0 {
			sb.WriteByte('-')
		}
		sep = false
		sb.WriteRune(r)
	}

	return PackageName(sb.String())
}

func (n PackageName) String() string {
	return string(n)
}
