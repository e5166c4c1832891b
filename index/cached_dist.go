// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package index maintains the in-memory view of locally cached registry
// distributions that the resolution engine draws candidates from.
package index

import (
	"path/filepath"
	"strings"

	"github.com/tiangolo/uv"
	"github.com/tiangolo/uv/cache"
)

// CachedDist is one locally available built distribution. Both provenances -
// downloaded verbatim from an index, or built locally from a source
// distribution - normalize to this shape, so everything downstream of the
// storage boundary is provenance-agnostic.
type CachedDist struct {
	// Filename carries the name, version and compatibility-tag signature.
	Filename uv.WheelFilename
	// Path locates the cached artifact.
	Path string
	// Hashes are the integrity anchor: the wheel's own digests for direct
	// downloads, the source revision's digests for built wheels.
	Hashes []uv.HashDigest
}

// Satisfies reports whether the distribution meets a hash requirement set.
func (d CachedDist) Satisfies(required []uv.HashDigest) bool {
	return uv.HashesSatisfy(d.Hashes, required)
}

// distFromArchivePointer reads a direct-download pointer record. The wheel
// filename is the pointer file's stem. Absent or malformed records yield no
// candidate.
func distFromArchivePointer(pointerPath string) (CachedDist, bool) {
	ptr, ok := cache.ReadArchivePointer(pointerPath)
	if !ok {
		return CachedDist{}, false
	}

	base := filepath.Base(pointerPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	wf, err := uv.ParseWheelFilename(stem)
	if err != nil {
		return CachedDist{}, false
	}

	return CachedDist{Filename: wf, Path: ptr.Path, Hashes: ptr.Hashes}, true
}

// distFromBuiltSource wraps one built-wheel output of a source revision. The
// wheel filename is the symlink's name; the hashes are inherited from the
// revision, since the build output carries the trust of its source input.
func distFromBuiltSource(linkName, linkPath string, rev *cache.Revision) (CachedDist, bool) {
	wf, err := uv.ParseWheelFilename(linkName)
	if err != nil {
		return CachedDist{}, false
	}
	return CachedDist{Filename: wf, Path: linkPath, Hashes: rev.Hashes}, true
}
