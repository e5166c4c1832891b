// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uv

// IndexKind discriminates the storage layout an index's cached artifacts use.
type IndexKind uint8

const (
	// IndexRemote is a URL-backed registry reached over the network.
	IndexRemote IndexKind = iota
	// IndexPath is a filesystem-backed source, e.g. a local directory of
	// distributions surfaced as a flat index.
	IndexPath
)

// Index identifies one configured package source. Two Index values denote the
// same source iff they are equal; the zero value is not a valid index.
type Index struct {
	Kind IndexKind
	URL  string
}

// RemoteIndex returns an Index for a URL-backed registry.
func RemoteIndex(url string) Index {
	return Index{Kind: IndexRemote, URL: url}
}

// PathIndex returns an Index for a filesystem-backed source.
func PathIndex(path string) Index {
	return Index{Kind: IndexPath, URL: path}
}

// String returns the canonical form used in diagnostics and on-disk shard
// paths.
func (i Index) String() string {
	return i.URL
}

// IndexLocations is the ordered set of package sources a resolution run may
// draw candidates from. Configured indexes are priority-ordered,
// first-configured wins; flat sources rank below all configured indexes.
type IndexLocations struct {
	indexes []Index
	flat    []Index
}

// NewIndexLocations assembles the source configuration for a run. Both slices
// are copied, so later mutation of the arguments cannot skew an in-flight
// resolution.
func NewIndexLocations(indexes, flat []Index) *IndexLocations {
	return &IndexLocations{
		indexes: append([]Index(nil), indexes...),
		flat:    append([]Index(nil), flat...),
	}
}

// Indexes returns the configured indexes in priority order.
func (il *IndexLocations) Indexes() []Index {
	return il.indexes
}

// FlatSources returns the supplementary flat/local sources.
func (il *IndexLocations) FlatSources() []Index {
	return il.flat
}

// AllIndexes returns every source candidates may come from: configured
// indexes in priority order, then flat sources as synthetic lowest-priority
// entries.
func (il *IndexLocations) AllIndexes() []Index {
	all := make([]Index, 0, len(il.indexes)+len(il.flat))
	all = append(all, il.indexes...)
	all = append(all, il.flat...)
	return all
}
