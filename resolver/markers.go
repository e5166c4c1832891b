// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolver holds the per-exploration-branch state the resolution
// engine threads through its backtracking search.
package resolver

// markersKind discriminates the shape of the active exploration context.
type markersKind uint8

const (
	// markersUniversal solves for all environments at once; no branching
	// is in effect.
	markersUniversal markersKind = iota
	// markersSpecific solves for one concrete environment; no branching
	// is in effect.
	markersSpecific
	// markersFork is a branch constrained by environment markers.
	markersFork
)

// ResolverMarkers describes which environments the current exploration
// branch applies to. The zero value is the universal context.
type ResolverMarkers struct {
	kind    markersKind
	markers string
}

// UniversalMarkers returns the context of a resolution that applies to all
// environments.
func UniversalMarkers() ResolverMarkers {
	return ResolverMarkers{kind: markersUniversal}
}

// SpecificEnvironmentMarkers returns the context of a resolution pinned to
// one concrete environment.
func SpecificEnvironmentMarkers() ResolverMarkers {
	return ResolverMarkers{kind: markersSpecific}
}

// ForkMarkers returns the context of a branch constrained by the given
// canonical marker expression.
func ForkMarkers(markers string) ResolverMarkers {
	return ResolverMarkers{kind: markersFork, markers: markers}
}

// IsFork reports whether the context is a marker-constrained branch.
func (m ResolverMarkers) IsFork() bool {
	return m.kind == markersFork
}

// Markers returns the branch's marker expression; empty unless IsFork.
func (m ResolverMarkers) Markers() string {
	return m.markers
}
