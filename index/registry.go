// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import (
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tiangolo/uv"
	"github.com/tiangolo/uv/cache"
)

// VersionDist pairs a version with the best cached distribution known for it
// within one index.
type VersionDist struct {
	Version uv.Version
	Dist    CachedDist
}

// IndexDists is one index's versions of a package, ascending by version.
type IndexDists struct {
	Index uv.Index
	Dists []VersionDist
}

// IndexedDist is one (index, version, distribution) triple as surfaced to
// the resolution engine.
type IndexedDist struct {
	Index   uv.Index
	Version uv.Version
	Dist    CachedDist
}

// RegistryDistIndex is a lazily-populated index of the cached distributions
// available per package across all configured indexes. A package's entry is
// computed at most once, by scanning the cache, and is immutable thereafter;
// repeated lookups are cheap map hits.
type RegistryDistIndex struct {
	cache     *cache.Cache
	tags      *uv.Tags
	locations *uv.IndexLocations
	hasher    uv.HashPolicy

	// tl receives population trace output when non-nil.
	tl *log.Logger

	mu     sync.Mutex // guards byName
	byName map[uv.PackageName][]IndexDists
}

// NewRegistryDistIndex creates an empty index over the given cache,
// environment tag set, source configuration and hash policy.
func NewRegistryDistIndex(c *cache.Cache, tags *uv.Tags, locations *uv.IndexLocations, hasher uv.HashPolicy) *RegistryDistIndex {
	return &RegistryDistIndex{
		cache:     c,
		tags:      tags,
		locations: locations,
		hasher:    hasher,
		byName:    make(map[uv.PackageName][]IndexDists),
	}
}

// SetTraceLogger directs population trace output to l. Must be called before
// the first Get.
func (ri *RegistryDistIndex) SetTraceLogger(l *log.Logger) {
	ri.tl = l
}

// Get returns the cached distributions available for a package: indexes in
// configured priority order, versions ascending within each index. The
// package is indexed on first call; later calls return the identical
// sequence.
func (ri *RegistryDistIndex) Get(name uv.PackageName) []IndexedDist {
	var out []IndexedDist
	for _, byIndex := range ri.entry(name) {
		for _, vd := range byIndex.Dists {
			out = append(out, IndexedDist{Index: byIndex.Index, Version: vd.Version, Dist: vd.Dist})
		}
	}
	return out
}

// entry returns the memoized per-index map for a package, populating it if
// needed. Population happens outside the lock so concurrent lookups of
// different packages proceed in parallel; if two callers race on the same
// package, the first stored result wins and the duplicate is discarded.
func (ri *RegistryDistIndex) entry(name uv.PackageName) []IndexDists {
	ri.mu.Lock()
	if e, has := ri.byName[name]; has {
		ri.mu.Unlock()
		return e
	}
	ri.mu.Unlock()

	computed := ri.scan(name)

	ri.mu.Lock()
	defer ri.mu.Unlock()
	if e, has := ri.byName[name]; has {
		return e
	}
	ri.byName[name] = computed
	return computed
}

// scan reads every configured index's storage areas for a package and merges
// the sightings into the permanent per-index, per-version form.
func (ri *RegistryDistIndex) scan(name uv.PackageName) []IndexDists {
	var entry []IndexDists

	for _, idx := range ri.locations.AllIndexes() {
		versions := make(map[string]*sighting)

		// Wheels downloaded directly from the index. The record kind is
		// selected by the index kind; a mismatched extension belongs to
		// the other kind and is ignored.
		wheelDir := ri.cache.IndexShard(cache.BucketWheels, idx, name)
		for _, file := range cache.Files(wheelDir) {
			switch idx.Kind {
			case uv.IndexRemote:
				if !strings.EqualFold(filepath.Ext(file), cache.ArchiveExtHTTP) {
					continue
				}
			case uv.IndexPath:
				if !strings.EqualFold(filepath.Ext(file), cache.ArchiveExtLocal) {
					continue
				}
			}

			dist, ok := distFromArchivePointer(filepath.Join(wheelDir, file))
			if !ok {
				continue
			}
			// Hash-checking is enforced against the wheel itself.
			if !dist.Satisfies(ri.hasher.Required(dist.Filename.Name, dist.Filename.Version)) {
				ri.tracef("registry-index(%s): %s fails hash policy, skipping", name, dist.Filename)
				continue
			}
			ri.admit(versions, dist)
		}

		// Wheels built locally from source distributions fetched from the
		// index. Each subdirectory is one version shard holding a revision
		// pointer and, under the revision's directory, symlinked build
		// outputs.
		sdistDir := ri.cache.IndexShard(cache.BucketSdists, idx, name)
		for _, shard := range cache.Directories(sdistDir) {
			shardDir := filepath.Join(sdistDir, shard)

			var rev *cache.Revision
			var ok bool
			switch idx.Kind {
			case uv.IndexRemote:
				rev, ok = cache.ReadHTTPRevision(filepath.Join(shardDir, cache.HTTPRevisionFile))
			case uv.IndexPath:
				rev, ok = cache.ReadLocalRevision(filepath.Join(shardDir, cache.LocalRevisionFile))
			}
			if !ok {
				continue
			}

			revDir := filepath.Join(shardDir, rev.ID)
			for _, link := range cache.Symlinks(revDir) {
				dist, ok := distFromBuiltSource(link, filepath.Join(revDir, link), rev)
				if !ok {
					continue
				}
				// Hash-checking is enforced against the source revision.
				if !rev.Satisfies(ri.hasher.Required(dist.Filename.Name, dist.Filename.Version)) {
					ri.tracef("registry-index(%s): built %s fails hash policy, skipping", name, dist.Filename)
					continue
				}
				ri.admit(versions, dist)
			}
		}

		if len(versions) == 0 {
			continue
		}
		entry = append(entry, IndexDists{Index: idx, Dists: freeze(versions)})
	}

	ri.tracef("registry-index(%s): indexed %d source(s)", name, len(entry))
	return entry
}

// sighting is one version's current best candidate during a scan.
type sighting struct {
	version uv.Version
	dist    CachedDist
	rank    uv.TagPriority
}

// admit applies the admission rule for one candidate: incompatible
// distributions are discarded outright, and among compatible sightings of
// the same version only a strictly better tag rank displaces the incumbent.
func (ri *RegistryDistIndex) admit(versions map[string]*sighting, dist CachedDist) {
	rank, ok := ri.tags.Compatibility(dist.Filename)
	if !ok {
		return
	}

	key := dist.Filename.Version.Key()
	if prev, has := versions[key]; has {
		if rank > prev.rank {
			prev.dist = dist
			prev.rank = rank
		}
		return
	}
	versions[key] = &sighting{version: dist.Filename.Version, dist: dist, rank: rank}
}

// freeze flattens a scan's sightings into the immutable ascending-version
// form stored in the index.
func freeze(versions map[string]*sighting) []VersionDist {
	dists := make([]VersionDist, 0, len(versions))
	for _, s := range versions {
		dists = append(dists, VersionDist{Version: s.version, Dist: s.dist})
	}
	sort.Slice(dists, func(i, j int) bool {
		return dists[i].Version.LessThan(dists[j].Version)
	})
	return dists
}

func (ri *RegistryDistIndex) tracef(format string, args ...interface{}) {
	if ri.tl != nil {
		ri.tl.Printf(format, args...)
	}
}
