// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uv

// Tag is one (python, abi, platform) compatibility triple.
type Tag struct {
	Python   string
	ABI      string
	Platform string
}

// TagPriority ranks how well a distribution matches the active environment.
// Higher is better. Priorities are only meaningful relative to the Tags they
// were computed against.
type TagPriority int

// Tags is the environment's supported tag set, most preferred first. It is
// immutable after construction.
type Tags struct {
	prio map[Tag]TagPriority
}

// NewTags builds a tag set from supported, which lists triples in decreasing
// preference order. Duplicate triples keep their first (highest) rank.
func NewTags(supported []Tag) *Tags {
	t := &Tags{
		prio: make(map[Tag]TagPriority, len(supported)),
	}
	for i, tag := range supported {
		if _, has := t.prio[tag]; !has {
			// Earlier entries are preferred, so they get the larger rank.
			t.prio[tag] = TagPriority(len(supported) - 1 - i)
		}
	}
	return t
}

// Priority returns the rank of a single triple, if supported.
func (t *Tags) Priority(tag Tag) (TagPriority, bool) {
	p, ok := t.prio[tag]
	return p, ok
}

// Compatibility returns the best rank among all triples the filename
// advertises. The second return is false when no triple is supported, in
// which case the distribution must not be admitted at all.
func (t *Tags) Compatibility(w WheelFilename) (TagPriority, bool) {
	var best TagPriority
	found := false
	for _, py := range w.PythonTags {
		for _, abi := range w.ABITags {
			for _, plat := range w.PlatformTags {
				p, ok := t.prio[Tag{Python: py, ABI: abi, Platform: plat}]
				if !ok {
					continue
				}
				if !found || p > best {
					best = p
					found = true
				}
			}
		}
	}
	return best, found
}
