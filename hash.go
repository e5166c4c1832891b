// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uv

import "fmt"

// HashDigest is one content hash associated with a cached artifact or a
// source revision.
type HashDigest struct {
	Algorithm string `toml:"algorithm"`
	Digest    string `toml:"digest"`
}

func (h HashDigest) String() string {
	return fmt.Sprintf("%s:%s", h.Algorithm, h.Digest)
}

// HashPolicy yields the integrity requirements for one (package, version)
// pair. An empty requirement set means the pair needs no verification.
type HashPolicy interface {
	Required(name PackageName, version Version) []HashDigest
}

// PermissivePolicy requires no verification for any package.
type PermissivePolicy struct{}

// Required implements HashPolicy.
func (PermissivePolicy) Required(PackageName, Version) []HashDigest {
	return nil
}

// ValidatePolicy requires explicitly pinned digests for the packages it
// knows about; unlisted (package, version) pairs need no verification.
type ValidatePolicy struct {
	pins map[PackageName]map[string][]HashDigest
}

// NewValidatePolicy creates an empty pin set.
func NewValidatePolicy() *ValidatePolicy {
	return &ValidatePolicy{pins: make(map[PackageName]map[string][]HashDigest)}
}

// Pin records the digests required for one (package, version) pair,
// replacing any prior requirement for that pair.
func (p *ValidatePolicy) Pin(name PackageName, version Version, digests []HashDigest) {
	byVersion, has := p.pins[name]
	if !has {
		byVersion = make(map[string][]HashDigest)
		p.pins[name] = byVersion
	}
	byVersion[version.Key()] = append([]HashDigest(nil), digests...)
}

// Required implements HashPolicy.
func (p *ValidatePolicy) Required(name PackageName, version Version) []HashDigest {
	return p.pins[name][version.Key()]
}

// HashesSatisfy reports whether an artifact carrying the digests in have
// meets a requirement set. An empty requirement always passes; otherwise at
// least one required digest must be present.
func HashesSatisfy(have, required []HashDigest) bool {
	if len(required) == 0 {
		return true
	}
	for _, req := range required {
		for _, h := range have {
			if h == req {
				return true
			}
		}
	}
	return false
}
