// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/tiangolo/uv"
)

// Pointer-record filenames and extensions. Remote registries and local path
// sources use distinct record kinds so a cache shared between both can never
// confuse one provenance for the other.
const (
	// HTTPRevisionFile is the revision pointer written after fetching and
	// building a source distribution from a remote registry.
	HTTPRevisionFile = "revision.http"
	// LocalRevisionFile is the revision pointer written after building a
	// source distribution from a local path source.
	LocalRevisionFile = "revision.rev"

	// ArchiveExtHTTP is the extension of direct-download pointer records
	// on remote registries.
	ArchiveExtHTTP = ".http"
	// ArchiveExtLocal is the extension of direct-download pointer records
	// on local path sources.
	ArchiveExtLocal = ".rev"
)

// Revision identifies one fetch/build outcome of a source distribution. ID
// is content-derived and names the directory holding the wheels built from
// this revision; Hashes anchor the trust of every such wheel.
type Revision struct {
	ID     string          `toml:"id"`
	Hashes []uv.HashDigest `toml:"hashes,omitempty"`
}

// Satisfies reports whether this revision meets a hash requirement set.
func (r *Revision) Satisfies(required []uv.HashDigest) bool {
	return uv.HashesSatisfy(r.Hashes, required)
}

type revisionRecord struct {
	Kind     string   `toml:"kind"`
	Revision Revision `toml:"revision"`
}

const (
	kindHTTP  = "http"
	kindLocal = "local"
)

// ReadHTTPRevision reads the remote-registry revision pointer at path. The
// second return is false when the record is absent, malformed, or of the
// wrong kind; such locations simply hold no revision.
func ReadHTTPRevision(path string) (*Revision, bool) {
	return readRevision(path, kindHTTP)
}

// ReadLocalRevision reads the local-path revision pointer at path, with the
// same absence semantics as ReadHTTPRevision.
func ReadLocalRevision(path string) (*Revision, bool) {
	return readRevision(path, kindLocal)
}

func readRevision(path, kind string) (*Revision, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var rec revisionRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, false
	}
	if rec.Kind != kind || rec.Revision.ID == "" {
		return nil, false
	}
	return &rec.Revision, true
}

// WriteHTTPRevision persists a remote-registry revision pointer at path.
func WriteHTTPRevision(path string, rev Revision) error {
	return writeRevision(path, kindHTTP, rev)
}

// WriteLocalRevision persists a local-path revision pointer at path.
func WriteLocalRevision(path string, rev Revision) error {
	return writeRevision(path, kindLocal, rev)
}

func writeRevision(path, kind string, rev Revision) error {
	data, err := toml.Marshal(revisionRecord{Kind: kind, Revision: rev})
	if err != nil {
		return errors.Wrap(err, "failed to encode revision pointer")
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return errors.Wrapf(err, "failed to write revision pointer %s", path)
	}
	return nil
}

// ArchivePointer is a direct-download record: one wheel fetched verbatim
// from an index. Path locates the unpacked archive; Hashes were computed
// over the downloaded wheel itself. The wheel's filename is the pointer
// file's stem.
type ArchivePointer struct {
	Path   string          `toml:"path"`
	Hashes []uv.HashDigest `toml:"hashes,omitempty"`
}

// ReadArchivePointer reads the direct-download pointer at path. The second
// return is false when the record is absent or malformed.
func ReadArchivePointer(path string) (*ArchivePointer, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var ptr ArchivePointer
	if err := toml.Unmarshal(data, &ptr); err != nil {
		return nil, false
	}
	if ptr.Path == "" {
		return nil, false
	}
	return &ptr, true
}

// WriteArchivePointer persists a direct-download pointer at path.
func WriteArchivePointer(path string, ptr ArchivePointer) error {
	data, err := toml.Marshal(ptr)
	if err != nil {
		return errors.Wrap(err, "failed to encode archive pointer")
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return errors.Wrapf(err, "failed to write archive pointer %s", path)
	}
	return nil
}
