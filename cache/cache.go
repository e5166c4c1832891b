// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache is the on-disk storage layout consumed by the distribution
// index: bucket and shard path composition, entry enumeration, and the typed
// pointer records that describe cached artifacts. The index only ever reads
// through it; writes belong to the fetch/build layers that populate the
// cache in the first place.
package cache

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"github.com/tiangolo/uv"
)

// Bucket names one top-level cache area. The version suffix lets layout
// changes invalidate an area wholesale.
type Bucket string

const (
	// BucketWheels holds pointer records for wheels downloaded verbatim
	// from an index.
	BucketWheels Bucket = "wheels-v1"
	// BucketSdists holds build outputs of source distributions, sharded by
	// version and revision.
	BucketSdists Bucket = "sdists-v1"
)

var sanitizer = strings.NewReplacer("-", "--", ":", "-", "/", "-", "+", "-")

// Cache is a handle on one cache root directory.
type Cache struct {
	root string
	fl   *flock.Flock
}

// New returns a handle on the cache rooted at dir, creating the root if
// needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache root %s", dir)
	}
	return &Cache{
		root: dir,
		fl:   flock.New(filepath.Join(dir, ".lock")),
	}, nil
}

// Root returns the cache root directory.
func (c *Cache) Root() string {
	return c.root
}

// Lock takes the process-level advisory lock on the cache, guarding against
// a concurrent process pruning entries out from under a scan. It blocks
// until the lock is acquired.
func (c *Cache) Lock() error {
	if err := c.fl.Lock(); err != nil {
		return errors.Wrapf(err, "unable to lock cache at %s", c.root)
	}
	return nil
}

// Unlock releases the advisory lock.
func (c *Cache) Unlock() error {
	return c.fl.Unlock()
}

// Shard composes the path for a bucket plus path elements. Pure path
// composition; nothing is created.
func (c *Cache) Shard(bucket Bucket, elems ...string) string {
	parts := append([]string{c.root, string(bucket)}, elems...)
	return filepath.Join(parts...)
}

// IndexShard composes the per-(bucket, index, package) storage area. The
// index URL is flattened into a single path segment.
func (c *Cache) IndexShard(bucket Bucket, index uv.Index, name uv.PackageName) string {
	return c.Shard(bucket, "index", sanitizer.Replace(index.URL), string(name))
}
