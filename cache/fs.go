// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"sort"

	"github.com/karrick/godirwalk"
)

// Enumeration helpers over one directory level. A missing or unreadable
// directory yields nil rather than an error: an absent shard simply has no
// cached entries.

// Files returns the sorted names of the regular files directly under dir.
func Files(dir string) []string {
	return read(dir, func(de *godirwalk.Dirent) bool { return de.IsRegular() })
}

// Directories returns the sorted names of the subdirectories directly under
// dir.
func Directories(dir string) []string {
	return read(dir, func(de *godirwalk.Dirent) bool { return de.IsDir() })
}

// Symlinks returns the sorted names of the symbolic links directly under
// dir.
func Symlinks(dir string) []string {
	return read(dir, func(de *godirwalk.Dirent) bool { return de.IsSymlink() })
}

func read(dir string, keep func(*godirwalk.Dirent) bool) []string {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil
	}

	var names []string
	for _, de := range dirents {
		if keep(de) {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)
	return names
}
