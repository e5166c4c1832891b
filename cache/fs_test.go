// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEnumeration(t *testing.T) {
	dir := t.TempDir()

	for _, f := range []string{"b.http", "a.http"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0666); err != nil {
			t.Fatal(err)
		}
	}
	for _, d := range []string{"2.0.0", "1.0.0"} {
		if err := os.Mkdir(filepath.Join(dir, d), 0777); err != nil {
			t.Fatal(err)
		}
	}
	for _, l := range []string{"z.whl", "y.whl"} {
		if err := os.Symlink(filepath.Join(dir, "1.0.0"), filepath.Join(dir, l)); err != nil {
			t.Fatal(err)
		}
	}

	if got, want := Files(dir), []string{"a.http", "b.http"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Files:\n\t(GOT): %v\n\t(WNT): %v", got, want)
	}
	if got, want := Directories(dir), []string{"1.0.0", "2.0.0"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Directories:\n\t(GOT): %v\n\t(WNT): %v", got, want)
	}
	if got, want := Symlinks(dir), []string{"y.whl", "z.whl"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Symlinks:\n\t(GOT): %v\n\t(WNT): %v", got, want)
	}
}

func TestEnumerationMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")

	if got := Files(dir); got != nil {
		t.Errorf("Files of missing dir should be nil, got %v", got)
	}
	if got := Directories(dir); got != nil {
		t.Errorf("Directories of missing dir should be nil, got %v", got)
	}
	if got := Symlinks(dir); got != nil {
		t.Errorf("Symlinks of missing dir should be nil, got %v", got)
	}
}
