// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uv

import (
	"strings"

	"github.com/pkg/errors"
)

// WheelFilename is the parsed form of a built-distribution filename:
// name-version[-build]-python-abi-platform.whl. Tag fields may be compressed
// ("py2.py3"), so each field expands to one or more tags.
type WheelFilename struct {
	Name         PackageName
	Version      Version
	BuildTag     string
	PythonTags   []string
	ABITags      []string
	PlatformTags []string
}

// ParseWheelFilename parses a wheel filename. The name segment must not
// itself contain hyphens; distribution names are expected to have been
// escaped to underscores when the file was produced.
func ParseWheelFilename(filename string) (WheelFilename, error) {
	stem, ok := strings.CutSuffix(filename, ".whl")
	if !ok {
		return WheelFilename{}, errors.Errorf("%q is not a wheel filename", filename)
	}

	parts := strings.Split(stem, "-")
	if len(parts) != 5 && len(parts) != 6 {
		return WheelFilename{}, errors.Errorf("wheel filename %q has %d segments, want 5 or 6", filename, len(parts))
	}

	version, err := ParseVersion(parts[1])
	if err != nil {
		return WheelFilename{}, errors.Wrapf(err, "wheel filename %q", filename)
	}

	w := WheelFilename{
		Name:    NormalizePackageName(parts[0]),
		Version: version,
	}
	if len(parts) == 6 {
		w.BuildTag = parts[2]
	}
	w.PythonTags = strings.Split(parts[len(parts)-3], ".")
	w.ABITags = strings.Split(parts[len(parts)-2], ".")
	w.PlatformTags = strings.Split(parts[len(parts)-1], ".")

	return w, nil
}

// String reassembles the canonical filename.
func (w WheelFilename) String() string {
	segs := []string{
		strings.ReplaceAll(string(w.Name), "-", "_"),
		w.Version.String(),
	}
	if w.BuildTag != "" {
		segs = append(segs, w.BuildTag)
	}
	segs = append(segs,
		strings.Join(w.PythonTags, "."),
		strings.Join(w.ABITags, "."),
		strings.Join(w.PlatformTags, "."),
	)
	return strings.Join(segs, "-") + ".whl"
}
