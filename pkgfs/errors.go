// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package pkgfs

import "fmt"

type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

type ManifestParseError struct {
	// Path of the manifest, when known.
	Path string
	Err  error
}

func (e *ManifestParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed package manifest %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("malformed package manifest: %s", e.Err)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Err
}
