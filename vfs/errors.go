// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package vfs

import "fmt"

type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}
