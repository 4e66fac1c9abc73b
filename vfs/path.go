// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package vfs

import "strings"

// Normalize canonicalizes a path or specifier to the leading-slash
// convention shared by every store. Empty input and input which already
// begins with "/" are returned unchanged; anything else gets "/"
// prepended. Normalize is idempotent.
func Normalize(path string) string {
	if path == "" || strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
