// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

// Package bundlekit bundles multi-file projects that exist only as
// in-memory records, for tools that must bundle and preview code
// entirely client-side (playgrounds, sandboxes, live-preview editors).
//
// The interesting packages live below:
//
//   - vfs holds the project's virtual files under one path convention
//   - pkgfs reads installed packages out of a simulated filesystem
//   - resolve decides which concrete file an import refers to, or
//     externalizes it for a runtime loader
//   - bundle drives esbuild over the two stores
//   - importmap turns the externalized dependency set into a browser
//     import map
package bundlekit
