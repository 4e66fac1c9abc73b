// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

// Package bundle registers the resolution engine's resolve/load hooks
// with esbuild and orchestrates one in-memory build: project files come
// from the virtual file store, installed packages from the simulated
// package filesystem, and everything else is externalized for a runtime
// loader driven by the generated import map.
package bundle
