// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

// Package resolve implements the module resolution engine behind the
// bundler's resolve/load callback contract.
//
// The engine composes two storage backends under one path convention:
// the project's virtual file store and the simulated filesystem holding
// installed packages. Bare imports that cannot be satisfied locally are
// externalized (deferred to a runtime loader) rather than failing the
// build; externalized subpath imports are accumulated for import-map
// generation after the build.
//
// The engine never initiates work itself; the external bundler drives
// the graph walk and may invoke the hooks concurrently for independent
// subgraphs.
package resolve
