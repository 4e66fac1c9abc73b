// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

// Package pkgfs provides read access into a simulated hierarchical
// filesystem holding installed packages.
//
// Installation itself is the package manager collaborator's job; this
// package only exposes the existence/read surface the resolution engine
// needs, plus the write surface the installer seeds through.
package pkgfs
