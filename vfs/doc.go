// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

// Package vfs implements the virtual file store which holds a project's
// source files entirely in memory.
//
// - stores files received from the embedding tool (playground, sandbox,
//   live-preview editor) before a build starts
// - canonicalizes registration keys and import specifiers to a single
//   leading-slash path convention so both forms can be mixed freely
// - serves concurrent lock-free reads while the bundler walks the
//   import graph
package vfs
