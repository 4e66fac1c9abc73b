// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package pkgfs

import "encoding/json"

// Manifest is the subset of a package descriptor (package.json) the
// engine cares about. Manifests in the wild are duck-typed; any field
// may be missing, and parsing is deliberately defensive.
type Manifest struct {
	Module       string            `json:"module"`
	Main         string            `json:"main"`
	Dependencies map[string]string `json:"dependencies"`
}

// ParseManifest decodes raw manifest bytes. Malformed input (including
// fields of an unexpected type) yields a *ManifestParseError, never a
// panic.
func ParseManifest(raw []byte) (*Manifest, error) {
	var m Manifest
	err := json.Unmarshal(raw, &m)
	if err != nil {
		return nil, &ManifestParseError{Err: err}
	}
	return &m, nil
}

// EntryPoint returns the package's entry file relative to its
// directory, preferring module over main, falling back to "index.js".
func (m *Manifest) EntryPoint() string {
	if m.Module != "" {
		return m.Module
	}
	if m.Main != "" {
		return m.Main
	}
	return "index.js"
}
