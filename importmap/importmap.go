// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

// Package importmap generates browser import maps for the dependencies
// a build externalized, pointing each bare specifier at a CDN URL.
package importmap

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/previewkit/bundlekit/resolve"
)

// DefaultCDNBase is used when the caller does not supply a CDN base.
const DefaultCDNBase = "https://esm.sh"

// ImportMap is the browser import-map document, with entries in
// "imports" mapping bare specifiers to URLs.
type ImportMap struct {
	Imports map[string]string `json:"imports"`
}

// Generate maps each dependency and each externalized subpath import to
// a URL of the form <base>/<package>@<version>[/<subpath>]. Version
// strings are taken verbatim from the dependency map; a package with no
// known version maps to "latest". Subpaths must be the accumulated
// records of a completed build.
func Generate(deps map[string]string, subpaths []string, cdnBase string) *ImportMap {
	if cdnBase == "" {
		cdnBase = DefaultCDNBase
	}
	cdnBase = strings.TrimSuffix(cdnBase, "/")

	m := &ImportMap{
		Imports: make(map[string]string, len(deps)+len(subpaths)),
	}

	for name, version := range deps {
		m.Imports[name] = fmt.Sprintf("%s/%s@%s", cdnBase, name, versionOrLatest(version))
	}

	for _, specifier := range subpaths {
		name, subpath := resolve.SplitSpecifier(specifier)
		if subpath == "" {
			continue
		}
		m.Imports[specifier] = fmt.Sprintf("%s/%s@%s/%s",
			cdnBase, name, versionOrLatest(deps[name]), subpath)
	}

	return m
}

// MarshalIndent renders the map as pretty-printed JSON with stable key
// order, ready to inline into a preview document's script tag.
func (m *ImportMap) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func versionOrLatest(version string) string {
	if version == "" {
		return "latest"
	}
	return version
}
