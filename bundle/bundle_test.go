// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/previewkit/bundlekit/pkgfs"
	"github.com/previewkit/bundlekit/resolve"
	"github.com/previewkit/bundlekit/vfs"
)

func testStores(t *testing.T, projectFiles, packageFiles map[string]string) (*vfs.Store, *pkgfs.AferoStore) {
	t.Helper()

	project, err := vfs.NewStore()
	require.NoError(t, err)
	for p, code := range projectFiles {
		require.NoError(t, project.WriteFile(p, code))
	}

	packages := pkgfs.NewMemStore()
	for p, code := range packageFiles {
		require.NoError(t, packages.WriteFile(p, code))
	}

	return project, packages
}

func TestBuild_relativeImportWithoutExtension(t *testing.T) {
	project, packages := testStores(t, map[string]string{
		"/index.ts": "import {add} from './math'; console.log(add(2,3))",
		"/math.ts":  "export function add(a: number, b: number) { return a + b }",
	}, nil)

	result, err := Build(BuildParams{
		EntryPoints: []string{"/index.ts"},
		Project:     project,
		Packages:    packages,
	})
	require.NoError(t, err)

	require.Contains(t, result.Code, "function add")
	require.Contains(t, result.Code, "console.log")
	// The import binds to /math.ts; nothing is left unresolved.
	require.NotContains(t, result.Code, "./math")
}

func TestBuild_mixedRegistrationConventions(t *testing.T) {
	project, packages := testStores(t, map[string]string{
		"index.ts": "import {x} from './util'; console.log(x)",
		"/util.ts": "export const x = 42",
	}, nil)

	result, err := Build(BuildParams{
		EntryPoints: []string{"index.ts"},
		Project:     project,
		Packages:    packages,
	})
	require.NoError(t, err)
	require.Contains(t, result.Code, "42")
}

func TestBuild_packageFromStore(t *testing.T) {
	project, packages := testStores(t, map[string]string{
		"/index.ts": "import {greet} from 'greeter'; console.log(greet('ok'))",
	}, map[string]string{
		"/node_modules/greeter/package.json": `{"module":"esm/index.js","main":"cjs/index.js"}`,
		"/node_modules/greeter/esm/index.js": "export function greet(name) { return 'hi ' + name }",
		"/node_modules/greeter/cjs/index.js": "exports.greet = function() {}",
	})

	result, err := Build(BuildParams{
		EntryPoints: []string{"/index.ts"},
		Project:     project,
		Packages:    packages,
	})
	require.NoError(t, err)

	// The module entry won over main and its source got bundled.
	require.Contains(t, result.Code, "hi ")
	require.NotContains(t, result.Code, "exports.greet")
}

func TestBuild_autoDetectedDependenciesExternalized(t *testing.T) {
	project, packages := testStores(t, map[string]string{
		"/package.json": `{"dependencies":{"react":"18.2.0"}}`,
		"/index.ts":     "import React from 'react'; console.log(React)",
	}, nil)

	result, err := Build(BuildParams{
		EntryPoints: []string{"/index.ts"},
		Project:     project,
		Packages:    packages,
	})
	require.NoError(t, err)

	// react stayed external with the detected version, no explicit
	// dependency argument required.
	require.Contains(t, result.Code, `"react"`)
	require.Equal(t, "18.2.0", result.Dependencies["react"])
	require.Equal(t, "https://esm.sh/react@18.2.0", result.ImportMap.Imports["react"])
}

func TestBuild_subpathImportRecordedOnce(t *testing.T) {
	project, packages := testStores(t, map[string]string{
		"/index.ts": "import './a'; import './b'",
		"/a.ts":     "import {createRoot} from 'react-dom/client'; export const a = createRoot",
		"/b.ts":     "import {createRoot} from 'react-dom/client'; export const b = createRoot",
	}, nil)

	result, err := Build(BuildParams{
		EntryPoints: []string{"/index.ts"},
		Project:     project,
		Packages:    packages,
		Options: &Options{
			Dependencies: map[string]string{"react-dom": "18.2.0"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"react-dom/client"}, result.SubpathImports)
	require.Equal(t, "https://esm.sh/react-dom@18.2.0/client",
		result.ImportMap.Imports["react-dom/client"])
}

func TestBuild_unresolvedImportsAllReported(t *testing.T) {
	project, packages := testStores(t, map[string]string{
		"/index.ts": "import './missing-one'; import './missing-two'",
	}, nil)

	result, err := Build(BuildParams{
		EntryPoints: []string{"/index.ts"},
		Project:     project,
		Packages:    packages,
	})
	require.Error(t, err)
	require.Nil(t, result)

	var notFound *resolve.NotFoundError
	require.True(t, errors.As(err, &notFound))

	// One pass reports every unresolved import, not just the first.
	require.True(t, strings.Contains(err.Error(), "./missing-one"))
	require.True(t, strings.Contains(err.Error(), "./missing-two"))
}

func TestBuild_syntaxErrorReported(t *testing.T) {
	project, packages := testStores(t, map[string]string{
		"/index.ts": "const = broken",
	}, nil)

	result, err := Build(BuildParams{
		EntryPoints: []string{"/index.ts"},
		Project:     project,
		Packages:    packages,
	})
	require.Error(t, err)
	require.Nil(t, result)
}

func TestBuild_afterReset(t *testing.T) {
	Reset()

	project, packages := testStores(t, map[string]string{
		"/index.ts": "console.log('ok')",
	}, nil)

	result, err := Build(BuildParams{
		EntryPoints: []string{"/index.ts"},
		Project:     project,
		Packages:    packages,
	})
	require.NoError(t, err)
	require.Contains(t, result.Code, "ok")
}

func TestBuild_noEntryPoints(t *testing.T) {
	project, packages := testStores(t, nil, nil)

	_, err := Build(BuildParams{
		Project:  project,
		Packages: packages,
	})
	require.Error(t, err)
}
