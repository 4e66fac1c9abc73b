// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"io"
	"log"
	"path"
	"strings"

	"github.com/previewkit/bundlekit/pkgfs"
	"github.com/previewkit/bundlekit/vfs"
)

// Namespace tags every resolution result with the domain that supplies
// the module's bytes. A path is never resolved into two namespaces at
// once.
type Namespace string

const (
	// NamespaceProject covers files registered in the virtual file
	// store.
	NamespaceProject Namespace = "project"

	// NamespacePackage covers files inside installed packages in the
	// package store.
	NamespacePackage Namespace = "package"

	// NamespaceExternal covers bare imports deferred to a runtime
	// loader; their contents are never requested.
	NamespaceExternal Namespace = "external"
)

// DefaultPackagesRoot is where installed packages live in the simulated
// filesystem unless the caller says otherwise.
const DefaultPackagesRoot = "/node_modules"

// Candidate extension order is fixed and tried the same way for every
// lookup; the first existing candidate always wins.
var (
	packageExtensions = []string{".js", ".jsx", ".ts", ".tsx"}
	projectExtensions = []string{".ts", ".tsx", ".js", ".jsx"}
)

// ResolvedModule is the outcome of one resolve call.
type ResolvedModule struct {
	Path      string
	Namespace Namespace
	External  bool
}

type ResolverParams struct {
	Project  *vfs.Store
	Packages pkgfs.Store

	// PackagesRoot overrides DefaultPackagesRoot.
	PackagesRoot string

	// Dependencies is the explicit package name to version map. When
	// set (non-nil, even if empty) it overrides the map detected from
	// the project's own /package.json; the two are never merged.
	Dependencies map[string]string
}

// Resolver implements the bundler's resolve/load hooks over the two
// stores. The stores are owned by the caller; the resolver owns the
// subpath-import accumulator exclusively and exposes it read-only.
type Resolver struct {
	project      *vfs.Store
	packages     pkgfs.Store
	packagesRoot string
	deps         map[string]string
	subpaths     *SubpathSet

	logger *log.Logger
}

func NewResolver(params ResolverParams) *Resolver {
	root := params.PackagesRoot
	if root == "" {
		root = DefaultPackagesRoot
	}

	r := &Resolver{
		project:      params.Project,
		packages:     params.Packages,
		packagesRoot: root,
		subpaths:     NewSubpathSet(),
		logger:       log.New(io.Discard, "", 0),
	}

	if params.Dependencies != nil {
		r.deps = params.Dependencies
	} else {
		r.deps = r.detectDependencies()
	}

	return r
}

func (r *Resolver) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Dependencies returns the effective package name to version map for
// this build (explicit, or detected from the project manifest).
func (r *Resolver) Dependencies() map[string]string {
	deps := make(map[string]string, len(r.deps))
	for name, version := range r.deps {
		deps[name] = version
	}
	return deps
}

// SubpathImports returns the accumulated externalized subpath imports,
// sorted. It is meant to be read once, after a build completes.
func (r *Resolver) SubpathImports() []string {
	return r.subpaths.Values()
}

// Resolve decides which concrete file, if any, the specifier refers to
// when imported from importer in the given namespace.
//
// An unresolved relative import fails here, at resolve time, with a
// *NotFoundError; it is never passed through to load. The error is per
// specifier/importer pair and does not prevent other imports in the
// same build from resolving.
func (r *Resolver) Resolve(specifier, importer string, ns Namespace) (ResolvedModule, error) {
	// Entry points arrive without an importer and name project files
	// directly.
	if importer == "" {
		return ResolvedModule{
			Path:      vfs.Normalize(specifier),
			Namespace: NamespaceProject,
		}, nil
	}

	if isBare(specifier) {
		return r.resolveBare(specifier)
	}

	joined := specifier
	if strings.HasPrefix(specifier, ".") {
		joined = path.Join(path.Dir(importer), specifier)
	}
	joined = vfs.Normalize(joined)

	// Relative and absolute specifiers stay in the importer's
	// namespace: files inside a package resolve against the package
	// store, everything else against the project store.
	if ns == NamespacePackage {
		if found, ok := findCandidate(joined, projectExtensions, r.packages.Exists); ok {
			return ResolvedModule{Path: found, Namespace: NamespacePackage}, nil
		}
	} else {
		if found, ok := findCandidate(joined, projectExtensions, r.project.Exists); ok {
			return ResolvedModule{Path: found, Namespace: NamespaceProject}, nil
		}
	}

	return ResolvedModule{}, &NotFoundError{Specifier: specifier, Importer: importer}
}

// resolveBare resolves a bare specifier ("pkg" or "pkg/subpath")
// against the package store, externalizing it when no local candidate
// exists.
func (r *Resolver) resolveBare(specifier string) (ResolvedModule, error) {
	name, subpath := SplitSpecifier(specifier)
	pkgDir := path.Join(r.packagesRoot, name)

	if r.packages.IsPackageDir(pkgDir) {
		if subpath == "" {
			entry, err := r.packageEntry(pkgDir)
			if err != nil {
				// Malformed or unreadable manifest externalizes this
				// one import instead of aborting the pass.
				r.logger.Printf("resolve: package %q: %s", name, err)
			}
			if entry != "" {
				return ResolvedModule{Path: entry, Namespace: NamespacePackage}, nil
			}
		} else {
			candidate := path.Join(pkgDir, subpath)
			if found, ok := findCandidate(candidate, packageExtensions, r.packages.Exists); ok {
				return ResolvedModule{Path: found, Namespace: NamespacePackage}, nil
			}
		}
	}

	if subpath != "" {
		r.subpaths.Add(specifier)
	}

	// The specifier is preserved verbatim for the runtime loader.
	return ResolvedModule{
		Path:      specifier,
		Namespace: NamespaceExternal,
		External:  true,
	}, nil
}

// packageEntry picks a package's entry file by manifest priority
// (module, then main, then the index.js literal) and verifies it
// exists. An empty path with nil error means no usable entry.
func (r *Resolver) packageEntry(pkgDir string) (string, error) {
	manifestPath := path.Join(pkgDir, "package.json")

	raw, err := r.packages.ReadFile(manifestPath)
	if err != nil {
		return "", err
	}

	m, err := pkgfs.ParseManifest([]byte(raw))
	if err != nil {
		if parseErr, ok := err.(*pkgfs.ManifestParseError); ok {
			parseErr.Path = manifestPath
		}
		return "", err
	}

	entry := path.Join(pkgDir, m.EntryPoint())
	if !r.packages.Exists(entry) {
		return "", nil
	}

	return entry, nil
}

// detectDependencies reads the project's own manifest once per build.
// A missing manifest means no detected dependencies; a malformed one is
// logged and treated the same.
func (r *Resolver) detectDependencies() map[string]string {
	if r.project == nil {
		return map[string]string{}
	}

	raw, err := r.project.ReadFile("/package.json")
	if err != nil {
		return map[string]string{}
	}

	m, err := pkgfs.ParseManifest([]byte(raw))
	if err != nil {
		r.logger.Printf("resolve: project manifest: %s", err)
		return map[string]string{}
	}
	if m.Dependencies == nil {
		return map[string]string{}
	}

	return m.Dependencies
}

// findCandidate probes the exact path, the path with each extension
// appended, then the path treated as a directory holding an index file,
// in one fixed order.
func findCandidate(p string, exts []string, exists func(string) bool) (string, bool) {
	if exists(p) {
		return p, true
	}

	for _, ext := range exts {
		if candidate := p + ext; exists(candidate) {
			return candidate, true
		}
	}

	dirPrefix := strings.TrimSuffix(p, "/") + "/"
	for _, ext := range exts {
		if candidate := dirPrefix + "index" + ext; exists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

func isBare(specifier string) bool {
	return !strings.HasPrefix(specifier, ".") && !strings.HasPrefix(specifier, "/")
}

// SplitSpecifier splits a bare specifier into package name and subpath.
// Scoped names ("@scope/name") count as one package name.
func SplitSpecifier(specifier string) (name, subpath string) {
	segments := 1
	if strings.HasPrefix(specifier, "@") {
		segments = 2
	}

	parts := strings.SplitN(specifier, "/", segments+1)
	if len(parts) <= segments {
		return specifier, ""
	}

	return strings.Join(parts[:segments], "/"), parts[segments]
}
