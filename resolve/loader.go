// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package resolve

import "strings"

// SourceKind tells the bundler how to lex a module's contents.
type SourceKind int

const (
	KindJS SourceKind = iota
	KindJSX
	KindTS
	KindTSX
)

func (k SourceKind) String() string {
	switch k {
	case KindJSX:
		return "jsx"
	case KindTS:
		return "ts"
	case KindTSX:
		return "tsx"
	}
	return "js"
}

// KindForPath infers the loader kind from the filename suffix, checking
// tsx before ts before jsx, defaulting to plain script.
func KindForPath(p string) SourceKind {
	switch {
	case strings.HasSuffix(p, ".tsx"):
		return KindTSX
	case strings.HasSuffix(p, ".ts"):
		return KindTS
	case strings.HasSuffix(p, ".jsx"):
		return KindJSX
	}
	return KindJS
}

// Source is the outcome of one load call.
type Source struct {
	Contents string
	Kind     SourceKind
}

// Load returns the contents and loader kind for a path previously
// produced by Resolve.
//
// A miss here is an internal-consistency fault, not an ordinary not
// found: the path came out of Resolve against the same store. It is
// logged and surfaced as a distinct *InconsistencyError. External
// modules never reach Load.
func (r *Resolver) Load(p string, ns Namespace) (Source, error) {
	switch ns {
	case NamespaceProject:
		code, err := r.project.ReadFile(p)
		if err != nil {
			r.logger.Printf("load: consistency fault: resolved project file %q: %s", p, err)
			return Source{}, &InconsistencyError{Path: p, Namespace: ns}
		}
		return Source{Contents: code, Kind: KindForPath(p)}, nil

	case NamespacePackage:
		code, err := r.packages.ReadFile(p)
		if err != nil {
			r.logger.Printf("load: consistency fault: resolved package file %q: %s", p, err)
			return Source{}, &InconsistencyError{Path: p, Namespace: ns}
		}
		return Source{Contents: code, Kind: KindForPath(p)}, nil
	}

	r.logger.Printf("load: consistency fault: load requested for %q in namespace %q", p, ns)
	return Source{}, &InconsistencyError{Path: p, Namespace: ns}
}
