// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package resolve

import "fmt"

// NotFoundError reports a specifier which matched no fallback candidate
// in its applicable namespace.
type NotFoundError struct {
	Specifier string
	Importer  string
}

func (e *NotFoundError) Error() string {
	if e.Importer == "" {
		return fmt.Sprintf("unable to resolve %q", e.Specifier)
	}
	return fmt.Sprintf("unable to resolve %q from %s", e.Specifier, e.Importer)
}

// InconsistencyError reports an engine defect: a path produced by
// Resolve was missing at load time, or load was requested for a
// namespace which never carries contents.
type InconsistencyError struct {
	Path      string
	Namespace Namespace
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("internal consistency fault: %q in namespace %q", e.Path, e.Namespace)
}
