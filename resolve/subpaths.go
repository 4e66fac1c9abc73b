// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"sort"
	"sync"
)

// SubpathSet accumulates externalized bare subpath imports
// ("pkg/subpath") during one build pass. Insertion is idempotent and
// safe under the bundler's concurrent graph walk.
type SubpathSet struct {
	imports   map[string]struct{}
	importsMu *sync.RWMutex
}

func NewSubpathSet() *SubpathSet {
	return &SubpathSet{
		imports:   make(map[string]struct{}, 0),
		importsMu: &sync.RWMutex{},
	}
}

func (s *SubpathSet) Add(specifier string) {
	s.importsMu.Lock()
	defer s.importsMu.Unlock()
	s.imports[specifier] = struct{}{}
}

func (s *SubpathSet) Len() int {
	s.importsMu.RLock()
	defer s.importsMu.RUnlock()
	return len(s.imports)
}

// Values returns a sorted copy of the accumulated specifiers.
func (s *SubpathSet) Values() []string {
	s.importsMu.RLock()
	defer s.importsMu.RUnlock()

	values := make([]string, 0, len(s.imports))
	for spec := range s.imports {
		values = append(values, spec)
	}
	sort.Strings(values)

	return values
}
