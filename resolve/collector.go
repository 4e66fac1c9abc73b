// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

// ErrorCollector aggregates per-import failures across one build so a
// single pass reports every unresolved import, not just the first.
type ErrorCollector struct {
	errors   *multierror.Error
	errorsMu *sync.RWMutex
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		errorsMu: &sync.RWMutex{},
	}
}

func (c *ErrorCollector) Collect(err error) {
	c.errorsMu.Lock()
	defer c.errorsMu.Unlock()
	c.errors = multierror.Append(c.errors, err)
}

func (c *ErrorCollector) ErrorOrNil() error {
	c.errorsMu.RLock()
	defer c.errorsMu.RUnlock()
	return c.errors.ErrorOrNil()
}
