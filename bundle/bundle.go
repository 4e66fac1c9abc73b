// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/hashicorp/go-uuid"

	"github.com/previewkit/bundlekit/importmap"
	"github.com/previewkit/bundlekit/pkgfs"
	"github.com/previewkit/bundlekit/resolve"
	"github.com/previewkit/bundlekit/vfs"
)

// Shared bundler defaults are process-wide state, initialized lazily on
// first Build, re-initializable via Reset, never re-entered per call.
type bundlerDefaults struct {
	format   api.Format
	platform api.Platform
	target   api.Target
}

var (
	defaultsMu  sync.Mutex
	defaultsSet bool
	defaults    bundlerDefaults
)

func ensureInitialized() bundlerDefaults {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	if !defaultsSet {
		defaults = bundlerDefaults{
			format:   api.FormatESModule,
			platform: api.PlatformBrowser,
			target:   api.ESNext,
		}
		defaultsSet = true
	}

	return defaults
}

// Reset tears down the lazily-initialized bundler defaults. The next
// Build re-initializes them.
func Reset() {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultsSet = false
}

type BuildParams struct {
	// EntryPoints name project files, with or without a leading slash.
	EntryPoints []string

	Project  *vfs.Store
	Packages pkgfs.Store

	// Options are optional host options; see DecodeOptions for
	// duck-typed input.
	Options *Options

	Logger *log.Logger
}

// Result is the outcome of one successful build.
type Result struct {
	// Code is the bundled output.
	Code string

	Warnings []string

	// SubpathImports are the externalized bare subpath imports
	// accumulated during the pass, sorted, each recorded once.
	SubpathImports []string

	// Dependencies is the effective package name to version map
	// (explicit, or auto-detected from the project manifest).
	Dependencies map[string]string

	// ImportMap maps every externalized dependency and subpath to a
	// CDN URL.
	ImportMap *importmap.ImportMap
}

// Build bundles the project held in params.Project, resolving bare
// imports against params.Packages and externalizing what neither store
// can satisfy.
//
// Resolution and load failures do not abort the walk; the returned
// error aggregates every failed import of the pass. On error no Result
// is returned: a failed build's partially-populated accumulator is
// never exposed.
func Build(params BuildParams) (*Result, error) {
	shared := ensureInitialized()

	if len(params.EntryPoints) == 0 {
		return nil, errors.New("at least one entry point is required")
	}
	if params.Project == nil || params.Packages == nil {
		return nil, errors.New("both a project store and a package store are required")
	}

	opts := params.Options
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	logger := params.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	buildID, err := uuid.GenerateUUID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate build ID: %w", err)
	}
	logger.Printf("bundle: build %s starting with %d entry point(s)", buildID, len(params.EntryPoints))

	resolver := resolve.NewResolver(resolve.ResolverParams{
		Project:      params.Project,
		Packages:     params.Packages,
		PackagesRoot: opts.PackagesRoot,
		Dependencies: opts.Dependencies,
	})
	resolver.SetLogger(logger)

	collector := resolve.NewErrorCollector()

	res := api.Build(api.BuildOptions{
		EntryPoints: params.EntryPoints,
		Bundle:      true,
		Write:       false,
		Format:      shared.format,
		Platform:    shared.platform,
		Target:      shared.target,
		LogLevel:    api.LogLevelSilent,
		Plugins:     []api.Plugin{newPlugin(resolver, collector)},
	})

	if len(res.Errors) > 0 {
		// Hook failures were collected as typed errors when they
		// happened; fold in anything esbuild found on its own
		// (e.g. syntax errors).
		for _, msg := range res.Errors {
			if msg.PluginName == "" {
				collector.Collect(errors.New(formatMessage(msg)))
			}
		}
		logger.Printf("bundle: build %s failed with %d error(s)", buildID, len(res.Errors))
		return nil, collector.ErrorOrNil()
	}

	if len(res.OutputFiles) == 0 {
		return nil, errors.New("bundler produced no output")
	}

	warnings := make([]string, 0, len(res.Warnings))
	for _, msg := range res.Warnings {
		warnings = append(warnings, formatMessage(msg))
	}

	deps := resolver.Dependencies()
	subpaths := resolver.SubpathImports()
	logger.Printf("bundle: build %s done, %d externalized subpath import(s)", buildID, len(subpaths))

	return &Result{
		Code:           string(res.OutputFiles[0].Contents),
		Warnings:       warnings,
		SubpathImports: subpaths,
		Dependencies:   deps,
		ImportMap:      importmap.Generate(deps, subpaths, opts.CDNBase),
	}, nil
}

func formatMessage(msg api.Message) string {
	if msg.Location != nil {
		return fmt.Sprintf("%s:%d: %s", msg.Location.File, msg.Location.Line, msg.Text)
	}
	return msg.Text
}
