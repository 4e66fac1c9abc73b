// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type Options struct {
	// CDNBase is the URL prefix for import-map entries; empty means
	// the importmap package default.
	CDNBase string `mapstructure:"cdnBase"`

	// PackagesRoot is where installed packages live in the simulated
	// filesystem; empty means /node_modules.
	PackagesRoot string `mapstructure:"packagesRoot"`

	// Dependencies maps package names to version strings. When set it
	// overrides the map auto-detected from the project's own
	// package.json; the two are never merged.
	Dependencies map[string]string `mapstructure:"dependencies"`
}

func (o *Options) Validate() error {
	if o.CDNBase != "" {
		u, err := url.Parse(o.CDNBase)
		if err != nil {
			return fmt.Errorf("invalid cdnBase %q: %s", o.CDNBase, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("expected http(s) URL for cdnBase, got %q", o.CDNBase)
		}
	}

	if o.PackagesRoot != "" && !strings.HasPrefix(o.PackagesRoot, "/") {
		return fmt.Errorf("expected absolute path for packagesRoot, got %q", o.PackagesRoot)
	}

	return nil
}

type DecodedOptions struct {
	Options    *Options
	UnusedKeys []string
}

// DecodeOptions decodes duck-typed host options (e.g. a JSON object
// received from an editor frontend) into Options, reporting any keys
// the decoder did not recognize.
func DecodeOptions(input interface{}) (*DecodedOptions, error) {
	var md mapstructure.Metadata
	var options Options

	config := &mapstructure.DecoderConfig{
		Metadata: &md,
		Result:   &options,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		panic(err)
	}

	if err := decoder.Decode(input); err != nil {
		return nil, err
	}

	return &DecodedOptions{
		Options:    &options,
		UnusedKeys: md.Unused,
	}, nil
}
