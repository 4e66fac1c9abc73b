// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package bundle

import (
	"github.com/evanw/esbuild/pkg/api"

	"github.com/previewkit/bundlekit/resolve"
)

const pluginName = "bundlekit"

// newPlugin adapts the resolver's pure resolve/load contract onto
// esbuild's plugin interface. Hook errors are attached to the importing
// location by esbuild and collected so the whole pass reports every
// failure; esbuild may invoke the hooks concurrently for independent
// subgraphs.
func newPlugin(resolver *resolve.Resolver, collector *resolve.ErrorCollector) api.Plugin {
	return api.Plugin{
		Name: pluginName,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `.*`},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					mod, err := resolver.Resolve(args.Path, args.Importer, resolve.Namespace(args.Namespace))
					if err != nil {
						collector.Collect(err)
						return api.OnResolveResult{}, err
					}

					return api.OnResolveResult{
						Path:      mod.Path,
						Namespace: string(mod.Namespace),
						External:  mod.External,
					}, nil
				})

			onLoad := func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				src, err := resolver.Load(args.Path, resolve.Namespace(args.Namespace))
				if err != nil {
					collector.Collect(err)
					return api.OnLoadResult{}, err
				}

				contents := src.Contents
				return api.OnLoadResult{
					Contents: &contents,
					Loader:   loaderForKind(src.Kind),
				}, nil
			}

			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: string(resolve.NamespaceProject)}, onLoad)
			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: string(resolve.NamespacePackage)}, onLoad)
		},
	}
}

func loaderForKind(kind resolve.SourceKind) api.Loader {
	switch kind {
	case resolve.KindTSX:
		return api.LoaderTSX
	case resolve.KindTS:
		return api.LoaderTS
	case resolve.KindJSX:
		return api.LoaderJSX
	}
	return api.LoaderJS
}
