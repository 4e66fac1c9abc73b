// Copyright (c) The bundlekit Authors
// SPDX-License-Identifier: MPL-2.0

package importmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
)

func TestGenerate(t *testing.T) {
	deps := map[string]string{
		"react":     "18.2.0",
		"react-dom": "18.2.0",
	}
	subpaths := []string{"react-dom/client", "date-fns/esm"}

	m := Generate(deps, subpaths, "")

	expected := map[string]string{
		"react":            "https://esm.sh/react@18.2.0",
		"react-dom":        "https://esm.sh/react-dom@18.2.0",
		"react-dom/client": "https://esm.sh/react-dom@18.2.0/client",
		"date-fns/esm":     "https://esm.sh/date-fns@latest/esm",
	}
	if diff := cmp.Diff(expected, m.Imports); diff != "" {
		t.Fatalf("unexpected imports: %s", diff)
	}
}

func TestGenerate_customBase(t *testing.T) {
	m := Generate(map[string]string{"vue": "3.4.0"}, nil, "https://cdn.example.com/")

	expected := "https://cdn.example.com/vue@3.4.0"
	if m.Imports["vue"] != expected {
		t.Fatalf("unexpected URL.\nexpected: %q\ngiven: %q",
			expected, m.Imports["vue"])
	}
}

func TestGenerate_scopedSubpath(t *testing.T) {
	m := Generate(map[string]string{"@scope/pkg": "1.0.0"}, []string{"@scope/pkg/sub"}, "")

	expected := "https://esm.sh/@scope/pkg@1.0.0/sub"
	if m.Imports["@scope/pkg/sub"] != expected {
		t.Fatalf("unexpected URL.\nexpected: %q\ngiven: %q",
			expected, m.Imports["@scope/pkg/sub"])
	}
}

func TestMarshalIndent_golden(t *testing.T) {
	deps := map[string]string{
		"react":     "18.2.0",
		"react-dom": "18.2.0",
	}
	subpaths := []string{"react-dom/client"}

	b, err := Generate(deps, subpaths, "").MarshalIndent()
	if err != nil {
		t.Fatal(err)
	}

	g := goldie.New(t)
	g.Assert(t, "import_map", b)
}
