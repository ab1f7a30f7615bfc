package main

import (
	"fmt"
	"slices"
	"strings"

	ballerinabackend "github.com/honeybbq/serviceast/backend/ballerina"
	outlinebackend "github.com/honeybbq/serviceast/backend/outline"
	"github.com/honeybbq/serviceast/pkg/renderer/ballerina"
	"github.com/honeybbq/serviceast/pkg/renderer/outline"
	"github.com/honeybbq/serviceast/pkg/serviceast"
)

type backendEntry struct {
	backend     serviceast.Backend
	description string
}

func buildRegistry() map[string]backendEntry {
	return map[string]backendEntry{
		"ballerina": {
			backend: ballerinabackend.New(
				ballerina.NewPlainTextRenderer(),
				ballerina.NewNotImplementedParser(),
			),
			description: "Ballerina source (.bal)",
		},
		"outline": {
			backend: outlinebackend.New(
				outline.NewYAMLRenderer(),
				outline.NewNotImplementedParser(),
			),
			description: "YAML outline of the tree",
		},
	}
}

func lookupBackend(name string) (serviceast.Backend, error) {
	registry := buildRegistry()
	entry, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %s)", name, strings.Join(backendNames(registry), ", "))
	}
	return entry.backend, nil
}

func backendNames(registry map[string]backendEntry) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
