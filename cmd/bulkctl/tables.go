package main

import (
	"fmt"
	"strings"

	"github.com/arloliu/grnbulk/domain"
	"github.com/arloliu/grnbulk/format"
)

var tableCategories = map[string]format.Category{
	"hash":  format.CategoryTableHashKey,
	"pat":   format.CategoryTablePatKey,
	"nokey": format.CategoryTableNoKey,
}

// buildRegistry returns a registry holding the built-in domains and the tables named by
// specs, registered in order.
func buildRegistry(specs []string) (*domain.MemoryRegistry, error) {
	registry := domain.NewMemoryRegistry()

	for _, spec := range specs {
		name, kind, found := strings.Cut(spec, ":")
		if !found {
			kind = "hash"
		}

		category, ok := tableCategories[kind]
		if !ok {
			return nil, fmt.Errorf("table %q: unknown key type %q", name, kind)
		}
		if _, err := registry.RegisterTable(name, category); err != nil {
			return nil, fmt.Errorf("table %q: %w", name, err)
		}
	}

	return registry, nil
}

// resolveDomain maps a --domain value to an id. It accepts a number or a registered
// name.
func resolveDomain(registry *domain.MemoryRegistry, name string) (format.ID, error) {
	if d, ok := registry.Lookup(name); ok {
		return d.ID, nil
	}

	id, err := parseID(name)
	if err != nil {
		return format.NilID, fmt.Errorf("unknown domain %q, registered: %s",
			name, strings.Join(registry.Names(), ", "))
	}

	return id, nil
}
