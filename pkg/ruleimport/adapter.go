package ruleimport

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Adapter defines a rule-pack importer that downloads an upstream rule
// source, transforms it, and writes a rulepack.yaml into the packs directory.
type Adapter interface {
	// ID returns the unique identifier of this adapter (e.g. "bmpm-rules-pl").
	ID() string
	// PackID returns the target rule pack ID (e.g. "polish-v1").
	PackID() string
	// Description returns a human-readable description.
	Description() string
	// DefaultURL returns the default source URL used for seeding the database.
	DefaultURL() string
	// License returns the license identifier for this source (e.g. "GPL-3.0", "CC-BY").
	License() string
	// Import downloads the source from sourceURL, transforms it, and writes
	// rulepack.yaml into a subdirectory of packsDir named after PackID().
	Import(ctx context.Context, sourceURL, packsDir string) error
}

var (
	registryMu sync.RWMutex
	adapters   = make(map[string]Adapter)
)

// Register adds an adapter to the global registry.
func Register(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	adapters[a.ID()] = a
}

// Get returns a registered adapter by ID, or an error if not found.
func Get(id string) (Adapter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := adapters[id]
	if !ok {
		return nil, fmt.Errorf("unknown import source: %q", id)
	}
	return a, nil
}

// All returns all registered adapters sorted by ID.
func All() []Adapter {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]Adapter, 0, len(adapters))
	for _, a := range adapters {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}
