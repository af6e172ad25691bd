// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"slices"
	"sync"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"
	// BackendGPU is the name of the backend driven by the gg GPU accelerator.
	BackendGPU = "gpu"
)

// Factory creates a new backend instance.
type Factory func() Backend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendGPU, BackendSoftware}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Names returns the sorted names of registered backends.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get returns a backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) Backend {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend based on priority.
// Priority order: gpu > software, then any other registered backend in
// name order. Backends whose Available reports false are skipped.
// Returns nil if no usable backend is registered.
func Default() Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if b := usable(backends[name]); b != nil {
			return b
		}
	}

	// Fallback: first usable in name order, so selection is deterministic.
	names := make([]string, 0, len(backends))
	for name := range backends {
		if !slices.Contains(backendPriority, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		if b := usable(backends[name]); b != nil {
			return b
		}
	}
	return nil
}

func usable(factory Factory) Backend {
	if factory == nil {
		return nil
	}
	b := factory()
	if b == nil || !b.Available() {
		return nil
	}
	return b
}
