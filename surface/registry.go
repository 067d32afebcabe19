// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a new Surface with the given configuration.
// Implementations should validate the configuration and return
// descriptive errors.
type Factory func(cfg Config) (Surface, error)

// RegistryEntry represents a registered surface toolkit.
type RegistryEntry struct {
	// Name is the unique identifier for this toolkit.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native toolkits (GL ES view, EGL window)
	//   - 10: headless surfaces
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the toolkit can create surfaces on this host.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered surface toolkits.
//
// Host shells register the toolkit they embed and the lifecycle bridge
// asks the registry for a surface once the capability check passed.
//
// Example registration:
//
//	func init() {
//	    surface.Register("glview", 100, newGLView, nil)
//	}
//
// Example usage:
//
//	s, err := surface.NewSurfaceByName("glview", surface.Config{})
//	// or auto-select best available:
//	s, err := surface.NewSurface(surface.Config{})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewSurface.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Default returns the global registry.
func Default() *Registry {
	return globalRegistry
}

// Register adds a toolkit to the global registry.
//
// If available is nil, the toolkit is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// List returns all registered toolkit names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available toolkits sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// Get returns information about a specific toolkit.
func Get(name string) (*RegistryEntry, bool) {
	return globalRegistry.Get(name)
}

// NewSurface creates a surface using the best available toolkit.
func NewSurface(cfg Config) (Surface, error) {
	return globalRegistry.NewSurface(cfg)
}

// NewSurfaceByName creates a surface using a specific named toolkit.
func NewSurfaceByName(name string, cfg Config) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, cfg)
}

// Register adds a toolkit to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// List returns all registered toolkit names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available toolkits sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific toolkit.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// NewSurface creates a surface using the best available toolkit.
// Toolkits are tried in priority order until one succeeds.
func (r *Registry) NewSurface(cfg Config) (Surface, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range available {
		s, err := r.NewSurfaceByName(name, cfg)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// NewSurfaceByName creates a surface using a specific toolkit.
func (r *Registry) NewSurfaceByName(name string, cfg Config) (Surface, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	s, err := entry.Factory(cfg)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &BackendUnavailableError{Name: name}
	}
	return s, nil
}

// sortedNames returns toolkit names sorted by priority (highest first),
// ties broken by name. If onlyAvailable is true, filters to available
// toolkits only. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no surface toolkits are
	// registered or available on the current host.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named toolkit is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a toolkit exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in headless toolkit.
func init() {
	Register(HeadlessName, 10, func(cfg Config) (Surface, error) {
		return NewHeadless(cfg), nil
	}, nil)
}
