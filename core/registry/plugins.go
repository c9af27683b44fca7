// ABOUTME: PluginRegistry maps plugin names to collector implementations
// ABOUTME: Registration happens at startup; lookups are read-only afterwards

package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"newswire-collector/core/collector"
	coreerrors "newswire-collector/core/errors"
)

// PluginRegistry holds the named collector plugins
type PluginRegistry struct {
	mu      sync.RWMutex
	plugins map[string]collector.Plugin
}

// NewPluginRegistry creates an empty plugin registry
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{
		plugins: make(map[string]collector.Plugin),
	}
}

// Register adds a plugin under the given name. Registering the same
// name twice is an error.
func (r *PluginRegistry) Register(name string, plugin collector.Plugin) error {
	if name == "" {
		return errors.New("plugin name cannot be empty")
	}
	if plugin == nil {
		return errors.New("plugin cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin %q is already registered", name)
	}

	r.plugins[name] = plugin
	return nil
}

// Resolve returns the plugin registered under name
func (r *PluginRegistry) Resolve(name string) (collector.Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[name]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "plugin", ID: name}
	}

	return plugin, nil
}

// Names returns the registered plugin names in sorted order
func (r *PluginRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
