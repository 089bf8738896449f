// Process-wide table of per-application logging configuration
package registry

import (
	"fmt"
	"loglib/internal/global"
	"sort"
	"sync"
)

// Builds the configuration for an application seen for the first time
type DefaultsFunc func(name string) (app global.Application)

type Registry struct {
	mu       sync.RWMutex
	apps     map[string]global.Application
	defaults DefaultsFunc
}

// Creates an empty registry. Lazily created entries come from defaults.
func New(defaults DefaultsFunc) (registry *Registry) {
	if defaults == nil {
		defaults = func(name string) global.Application {
			return global.Application{Name: name}
		}
	}
	registry = &Registry{
		apps:     make(map[string]global.Application),
		defaults: defaults,
	}
	return
}

// Adds app under its name. An existing entry is only replaced when overwrite is set.
func (registry *Registry) Register(app global.Application, overwrite bool) (registered bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.apps[app.Name]; exists && !overwrite {
		return
	}
	registry.apps[app.Name] = app
	registered = true
	return
}

// Removes the named entry if present
func (registry *Registry) Unregister(name string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.apps, name)
}

// Returns the named configuration, creating a default entry when allowed
func (registry *Registry) Get(name string, create bool) (app global.Application, err error) {
	registry.mu.RLock()
	app, exists := registry.apps[name]
	registry.mu.RUnlock()
	if exists {
		return
	}

	if !create {
		err = fmt.Errorf("%w: %q", global.ErrUnregisteredApplication, name)
		return
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	// Another caller may have created it between the locks
	app, exists = registry.apps[name]
	if exists {
		return
	}
	app = registry.defaults(name)
	app.Name = name
	registry.apps[name] = app
	return
}

// Sorted names of all registered applications
func (registry *Registry) Names() (names []string) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names = make([]string, 0, len(registry.apps))
	for name := range registry.apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
