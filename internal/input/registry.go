package input

import (
	"fmt"
	"sort"
	"sync"
)

// Factory is a function that creates a new input source.
type Factory func() (Source, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds an input source factory under a name ("keyboard", "tilt").
// Typically called from an init() function. Panics if the name is taken.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("input: source %q already registered", name))
	}
	factories[name] = f
}

// New instantiates an input source by name.
// Returns an error if no source with that name is registered.
func New(name string) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("input: unknown source %q", name)
	}
	return f()
}

// Exists checks if a source with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// List returns the registered source names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
