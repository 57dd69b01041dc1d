package indicator

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

// LibraryRegistry manages the available Indicator Library implementations.
type LibraryRegistry interface {
	RegisterLibrary(library Library) error
	GetLibrary(name LibraryType) (Library, error)
	ListLibraries() []LibraryType
	RemoveLibrary(name LibraryType) error
}

// LibraryRegistryV1 manages the available Indicator Library implementations.
type LibraryRegistryV1 struct {
	libraries map[LibraryType]Library
	mu        sync.RWMutex
}

// NewLibraryRegistry creates a new, empty library registry.
func NewLibraryRegistry() LibraryRegistry {
	return &LibraryRegistryV1{
		libraries: make(map[LibraryType]Library),
		mu:        sync.RWMutex{},
	}
}

// DefaultRegistry returns a registry holding the go-talib and native libraries.
func DefaultRegistry() LibraryRegistry {
	registry := NewLibraryRegistry()
	// both names are distinct, registration cannot fail
	_ = registry.RegisterLibrary(NewTALib())
	_ = registry.RegisterLibrary(NewNative())

	return registry
}

// RegisterLibrary adds a library to the registry.
func (r *LibraryRegistryV1) RegisterLibrary(library Library) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := library.Name()
	if _, exists := r.libraries[name]; exists {
		return errors.Newf(errors.ErrCodeIndicatorAlreadyExists, "RegisterLibrary: library with name %s already registered", name)
	}

	r.libraries[name] = library

	return nil
}

// GetLibrary retrieves a library by name.
func (r *LibraryRegistryV1) GetLibrary(name LibraryType) (Library, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	library, exists := r.libraries[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeIndicatorNotFound, "GetLibrary: library with name %s not found", name)
	}

	return library, nil
}

// ListLibraries returns the registered library names in sorted order.
func (r *LibraryRegistryV1) ListLibraries() []LibraryType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]LibraryType, 0, len(r.libraries))
	for name := range r.libraries {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// RemoveLibrary removes a library from the registry.
func (r *LibraryRegistryV1) RemoveLibrary(name LibraryType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.libraries[name]; !exists {
		return errors.Newf(errors.ErrCodeIndicatorNotFound, "RemoveLibrary: library with name %s not found", name)
	}

	delete(r.libraries, name)

	return nil
}
