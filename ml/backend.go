// backend.go - Backend-Registrierung fuer Graph-Builder
// Dieses Modul definiert die Backend-Factory-Funktionen, ueber die Lowering-Code
// einen neuen Context erzeugt, ohne das konkrete Backend zu kennen.
package ml

import (
	"fmt"
	"sort"
)

var backends = make(map[string]func() (Context, error))

// RegisterBackend registers a factory for fresh builder contexts.
func RegisterBackend(name string, f func() (Context, error)) {
	if _, ok := backends[name]; ok {
		panic("backend: backend already registered")
	}

	backends[name] = f
}

// NewContext creates an empty graph context on the named backend.
func NewContext(name string) (Context, error) {
	if backend, ok := backends[name]; ok {
		return backend()
	}

	return nil, fmt.Errorf("unsupported backend %q", name)
}

// Backends lists the registered backend names.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
