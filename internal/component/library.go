package component

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

// Library is a named set of component definitions.
type Library struct {
	mu   sync.RWMutex
	defs map[string]*Definition
	log  *logger.Logger
}

// NewLibrary returns an empty library.
func NewLibrary(log *logger.Logger) *Library {
	return &Library{defs: make(map[string]*Definition), log: log}
}

// Builtin returns a library holding every built-in component.
func Builtin(log *logger.Logger) *Library {
	lib := NewLibrary(log)
	if err := lib.Register(builtinDefinitions()...); err != nil {
		panic(err)
	}
	return lib
}

// Register adds definitions. Names must be unique within the library; nothing
// is added when any definition is rejected.
func (l *Library) Register(defs ...*Definition) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	pending := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		switch {
		case def == nil || def.Table == nil:
			return fmt.Errorf("component definition has no variant table")
		case def.Name == "":
			return fmt.Errorf("component definition has no name")
		}
		if _, exists := l.defs[def.Name]; exists {
			return fmt.Errorf("component %q already registered", def.Name)
		}
		if _, dup := pending[def.Name]; dup {
			return fmt.Errorf("component %q defined twice", def.Name)
		}
		pending[def.Name] = struct{}{}
	}

	for _, def := range defs {
		l.defs[def.Name] = def
		l.log.WithComponent(def.Name).Debug("component registered")
	}
	return nil
}

// Get looks up a definition by name.
func (l *Library) Get(name string) (*Definition, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	def, ok := l.defs[name]
	return def, ok
}

// Names returns the registered names, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.defs))
	for name := range l.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the definitions sorted by name.
func (l *Library) All() []*Definition {
	names := l.Names()

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Definition, 0, len(names))
	for _, name := range names {
		if def, ok := l.defs[name]; ok {
			out = append(out, def)
		}
	}
	return out
}

// Resolve resolves the named component.
func (l *Library) Resolve(name string, sel variant.Selection, override string) (string, error) {
	def, ok := l.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown component %q", name)
	}
	return def.Classes(sel, override)
}
