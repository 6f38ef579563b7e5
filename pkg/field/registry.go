package field

import (
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Constructor builds a field instance from a definition triple.
type Constructor func(name, label string, cfg Config) Field

// Registry maps type-name strings to field constructors, enabling
// string-driven instantiation and third-party type extension. Registration
// overwrites silently proceed but always warn, even when the same
// constructor is registered twice; lookups for unknown kinds return absent
// without a warning, leaving fallback policy to the caller.
//
// The default registry lives for the process: populated with the built-in
// kinds at init time, optionally extended at runtime, never torn down. The
// mutex exists because registration may race with concurrent field
// construction on multi-threaded hosts.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register stores ctor under kind, overwriting any existing entry. Overwrites
// warn unconditionally so duplicate registrations stay visible in logs.
func (r *Registry) Register(kind string, ctor Constructor) {
	if ctor == nil {
		return
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return
	}
	r.mu.Lock()
	_, exists := r.ctors[kind]
	r.ctors[kind] = ctor
	r.mu.Unlock()

	if exists {
		log.Warn("field type registered twice, keeping the newest constructor", "kind", kind)
	}
}

// Lookup returns the constructor for kind. Matching is exact and
// case-sensitive; absence is not an error.
func (r *Registry) Lookup(kind string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[kind]
	return ctor, ok
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	_, ok := r.Lookup(kind)
	return ok
}

// Kinds returns every registered type name, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Delete removes kind from the registry. Removing an absent kind is a no-op.
func (r *Registry) Delete(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ctors, kind)
}

// New constructs a field of the given kind, reporting false for unknown
// kinds so callers can pick their own fallback (commonly the text type).
func (r *Registry) New(kind, name, label string, cfg Config) (Field, bool) {
	ctor, ok := r.Lookup(kind)
	if !ok {
		return nil, false
	}
	return ctor(name, label, cfg), true
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry the built-in kinds register into.
func Default() *Registry { return defaultRegistry }

// Register adds a constructor to the default registry.
func Register(kind string, ctor Constructor) { defaultRegistry.Register(kind, ctor) }

// New constructs a field of the given kind from the default registry.
func New(kind, name, label string, cfg Config) (Field, bool) {
	return defaultRegistry.New(kind, name, label, cfg)
}
