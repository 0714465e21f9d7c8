package charset

import "sync"

// Registry is a type for holding charsets loaded for a session, keyed by
// name. Several modes commonly share one charset (e.g. several Tengwar
// modes for different languages reusing "tengwar-glaemscribe"), so
// charsets are loaded once and looked up by name rather than reloaded per
// Mode.
//
// Modeled on the teacher's font registry: a mutex-guarded map behind a
// process-wide singleton, repurposed here to hold Charset objects instead
// of ScalableFont/TypeCase objects.
type Registry struct {
	sync.Mutex
	charsets map[string]*Charset
}

var globalRegistry *Registry
var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton holding every charset
// loaded during the process lifetime.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// NewRegistry creates an empty, independent registry — useful for tests
// that must not pollute the global singleton.
func NewRegistry() *Registry {
	return &Registry{charsets: make(map[string]*Charset)}
}

// Store registers cs under its own name if that name isn't already
// present. An already-registered charset is never silently overridden;
// callers that need to replace one must Remove it first.
func (r *Registry) Store(cs *Charset) {
	if cs == nil {
		Tracer().Errorf("charset registry cannot store a nil charset")
		return
	}
	r.Lock()
	defer r.Unlock()
	if _, ok := r.charsets[cs.Name]; !ok {
		Tracer().Debugf("charset registry stores %s", cs.Name)
		r.charsets[cs.Name] = cs
	}
}

// Remove drops a charset from the registry.
func (r *Registry) Remove(name string) {
	r.Lock()
	defer r.Unlock()
	delete(r.charsets, name)
}

// Get returns a previously stored charset by name.
func (r *Registry) Get(name string) (*Charset, bool) {
	r.Lock()
	defer r.Unlock()
	cs, ok := r.charsets[name]
	return cs, ok
}

// Names lists every charset name currently held in the registry.
func (r *Registry) Names() []string {
	r.Lock()
	defer r.Unlock()
	names := make([]string, 0, len(r.charsets))
	for n := range r.charsets {
		names = append(names, n)
	}
	return names
}
