package critic

import (
	"sort"
	"sync"

	"perlhq/critic/pkg/ptree"
)

// Policy is a single statement-level lint rule.
//
// Check receives one statement node of an immutable token tree and returns
// the violations found in it, in source order. Implementations must be
// stateless between calls and must never mutate the tree; a statement that
// does not match the policy's pattern yields an empty result, never an error.
type Policy interface {
	// Name returns the fully qualified policy name,
	// e.g. "ControlStructures::ProhibitForeachHandle".
	Name() string

	// DefaultSeverity returns the severity the policy carries unless
	// overridden by configuration.
	DefaultSeverity() Severity

	// Check inspects one statement and returns its violations.
	Check(stmt *ptree.Node) []Violation
}

// Registry holds the set of known policies, keyed by name.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

// NewRegistry creates an empty policy registry.
func NewRegistry() *Registry {
	return &Registry{policies: make(map[string]Policy)}
}

// Register adds a policy to the registry, replacing any previous policy
// with the same name.
func (r *Registry) Register(p Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policies[p.Name()] = p
}

// Get returns the policy with the given name.
func (r *Registry) Get(name string) (Policy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.policies[name]
	return p, ok
}

// All returns every registered policy, sorted by name.
func (r *Registry) All() []Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Policy, 0, len(r.policies))
	for _, p := range r.policies {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// DefaultRegistry is the process-wide registry that policy packages
// register themselves with at init time.
var DefaultRegistry = NewRegistry()

// Register adds a policy to the default registry.
func Register(p Policy) {
	DefaultRegistry.Register(p)
}
