package syncer

import (
	"context"
	"encoding/json"
	"fmt"
)

// Scope says whether a domain's data is global to the household or
// partitioned per actor.
type Scope int

const (
	// ScopeShared domains hold one snapshot for everyone.
	ScopeShared Scope = iota
	// ScopeActorScoped domains hold one snapshot per actor and must never
	// mix data between actors.
	ScopeActorScoped
)

func (s Scope) String() string {
	if s == ScopeActorScoped {
		return "actor-scoped"
	}
	return "shared"
}

// Domain declares one independently synchronizable slice of application
// state. The coordinator works exclusively through these accessors and never
// holds domain data itself.
//
// FetchAll and Upsert talk to the remote store; Load, Adopt, IsEmpty and
// Watch wrap the domain's local store. For shared domains every actorID
// argument is the empty string.
type Domain struct {
	Name  string
	Scope Scope

	// Guarded refuses every empty upsert, at any time, not only during
	// initial load. Set on the transaction-history domain: an empty local
	// collection there always means "not yet loaded", never "emptied by the
	// user", because wiping remote history is unrecoverable.
	Guarded bool

	// FetchAll retrieves the domain's current remote records.
	FetchAll func(ctx context.Context, actorID string) (json.RawMessage, error)

	// Upsert writes a full record snapshot to the remote store. Idempotent
	// under repeated identical calls.
	Upsert func(ctx context.Context, actorID string, records json.RawMessage) error

	// Load reads the local store's current records.
	Load func(actorID string) (json.RawMessage, error)

	// Adopt overwrites the local store with remote records without waking
	// the domain's change subscription, so adoption never loops back into a
	// push.
	Adopt func(actorID string, records json.RawMessage) error

	// IsEmpty is the domain's emptiness predicate.
	IsEmpty func(records json.RawMessage) bool

	// Watch registers fn to run on every local mutation, with the actor the
	// mutation belongs to. Returns an unsubscribe function.
	Watch func(fn func(actorID string)) func()
}

// Registry is the set of all domains known to the coordinator.
type Registry struct {
	domains []Domain
	byName  map[string]Domain
}

// NewRegistry validates and indexes the given domains. Names must be unique
// and every accessor must be wired.
func NewRegistry(domains ...Domain) (*Registry, error) {
	r := &Registry{byName: make(map[string]Domain, len(domains))}

	for _, d := range domains {
		if d.Name == "" {
			return nil, fmt.Errorf("domain with empty name")
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate domain %q", d.Name)
		}
		if d.FetchAll == nil || d.Upsert == nil || d.Load == nil || d.Adopt == nil || d.IsEmpty == nil || d.Watch == nil {
			return nil, fmt.Errorf("domain %q is missing accessors", d.Name)
		}
		r.byName[d.Name] = d
		r.domains = append(r.domains, d)
	}

	return r, nil
}

// All returns every domain, in registration order.
func (r *Registry) All() []Domain {
	return r.domains
}

// Shared returns the shared domains.
func (r *Registry) Shared() []Domain {
	return r.filter(ScopeShared)
}

// ActorScoped returns the actor-scoped domains.
func (r *Registry) ActorScoped() []Domain {
	return r.filter(ScopeActorScoped)
}

// Get looks a domain up by name.
func (r *Registry) Get(name string) (Domain, bool) {
	d, ok := r.byName[name]
	return d, ok
}

func (r *Registry) filter(scope Scope) []Domain {
	var out []Domain
	for _, d := range r.domains {
		if d.Scope == scope {
			out = append(out, d)
		}
	}
	return out
}

// RecordsEmpty reports whether raw records decode to an empty collection.
// Undecodable input counts as non-empty: when in doubt, never treat data as
// deletable.
func RecordsEmpty(records json.RawMessage) bool {
	if len(records) == 0 {
		return true
	}

	var items []json.RawMessage
	if err := json.Unmarshal(records, &items); err != nil {
		return false
	}
	return len(items) == 0
}
