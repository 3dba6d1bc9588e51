package feature

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
)

// Func composes one feature into the tree of b.
type Func func(ctx context.Context, b *Build) error

// Module registers a group of features.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered features of one application instance.
type Registry struct {
	features map[string]Func
}

// NewRegistry creates a registry populated by modules.
func NewRegistry(modules ...Module) *Registry {
	r := &Registry{features: make(map[string]Func)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Register adds a feature. Registering a name twice is a programming error.
func (r *Registry) Register(name string, fn Func) {
	if _, exists := r.features[name]; exists {
		panic(fmt.Sprintf("feature with name '%s' already registered", name))
	}
	slog.Debug("Registering feature.", "name", name)
	r.features[name] = fn
}

// Lookup returns the feature registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.features[name]
	return fn, ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.features))
}

// Validate checks that every name is registered.
func (r *Registry) Validate(names []string) error {
	var missing []string
	for _, name := range names {
		if _, ok := r.features[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unknown features %v (registered: %v)", missing, r.Names())
	}
	return nil
}

// Apply composes the named features into b in order.
func (r *Registry) Apply(ctx context.Context, b *Build, names []string) error {
	logger := ctxlog.FromContext(ctx)
	for _, name := range names {
		fn, ok := r.features[name]
		if !ok {
			return fmt.Errorf("feature %s: not registered", name)
		}
		logger.Debug("Applying feature.", "tag", b.Country.Tag, "feature", name)
		if err := fn(ctx, b); err != nil {
			return fmt.Errorf("feature %s for %s: %w", name, b.Country.Tag, err)
		}
	}
	return nil
}
