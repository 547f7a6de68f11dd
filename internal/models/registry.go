package models

import (
	"fmt"
	"sort"
)

type Registry struct {
	models map[string]func() Model
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]func() Model),
	}

	r.models["square"] = func() Model { return NewSquare() }
	r.models["triangular"] = func() Model { return NewTriangular() }
	r.models["dice"] = func() Model { return NewDice() }

	return r
}

func (r *Registry) Get(name string) (Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownModel, name, r.Names())
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

func Get(name string) (Model, error) { return defaultRegistry.Get(name) }
func Names() []string                { return defaultRegistry.Names() }
