// Package world holds the entity data a focus tree is assembled against:
// countries, states, ideologies and dates.
package world

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownCountry is returned when a tag does not name a loaded country.
var ErrUnknownCountry = errors.New("unknown country")

// World is the loaded entity data.
type World struct {
	MajorIdeologies []string
	States          map[int]*State
	Countries       map[string]*Country
}

// New returns an empty world.
func New() *World {
	return &World{
		States:    make(map[int]*State),
		Countries: make(map[string]*Country),
	}
}

// Country returns the country with the given tag.
func (w *World) Country(tag string) (*Country, error) {
	c, ok := w.Countries[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCountry, tag)
	}
	return c, nil
}

// Lookup resolves tags in order. Any unknown tag fails the whole lookup.
func (w *World) Lookup(tags []string) ([]*Country, error) {
	out := make([]*Country, 0, len(tags))
	for _, tag := range tags {
		c, err := w.Country(tag)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CountryTags returns all country tags, sorted.
func (w *World) CountryTags() []string {
	return slices.Sorted(maps.Keys(w.Countries))
}

// HasIdeology reports whether ideology is one of the major ideologies.
func (w *World) HasIdeology(ideology string) bool {
	return slices.Contains(w.MajorIdeologies, ideology)
}
