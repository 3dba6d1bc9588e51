// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package tree assembles the focus tree of one country out of template
// focuses. Each Add* method appends one feature branch to the tree, placing
// it at the tree's next free column and moving the column past it.
//
// A Tree is not safe for concurrent use. Collaborators (localisation,
// events, on-actions) are shared between trees and are expected to guard
// themselves.
package tree

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/focusgridgo/internal/branch"
	"github.com/specialistvlad/focusgridgo/internal/cloner"
	"github.com/specialistvlad/focusgridgo/internal/events"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/layout"
	"github.com/specialistvlad/focusgridgo/internal/localisation"
	"github.com/specialistvlad/focusgridgo/internal/templatestore"
)

// Deps are the collaborators a tree composes against.
type Deps struct {
	Store     templatestore.Store
	Localiser localisation.Localiser
	Events    events.Events
	OnActions events.OnActions
	Branches  branch.Set
}

// Tree is the focus tree of a single country.
type Tree struct {
	Tag string

	focuses []*focus.Focus
	shared  []*focus.Focus
	cursor  *layout.Cursor
	deps    Deps
	cloner  *cloner.Cloner
}

// New returns an empty tree for tag, starting at column 0. Events created
// without an Events collaborator are recorded and discarded.
func New(tag string, deps Deps) *Tree {
	if deps.Events == nil {
		deps.Events = events.NewRecorder()
	}
	return &Tree{
		Tag:    tag,
		cursor: layout.NewCursor(0),
		deps:   deps,
		cloner: cloner.New(deps.Store, deps.Localiser),
	}
}

// Focuses returns the country specific focuses in insertion order.
func (t *Tree) Focuses() []*focus.Focus {
	return t.focuses
}

// SharedFocuses returns the focuses shared by every country.
func (t *Tree) SharedFocuses() []*focus.Focus {
	return t.shared
}

// Focus returns the first focus with the given id.
func (t *Tree) Focus(id string) (*focus.Focus, bool) {
	i := slices.IndexFunc(t.focuses, func(f *focus.Focus) bool { return f.ID == id })
	if i < 0 {
		return nil, false
	}
	return t.focuses[i], true
}

// IDs returns the ids of the country specific focuses in insertion order.
func (t *Tree) IDs() []string {
	out := make([]string, len(t.focuses))
	for i, f := range t.focuses {
		out[i] = f.ID
	}
	return out
}

// NextFreeColumn is the first column not used by any branch yet.
func (t *Tree) NextFreeColumn() int {
	return t.cursor.Next()
}

// AddFocus appends f to the country specific focuses.
func (t *Tree) AddFocus(f *focus.Focus) {
	t.focuses = append(t.focuses, f)
}

// AddSharedFocus appends f to the shared focuses.
func (t *Tree) AddSharedFocus(f *focus.Focus) {
	f.Shared = true
	t.shared = append(t.shared, f)
}

// RemoveFocus drops every focus with the given id and returns how many were
// removed.
func (t *Tree) RemoveFocus(id string) int {
	before := len(t.focuses)
	t.focuses = slices.DeleteFunc(t.focuses, func(f *focus.Focus) bool { return f.ID == id })
	return before - len(t.focuses)
}

// CustomizedCopy returns a tree for tag holding a customized copy of every
// country specific focus. Shared focuses are not copied; the cursor is.
func (t *Tree) CustomizedCopy(tag string) *Tree {
	out := New(tag, t.deps)
	for _, f := range t.focuses {
		out.AddFocus(cloner.Customize(f, tag))
	}
	out.cursor.Set(t.cursor.Next())
	return out
}

func (t *Tree) customized(id string) (*focus.Focus, error) {
	f, err := t.cloner.CustomizedCopy(id, t.Tag)
	if err != nil {
		return nil, fmt.Errorf("focus tree %s: %w", t.Tag, err)
	}
	return f, nil
}

func (t *Tree) targeted(id, target string) (*focus.Focus, error) {
	f, err := t.cloner.TargetedCopy(id, t.Tag, target)
	if err != nil {
		return nil, fmt.Errorf("focus tree %s: %w", t.Tag, err)
	}
	return f, nil
}
