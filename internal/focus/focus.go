// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Focus structure. The same shape is used for the
// read-only templates of the corpus and for the composed, per-country copies
// that end up in a focus tree.
package focus

import "slices"

// DefaultCost is the completion cost assumed when a template omits `cost`.
const DefaultCost = 10

// Focus is a single node of a focus tree.
//
// The free-text fields (Available, Bypass, CompletionReward, ...) hold raw
// script blobs, normally starting with "= {". They are carried verbatim and
// only ever edited through placeholder substitution.
type Focus struct {
	ID                     string
	Icon                   string
	Text                   string
	Prerequisites          []string
	MutuallyExclusive      string
	Bypass                 string
	X                      int
	Y                      int
	RelativePositionID     string
	Cost                   int
	AvailableIfCapitulated bool
	Available              string
	CancelIfInvalid        string
	ContinueIfInvalid      string
	CompleteTooltip        string
	CompletionReward       string
	AIWillDo               string
	SelectEffect           string
	SearchFilters          string

	// Shared marks templates declared as `shared_focus`.
	Shared bool
}

// Clone returns a deep copy that shares no mutable state with f.
func (f *Focus) Clone() *Focus {
	c := *f
	c.Prerequisites = slices.Clone(f.Prerequisites)
	return &c
}

// Blobs returns pointers to every script blob that may carry placeholders.
func (f *Focus) Blobs() []*string {
	return []*string{
		&f.Available,
		&f.Bypass,
		&f.CompleteTooltip,
		&f.CompletionReward,
		&f.AIWillDo,
		&f.SelectEffect,
	}
}
