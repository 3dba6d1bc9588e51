// Package cloner turns templates into concrete focuses for one country,
// optionally aimed at a target country.
//
// Every copy is independent of the template and of other copies. Identifiers
// are suffixed the same way for the focus itself and for everything it
// references, so a cloned branch stays internally consistent.
package cloner

import (
	"fmt"
	"maps"
	"slices"

	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/focusid"
	"github.com/specialistvlad/focusgridgo/internal/localisation"
	"github.com/specialistvlad/focusgridgo/internal/prereq"
	"github.com/specialistvlad/focusgridgo/internal/templatestore"
)

// Placeholders substituted automatically on every copy.
const (
	TagPlaceholder    = "$TAG"
	TargetPlaceholder = "$TARGET"
	TargetSelector    = "#TARGET"
)

// Params describes a single clone.
type Params struct {
	// Tag is the owning country. Required.
	Tag string
	// Target is the country acted upon. Empty for a customized copy.
	Target string
	// Bindings are extra placeholder substitutions applied to every script
	// blob after the tag and target ones.
	Bindings map[string]string
}

// Cloner copies templates out of a store.
type Cloner struct {
	store templatestore.Store
	loc   localisation.Localiser
}

// New returns a cloner. loc may be nil when no localisation needs copying.
func New(store templatestore.Store, loc localisation.Localiser) *Cloner {
	return &Cloner{store: store, loc: loc}
}

// Plain returns an unmodified copy of a template.
func (c *Cloner) Plain(id string) (*focus.Focus, error) {
	f, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CustomizedCopy copies a template for tag.
func (c *Cloner) CustomizedCopy(id, tag string) (*focus.Focus, error) {
	return c.Clone(id, Params{Tag: tag})
}

// TargetedCopy copies a template for tag acting on target.
func (c *Cloner) TargetedCopy(id, tag, target string) (*focus.Focus, error) {
	return c.Clone(id, Params{Tag: tag, Target: target})
}

// Clone copies a template according to p.
func (c *Cloner) Clone(id string, p Params) (*focus.Focus, error) {
	if p.Tag == "" {
		return nil, fmt.Errorf("clone %s: empty tag", id)
	}
	tmpl, err := c.store.Get(id)
	if err != nil {
		return nil, err
	}

	var out *focus.Focus
	if p.Target == "" {
		out = Customize(&tmpl, p.Tag)
	} else {
		out = Target(&tmpl, p.Tag, p.Target)
		if c.loc != nil && tmpl.Text != "" {
			c.loc.CopyFocusLocalisations(tmpl.Text, out.Text)
			c.loc.UpdateLocalisationText(out.Text, TargetPlaceholder, p.Target)
			c.loc.UpdateLocalisationText(out.Text+localisation.DescSuffix, TargetPlaceholder, p.Target)
		}
	}

	for _, key := range slices.Sorted(maps.Keys(p.Bindings)) {
		substitute(out, key, p.Bindings[key])
	}
	return out, nil
}

// Customize returns a copy of src owned by tag. The id, every referenced id
// and the relative position anchor get the tag appended; $TAG is replaced.
func Customize(src *focus.Focus, tag string) *focus.Focus {
	f := src.Clone()
	f.ID = focusid.Customized(f.ID, tag)
	rewriteReferences(f, func(id string) string { return focusid.Customized(id, tag) })
	if f.RelativePositionID != "" {
		f.RelativePositionID += tag
	}
	substituteAll(f, TagPlaceholder, tag)
	return f
}

// Target returns a copy of src owned by tag and aimed at target. Only the id
// gets both tags: references and the anchor point at the owner's untargeted
// focuses, so callers that chain targeted siblings set those themselves. The
// display text key gets the target appended.
func Target(src *focus.Focus, tag, target string) *focus.Focus {
	f := src.Clone()
	f.ID = focusid.Targeted(f.ID, tag, target)
	rewriteReferences(f, func(id string) string { return focusid.Customized(id, tag) })
	if f.RelativePositionID != "" {
		f.RelativePositionID += tag
	}
	if f.Text != "" {
		f.Text += target
	}
	substituteAll(f, TagPlaceholder, tag)
	substitute(f, TargetPlaceholder, target)
	substitute(f, TargetSelector, target)
	return f
}

func rewriteReferences(f *focus.Focus, rewrite func(string) string) {
	for i, p := range f.Prerequisites {
		f.Prerequisites[i] = prereq.RewriteIDs(p, rewrite)
	}
	f.MutuallyExclusive = prereq.RewriteIDs(f.MutuallyExclusive, rewrite)
}

// substituteAll replaces every occurrence, including ones glued to
// identifiers such as idea_$TAG or $TAG_revanchist.
func substituteAll(f *focus.Focus, placeholder, replacement string) {
	for _, blob := range f.Blobs() {
		focus.UpdateElement(blob, placeholder, replacement)
	}
}

// substitute replaces whole tokens only, so $TARGETNAME survives $TARGET.
func substitute(f *focus.Focus, token, replacement string) {
	for _, blob := range f.Blobs() {
		focus.ReplaceToken(blob, token, replacement)
	}
}
