package templatestore

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/focusgridgo/internal/focus"
)

// Document is a single corpus source.
type Document struct {
	Name string
	Data []byte
}

// fileRoot is a struct used to decode all recognised top-level blocks from a
// corpus document. Anything else lands in Remain and is ignored.
type fileRoot struct {
	Focuses       []*focusBlock `hcl:"focus,block"`
	SharedFocuses []*focusBlock `hcl:"shared_focus,block"`
	Remain        hcl.Body      `hcl:",remain"`
}

// focusBlock mirrors a single `focus "<id>" {}` block.
type focusBlock struct {
	ID                     string   `hcl:"id,label"`
	Icon                   string   `hcl:"icon,optional"`
	Text                   string   `hcl:"text,optional"`
	Prerequisites          []string `hcl:"prerequisite,optional"`
	MutuallyExclusive      string   `hcl:"mutually_exclusive,optional"`
	Bypass                 string   `hcl:"bypass,optional"`
	X                      int      `hcl:"x,optional"`
	Y                      int      `hcl:"y,optional"`
	RelativePositionID     string   `hcl:"relative_position_id,optional"`
	Cost                   *int     `hcl:"cost,optional"`
	AvailableIfCapitulated bool     `hcl:"available_if_capitulated,optional"`
	Available              string   `hcl:"available,optional"`
	CancelIfInvalid        string   `hcl:"cancel_if_invalid,optional"`
	ContinueIfInvalid      string   `hcl:"continue_if_invalid,optional"`
	CompleteTooltip        string   `hcl:"complete_tooltip,optional"`
	CompletionReward       string   `hcl:"completion_reward,optional"`
	AIWillDo               string   `hcl:"ai_will_do,optional"`
	SelectEffect           string   `hcl:"select_effect,optional"`
	SearchFilters          string   `hcl:"search_filters,optional"`
}

// parseDocument decodes every template declared in doc, in declaration
// order: plain focuses first, then shared ones.
func parseDocument(parser *hclparse.Parser, doc Document) ([]focus.Focus, error) {
	file, diags := parser.ParseHCL(doc.Data, doc.Name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse: %w", diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode: %w", diags)
	}

	out := make([]focus.Focus, 0, len(root.Focuses)+len(root.SharedFocuses))
	for _, b := range root.Focuses {
		out = append(out, b.translate(false))
	}
	for _, b := range root.SharedFocuses {
		out = append(out, b.translate(true))
	}
	return out, nil
}

func (b *focusBlock) translate(shared bool) focus.Focus {
	cost := focus.DefaultCost
	if b.Cost != nil {
		cost = *b.Cost
	}
	return focus.Focus{
		ID:                     b.ID,
		Icon:                   b.Icon,
		Text:                   b.Text,
		Prerequisites:          b.Prerequisites,
		MutuallyExclusive:      b.MutuallyExclusive,
		Bypass:                 b.Bypass,
		X:                      b.X,
		Y:                      b.Y,
		RelativePositionID:     b.RelativePositionID,
		Cost:                   cost,
		AvailableIfCapitulated: b.AvailableIfCapitulated,
		Available:              b.Available,
		CancelIfInvalid:        b.CancelIfInvalid,
		ContinueIfInvalid:      b.ContinueIfInvalid,
		CompleteTooltip:        b.CompleteTooltip,
		CompletionReward:       b.CompletionReward,
		AIWillDo:               b.AIWillDo,
		SelectEffect:           b.SelectEffect,
		SearchFilters:          b.SearchFilters,
		Shared:                 shared,
	}
}
