package output

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/zclconf/go-cty/cty"
)

// WriteHCL writes focuses in the template corpus format, so a composed tree
// can be loaded back as templates. Shared focuses become shared_focus
// blocks. Empty attributes are left out.
func WriteHCL(w io.Writer, focuses []*focus.Focus) error {
	file := hclwrite.NewEmptyFile()
	root := file.Body()
	for i, f := range focuses {
		if i > 0 {
			root.AppendNewline()
		}
		keyword := "focus"
		if f.Shared {
			keyword = "shared_focus"
		}
		appendFocus(root.AppendNewBlock(keyword, []string{f.ID}).Body(), f)
	}
	_, err := w.Write(file.Bytes())
	return err
}

func appendFocus(body *hclwrite.Body, f *focus.Focus) {
	str := func(name, v string) {
		if v != "" {
			body.SetAttributeValue(name, cty.StringVal(v))
		}
	}
	num := func(name string, v int) {
		if v != 0 {
			body.SetAttributeValue(name, cty.NumberIntVal(int64(v)))
		}
	}

	str("icon", f.Icon)
	str("text", f.Text)
	if len(f.Prerequisites) > 0 {
		vals := make([]cty.Value, len(f.Prerequisites))
		for i, p := range f.Prerequisites {
			vals[i] = cty.StringVal(p)
		}
		body.SetAttributeValue("prerequisite", cty.ListVal(vals))
	}
	str("mutually_exclusive", f.MutuallyExclusive)
	str("bypass", f.Bypass)
	num("x", f.X)
	num("y", f.Y)
	str("relative_position_id", f.RelativePositionID)
	if f.Cost != focus.DefaultCost {
		body.SetAttributeValue("cost", cty.NumberIntVal(int64(f.Cost)))
	}
	if f.AvailableIfCapitulated {
		body.SetAttributeValue("available_if_capitulated", cty.True)
	}
	str("available", f.Available)
	str("cancel_if_invalid", f.CancelIfInvalid)
	str("continue_if_invalid", f.ContinueIfInvalid)
	str("complete_tooltip", f.CompleteTooltip)
	str("completion_reward", f.CompletionReward)
	str("ai_will_do", f.AIWillDo)
	str("select_effect", f.SelectEffect)
	str("search_filters", f.SearchFilters)
}
