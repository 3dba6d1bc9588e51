package output

import (
	"io"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/focusgridgo/internal/events"
	"github.com/zclconf/go-cty/cty"
)

// WriteEvents writes the recorded events and on-action hooks:
//
//	event "1" {
//	  kind   = "annex"
//	  home   = "GER"
//	  target = "AUS"
//	}
//
//	on_action "GER" {
//	  focuses = ["mefo_bills"]
//	}
func WriteEvents(w io.Writer, evs []events.Event, hooks []events.FocusHook) error {
	file := hclwrite.NewEmptyFile()
	root := file.Body()

	for _, e := range evs {
		body := root.AppendNewBlock("event", []string{strconv.Itoa(e.Num)}).Body()
		body.SetAttributeValue("kind", cty.StringVal(string(e.Kind)))
		body.SetAttributeValue("home", cty.StringVal(e.Home))
		body.SetAttributeValue("target", cty.StringVal(e.Target))
		if len(e.States) > 0 {
			states := make([]cty.Value, len(e.States))
			for i, s := range e.States {
				states[i] = cty.NumberIntVal(int64(s))
			}
			body.SetAttributeValue("states", cty.ListVal(states))
		}
		root.AppendNewline()
	}

	// Hooks are grouped per tag, keeping first-seen order.
	var tags []string
	byTag := make(map[string][]cty.Value)
	for _, h := range hooks {
		if _, ok := byTag[h.Tag]; !ok {
			tags = append(tags, h.Tag)
		}
		byTag[h.Tag] = append(byTag[h.Tag], cty.StringVal(h.FocusID))
	}
	for _, tag := range tags {
		body := root.AppendNewBlock("on_action", []string{tag}).Body()
		body.SetAttributeValue("focuses", cty.ListVal(byTag[tag]))
		root.AppendNewline()
	}

	_, err := w.Write(file.Bytes())
	return err
}
