package publish

import (
	"github.com/google/uuid"
	"github.com/specialistvlad/focusgridgo/internal/focus"
)

// Payload is the message emitted for one country.
type Payload struct {
	Session uuid.UUID
	Tag     string
	Focuses []*focus.Focus
}

// NewPayload builds the message for tag.
func NewPayload(session uuid.UUID, tag string, focuses []*focus.Focus) Payload {
	return Payload{Session: session, Tag: tag, Focuses: focuses}
}

// Data is the wire form of p. The viewer only needs the layout, so script
// blobs are left out.
func (p Payload) Data() map[string]any {
	nodes := make([]any, 0, len(p.Focuses))
	for _, f := range p.Focuses {
		node := map[string]any{
			"id":     f.ID,
			"x":      f.X,
			"y":      f.Y,
			"cost":   f.Cost,
			"shared": f.Shared,
		}
		if f.Icon != "" {
			node["icon"] = f.Icon
		}
		if f.Text != "" {
			node["text"] = f.Text
		}
		if f.RelativePositionID != "" {
			node["relative_position_id"] = f.RelativePositionID
		}
		if len(f.Prerequisites) > 0 {
			prereqs := make([]any, len(f.Prerequisites))
			for i, p := range f.Prerequisites {
				prereqs[i] = p
			}
			node["prerequisites"] = prereqs
		}
		nodes = append(nodes, node)
	}
	return map[string]any{
		"session": p.Session.String(),
		"tag":     p.Tag,
		"focuses": nodes,
	}
}
