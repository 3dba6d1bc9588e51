package tree

import (
	"context"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/focusid"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// placement positions a customized focus relative to another one of the
// same tree. An empty anchor keeps whatever the template says.
type placement struct {
	id     string
	anchor string
	x, y   int
}

var (
	colonialHalf = []placement{
		{"ColonialInd", "StrengthenColonies", -2, 1},
		{"ColonialHwy", "ColonialInd", -2, 1},
		{"ResourceFac", "ColonialInd", 0, 1},
		{"ColonialArmy", "StrengthenColonies", 0, 1},
	}
	homeHalf = []placement{
		{"TradeEmpire", "ColonialInd", -1, 2},
		{"IndHome", "StrengthenHome", 1, 1},
		{"NationalHwy", "IndHome", -1, 1},
		{"NatCollege", "IndHome", 1, 1},
		{"MilitaryBuildup", "IndHome", 2, 2},
		{"PrepTheBorder", "StrengthenHome", 4, 1},
		{"NatSpirit", "PrepTheBorder", 0, 1},
	}
)

func (t *Tree) place(placements []placement) error {
	for _, p := range placements {
		f, err := t.customized(p.id)
		if err != nil {
			return err
		}
		f.RelativePositionID = focusid.Customized(p.anchor, t.Tag)
		f.X = p.x
		f.Y = p.y
		t.AddFocus(f)
	}
	return nil
}

// AddAbsolutistEmpireNationalFocuses adds the colonial empire branch. Only
// the first and last colony and annexation targets get a focus.
func (t *Tree) AddAbsolutistEmpireNationalFocuses(ctx context.Context, home *world.Country, colonies, annex []*world.Country) error {
	ctxlog.FromContext(ctx).Debug("Adding absolutist empire focuses.", "tag", home.Tag, "colonies", tags(colonies), "annex", tags(annex))
	homeTag := home.Tag

	f, err := t.customized("EmpireGlory")
	if err != nil {
		return err
	}
	f.X = t.cursor.Next() + 5
	f.Y = 0
	t.AddFocus(f)

	halves := []struct {
		id     string
		x      int
		unused bool
	}{
		{"StrengthenColonies", -1, len(colonies) == 0 && len(annex) > 0},
		{"StrengthenHome", 1, len(annex) == 0 && len(colonies) > 0},
	}
	for _, h := range halves {
		if f, err = t.customized(h.id); err != nil {
			return err
		}
		f.RelativePositionID = focusid.Customized("EmpireGlory", homeTag)
		f.X = h.x
		f.Y = 1
		if h.unused {
			f.AIWillDo = "= { factor = 0 }"
		}
		t.AddFocus(f)
	}

	if err := t.place(colonialHalf); err != nil {
		return err
	}

	if len(colonies) >= 1 {
		front := colonies[0].Tag
		anchor := focusid.Customized("ColonialArmy", homeTag)
		if err := t.addEmpireTarget(home, "Protectorate", front, anchor, 0, 1, nil); err != nil {
			return err
		}
		if len(colonies) >= 2 {
			back := colonies[len(colonies)-1].Tag
			anchor := focusid.Targeted("Protectorate", homeTag, front)
			lowerWeight := func(f *focus.Focus) { focus.UpdateElement(&f.AIWillDo, "factor = 10", "factor = 5") }
			if err := t.addEmpireTarget(home, "Protectorate", back, anchor, 0, 1, lowerWeight); err != nil {
				return err
			}
		}
	}

	if err := t.place(homeHalf); err != nil {
		return err
	}

	if len(annex) >= 1 {
		if err := t.addEmpireTarget(home, "Annex", annex[0].Tag, focusid.Customized("PrepTheBorder", homeTag), 2, 1, nil); err != nil {
			return err
		}
		if len(annex) >= 2 {
			if err := t.addEmpireTarget(home, "Annex", annex[len(annex)-1].Tag, focusid.Customized("NatSpirit", homeTag), 1, 1, nil); err != nil {
				return err
			}
		}
	}

	t.cursor.Advance(2)
	return nil
}

// addEmpireTarget adds a targeted focus that requires and hangs below anchor.
func (t *Tree) addEmpireTarget(home *world.Country, id, target, anchor string, x, y int, adjust func(*focus.Focus)) error {
	f, err := t.targeted(id, target)
	if err != nil {
		return err
	}
	f.ID = focusid.Targeted(id, home.Tag, target)
	applyTruce(&f.Available, home, target, "#TRUCE")
	focus.UpdateElement(&f.Available, "$TARGET", target)
	f.Prerequisites = append(f.Prerequisites, focusid.Prerequisite(anchor))
	f.RelativePositionID = anchor
	f.X = x
	f.Y = y
	focus.UpdateElement(&f.Bypass, "$TARGET", target)
	focus.UpdateElement(&f.AIWillDo, "$TARGET", target)
	if adjust != nil {
		adjust(f)
	}
	focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
	t.AddFocus(f)
	return nil
}
