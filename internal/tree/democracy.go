package tree

import (
	"context"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/focusid"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// warTensionModifier scales the world tension a democracy needs before it
// may start containing anyone.
func warTensionModifier(home *world.Country) float64 {
	if home.Government != Democratic {
		return 1
	}
	switch home.WarPolicy {
	case "jingoism":
		return 0
	case "pro_military":
		return 0.25
	case "anti_military", "pacifism", "pacifist":
		return 0.5
	}
	return 1
}

// AddDemocracyNationalFocuses adds the containment branch: a shared trunk
// followed by a war plan, embargo and war chain per country to contain.
func (t *Tree) AddDemocracyNationalFocuses(ctx context.Context, home *world.Country, contain []*world.Country) error {
	ctxlog.FromContext(ctx).Debug("Adding democracy focuses.", "tag", home.Tag, "targets", tags(contain))

	modifier := warTensionModifier(home)
	trunk := []struct {
		id      string
		tension float64
	}{
		{"WarProp", 0.20},
		{"PrepInter", 0.30},
		{"Lim", 0.50},
	}
	for i, step := range trunk {
		f, err := t.customized(step.id)
		if err != nil {
			return err
		}
		focus.UpdateElement(&f.Available, "$WTMODIFIER", formatFloat(step.tension*modifier/1000))
		if i == 0 {
			f.X = t.cursor.Next() + len(contain) - 1
		}
		t.AddFocus(f)
	}

	relativePos := 1 - len(contain)
	for _, c := range contain {
		target := c.Tag

		f, err := t.targeted("WarPlan", target)
		if err != nil {
			return err
		}
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		f.X = relativePos
		applyTruce(&f.Available, home, target, "#TRUCE")
		focus.UpdateElement(&f.Available, "$TARGET", target)
		t.AddFocus(f)

		previous := focusid.Targeted("WarPlan", home.Tag, target)
		for _, id := range []string{"Embargo", "WAR"} {
			if f, err = t.targeted(id, target); err != nil {
				return err
			}
			f.Prerequisites = []string{"= { focus =  " + previous + " }"}
			focus.UpdateElement(&f.Bypass, "$TARGET", target)
			f.RelativePositionID += target
			applyTruce(&f.Available, home, target, "#TRUCE")
			focus.UpdateElement(&f.Available, "$TARGET", target)
			focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
			t.AddFocus(f)
			previous = focusid.Targeted(id, home.Tag, target)
		}

		relativePos += 2
	}

	t.cursor.Advance(2 * len(contain))
	return nil
}
