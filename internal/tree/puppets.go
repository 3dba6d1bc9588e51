package tree

import (
	"context"
	"fmt"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// AddIntegratePuppetsBranch stacks one integration focus per puppet in a
// single column. The template must exist even when there are no puppets.
func (t *Tree) AddIntegratePuppetsBranch(ctx context.Context, home *world.Country) error {
	if _, err := t.cloner.Plain("integrate_satellite"); err != nil {
		return fmt.Errorf("focus tree %s: %w", t.Tag, err)
	}

	puppets := home.Puppets()
	ctxlog.FromContext(ctx).Debug("Adding puppet integration focuses.", "tag", home.Tag, "puppets", puppets)

	for y, puppet := range puppets {
		f, err := t.targeted("integrate_satellite", puppet)
		if err != nil {
			return err
		}
		f.X = t.cursor.Next()
		f.Y = y
		focus.UpdateElement(&f.SelectEffect, "#TARGET", puppet)
		focus.UpdateElement(&f.Bypass, "#TARGET", puppet)
		focus.UpdateElement(&f.CompletionReward, "#TARGET", puppet)
		t.AddFocus(f)
	}
	t.cursor.Advance(2)
	return nil
}
