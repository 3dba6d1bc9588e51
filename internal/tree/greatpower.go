package tree

import (
	"context"
	"strconv"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/focusid"
	"github.com/specialistvlad/focusgridgo/internal/localisation"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// AddGPWarBranch adds the ideological summit, an alliance focus per new ally
// and a war focus per great power target. Without allies the war focuses
// stand on their own at the top of the tree.
func (t *Tree) AddGPWarBranch(ctx context.Context, home *world.Country, allies, greatPowers []*world.Country, ideology string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Adding great power war focuses.", "tag", home.Tag, "ideology", ideology, "allies", tags(allies), "targets", tags(greatPowers))

	summit := focusid.Summit(ideology, home.Tag)
	if len(allies) > 0 {
		f, err := t.customized("_Summit")
		if err != nil {
			return err
		}
		f.ID = summit
		f.Text = ideology + "_Summit"
		f.X = t.cursor.Next() + len(allies) - 1
		f.Y = 0
		focus.UpdateElement(&f.CompletionReward, "$IDEOLOGY", ideology)
		t.AddFocus(f)
		t.copyLocalisation("_Summit", f.Text, ideology)
	}

	column := 1 - len(allies)
	for _, c := range allies {
		ally := c.Tag
		f, err := t.targeted("Alliance_", ally)
		if err != nil {
			return err
		}
		f.ID = focusid.Alliance(ally, home.Tag)
		f.Prerequisites = append(f.Prerequisites, focusid.Prerequisite(summit))
		f.RelativePositionID = summit
		f.X = column
		f.Y = 1
		focus.UpdateElement(&f.Available, "$ALLY", ally)
		focus.UpdateElement(&f.Bypass, "$ALLY", ally)
		focus.UpdateElement(&f.CompletionReward, "$ALLY", ally)
		focus.UpdateElement(&f.CompletionReward, "$EVENTID", strconv.Itoa(t.deps.Events.CurrentNationFocusEventNum()))
		t.AddFocus(f)
		column += 2

		t.deps.Events.CreateFactionEvents(home.Tag, ally)
	}

	targetTags := tags(greatPowers)
	column = 1 - len(greatPowers)
	for _, c := range greatPowers {
		target := c.Tag
		if !c.HasName() {
			logger.Warn("Could not determine war target country name for GP war focuses.", "target", target)
		}

		f, err := t.customized("GP_War")
		if err != nil {
			return err
		}
		for _, a := range allies {
			f.Prerequisites = append(f.Prerequisites, focusid.Prerequisite(focusid.Alliance(a.Tag, home.Tag)))
		}
		f.ID = focusid.GPWar(target, home.Tag)
		f.Text += target
		applyDateOrTruce(&f.Available, home, target, "#DATE", greatWarDate, 16, "")
		if len(allies) > 0 {
			f.RelativePositionID = summit
			f.X = column
			f.Y = 2
		} else {
			f.X = t.cursor.Next()
			f.Y = 0
		}
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		// Negative with three or more targets, which keeps the AI off the focus.
		focus.UpdateElement(&f.AIWillDo, "$FACTOR", strconv.Itoa(10-len(greatPowers)*5))
		focus.UpdateElement(&f.AIWillDo, "$TARGET", target)
		focus.UpdateElement(&f.AIWillDo, "#WAR_WITH_TARGETS", warWithTargets(targetTags, target))
		focus.UpdateElement(&f.CompletionReward, "$TARGETNAME", c.Name)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		t.AddFocus(f)
		column += 2
		t.copyLocalisation("GPWar", f.Text, target)
	}

	t.cursor.Advance(2 * max(len(allies), len(greatPowers)))
	return nil
}

// copyLocalisation copies the text and description of template key from to
// key to, then fills in $TARGET.
func (t *Tree) copyLocalisation(from, to, target string) {
	if t.deps.Localiser == nil {
		return
	}
	t.deps.Localiser.CopyFocusLocalisations(from, to)
	t.deps.Localiser.UpdateLocalisationText(to, "$TARGET", target)
	t.deps.Localiser.UpdateLocalisationText(to+localisation.DescSuffix, "$TARGET", target)
}
