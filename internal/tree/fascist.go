package tree

import (
	"context"
	"strconv"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/focusid"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// AddFascistAnnexationBranch adds the annexation trunk and one anschluss
// focus per target. The trunk is wide enough for the sudeten branch that
// usually follows it. An annexation event is created per target.
func (t *Tree) AddFascistAnnexationBranch(ctx context.Context, home *world.Country, targets []*world.Country, numSudeten int) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Adding fascist annexation focuses.", "tag", home.Tag, "targets", tags(targets), "sudeten", numSudeten)

	f, err := t.customized("The_third_way")
	if err != nil {
		return err
	}
	maxWidth := max(len(targets), numSudeten)
	f.X = t.cursor.Next() + maxWidth - 1
	f.Y = 0
	t.cursor.Advance(2 * maxWidth)
	focus.UpdateElement(&f.CompletionReward, "$TEXT", f.Text)
	t.AddFocus(f)

	if f, err = t.customized("mil_march"); err != nil {
		return err
	}
	f.RelativePositionID = focusid.Customized("The_third_way", home.Tag)
	f.X = 0
	f.Y = 1
	t.AddFocus(f)

	column := 1 - len(targets)
	for _, c := range targets {
		target := c.Tag
		if !c.HasName() {
			logger.Warn("Could not determine annexation target country name for fascist annexation focuses.", "target", target)
		}

		if f, err = t.targeted("_anschluss_", target); err != nil {
			return err
		}
		f.ID = focusid.Anschluss(home.Tag, target)
		applyDateOrTruce(&f.Available, home, target, "#DATE", annexationDate, 16, "\n")
		focus.UpdateElement(&f.Available, "$TARGET", target)
		f.X = column
		f.Y = 1
		focus.UpdateElement(&f.CompletionReward, "$TARGETNAME", c.Name)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$EVENTID", strconv.Itoa(t.deps.Events.CurrentNationFocusEventNum()))
		t.AddFocus(f)
		column += 2

		t.deps.Events.CreateAnnexEvent(home.Tag, target)
	}
	return nil
}

// AddFascistSudetenBranch adds the state demand branch. When there are
// anschluss targets it hangs below the annexation trunk and requires one of
// them; otherwise it starts a trunk of its own.
func (t *Tree) AddFascistSudetenBranch(ctx context.Context, home *world.Country, anschluss, sudeten []*world.Country) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Adding fascist sudeten focuses.", "tag", home.Tag, "anschluss", tags(anschluss), "targets", tags(sudeten))

	f, err := t.customized("expand_the_reich")
	if err != nil {
		return err
	}
	if len(anschluss) > 0 {
		ids := make([]string, len(anschluss))
		for i, c := range anschluss {
			ids[i] = focusid.Anschluss(home.Tag, c.Tag)
		}
		f.Prerequisites = append(f.Prerequisites, focusid.Prerequisite(ids...)+"\n")
		f.RelativePositionID = focusid.Customized("The_third_way", home.Tag)
		f.X = 0
		f.Y = 3
	} else {
		f.X = t.cursor.Next()
		t.cursor.Advance(2)
		f.Y = 0
	}
	focus.UpdateElement(&f.CompletionReward, "$TEXT", f.Text)
	t.AddFocus(f)

	column := 1 - len(sudeten)
	for _, c := range sudeten {
		target := c.Tag
		if !c.HasName() {
			logger.Warn("Could not determine annexation target country name for fascist sudeten focuses.", "target", target)
		}
		demand := focusid.Sudeten(home.Tag, target)

		if f, err = t.targeted("_sudeten_", target); err != nil {
			return err
		}
		f.ID = demand
		date := relationDate(home, target, warDate, 16)
		focus.UpdateElement(&f.Available, "#DATE", "date > "+date.String()+"\n")
		f.RelativePositionID = focusid.Customized("expand_the_reich", home.Tag)
		f.X = column
		f.Y = 1
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$TARGETNAME", c.Name)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$EVENTID", strconv.Itoa(t.deps.Events.CurrentNationFocusEventNum()))
		t.AddFocus(f)
		column += 2

		if f, err = t.targeted("_finish_", target); err != nil {
			return err
		}
		f.ID = focusid.Finish(home.Tag, target)
		applyTruce(&f.Available, home, target, "#DATE")
		focus.UpdateElement(&f.Available, "$TARGET", target)
		f.Prerequisites = append(f.Prerequisites, "= { focus =  "+demand+" }")
		f.RelativePositionID = demand
		f.X = 0
		f.Y = 1
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$TARGETNAME", c.Name)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		t.AddFocus(f)

		if states, ok := home.DemandedStates(target); ok {
			t.deps.Events.CreateSudetenEvent(home.Tag, target, states)
		}
	}
	return nil
}
