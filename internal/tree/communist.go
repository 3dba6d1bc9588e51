package tree

import (
	"context"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/focusid"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

const (
	maxCoupTargets = 2
	maxWarTargets  = 3
)

var influenceIdeas = map[string]string{
	Fascism:    "fascist_influence",
	Communism:  "communist_influence",
	Democratic: "democratic_influence",
	Absolutist: "absolutist_influence",
	Radical:    "radical_influence",
}

// AddCommunistCoupBranch adds an influence and coup pair for each of the
// first two coup targets. Nothing is added without targets.
func (t *Tree) AddCommunistCoupBranch(ctx context.Context, home *world.Country, targets []*world.Country, majorIdeologies []string) error {
	if len(targets) == 0 {
		return nil
	}
	ctxlog.FromContext(ctx).Debug("Adding communist coup focuses.", "tag", home.Tag, "targets", tags(targets))
	n := min(len(targets), maxCoupTargets)

	f, err := t.customized("Home_of_Revolution")
	if err != nil {
		return err
	}
	f.X = t.cursor.Next() + n - 1
	f.Y = 0
	t.AddFocus(f)

	for i, c := range targets[:n] {
		target := c.Tag
		influence := focusid.Influence(target, home.Tag)

		if f, err = t.targeted("Influence_", target); err != nil {
			return err
		}
		f.ID = influence
		f.X = t.cursor.Next() + i*2
		f.Y = 1
		f.CompletionReward += influenceReward(target, majorIdeologies)
		t.AddFocus(f)

		if f, err = t.targeted("Coup_", target); err != nil {
			return err
		}
		f.ID = focusid.Coup(target, home.Tag)
		f.Prerequisites = append(f.Prerequisites, focusid.Prerequisite(influence))
		f.RelativePositionID = influence
		f.X = 0
		f.Y = 1
		focus.UpdateElement(&f.Available, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		t.AddFocus(f)
	}

	t.cursor.Advance(2 * n)
	return nil
}

func influenceReward(target string, majorIdeologies []string) string {
	out := "= {\n\t\t\t" + target + " = {\n"
	for _, ideology := range majorIdeologies {
		idea, ok := influenceIdeas[ideology]
		if !ok {
			continue
		}
		out += "\t\t\t\tif = {\n"
		out += "\t\t\t\t\tlimit = {\n"
		out += "\t\t\t\t\t\tROOT = {\n"
		out += "\t\t\t\t\t\t\thas_government = " + ideology + "\n"
		out += "\t\t\t\t\t\t}\n"
		out += "\t\t\t\t\t}\n"
		out += "\t\t\t\t\tadd_ideas = " + idea + "\n"
		out += "\t\t\t\t}\n"
	}
	out += "\t\t\t\tcountry_event = { id = generic.1 }\n"
	out += "\t\t\t}\n"
	out += "\t\t}"
	return out
}

// AddCommunistWarBranch adds a war focus for each of the first three war
// targets, timed by relations. Nothing is added without targets.
func (t *Tree) AddCommunistWarBranch(ctx context.Context, home *world.Country, targets []*world.Country) error {
	if len(targets) == 0 {
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Adding communist war focuses.", "tag", home.Tag, "targets", tags(targets))
	if len(targets) > maxWarTargets {
		targets = targets[:maxWarTargets]
	}

	f, err := t.customized("StrengthCom")
	if err != nil {
		return err
	}
	f.X = t.cursor.Next() + len(targets) - 1
	f.Y = 0
	t.AddFocus(f)

	if f, err = t.customized("Inter_Com_Pres"); err != nil {
		return err
	}
	f.RelativePositionID = focusid.Customized("StrengthCom", home.Tag)
	f.X = 0
	f.Y = 1
	focus.UpdateElement(&f.CompletionReward, "$TEXT", f.Text)
	t.AddFocus(f)

	targetTags := tags(targets)
	for _, c := range targets {
		target := c.Tag
		if !c.HasName() {
			logger.Warn("Could not determine war target country name for communist war focuses.", "target", target)
		}

		if f, err = t.targeted("War", target); err != nil {
			return err
		}
		f.ID = focusid.War(target, home.Tag)
		applyDateOrTruce(&f.Available, home, target, "#DATE", warDate, 16, "\n")
		f.X = t.cursor.Next()
		f.Y = 2
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		focus.UpdateElement(&f.AIWillDo, "$TARGET", target)
		others := ""
		if len(targets) > 1 {
			others = warWithTargets(targetTags, target)
		}
		focus.UpdateElement(&f.AIWillDo, "#WAR_WITH_TARGETS", others)
		focus.UpdateElement(&f.CompletionReward, "$TARGETNAME", c.Name)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		t.AddFocus(f)
		t.cursor.Advance(2)
	}
	return nil
}
