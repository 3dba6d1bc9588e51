package tree

import (
	"context"
	"maps"
	"slices"
	"strconv"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/focusid"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

const (
	maxNeighborWars        = 5
	maxReconquestWars      = 4
	maxProvincesPerState   = 10
	strategyValueThreshold = 0.1
	fascistGovernmentCheck = "modifier = {\n\t\t\t\tfactor = 5\n\t\t\t\thas_government = fascism\n\t\t\t}"
)

// WarTargets maps the owner of each state to the states it holds, keeping
// only owners home may go to war with. State ids are ascending and unique.
func WarTargets(home *world.Country, stateIDs []int, states map[int]*world.State) map[string][]int {
	targets := make(map[string][]int)
	for _, id := range stateIDs {
		s, ok := states[id]
		if !ok || s.Owner == home.Tag || !home.IsEligibleEnemy(s.Owner) {
			continue
		}
		targets[s.Owner] = append(targets[s.Owner], id)
	}
	for owner, ids := range targets {
		slices.Sort(ids)
		targets[owner] = slices.Compact(ids)
	}
	return targets
}

// enemyOwnedProvinces counts provinces of the given states, at most ten per
// state.
func enemyOwnedProvinces(stateIDs []int, states map[int]*world.State) int {
	sum := 0
	for _, id := range stateIDs {
		if s, ok := states[id]; ok {
			sum += min(len(s.Provinces), maxProvincesPerState)
		}
	}
	return sum
}

func fascistPopularityCheck(threshold string) string {
	return "modifier = {\n\t\t\t\tfactor = 0\n\t\t\t\tNOT = { has_government = fascism }\n\t\t\t\tNOT = { fascism > " + threshold + " }\n\t\t\t}"
}

// AddReconquestBranch adds a five step chain per country holding home's
// core states and returns those holders with the cores they hold.
// numWarsWithNeighbors is set to the number of chains, capped at four.
func (t *Tree) AddReconquestBranch(ctx context.Context, home *world.Country, numWarsWithNeighbors *int, majorIdeologies []string, states map[int]*world.State) (map[string][]int, error) {
	coreHolders := WarTargets(home, home.CoreStates(), states)
	if len(coreHolders) == 0 {
		return coreHolders, nil
	}
	ctxlog.FromContext(ctx).Debug("Adding reconquest focuses.", "tag", home.Tag, "holders", len(coreHolders))

	holders := slices.Sorted(maps.Keys(coreHolders))
	provinceCount := make(map[string]int, len(holders))
	sum := 0
	for _, tag := range holders {
		n := enemyOwnedProvinces(coreHolders[tag], states)
		provinceCount[tag] = n
		sum += n
	}
	*numWarsWithNeighbors = min(len(coreHolders), maxReconquestWars)
	fascist := has(majorIdeologies, Fascism)

	f, err := t.customized("reclaim_cores")
	if err != nil {
		return nil, err
	}
	selectEffect := "= {\n"
	for _, tag := range holders {
		selectEffect += "\t\t\tset_variable = { unowned_cores_@" + tag + " = " + strconv.Itoa(provinceCount[tag]) + " }\n"
	}
	selectEffect += "\t\t\tset_variable = { revanchism = " + formatFloat(0.00001*float64(sum)) + " }\n"
	selectEffect += "\t\t\tset_variable = { revanchism_stab = " + formatFloat(-0.000001*float64(sum)) + " }\n"
	selectEffect += "\t\t\tadd_dynamic_modifier = { modifier = revanchism }\n"
	if fascist {
		selectEffect += "\t\t\tadd_dynamic_modifier = { modifier = revanchism_fasc }\n"
	}
	selectEffect += "\t\t}\n"
	f.SelectEffect = selectEffect
	f.X = t.cursor.Next() + len(coreHolders) - 1
	t.AddFocus(f)

	for _, target := range holders {
		n := provinceCount[target]
		aiChance := strconv.Itoa(max(int(0.1*float64(n)), 1))

		if f, err = t.targeted("raise_matter", target); err != nil {
			return nil, err
		}
		f.X = t.cursor.Next()
		applyTruce(&f.Available, home, target, "#TRUCE")
		if fascist {
			focus.UpdateElement(&f.AIWillDo, "#FASCPOP", fascistPopularityCheck("0.35"))
			focus.UpdateElement(&f.AIWillDo, "#FASCGOV", fascistGovernmentCheck)
		} else {
			f.CompletionReward = "= {\n" +
				"\t\t\tadd_stability = 0.0001\n" +
				"\t\t\tadd_political_power = 150\n" +
				"\t\t\tadd_timed_idea = { idea = generic_military_industry days = 180 }\n" +
				"\t\t}"
			focus.RemovePlaceholder(&f.AIWillDo, "#FASCPOP")
			focus.RemovePlaceholder(&f.AIWillDo, "#FASCGOV")
		}
		focus.UpdateElement(&f.Available, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$POPULARITY", formatFloat(0.000001*float64(n)))
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		focus.UpdateElement(&f.AIWillDo, "$TARGET", target)
		focus.UpdateElement(&f.AIWillDo, "$REVANCHISM", aiChance)
		t.AddFocus(f)
		t.cursor.Advance(2)

		if f, err = t.chained("build_public_support", "raise_matter", home, target); err != nil {
			return nil, err
		}
		applyTruce(&f.Available, home, target, "#TRUCE")
		if fascist {
			focus.UpdateElement(&f.AIWillDo, "#FASCPOP", fascistPopularityCheck("0.4"))
			focus.UpdateElement(&f.AIWillDo, "#FASCGOV", fascistGovernmentCheck)
		} else {
			f.CompletionReward = " = {\n" +
				"\t\t\tadd_stability = 0.0001\n" +
				"\t\t\tadd_war_support = $WARSUPPORT\n" +
				"\t\t\tadd_timed_idea = { idea = generic_rapid_mobilization days = 180 }\n" +
				"\t\t}"
			focus.RemovePlaceholder(&f.AIWillDo, "#FASCPOP")
			focus.RemovePlaceholder(&f.AIWillDo, "#FASCGOV")
		}
		focus.UpdateElement(&f.Available, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$POPULARITY", formatFloat(0.000001*float64(n)))
		focus.UpdateElement(&f.CompletionReward, "$WARSUPPORT", formatFloat(0.00001*float64(n)))
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		focus.UpdateElement(&f.AIWillDo, "$TARGET", target)
		focus.UpdateElement(&f.AIWillDo, "$TAG", home.Tag)
		focus.UpdateElement(&f.AIWillDo, "$REVANCHISM", aiChance)
		t.AddFocus(f)

		steps := []struct{ id, after string }{
			{"territory_or_war", "build_public_support"},
			{"war_plan", "territory_or_war"},
			{"declare_war", "war_plan"},
		}
		for _, step := range steps {
			if f, err = t.chained(step.id, step.after, home, target); err != nil {
				return nil, err
			}
			applyTruce(&f.Available, home, target, "#TRUCE")
			if fascist {
				focus.UpdateElement(&f.AIWillDo, "#FASCGOV", fascistGovernmentCheck)
			} else {
				focus.RemovePlaceholder(&f.AIWillDo, "#FASCGOV")
			}
			focus.UpdateElement(&f.Available, "$TARGET", target)
			focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
			revanchism := aiChance
			if step.id == "declare_war" {
				cores := ""
				for _, id := range coreHolders[target] {
					cores += strconv.Itoa(id) + " "
				}
				focus.UpdateElement(&f.CompletionReward, "$CORE_STATES", cores)
				revanchism = strconv.Itoa(max(n, 1))
			}
			focus.UpdateElement(&f.Bypass, "$TARGET", target)
			focus.UpdateElement(&f.AIWillDo, "$TARGET", target)
			focus.UpdateElement(&f.AIWillDo, "$TAG", home.Tag)
			focus.UpdateElement(&f.AIWillDo, "$REVANCHISM", revanchism)
			t.AddFocus(f)
		}

		if f, err = t.chained("cleanup_revanchism", "declare_war", home, target); err != nil {
			return nil, err
		}
		focus.UpdateElement(&f.Available, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$REVANCHISM", formatFloat(0.000005*float64(n)))
		focus.UpdateElement(&f.CompletionReward, "$STABILITY", formatFloat(0.0000005*float64(n)))
		t.AddFocus(f)
	}

	return coreHolders, nil
}

// chained copies id for target so that it requires the previous focus of
// the same chain and hangs below it.
func (t *Tree) chained(id, after string, home *world.Country, target string) (*focus.Focus, error) {
	f, err := t.targeted(id, target)
	if err != nil {
		return nil, err
	}
	f.Prerequisites = []string{focusid.Prerequisite(focusid.Targeted(after, home.Tag, target))}
	f.RelativePositionID += target
	return f, nil
}
