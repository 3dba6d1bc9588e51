package tree

import (
	"context"
	"slices"
	"strconv"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// AddConquerBranch adds a four step claim and war chain per conquest
// strategy worth pursuing, skipping countries already targeted for
// reconquest. Strategies are visited in declared order and the first one
// below the value threshold, or reaching the neighbour war limit, ends the
// scan. The chosen targets are returned sorted.
func (t *Tree) AddConquerBranch(ctx context.Context, home *world.Country, numWarsWithNeighbors *int, coreHolders map[string][]int, states map[int]*world.State) ([]string, error) {
	strategies := home.ConquerStrategies()
	if len(strategies) == 0 {
		return nil, nil
	}
	logger := ctxlog.FromContext(ctx)

	maxValue := strategies[0].Value
	for _, s := range strategies[1:] {
		maxValue = max(maxValue, s.Value)
	}

	var conquered []string
	for _, strategy := range strategies {
		target := strategy.ID
		if target == home.Tag {
			continue
		}
		relativeValue := 0.0
		if maxValue > 0 {
			relativeValue = strategy.Value / maxValue
		}
		if *numWarsWithNeighbors >= maxNeighborWars || relativeValue < strategyValueThreshold {
			break
		}
		if !home.IsEligibleEnemy(target) {
			continue
		}
		if _, ok := coreHolders[target]; ok {
			continue
		}
		claimsHolders := WarTargets(home, home.ClaimedStates(), states)
		if _, held := claimsHolders[target]; held || !strategy.HasClaim() {
			continue
		}
		stateID := strconv.Itoa(strategy.ClaimedState)
		ownsClaim := "owns_state = " + stateID

		logger.Debug("Adding conquest focuses.", "tag", home.Tag, "target", target, "value", strategy.Value, "state", stateID)
		conquered = append(conquered, target)
		*numWarsWithNeighbors++

		f, err := t.targeted("border_disputes", target)
		if err != nil {
			return nil, err
		}
		f.RelativePositionID = ""
		focus.UpdateElement(&f.Available, "$TARGET", target)
		applyTruce(&f.Available, home, target, "#TRUCE")
		focus.UpdateElement(&f.Available, "#OWNSCLAIM", ownsClaim)
		f.X = t.cursor.Next()
		f.Y = 0
		focus.UpdateElement(&f.AIWillDo, "$TARGET", target)
		t.AddFocus(f)

		if f, err = t.chained("assert_claims", "border_disputes", home, target); err != nil {
			return nil, err
		}
		focus.UpdateElement(&f.Available, "$TARGET", target)
		applyDateOrTruce(&f.Available, home, target, "#DATE", claimsDate, 8, "")
		focus.UpdateElement(&f.Available, "#OWNSCLAIM", ownsClaim)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "#ADDCLAIM", "add_state_claim = "+stateID)
		focus.UpdateElement(&f.AIWillDo, "$TARGET", target)
		t.AddFocus(f)

		if f, err = t.chained("prepare_for_war", "assert_claims", home, target); err != nil {
			return nil, err
		}
		focus.UpdateElement(&f.Available, "$TARGET", target)
		focus.UpdateElement(&f.Available, "#OWNSCLAIM", ownsClaim)
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		t.AddFocus(f)

		if f, err = t.chained("neighbor_war", "prepare_for_war", home, target); err != nil {
			return nil, err
		}
		focus.UpdateElement(&f.Available, "$TARGET", target)
		focus.UpdateElement(&f.Available, "#OWNSCLAIM", ownsClaim)
		focus.UpdateElement(&f.CompletionReward, "$TARGET", target)
		focus.UpdateElement(&f.CompletionReward, "$CLAIMED_STATES", "{ "+stateID+" }")
		focus.UpdateElement(&f.Bypass, "$TARGET", target)
		t.AddFocus(f)

		t.cursor.Advance(2)
	}

	slices.Sort(conquered)
	return conquered, nil
}
