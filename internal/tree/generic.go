package tree

import (
	"context"
	"fmt"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
)

// ideologyBranch is the four focus generic sub-branch of one collectivist
// ideology. The head is mutually exclusive with the heads of the others.
type ideologyBranch struct {
	ideology string
	focuses  [4]string
}

// Listed in placement order.
var collectivistBranches = []ideologyBranch{
	{Fascism, [4]string{"nationalism_focus", "militarism", "military_youth", "paramilitarism"}},
	{Communism, [4]string{"internationalism_focus", "political_correctness", "indoctrination_focus", "political_commissars"}},
	{Absolutist, [4]string{"absolutism_focus", "royal_dictatorship_focus", "royal_army_tradition_focus", "historical_claims_focus"}},
	{Radical, [4]string{"radical_focus", "private_channels_focus", "hardfought_market_focus", "army_provides_focus"}},
}

// AddGenericFocusTree builds the shared ideological tree every country
// starts from and moves the cursor past it. majorIdeologies must be sorted.
func (t *Tree) AddGenericFocusTree(ctx context.Context, majorIdeologies []string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Creating generic focus tree.", "ideologies", majorIdeologies)

	num := countCollectivist(majorIdeologies)
	democratic := has(majorIdeologies, Democratic)

	f, err := t.sharedCopy("political_effort")
	if err != nil {
		return err
	}
	f.X = int(float64(num)*1.5 + 16)
	t.AddSharedFocus(f)

	if num > 0 {
		if f, err = t.sharedCopy("collectivist_ethos"); err != nil {
			return err
		}
		governments := ""
		for _, ideology := range majorIdeologies {
			if ideology == Democratic {
				continue
			}
			if ideology == majorIdeologies[0] {
				governments += "has_government = " + ideology + "\n"
			} else {
				governments += "\t\t\thas_government = " + ideology + "\n"
			}
		}
		focus.UpdateElement(&f.Available, "$GOVERNMENTS", governments)
		f.X = -(num / 2) - 1
		idea := "collectivist_ethos_focus_neutral"
		if democratic {
			idea = "collectivist_ethos_focus_democratic"
		}
		focus.UpdateElement(&f.CompletionReward, "$IDEA", idea)
		t.AddSharedFocus(f)

		fanaticismPrereqs := ""
		relativePosition := 1 - num
		for i, b := range collectivistBranches {
			if !has(majorIdeologies, b.ideology) {
				continue
			}
			if err := t.addIdeologyBranch(b, relativePosition, majorIdeologies); err != nil {
				return err
			}
			fanaticismPrereqs += " focus = " + b.focuses[3]
			// The last branch leaves the position alone.
			if i < len(collectivistBranches)-1 {
				relativePosition += 2
			}
		}

		if f, err = t.sharedCopy("ideological_fanaticism"); err != nil {
			return err
		}
		f.Prerequisites = []string{"= {" + fanaticismPrereqs + " }"}
		f.X = 0
		f.Y = 5
		f.RelativePositionID = "collectivist_ethos"
		t.AddSharedFocus(f)
	}

	if f, err = t.sharedCopy("liberty_ethos"); err != nil {
		return err
	}
	if num == 0 {
		f.MutuallyExclusive = ""
	}
	if !democratic {
		f.Available = "= {\n\t\t\thas_government = neutrality\n\t\t}"
		f.CompletionReward = "= {\n\tadd_ideas = liberty_ethos_focus_neutral\n}"
	}
	f.X = (num + 1) / 2
	governments := ""
	for _, ideology := range majorIdeologies {
		if ideology == majorIdeologies[0] {
			governments += "has_government = " + ideology + "\n"
		} else {
			governments += "\t\t\t\t\thas_government = " + ideology + "\n"
		}
	}
	focus.UpdateElement(&f.AIWillDo, "$GOVERNMENTS", governments)
	if democratic {
		focus.UpdateElement(&f.AIWillDo, "#NO_MAJOR_DEMOCRATIC_NEIGHBOR", noMajorDemocraticNeighbor)
	} else {
		focus.RemovePlaceholder(&f.AIWillDo, "#NO_MAJOR_DEMOCRATIC_NEIGHBOR")
	}
	t.AddSharedFocus(f)

	if f, err = t.sharedCopy("neutrality_focus"); err != nil {
		return err
	}
	if !democratic {
		f.MutuallyExclusive = ""
	}
	f.AIWillDo = "= {\n\t\t\tfactor = 1\n\t\t}"
	t.AddSharedFocus(f)

	plain := []string{"deterrence"}
	if democratic {
		plain = append(plain, "interventionism_focus", "volunteer_corps", "foreign_expeditions")
	}
	for _, id := range plain {
		if f, err = t.sharedCopy(id); err != nil {
			return err
		}
		t.AddSharedFocus(f)
	}

	if f, err = t.sharedCopy("why_we_fight"); err != nil {
		return err
	}
	if !democratic {
		f.Prerequisites = []string{"= { focus = deterrence }"}
	}
	t.AddSharedFocus(f)

	if f, err = t.sharedCopy("technology_sharing"); err != nil {
		return err
	}
	if num == 0 {
		f.Prerequisites = []string{"= { focus = why_we_fight }"}
	}
	f.X = num
	t.AddSharedFocus(f)

	t.cursor.Set(int(float64(num)*1.5) + (num+1)/2 + 20)
	return nil
}

const noMajorDemocraticNeighbor = "NOT = {\n" +
	"\t\t\t\tany_neighbor_country = {\n" +
	"\t\t\t\t\tis_major = yes\n" +
	"\t\t\t\t\thas_government = democratic\n" +
	"\t\t\t\t}\n" +
	"\t\t\t}\n"

func (t *Tree) addIdeologyBranch(b ideologyBranch, relativePosition int, majorIdeologies []string) error {
	for i, id := range b.focuses {
		f, err := t.sharedCopy(id)
		if err != nil {
			return err
		}
		switch {
		case i == 0:
			f.MutuallyExclusive = mutualExclusions(b.ideology, majorIdeologies)
			f.X = relativePosition
		case id == "military_youth":
			f.CompletionReward = militaryYouthReward(majorIdeologies)
		}
		t.AddSharedFocus(f)
	}
	return nil
}

// mutualExclusions lists the heads of the other collectivist branches.
func mutualExclusions(ideology string, majorIdeologies []string) string {
	out := "= {"
	for _, other := range majorIdeologies {
		if other == ideology {
			continue
		}
		for _, b := range collectivistBranches {
			if b.ideology == other {
				out += " focus = " + b.focuses[0]
			}
		}
	}
	return out + " }"
}

func militaryYouthReward(majorIdeologies []string) string {
	out := "= {\n\t\t\tadd_ideas = military_youth_focus\n"
	for _, ideology := range majorIdeologies {
		out += "\t\t\tif = {\n"
		out += "\t\t\t\tlimit = { has_government = " + ideology + " }\n"
		out += "\t\t\t\tadd_popularity = {\n"
		out += "\t\t\t\t\tideology = " + ideology + "\n"
		out += "\t\t\t\t\tpopularity = 0.2\n"
		out += "\t\t\t\t}\n"
		out += "\t\t\t}\n"
	}
	return out + "\t\t}"
}

func countCollectivist(majorIdeologies []string) int {
	n := 0
	for _, b := range collectivistBranches {
		if has(majorIdeologies, b.ideology) {
			n++
		}
	}
	return n
}

func (t *Tree) sharedCopy(id string) (*focus.Focus, error) {
	f, err := t.cloner.Plain(id)
	if err != nil {
		return nil, fmt.Errorf("generic focus tree: %w", err)
	}
	return f, nil
}
