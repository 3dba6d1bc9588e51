package tree

import (
	"slices"
	"strconv"

	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// Ideologies known to the generic tree.
const (
	Democratic = "democratic"
	Fascism    = "fascism"
	Communism  = "communism"
	Absolutist = "absolutist"
	Radical    = "radical"
	Neutrality = "neutrality"
)

// Reference dates that relation based timings are offset from.
var (
	annexationDate = world.MustParseDate("1937.1.1")
	warDate        = world.MustParseDate("1938.1.1")
	greatWarDate   = world.MustParseDate("1939.1.1")
	claimsDate     = world.MustParseDate("1936.1.1")
)

// formatFloat renders v with six decimals, the precision scripts are written
// with.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func has(ideologies []string, ideology string) bool {
	return slices.Contains(ideologies, ideology)
}

// relationDate offsets base by the relations of home towards target. Without
// relations base is returned unchanged.
func relationDate(home *world.Country, target string, base world.Date, divisor int) world.Date {
	if rel, ok := home.Relations(target); ok {
		return base.IncreaseByMonths((200 + rel) / divisor)
	}
	return base
}

// applyTruce replaces placeholder with the end of the truce between home and
// target, or removes it when there is none.
func applyTruce(blob *string, home *world.Country, target, placeholder string) {
	if truce, ok := home.TruceUntil(target); ok {
		focus.UpdateElement(blob, placeholder, "date > "+truce.String())
		return
	}
	focus.RemovePlaceholder(blob, placeholder)
}

// applyDateOrTruce fills placeholder with the later of the relation date and
// the truce end. suffix is appended to the relation date only.
func applyDateOrTruce(blob *string, home *world.Country, target, placeholder string, base world.Date, divisor int, suffix string) {
	date := relationDate(home, target, base, divisor)
	if truce, ok := home.TruceUntil(target); ok && truce.After(date) {
		focus.UpdateElement(blob, placeholder, "date > "+truce.String())
		return
	}
	focus.UpdateElement(blob, placeholder, "date > "+date.String()+suffix)
}

// warWithTargets renders one has_war_with line per tag, the way the AI
// weight blocks expect them.
func warWithTargets(tags []string, skip string) string {
	var out string
	first := true
	for _, tag := range tags {
		if tag == skip {
			continue
		}
		if !first {
			out += "\t\t\t\t"
		}
		out += "has_war_with = " + tag + "\n"
		first = false
	}
	return out
}

func tags(countries []*world.Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Tag
	}
	return out
}
