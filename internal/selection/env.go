package selection

import (
	"slices"

	"github.com/specialistvlad/focusgridgo/internal/world"
)

// Env is what a rule's `when` expression sees. Fields and methods are
// callable by name, e.g. `Government == "fascism" && HasTargets("sudeten")`.
type Env struct {
	Tag             string
	Government      string
	WarPolicy       string
	MajorIdeologies []string
	Targets         world.Targets
	Puppets         []string
	CoreStates      []int
	ClaimedStates   []int
	Strategies      int
}

// NewEnv builds the environment of country c.
func NewEnv(c *world.Country, w *world.World) Env {
	return Env{
		Tag:             c.Tag,
		Government:      c.Government,
		WarPolicy:       c.WarPolicy,
		MajorIdeologies: slices.Clone(w.MajorIdeologies),
		Targets:         c.Targets,
		Puppets:         c.Puppets(),
		CoreStates:      c.CoreStates(),
		ClaimedStates:   c.ClaimedStates(),
		Strategies:      len(c.Strategies),
	}
}

func (e Env) HasIdeology(ideology string) bool {
	return slices.Contains(e.MajorIdeologies, ideology)
}

// HasTargets reports whether the target list of the given kind is non-empty.
// Unknown kinds have no targets.
func (e Env) HasTargets(kind string) bool {
	return len(e.TargetList(kind)) > 0
}

func (e Env) TargetList(kind string) []string {
	switch kind {
	case "contain":
		return e.Targets.Contain
	case "colonies":
		return e.Targets.Colonies
	case "annexation":
		return e.Targets.Annexation
	case "sudeten":
		return e.Targets.Sudeten
	case "coup":
		return e.Targets.Coup
	case "war":
		return e.Targets.War
	case "allies":
		return e.Targets.Allies
	case "great_powers":
		return e.Targets.GreatPowers
	}
	return nil
}
