package world

import (
	"maps"
	"slices"
)

// AIStrategy is a conquest preference of a country towards another one.
// ClaimedState is zero when the strategy carries no state claim.
type AIStrategy struct {
	ID           string
	Value        float64
	ClaimedState int
}

// HasClaim reports whether the strategy names a claimed state.
func (s AIStrategy) HasClaim() bool { return s.ClaimedState != 0 }

// Targets lists, per feature, the countries a country acts against or with.
type Targets struct {
	Contain     []string
	Colonies    []string
	Annexation  []string
	Sudeten     []string
	Coup        []string
	War         []string
	Allies      []string
	GreatPowers []string
}

// State is a province group owned by one country.
type State struct {
	ID        int
	Owner     string
	Provinces []int
}

// Country holds the read-only data the focus tree assembly needs about one
// country. Fields are populated by the loader and must not be mutated once
// composition starts.
type Country struct {
	Tag            string
	Name           string
	Government     string
	WarPolicy      string
	Overlord       string
	RelationScores map[string]int
	Truces         map[string]Date
	Cores          []int
	Claims         []int
	Allies         []string
	PuppetLevels   map[string]string
	Strategies     []AIStrategy
	Targets        Targets
	Demanded       map[string][]int
}

// HasName reports whether a display name is known for the country.
func (c *Country) HasName() bool { return c.Name != "" }

// Relations returns the relation score towards tag.
func (c *Country) Relations(tag string) (int, bool) {
	v, ok := c.RelationScores[tag]
	return v, ok
}

// TruceUntil returns the date a truce with tag expires.
func (c *Country) TruceUntil(tag string) (Date, bool) {
	d, ok := c.Truces[tag]
	return d, ok
}

// CoreStates returns the core state ids, ascending.
func (c *Country) CoreStates() []int {
	out := slices.Clone(c.Cores)
	slices.Sort(out)
	return out
}

// ClaimedStates returns the claimed state ids, ascending.
func (c *Country) ClaimedStates() []int {
	out := slices.Clone(c.Claims)
	slices.Sort(out)
	return out
}

// ConquerStrategies returns the strategies in their declared order.
func (c *Country) ConquerStrategies() []AIStrategy {
	return slices.Clone(c.Strategies)
}

// Puppets returns the puppet tags, sorted.
func (c *Country) Puppets() []string {
	return slices.Sorted(maps.Keys(c.PuppetLevels))
}

// DemandedStates returns the states demanded from target.
func (c *Country) DemandedStates(target string) ([]int, bool) {
	v, ok := c.Demanded[target]
	return slices.Clone(v), ok
}

// IsEligibleEnemy reports whether the country may go to war with target.
// Itself, allies, puppets and the overlord are never eligible.
func (c *Country) IsEligibleEnemy(target string) bool {
	if target == c.Tag || target == c.Overlord {
		return false
	}
	if slices.Contains(c.Allies, target) {
		return false
	}
	_, puppet := c.PuppetLevels[target]
	return !puppet
}
