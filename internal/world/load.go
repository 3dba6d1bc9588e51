package world

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

type worldFile struct {
	MajorIdeologies []string        `hcl:"major_ideologies,optional"`
	States          []*stateBlock   `hcl:"state,block"`
	Countries       []*countryBlock `hcl:"country,block"`
	Remain          hcl.Body        `hcl:",remain"`
}

type stateBlock struct {
	ID        string `hcl:"id,label"`
	Owner     string `hcl:"owner"`
	Provinces []int  `hcl:"provinces,optional"`
}

type countryBlock struct {
	Tag            string            `hcl:"tag,label"`
	Name           string            `hcl:"name,optional"`
	Government     string            `hcl:"government"`
	WarPolicy      string            `hcl:"war_policy,optional"`
	Overlord       string            `hcl:"overlord,optional"`
	Relations      cty.Value         `hcl:"relations,optional"`
	Truces         map[string]string `hcl:"truces,optional"`
	CoreStates     []int             `hcl:"core_states,optional"`
	ClaimedStates  []int             `hcl:"claimed_states,optional"`
	Allies         []string          `hcl:"allies,optional"`
	Puppets        map[string]string `hcl:"puppets,optional"`
	DemandedStates cty.Value         `hcl:"demanded_states,optional"`
	Strategies     []*strategyBlock  `hcl:"conquer_strategy,block"`
	Targets        *targetsBlock     `hcl:"targets,block"`
}

type strategyBlock struct {
	ID           string  `hcl:"id,label"`
	Value        float64 `hcl:"value"`
	ClaimedState int     `hcl:"claimed_state,optional"`
}

type targetsBlock struct {
	Contain     []string `hcl:"contain,optional"`
	Colonies    []string `hcl:"colonies,optional"`
	Annexation  []string `hcl:"annexation,optional"`
	Sudeten     []string `hcl:"sudeten,optional"`
	Coup        []string `hcl:"coup,optional"`
	War         []string `hcl:"war,optional"`
	Allies      []string `hcl:"allies,optional"`
	GreatPowers []string `hcl:"great_powers,optional"`
}

// LoadFile reads and parses a world document from disk.
func LoadFile(ctx context.Context, path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	return Parse(ctx, data, path)
}

// Parse decodes a world document. A minimal one looks like:
//
//	major_ideologies = ["democratic", "fascism", "neutrality"]
//
//	state "10" {
//	  owner     = "CZE"
//	  provinces = [1, 2, 3]
//	}
//
//	country "GER" {
//	  government = "fascism"
//	  relations  = { CZE = -40 }
//	  truces     = { FRA = "1937.6.1" }
//	  targets {
//	    sudeten = ["CZE"]
//	  }
//	}
func Parse(ctx context.Context, data []byte, name string) (*World, error) {
	logger := ctxlog.FromContext(ctx)

	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse world file %s: %w", name, diags)
	}
	var root worldFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode world file %s: %w", name, diags)
	}

	w := New()
	w.MajorIdeologies = slices.Compact(slices.Sorted(slices.Values(root.MajorIdeologies)))

	for _, sb := range root.States {
		id, err := strconv.Atoi(sb.ID)
		if err != nil {
			return nil, fmt.Errorf("state %q: id must be an integer: %w", sb.ID, err)
		}
		if _, dup := w.States[id]; dup {
			return nil, fmt.Errorf("state %d declared twice", id)
		}
		w.States[id] = &State{ID: id, Owner: sb.Owner, Provinces: sb.Provinces}
	}

	for _, cb := range root.Countries {
		if _, dup := w.Countries[cb.Tag]; dup {
			return nil, fmt.Errorf("country %s declared twice", cb.Tag)
		}
		c, err := cb.translate()
		if err != nil {
			return nil, fmt.Errorf("country %s: %w", cb.Tag, err)
		}
		w.Countries[c.Tag] = c
	}

	for _, s := range w.States {
		if _, ok := w.Countries[s.Owner]; !ok {
			logger.Warn("State owner is not a declared country.", "state", s.ID, "owner", s.Owner)
		}
	}

	logger.Debug("World loaded.", "countries", len(w.Countries), "states", len(w.States), "ideologies", w.MajorIdeologies)
	return w, nil
}

func (b *countryBlock) translate() (*Country, error) {
	c := &Country{
		Tag:          b.Tag,
		Name:         b.Name,
		Government:   b.Government,
		WarPolicy:    b.WarPolicy,
		Overlord:     b.Overlord,
		Cores:        b.CoreStates,
		Claims:       b.ClaimedStates,
		Allies:       b.Allies,
		PuppetLevels: b.Puppets,
		Truces:       make(map[string]Date, len(b.Truces)),
	}

	if err := decodeMap(b.Relations, cty.Map(cty.Number), &c.RelationScores); err != nil {
		return nil, fmt.Errorf("relations: %w", err)
	}
	if err := decodeMap(b.DemandedStates, cty.Map(cty.List(cty.Number)), &c.Demanded); err != nil {
		return nil, fmt.Errorf("demanded_states: %w", err)
	}

	for tag, raw := range b.Truces {
		d, err := ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("truce with %s: %w", tag, err)
		}
		c.Truces[tag] = d
	}

	for _, sb := range b.Strategies {
		c.Strategies = append(c.Strategies, AIStrategy{ID: sb.ID, Value: sb.Value, ClaimedState: sb.ClaimedState})
	}

	if t := b.Targets; t != nil {
		c.Targets = Targets{
			Contain:     t.Contain,
			Colonies:    t.Colonies,
			Annexation:  t.Annexation,
			Sudeten:     t.Sudeten,
			Coup:        t.Coup,
			War:         t.War,
			Allies:      t.Allies,
			GreatPowers: t.GreatPowers,
		}
	}
	return c, nil
}

// decodeMap converts a dynamically typed attribute into the Go map behind
// target. Unset attributes leave target untouched.
func decodeMap(v cty.Value, want cty.Type, target any) error {
	if v.IsNull() {
		return nil
	}
	converted, err := convert.Convert(v, want)
	if err != nil {
		return err
	}
	return gocty.FromCtyValue(converted, target)
}
