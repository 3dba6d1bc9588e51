package feature

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/focusgridgo/internal/events"
	"github.com/specialistvlad/focusgridgo/internal/testutil"
	"github.com/specialistvlad/focusgridgo/internal/tree"
	"github.com/specialistvlad/focusgridgo/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingModule struct {
	calls *[]string
}

func (m recordingModule) Register(r *Registry) {
	for _, name := range []string{"first", "second"} {
		r.Register(name, func(ctx context.Context, b *Build) error {
			*m.calls = append(*m.calls, name)
			return nil
		})
	}
	r.Register("broken", func(ctx context.Context, b *Build) error {
		return errors.New("boom")
	})
}

func TestRegistry(t *testing.T) {
	var calls []string
	r := NewRegistry(recordingModule{calls: &calls})
	b := &Build{Country: &world.Country{Tag: "GER"}}

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"broken", "first", "second"}, r.Names())
	})

	t.Run("apply runs in the given order", func(t *testing.T) {
		calls = nil
		require.NoError(t, r.Apply(context.Background(), b, []string{"second", "first"}))
		assert.Equal(t, []string{"second", "first"}, calls)
	})

	t.Run("apply stops at the first failure", func(t *testing.T) {
		calls = nil
		err := r.Apply(context.Background(), b, []string{"first", "broken", "second"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feature broken for GER: boom")
		assert.Equal(t, []string{"first"}, calls)
	})

	t.Run("unknown names", func(t *testing.T) {
		assert.Error(t, r.Apply(context.Background(), b, []string{"nope"}))
		err := r.Validate([]string{"first", "nope"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "[nope]")
		assert.NoError(t, r.Validate([]string{"first", "broken"}))
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() { r.Register("first", nil) })
	})
}

func TestBuiltin_RegistersEveryFeature(t *testing.T) {
	r := NewRegistry(Builtin{})
	assert.Equal(t, []string{
		AbsolutistEmpire, CommunistCoup, CommunistWar, Conquer, Democracy,
		FascistAnnexation, FascistSudeten, GreatPowerWar, IntegratePuppets, Reconquest,
	}, r.Names())
}

func newBuild(t *testing.T, tag string, w *world.World) (*Build, *events.Recorder) {
	t.Helper()
	rec := events.NewRecorder()
	tr := tree.New(tag, tree.Deps{
		Store:     testutil.NewPool(t),
		Localiser: testutil.NewLocalisation(t),
		Events:    rec,
		OnActions: rec,
	})
	c, err := w.Country(tag)
	require.NoError(t, err)
	return NewBuild(tr, c, w), rec
}

func TestBuiltin_FascistGreatPower(t *testing.T) {
	// --- Arrange ---
	w := testutil.NewWorld(t)
	b, rec := newBuild(t, "GER", w)
	r := NewRegistry(Builtin{})

	// --- Act ---
	err := r.Apply(context.Background(), b, []string{
		FascistAnnexation, FascistSudeten, GreatPowerWar, Reconquest, Conquer, IntegratePuppets,
	})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"POL": {5}}, b.CoreHolders)
	assert.Equal(t, []string{"DEN"}, b.Conquered)
	assert.Equal(t, 2, b.NumWarsWithNeighbors)
	assert.Equal(t, 12, b.Tree.NextFreeColumn())

	for _, id := range []string{
		"The_third_wayGER", "GER_anschluss_AUS", "GER_finish_CZE", "fas_SummitGER",
		"GP_WarENGGER", "reclaim_coresGER", "cleanup_revanchismGERPOL",
		"neighbor_warGERDEN", "integrate_satelliteGERSLO",
	} {
		_, ok := b.Tree.Focus(id)
		assert.True(t, ok, id)
	}
	reclaim, _ := b.Tree.Focus("reclaim_coresGER")
	assert.Equal(t, 6, reclaim.X)
	puppet, _ := b.Tree.Focus("integrate_satelliteGERSLO")
	assert.Equal(t, 10, puppet.X)

	var kinds []events.Kind
	for _, e := range rec.Events() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []events.Kind{events.KindAnnex, events.KindSudeten, events.KindFaction}, kinds)
}

func TestBuiltin_FascistWithoutAnschluss(t *testing.T) {
	// --- Arrange ---
	w := testutil.NewWorld(t)
	w.Countries["HUN"] = &world.Country{
		Tag:        "HUN",
		Name:       "Hungary",
		Government: "fascism",
		Targets:    world.Targets{Sudeten: []string{"CZE"}},
	}
	b, rec := newBuild(t, "HUN", w)
	r := NewRegistry(Builtin{})

	// --- Act ---
	err := r.Apply(context.Background(), b, []string{FascistAnnexation, FascistSudeten})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"expand_the_reichHUN", "HUN_sudeten_CZE", "HUN_finish_CZE"}, b.Tree.IDs())
	expand, _ := b.Tree.Focus("expand_the_reichHUN")
	assert.Equal(t, 2, expand.X, "the removed trunk keeps its columns")
	assert.Empty(t, rec.Events(), "no states are demanded from CZE")
}

func TestBuiltin_SkipsUnknownTargets(t *testing.T) {
	w := testutil.NewWorld(t)
	fra, err := w.Country("FRA")
	require.NoError(t, err)
	fra.Targets.Contain = []string{"ZZZ", "GER"}
	b, _ := newBuild(t, "FRA", w)

	err = NewRegistry(Builtin{}).Apply(context.Background(), b, []string{Democracy})

	require.NoError(t, err)
	assert.Equal(t, []string{"WarPropFRA", "PrepInterFRA", "LimFRA", "WarPlanFRAGER", "EmbargoFRAGER", "WARFRAGER"}, b.Tree.IDs())
}
