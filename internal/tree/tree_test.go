package tree

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/focusgridgo/internal/branch"
	"github.com/specialistvlad/focusgridgo/internal/events"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/localisation"
	"github.com/specialistvlad/focusgridgo/internal/templatestore"
	"github.com/specialistvlad/focusgridgo/internal/testutil"
	"github.com/specialistvlad/focusgridgo/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	tree   *Tree
	events *events.Recorder
	loc    *localisation.Store
	world  *world.World
}

func newFixture(t *testing.T, tag string) *fixture {
	t.Helper()
	pool := testutil.NewPool(t)
	branches, err := branch.Compute(context.Background(), pool)
	require.NoError(t, err)

	rec := events.NewRecorder()
	loc := testutil.NewLocalisation(t)
	return &fixture{
		tree: New(tag, Deps{
			Store:     pool,
			Localiser: loc,
			Events:    rec,
			OnActions: rec,
			Branches:  branches,
		}),
		events: rec,
		loc:    loc,
		world:  testutil.NewWorld(t),
	}
}

func (f *fixture) country(t *testing.T, tag string) *world.Country {
	t.Helper()
	c, err := f.world.Country(tag)
	require.NoError(t, err)
	return c
}

func (f *fixture) countries(t *testing.T, tags ...string) []*world.Country {
	t.Helper()
	cs, err := f.world.Lookup(tags)
	require.NoError(t, err)
	return cs
}

func (f *fixture) get(t *testing.T, id string) *focus.Focus {
	t.Helper()
	got, ok := f.tree.Focus(id)
	require.True(t, ok, "focus %s not in tree %v", id, f.tree.IDs())
	return got
}

func TestNew_DefaultsEvents(t *testing.T) {
	tr := New("GER", Deps{Store: testutil.NewPool(t)})
	require.NotNil(t, tr.deps.Events)
	assert.Equal(t, 1, tr.deps.Events.CurrentNationFocusEventNum())
	assert.Equal(t, 0, tr.NextFreeColumn())
	assert.Empty(t, tr.Focuses())
	assert.Empty(t, tr.SharedFocuses())
}

func TestAddBranch(t *testing.T) {
	t.Run("copies the branch level by level and centres the root", func(t *testing.T) {
		// --- Arrange ---
		f := newFixture(t, "GER")
		f.tree.cursor.Set(4)

		// --- Act ---
		err := f.tree.AddBranch(context.Background(), "flavor_root")

		// --- Assert ---
		require.NoError(t, err)
		assert.Equal(t, []string{"flavor_root", "flavor_child", "flavor_sibling", "flavor_finale"}, f.tree.IDs())
		assert.Equal(t, 5, f.get(t, "flavor_root").X, "root is centred on its declared width")
		assert.Equal(t, -1, f.get(t, "flavor_child").X, "members keep their template values")
		assert.Equal(t, []string{"= { focus = flavor_root }"}, f.get(t, "flavor_child").Prerequisites)
		assert.Equal(t, 9, f.tree.NextFreeColumn())
		assert.Equal(t, []events.FocusHook{{Tag: "GER", FocusID: "flavor_root"}}, f.events.FocusHooks())
	})

	t.Run("unknown branch is skipped", func(t *testing.T) {
		f := newFixture(t, "GER")

		err := f.tree.AddBranch(context.Background(), "no_such_root")

		require.NoError(t, err)
		assert.Empty(t, f.tree.Focuses())
		assert.Equal(t, 0, f.tree.NextFreeColumn())
		assert.Empty(t, f.events.FocusHooks())
	})
}

func TestRemoveFocus(t *testing.T) {
	f := newFixture(t, "GER")
	require.NoError(t, f.tree.AddBranch(context.Background(), "flavor_root"))

	assert.Equal(t, 1, f.tree.RemoveFocus("flavor_child"))
	assert.Equal(t, 0, f.tree.RemoveFocus("flavor_child"))
	assert.Equal(t, []string{"flavor_root", "flavor_sibling", "flavor_finale"}, f.tree.IDs())
}

func TestCustomizedCopy(t *testing.T) {
	// --- Arrange ---
	f := newFixture(t, "")
	ctx := context.Background()
	require.NoError(t, f.tree.AddGenericFocusTree(ctx, []string{Neutrality}))
	require.NoError(t, f.tree.AddBranch(ctx, "flavor_root"))

	// --- Act ---
	cp := f.tree.CustomizedCopy("FRA")

	// --- Assert ---
	assert.Equal(t, "FRA", cp.Tag)
	assert.Empty(t, cp.SharedFocuses(), "shared focuses stay with the source tree")
	assert.Equal(t, []string{"flavor_rootFRA", "flavor_childFRA", "flavor_siblingFRA", "flavor_finaleFRA"}, cp.IDs())
	assert.Equal(t, f.tree.NextFreeColumn(), cp.NextFreeColumn())

	finale, ok := cp.Focus("flavor_finaleFRA")
	require.True(t, ok)
	want := []string{"= { focus = flavor_childFRA focus = flavor_siblingFRA }"}
	if diff := cmp.Diff(want, finale.Prerequisites); diff != "" {
		t.Errorf("prerequisites mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "flavor_rootFRA", finale.RelativePositionID)

	// The copy is independent of the source.
	finale.X = 42
	src := f.get(t, "flavor_finale")
	assert.Equal(t, 0, src.X)

	// Copies advance independently.
	cp.cursor.Advance(3)
	assert.Equal(t, f.tree.NextFreeColumn()+3, cp.NextFreeColumn())
}

func TestUnknownTemplate(t *testing.T) {
	tr := New("GER", Deps{Store: templatestore.New()})
	home := &world.Country{Tag: "GER", PuppetLevels: map[string]string{"SLO": "puppet"}}

	err := tr.AddIntegratePuppetsBranch(context.Background(), home)

	require.Error(t, err)
	var unknown *templatestore.UnknownTemplateError
	assert.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "focus tree GER")
}

func TestUnknownTemplate_NoPuppets(t *testing.T) {
	// --- Arrange ---
	tr := New("GER", Deps{Store: templatestore.New()})
	home := &world.Country{Tag: "GER"}

	// --- Act ---
	err := tr.AddIntegratePuppetsBranch(context.Background(), home)

	// --- Assert ---
	require.Error(t, err)
	var unknown *templatestore.UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "integrate_satellite", unknown.ID)
	assert.Empty(t, tr.IDs())
}

func TestComposition_EndToEnd(t *testing.T) {
	pool := templatestore.New()
	require.NoError(t, pool.LoadDocuments(context.Background(), templatestore.Document{Name: "ab.hcl", Data: []byte(`
focus "A" {
  completion_reward = "= { $TAG = { add_stability = 0.1 } }"
}
focus "B" {
  prerequisite = ["= { focus = A }"]
  available    = "= { $TARGET = { exists = yes } }"
}
`)}))

	t.Run("customized copies", func(t *testing.T) {
		tr := New("XYZ", Deps{Store: pool})
		for _, id := range []string{"A", "B"} {
			f, err := tr.customized(id)
			require.NoError(t, err)
			tr.AddFocus(f)
		}

		assert.Equal(t, []string{"AXYZ", "BXYZ"}, tr.IDs())
		b, ok := tr.Focus("BXYZ")
		require.True(t, ok)
		assert.Contains(t, b.Prerequisites[0], "AXYZ")
		a, _ := tr.Focus("AXYZ")
		assert.NotContains(t, a.CompletionReward, "$TAG")
	})

	t.Run("targeted copy", func(t *testing.T) {
		tr := New("GER", Deps{Store: pool})

		f, err := tr.targeted("B", "FRA")

		require.NoError(t, err)
		assert.Equal(t, "BGERFRA", f.ID)
		assert.Contains(t, f.Available, "FRA")
		assert.NotContains(t, f.Available, "$TARGET")
	})
}
