package cloner

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/localisation"
	"github.com/specialistvlad/focusgridgo/internal/templatestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `
focus "A" {
  text = "A"
  x    = 2
  completion_reward = "= { add_ideas = idea_$TAG }"
}

focus "B" {
  text                 = "B"
  prerequisite         = ["= { focus = A }"]
  mutually_exclusive   = "= { focus = C }"
  relative_position_id = "A"
  y                    = 1
  available            = "= { has_government = $TAG }"
}

focus "WarPlan" {
  text      = "WarPlan"
  bypass    = "= { has_war_with = $TARGET }"
  available = "= { #TARGET = { exists = yes } }"
  completion_reward = "= { $TARGETNAME = $TARGET }"
}
`

func newTestCloner(t *testing.T) (*Cloner, *localisation.Store) {
	t.Helper()
	pool := templatestore.New()
	require.NoError(t, pool.LoadDocuments(context.Background(), templatestore.Document{Name: "corpus.hcl", Data: []byte(corpus)}))
	loc := localisation.NewStore()
	loc.Set("english", "WarPlan", "War plans against $TARGET")
	loc.Set("english", "WarPlan_desc", "Prepare to fight $TARGET.")
	return New(pool, loc), loc
}

func TestCustomizedCopy(t *testing.T) {
	c, _ := newTestCloner(t)

	got, err := c.CustomizedCopy("B", "XYZ")
	require.NoError(t, err)

	want := &focus.Focus{
		ID:                 "BXYZ",
		Text:               "B",
		Prerequisites:      []string{"= { focus = AXYZ }"},
		MutuallyExclusive:  "= { focus = CXYZ }",
		RelativePositionID: "AXYZ",
		Y:                  1,
		Cost:               focus.DefaultCost,
		Available:          "= { has_government = XYZ }",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected copy (-want +got):\n%s", diff)
	}
}

func TestCustomizedCopy_RootKeepsEmptyAnchor(t *testing.T) {
	c, _ := newTestCloner(t)

	got, err := c.CustomizedCopy("A", "XYZ")
	require.NoError(t, err)
	assert.Equal(t, "AXYZ", got.ID)
	assert.Empty(t, got.RelativePositionID)
	assert.Equal(t, "= { add_ideas = idea_XYZ }", got.CompletionReward)
	assert.NotContains(t, got.CompletionReward, "$TAG")
}

func TestTargetedCopy(t *testing.T) {
	c, loc := newTestCloner(t)

	got, err := c.TargetedCopy("WarPlan", "GER", "FRA")
	require.NoError(t, err)

	assert.Equal(t, "WarPlanGERFRA", got.ID)
	assert.Equal(t, "WarPlanFRA", got.Text)
	assert.Equal(t, "= { has_war_with = FRA }", got.Bypass)
	assert.Equal(t, "= { FRA = { exists = yes } }", got.Available)
	assert.Equal(t, "= { $TARGETNAME = FRA }", got.CompletionReward, "longer placeholders are left for the caller")

	text, ok := loc.Lookup("english", "WarPlanFRA")
	require.True(t, ok)
	assert.Equal(t, "War plans against FRA", text)
	desc, ok := loc.Lookup("english", "WarPlanFRA_desc")
	require.True(t, ok)
	assert.Equal(t, "Prepare to fight FRA.", desc)

	tmplText, _ := loc.Lookup("english", "WarPlan")
	assert.Equal(t, "War plans against $TARGET", tmplText)
}

func TestTargetedCopy_RewritesReferences(t *testing.T) {
	c, _ := newTestCloner(t)

	got, err := c.TargetedCopy("B", "GER", "FRA")
	require.NoError(t, err)
	assert.Equal(t, "BGERFRA", got.ID)
	assert.Equal(t, []string{"= { focus = AGER }"}, got.Prerequisites)
	assert.Equal(t, "= { focus = CGER }", got.MutuallyExclusive)
	assert.Equal(t, "AGER", got.RelativePositionID)
}

func TestClone_CopiesAreIndependent(t *testing.T) {
	c, _ := newTestCloner(t)

	first, err := c.TargetedCopy("B", "GER", "FRA")
	require.NoError(t, err)
	first.Prerequisites[0] = "changed"
	first.Available = "changed"

	second, err := c.TargetedCopy("B", "GER", "FRA")
	require.NoError(t, err)
	assert.Equal(t, []string{"= { focus = AGER }"}, second.Prerequisites)
	assert.Equal(t, "= { has_government = GER }", second.Available)

	plain, err := c.Plain("B")
	require.NoError(t, err)
	assert.Equal(t, "B", plain.ID)
	assert.Equal(t, "= { has_government = $TAG }", plain.Available)
}

func TestClone_Bindings(t *testing.T) {
	c, _ := newTestCloner(t)

	got, err := c.Clone("WarPlan", Params{
		Tag:      "GER",
		Target:   "FRA",
		Bindings: map[string]string{"$TARGETNAME": "France"},
	})
	require.NoError(t, err)
	assert.Equal(t, "= { France = FRA }", got.CompletionReward)
}

func TestClone_Errors(t *testing.T) {
	c, _ := newTestCloner(t)

	_, err := c.CustomizedCopy("Missing", "GER")
	var unknown *templatestore.UnknownTemplateError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Missing", unknown.ID)

	_, err = c.Clone("A", Params{})
	require.Error(t, err)
}

func TestPlaceholderPositions(t *testing.T) {
	testCases := []struct {
		name   string
		reward string
		target string
		want   string
	}{
		{"tag standalone", "= { tag = $TAG }", "", "= { tag = GER }"},
		{"tag as suffix", "= { add_ideas = idea_$TAG }", "", "= { add_ideas = idea_GER }"},
		{"tag as prefix", "= { set_country_flag = $TAG_revanchist }", "", "= { set_country_flag = GER_revanchist }"},
		{"tag glued on both sides", "= { flag = x_$TAG_y $TAG }", "", "= { flag = x_GER_y GER }"},
		{"tag in targeted copy", "= { set_country_flag = $TAG_revanchist add_ideas = idea_$TAG }", "FRA", "= { set_country_flag = GER_revanchist add_ideas = idea_GER }"},
		{"target standalone", "= { has_war_with = $TARGET }", "FRA", "= { has_war_with = FRA }"},
		{"target as suffix", "= { flag = war_$TARGET }", "FRA", "= { flag = war_FRA }"},
		{"target name is not the target", "= { $TARGETNAME = $TARGET }", "FRA", "= { $TARGETNAME = FRA }"},
		{"target selector", "= { #TARGET = { exists = yes } }", "FRA", "= { FRA = { exists = yes } }"},
		{"tag and target side by side", "= { $TAG$TARGET = yes }", "FRA", "= { GERFRA = yes }"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			src := &focus.Focus{ID: "A", CompletionReward: tc.reward}

			// --- Act ---
			var got *focus.Focus
			if tc.target == "" {
				got = Customize(src, "GER")
			} else {
				got = Target(src, "GER", tc.target)
			}

			// --- Assert ---
			assert.Equal(t, tc.want, got.CompletionReward)
			assert.NotContains(t, got.CompletionReward, TagPlaceholder)
		})
	}
}

func TestCustomizedCopy_NoTagPlaceholderLeft(t *testing.T) {
	// --- Arrange ---
	pool := templatestore.New()
	doc := `
focus "A" {
  completion_reward = "= { set_country_flag = $TAG_revanchist  add_ideas = idea_$TAG }"
}
`
	require.NoError(t, pool.LoadDocuments(context.Background(), templatestore.Document{Name: "glued.hcl", Data: []byte(doc)}))

	// --- Act ---
	got, err := New(pool, nil).CustomizedCopy("A", "GER")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "= { set_country_flag = GER_revanchist  add_ideas = idea_GER }", got.CompletionReward)
}
