package templatestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `
focus_tree {
  id = "generic_focus"
}

focus "A" {
  icon = "GFX_goal_generic_political_pressure"
  text = "A"
  x    = 3
  completion_reward = <<EOT
= {
			add_political_power = 120
		}
EOT
}

focus "B" {
  prerequisite = ["= { focus = A }"]
  relative_position_id = "A"
  y    = 1
  cost = 5
}

shared_focus "political_effort" {
  x = 16
}
`

func TestLoadDocuments(t *testing.T) {
	p := New()
	err := p.LoadDocuments(context.Background(), Document{Name: "corpus.hcl", Data: []byte(corpus)})
	require.NoError(t, err)

	assert.True(t, p.Loaded())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"A", "B", "political_effort"}, p.IDs())

	b, err := p.Get("B")
	require.NoError(t, err)
	want := focus.Focus{
		ID:                 "B",
		Prerequisites:      []string{"= { focus = A }"},
		RelativePositionID: "A",
		Y:                  1,
		Cost:               5,
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("unexpected template (-want +got):\n%s", diff)
	}

	a, err := p.Get("A")
	require.NoError(t, err)
	assert.Equal(t, focus.DefaultCost, a.Cost)
	assert.Equal(t, "= {\n\t\t\tadd_political_power = 120\n\t\t}\n", a.CompletionReward)

	shared, err := p.Get("political_effort")
	require.NoError(t, err)
	assert.True(t, shared.Shared)
	assert.Equal(t, 16, shared.X)
}

func TestGet_ReturnsIndependentCopies(t *testing.T) {
	p := New()
	require.NoError(t, p.LoadDocuments(context.Background(), Document{Name: "corpus.hcl", Data: []byte(corpus)}))

	b, err := p.Get("B")
	require.NoError(t, err)
	b.ID = "BGER"
	b.Prerequisites[0] = "= { focus = AGER }"

	again, err := p.Get("B")
	require.NoError(t, err)
	assert.Equal(t, "B", again.ID)
	assert.Equal(t, []string{"= { focus = A }"}, again.Prerequisites)
}

func TestGet_UnknownTemplate(t *testing.T) {
	p := New()
	require.NoError(t, p.LoadDocuments(context.Background(), Document{Name: "corpus.hcl", Data: []byte(corpus)}))

	_, err := p.Get("politcal_effort")
	require.Error(t, err)

	var unknown *UnknownTemplateError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "politcal_effort", unknown.ID)
	assert.Contains(t, unknown.Suggestions, "political_effort")
	assert.Contains(t, err.Error(), "politcal_effort")
}

func TestLoadDocuments_FirstDeclarationWins(t *testing.T) {
	p := New()
	err := p.LoadDocuments(context.Background(),
		Document{Name: "one.hcl", Data: []byte(`focus "A" { x = 1 }`)},
		Document{Name: "two.hcl", Data: []byte(`focus "A" { x = 2 }`)},
	)
	require.NoError(t, err)

	a, err := p.Get("A")
	require.NoError(t, err)
	assert.Equal(t, 1, a.X)
}

func TestLoadDocuments_InvalidHCL(t *testing.T) {
	p := New()
	err := p.LoadDocuments(context.Background(), Document{Name: "broken.hcl", Data: []byte(`focus "A" {`)})
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "broken.hcl", loadErr.Source)
}

func TestEnsureLoaded_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.hcl")
	require.NoError(t, os.WriteFile(path, []byte(corpus), 0644))

	p := New()
	ctx := context.Background()
	require.NoError(t, p.EnsureLoaded(ctx, dir))
	before := p.IDs()

	// A second call must not re-read the corpus, even if it changed.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.hcl"), []byte(`focus "C" {}`), 0644))
	require.NoError(t, p.EnsureLoaded(ctx, dir))

	assert.Equal(t, before, p.IDs())
	assert.False(t, p.Has("C"))
}

func TestEnsureLoaded_MissingPath(t *testing.T) {
	p := New()
	err := p.EnsureLoaded(context.Background(), filepath.Join(t.TempDir(), "missing"))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.False(t, p.Loaded())
}
