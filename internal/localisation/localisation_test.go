package localisation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyAndUpdate(t *testing.T) {
	s := NewStore()
	s.Set("english", "WarPlan", "War Plan: $TARGET")
	s.Set("english", "WarPlan_desc", "Plan a war against $TARGET.")
	s.Set("german", "WarPlan", "Kriegsplan: $TARGET")

	s.CopyFocusLocalisations("WarPlan", "WarPlanFRA")
	s.UpdateLocalisationText("WarPlanFRA", "$TARGET", "FRA")
	s.UpdateLocalisationText("WarPlanFRA_desc", "$TARGET", "FRA")

	text, ok := s.Lookup("english", "WarPlanFRA")
	require.True(t, ok)
	assert.Equal(t, "War Plan: FRA", text)

	desc, ok := s.Lookup("english", "WarPlanFRA_desc")
	require.True(t, ok)
	assert.Equal(t, "Plan a war against FRA.", desc)

	german, ok := s.Lookup("german", "WarPlanFRA")
	require.True(t, ok)
	assert.Equal(t, "Kriegsplan: FRA", german)

	_, ok = s.Lookup("german", "WarPlanFRA_desc")
	assert.False(t, ok, "missing source entries are not invented")

	original, _ := s.Lookup("english", "WarPlan")
	assert.Equal(t, "War Plan: $TARGET", original)
}

func TestCopyAndUpdate_IsIdempotent(t *testing.T) {
	s := NewStore()
	s.Set("english", "WarPlan", "War Plan: $TARGET")

	for i := 0; i < 2; i++ {
		s.CopyFocusLocalisations("WarPlan", "WarPlanFRA")
		s.UpdateLocalisationText("WarPlanFRA", "$TARGET", "FRA")
	}

	text, _ := s.Lookup("english", "WarPlanFRA")
	assert.Equal(t, "War Plan: FRA", text)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	src := `
language "english" {
  entries = {
    WarPlan      = "War Plan: $TARGET"
    WarPlan_desc = "Plan a war."
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "focus.hcl"), []byte(src), 0644))

	s := NewStore()
	require.NoError(t, s.Load(context.Background(), dir))

	assert.Equal(t, []string{"english"}, s.Languages())
	text, ok := s.Lookup("english", "WarPlan")
	require.True(t, ok)
	assert.Equal(t, "War Plan: $TARGET", text)
}

func TestWriteYAML(t *testing.T) {
	s := NewStore()
	s.Set("english", "b", "Second")
	s.Set("english", "a", "First")

	var buf bytes.Buffer
	require.NoError(t, s.WriteYAML(&buf, "english"))
	assert.Equal(t, "\ufeffl_english:\n a:0 \"First\"\n b:0 \"Second\"\n", buf.String())
}
