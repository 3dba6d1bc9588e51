package branch

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/focusgridgo/internal/templatestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPool(t *testing.T, src string) *templatestore.Pool {
	t.Helper()
	p := templatestore.New()
	require.NoError(t, p.LoadDocuments(context.Background(), templatestore.Document{Name: "corpus.hcl", Data: []byte(src)}))
	return p
}

func TestCompute_Chain(t *testing.T) {
	p := loadPool(t, `
focus "root" {}
focus "child1" { prerequisite = ["= { focus = root }"] }
focus "child2" { prerequisite = ["= { focus = child1 }"] }
`)

	set, err := Compute(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, []string{"root"}, set.Roots())

	want := map[string]int{"root": 0, "child1": 1, "child2": 2}
	if diff := cmp.Diff(want, set["root"].Levels); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	assert.Equal(t, [][]string{{"root"}, {"child1"}, {"child2"}}, set["root"].ByLevel())
}

func TestCompute_DanglingPrerequisiteIsExcluded(t *testing.T) {
	p := loadPool(t, `
focus "root" {}
focus "orphan" { prerequisite = ["= { focus = missing }"] }
focus "orphan_child" { prerequisite = ["= { focus = orphan }"] }
`)

	set, err := Compute(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, set, 1)
	for _, b := range set {
		assert.False(t, b.Contains("orphan"))
		assert.False(t, b.Contains("orphan_child"))
	}
}

func TestCompute_SharedChildJoinsEveryBranch(t *testing.T) {
	p := loadPool(t, `
focus "left" {}
focus "right" {}
focus "mid" { prerequisite = ["= { focus = left }"] }
focus "joint" { prerequisite = ["= { focus = mid focus = right }"] }
`)

	set, err := Compute(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, []string{"left", "right"}, set.Roots())

	assert.Equal(t, map[string]int{"left": 0, "mid": 1, "joint": 2}, set["left"].Levels)
	assert.Equal(t, map[string]int{"right": 0, "joint": 1}, set["right"].Levels)
}

func TestCompute_LevelIsShortestDistance(t *testing.T) {
	p := loadPool(t, `
focus "root" {}
focus "a" { prerequisite = ["= { focus = root }"] }
focus "b" { prerequisite = ["= { focus = a }"] }
focus "c" {
  prerequisite = ["= { focus = b }", "= { focus = root }"]
}
`)

	set, err := Compute(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, set["root"].Levels["c"])
	assert.Equal(t, 4, set["root"].Len())
}

func TestCompute_CycleDoesNotHang(t *testing.T) {
	p := loadPool(t, `
focus "root" {}
focus "a" { prerequisite = ["= { focus = root focus = b }"] }
focus "b" { prerequisite = ["= { focus = a }"] }
`)

	set, err := Compute(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"root": 0, "a": 1, "b": 2}, set["root"].Levels)
}
