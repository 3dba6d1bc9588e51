package feature

import (
	"context"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/tree"
	"github.com/specialistvlad/focusgridgo/internal/world"
)

// Build is the composition state of one country. Features run in sequence
// and may read what earlier ones left behind.
type Build struct {
	Tree    *tree.Tree
	Country *world.Country
	World   *world.World

	// NumWarsWithNeighbors is shared by reconquest and conquer.
	NumWarsWithNeighbors int
	// CoreHolders is set by reconquest: holder tag -> held core states.
	CoreHolders map[string][]int
	// Conquered is set by conquer.
	Conquered []string
}

// NewBuild starts the composition of c on t.
func NewBuild(t *tree.Tree, c *world.Country, w *world.World) *Build {
	return &Build{Tree: t, Country: c, World: w}
}

// countries resolves tags against the world. Unknown tags are logged and
// dropped.
func (b *Build) countries(ctx context.Context, kind string, tags []string) []*world.Country {
	out := make([]*world.Country, 0, len(tags))
	for _, tag := range tags {
		c, err := b.World.Country(tag)
		if err != nil {
			ctxlog.FromContext(ctx).Warn("Skipping unknown target country.", "tag", b.Country.Tag, "kind", kind, "target", tag)
			continue
		}
		out = append(out, c)
	}
	return out
}
