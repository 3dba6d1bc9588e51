package tree

import (
	"context"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
)

// AddBranch copies a resolved corpus branch into the tree unchanged, level by
// level. The root is centred on the next free column using its declared x as
// the branch width, and registered with the on-actions collaborator. An
// unknown branch is skipped.
func (t *Tree) AddBranch(ctx context.Context, root string) error {
	logger := ctxlog.FromContext(ctx)

	b, ok := t.deps.Branches[root]
	if !ok {
		logger.Warn("Branch not found; skipping.", "tag", t.Tag, "branch", root)
		return nil
	}

	width := 0
	for _, level := range b.ByLevel() {
		for _, id := range level {
			f, err := t.cloner.Plain(id)
			if err != nil {
				return err
			}
			if id == root {
				width = f.X
				f.X = t.cursor.Next() + width/2
				if t.deps.OnActions != nil {
					t.deps.OnActions.AddFocusEvent(t.Tag, id)
				}
			}
			t.AddFocus(f)
		}
	}
	t.cursor.Advance(width + 2)

	logger.Debug("Branch added.", "tag", t.Tag, "branch", root, "focuses", b.Len(), "width", width)
	return nil
}
