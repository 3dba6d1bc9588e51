// Package branch partitions the template pool into branches.
//
// A branch starts at a template with no prerequisites (level 0). Every
// template whose prerequisites reference a member of the branch joins it one
// level further down. Levels are breadth-first distances from the root.
//
// Membership is tracked per branch only: a template reachable from two roots
// belongs to both branches. Templates that depend on ids absent from the pool
// are never reached and belong to no branch.
package branch

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/dag"
	"github.com/specialistvlad/focusgridgo/internal/prereq"
	"github.com/specialistvlad/focusgridgo/internal/templatestore"
)

// Branch maps every member template id to its level.
type Branch struct {
	Root   string
	Levels map[string]int
}

// Contains reports whether id is a member of the branch.
func (b *Branch) Contains(id string) bool {
	_, ok := b.Levels[id]
	return ok
}

// Len returns the number of members, root included.
func (b *Branch) Len() int {
	return len(b.Levels)
}

// ByLevel groups member ids by level. Ids within a level are sorted.
func (b *Branch) ByLevel() [][]string {
	depth := 0
	for _, l := range b.Levels {
		depth = max(depth, l+1)
	}
	out := make([][]string, depth)
	for id, l := range b.Levels {
		out[l] = append(out[l], id)
	}
	for _, ids := range out {
		sort.Strings(ids)
	}
	return out
}

// Set is the result of Compute, keyed by root id.
type Set map[string]*Branch

// Roots returns the root ids in lexicographic order.
func (s Set) Roots() []string {
	roots := make([]string, 0, len(s))
	for r := range s {
		roots = append(roots, r)
	}
	sort.Strings(roots)
	return roots
}

// Graph builds the prerequisite graph of the pool. References to ids that
// are not in the pool are dropped.
func Graph(store templatestore.Store) (*dag.Graph, error) {
	g := dag.New()
	ids := store.IDs()
	for _, id := range ids {
		g.AddNode(id)
	}
	for _, id := range ids {
		t, err := store.Get(id)
		if err != nil {
			return nil, err
		}
		for _, ref := range prereq.ExtractAll(t.Prerequisites).Sorted() {
			if ref == id || !g.HasNode(ref) {
				continue
			}
			if err := g.AddEdge(ref, id); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Compute resolves every branch of the pool.
func Compute(ctx context.Context, store templatestore.Store) (Set, error) {
	logger := ctxlog.FromContext(ctx)

	g, err := Graph(store)
	if err != nil {
		return nil, fmt.Errorf("failed to build prerequisite graph: %w", err)
	}
	if err := g.DetectCycles(); err != nil {
		// Members of a cycle are still reachable once; the per-branch guard
		// stops the walk.
		logger.Warn("Prerequisite cycle in focus templates.", "error", err)
	}

	branches := make(Set)
	for _, id := range store.IDs() {
		t, err := store.Get(id)
		if err != nil {
			return nil, err
		}
		if len(t.Prerequisites) != 0 {
			continue
		}
		b, err := walk(g, id)
		if err != nil {
			return nil, err
		}
		branches[id] = b
	}

	logger.Debug("Focus branches computed.", "branches", len(branches), "templates", store.Len())
	return branches, nil
}

func walk(g *dag.Graph, root string) (*Branch, error) {
	b := &Branch{Root: root, Levels: map[string]int{root: 0}}
	queue := []string{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		children, err := g.Dependents(current)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if b.Contains(child) {
				continue
			}
			b.Levels[child] = b.Levels[current] + 1
			queue = append(queue, child)
		}
	}
	return b, nil
}
