package templatestore

import (
	"context"
	"os"
	"sort"
	"sync"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
	"github.com/specialistvlad/focusgridgo/internal/focus"
	"github.com/specialistvlad/focusgridgo/internal/fsutil"
)

// Pool is the in-memory template store. The zero value is not usable; use
// New.
type Pool struct {
	mu        sync.RWMutex
	templates map[string]focus.Focus
	loaded    bool
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{templates: make(map[string]focus.Focus)}
}

// EnsureLoaded populates the pool from every .hcl file found under paths.
// Only the first successful call does any work; later calls return nil
// without touching the file system.
func (p *Pool) EnsureLoaded(ctx context.Context, paths ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	if p.loaded {
		logger.Debug("Focus templates already loaded.", "count", len(p.templates))
		return nil
	}

	files, err := fsutil.FindAll(paths, ".hcl")
	if err != nil {
		return &LoadError{Source: "corpus", Err: err}
	}
	logger.Debug("Discovered focus template files.", "count", len(files))

	docs := make([]Document, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return &LoadError{Source: file, Err: err}
		}
		docs = append(docs, Document{Name: file, Data: data})
	}

	if err := p.loadLocked(ctx, docs); err != nil {
		return err
	}
	p.loaded = true
	logger.Info("Focus templates loaded.", "files", len(files), "templates", len(p.templates))
	return nil
}

// LoadDocuments adds the templates of docs to the pool and marks it loaded.
// When an id is declared twice the first declaration wins.
func (p *Pool) LoadDocuments(ctx context.Context, docs ...Document) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.loadLocked(ctx, docs); err != nil {
		return err
	}
	p.loaded = true
	return nil
}

func (p *Pool) loadLocked(ctx context.Context, docs []Document) error {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()

	for _, doc := range docs {
		templates, err := parseDocument(parser, doc)
		if err != nil {
			return &LoadError{Source: doc.Name, Err: err}
		}
		for _, t := range templates {
			if _, exists := p.templates[t.ID]; exists {
				logger.Warn("Duplicate focus template ignored.", "id", t.ID, "source", doc.Name)
				continue
			}
			p.templates[t.ID] = t
		}
		logger.Debug("Parsed focus template document.", "source", doc.Name, "templates", len(templates))
	}
	return nil
}

// Loaded reports whether the pool has been populated.
func (p *Pool) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

// Get implements Store.
func (p *Pool) Get(id string) (focus.Focus, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	t, ok := p.templates[id]
	if !ok {
		return focus.Focus{}, &UnknownTemplateError{ID: id, Suggestions: suggest(id, p.sortedIDsLocked())}
	}
	return *t.Clone(), nil
}

// Has implements Store.
func (p *Pool) Has(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.templates[id]
	return ok
}

// IDs implements Store.
func (p *Pool) IDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sortedIDsLocked()
}

// Len implements Store.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.templates)
}

func (p *Pool) sortedIDsLocked() []string {
	ids := make([]string, 0, len(p.templates))
	for id := range p.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
