package templatestore

import "github.com/specialistvlad/focusgridgo/internal/focus"

// Store is the read-only view of a loaded template pool used by the branch
// resolver and the cloner.
type Store interface {
	// Get returns an independent copy of the template with the given id, or
	// an *UnknownTemplateError.
	Get(id string) (focus.Focus, error)

	// Has reports whether a template with the given id was loaded.
	Has(id string) bool

	// IDs returns every loaded template id in lexicographic order.
	IDs() []string

	// Len returns the number of loaded templates.
	Len() int
}
