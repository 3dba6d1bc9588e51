// Package localisation keeps the display strings of composed focuses.
//
// Every targeted focus copy gets its own localisation key, derived from the
// template's text key. The cloner copies the template entries under the new
// key and rewrites the placeholders inside them.
package localisation

import (
	"sort"
	"strings"
	"sync"
)

// DescSuffix is appended to a text key to form the description key.
const DescSuffix = "_desc"

// Localiser is the collaborator used while composing trees.
type Localiser interface {
	// CopyFocusLocalisations copies the entries of from (and from_desc) to
	// to (and to_desc) in every language.
	CopyFocusLocalisations(from, to string)
	// UpdateLocalisationText replaces placeholder in the entry key of every
	// language.
	UpdateLocalisationText(key, placeholder, replacement string)
}

// Store is an in-memory, multi-language Localiser. It is safe for
// concurrent use.
type Store struct {
	mu        sync.RWMutex
	languages map[string]map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{languages: make(map[string]map[string]string)}
}

// Set stores a single entry.
func (s *Store) Set(language, key, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(language, key, text)
}

func (s *Store) setLocked(language, key, text string) {
	entries, ok := s.languages[language]
	if !ok {
		entries = make(map[string]string)
		s.languages[language] = entries
	}
	entries[key] = text
}

// Lookup returns the entry key of language.
func (s *Store) Lookup(language, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.languages[language][key]
	return text, ok
}

// Languages returns the known languages, sorted.
func (s *Store) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.languages))
	for l := range s.languages {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// CopyFocusLocalisations implements Localiser.
func (s *Store) CopyFocusLocalisations(from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entries := range s.languages {
		if text, ok := entries[from]; ok {
			entries[to] = text
		}
		if text, ok := entries[from+DescSuffix]; ok {
			entries[to+DescSuffix] = text
		}
	}
}

// UpdateLocalisationText implements Localiser.
func (s *Store) UpdateLocalisationText(key, placeholder, replacement string) {
	if placeholder == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entries := range s.languages {
		if text, ok := entries[key]; ok {
			entries[key] = strings.ReplaceAll(text, placeholder, replacement)
		}
	}
}
