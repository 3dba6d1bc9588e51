package localisation

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteYAML writes the entries of language in the game's localisation
// format: a BOM, the `l_<language>:` header, then one ` key:0 "text"` line
// per entry, sorted by key.
func (s *Store) WriteYAML(w io.Writer, language string) error {
	s.mu.RLock()
	entries := s.languages[language]
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf(" %s:0 \"%s\"\n", k, strings.ReplaceAll(entries[k], "\n", "\\n")))
	}
	s.mu.RUnlock()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\ufeffl_%s:\n", language)
	for _, line := range lines {
		bw.WriteString(line)
	}
	return bw.Flush()
}
