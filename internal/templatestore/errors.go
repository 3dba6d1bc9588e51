package templatestore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestions caps the "did you mean" list of an UnknownTemplateError.
const maxSuggestions = 3

// LoadError reports a corpus document that could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load focus templates from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// UnknownTemplateError reports a lookup of a template id that is not in the
// pool.
type UnknownTemplateError struct {
	ID          string
	Suggestions []string
}

func (e *UnknownTemplateError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("could not load focus %s", e.ID)
	}
	return fmt.Sprintf("could not load focus %s (did you mean %s?)", e.ID, strings.Join(e.Suggestions, ", "))
}

// suggest returns up to maxSuggestions known ids that look like id.
func suggest(id string, known []string) []string {
	ranks := fuzzy.RankFindFold(id, known)
	sort.Stable(ranks)

	var out []string
	seen := make(map[string]struct{})
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			return out
		}
		out = append(out, r.Target)
		seen[r.Target] = struct{}{}
	}

	// Typos are not subsequences, so fall back to edit distance.
	type candidate struct {
		id   string
		dist int
	}
	limit := max(2, len(id)/3)
	var candidates []candidate
	for _, k := range known {
		if _, ok := seen[k]; ok {
			continue
		}
		if d := fuzzy.LevenshteinDistance(strings.ToLower(id), strings.ToLower(k)); d <= limit {
			candidates = append(candidates, candidate{id: k, dist: d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].id < candidates[j].id
	})
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.id)
	}
	return out
}
