package item

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Search finds browsable items matching query. An empty query returns every
// item. Display names are matched by case-insensitive substring, and a
// numeric query also matches the item with that id. When nothing matches the
// closest names by edit distance are returned instead.
func (c *Catalog) Search(query string) []Definition {
	query = strings.ToLower(strings.TrimSpace(query))
	all := c.All()
	if query == "" {
		return all
	}

	id, err := strconv.Atoi(query)
	byID := err == nil

	var out []Definition
	for _, d := range all {
		if strings.Contains(strings.ToLower(d.DisplayName), query) || (byID && d.ID == id) {
			out = append(out, d)
		}
	}
	if len(out) > 0 {
		return out
	}

	return fuzzyMatches(query, all)
}

type scored struct {
	def  Definition
	dist int
}

func fuzzyMatches(query string, all []Definition) []Definition {
	if len(query) < 3 {
		return nil
	}

	var results []scored
	for _, d := range all {
		name := strings.ToLower(d.DisplayName)
		dist := levenshtein.ComputeDistance(query, name)
		if dist > levenshteinLimit(len(name)) {
			continue
		}
		results = append(results, scored{def: d, dist: dist})
	}

	// Ties keep declaration order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].dist < results[j].dist
	})

	out := make([]Definition, len(results))
	for i, r := range results {
		out[i] = r.def
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
