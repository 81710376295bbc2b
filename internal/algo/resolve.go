package algo

import (
	"strings"

	"github.com/atharv3903/busroute/internal/graph"
	"github.com/mozillazg/go-unidecode"
)

// FoldName lower-cases s and, when fold is set, strips diacritics so that
// "Kim Ma" finds "Kim Mã". Used by stop search; path queries do not fold.
func FoldName(s string, fold bool) string {
	if fold {
		s = unidecode.Unidecode(s)
	}
	return strings.ToLower(s)
}

// Resolve returns the ids of every node whose lower-cased name contains the
// lower-cased query, in node insertion order. An empty query is a substring
// of every name and so matches every node.
func Resolve(g *graph.Graph, query string) []string {
	q := strings.ToLower(query)
	var ids []string
	for _, n := range g.Nodes() {
		if strings.Contains(strings.ToLower(n.Name), q) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}
