package automorphism

import (
	"fmt"
	"strings"
)

// ToGAP renders the graph as
// ReduceGroup(GraphAutoms([edges],[partition],n),n_reduced), a pure string
// formatter with no side effects and no interaction with the oracle.
// Self-loops are omitted from the edge list; undirected edges emit both
// orderings.
func (g *Graph) ToGAP() string {
	var edgeParts []string
	seen := make(map[[2]int]bool)
	emit := func(u, v int) {
		if u == v {
			return
		}
		key := [2]int{u, v}
		if seen[key] {
			return
		}
		seen[key] = true
		edgeParts = append(edgeParts, fmt.Sprintf("[%d,%d]", u+1, v+1))
	}
	for _, e := range g.edges {
		emit(e.From, e.To)
		if !g.directed && !g.effectivelyDirected {
			emit(e.To, e.From)
		}
	}

	var cellParts []string
	for _, cell := range g.partition {
		ids := make([]string, len(cell))
		for i, v := range cell {
			ids[i] = fmt.Sprintf("%d", v+1)
		}
		cellParts = append(cellParts, "["+strings.Join(ids, ",")+"]")
	}

	return fmt.Sprintf("ReduceGroup(GraphAutoms([%s],[%s],%d),%d)",
		strings.Join(edgeParts, ","), strings.Join(cellParts, ","), g.numVertices, g.numReduced)
}
