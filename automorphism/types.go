package automorphism

// Edge is a 0-based directed edge. For an undirected Graph, the GAP and
// dense encoders emit it in both directions and DOT draws it once as an
// undirected edge; self-loops (From == To) are legal and retained in the
// edge list, though ToGAP omits them.
type Edge struct {
	From, To int
}

// Graph is a vertex- and edge-colored graph used purely as the input to an
// automorphism Oracle: the minimal state needed to build the oracle's
// dense representation, plus two pure views (ToGAP, RenderSVG) that never
// touch the oracle.
type Graph struct {
	numVertices int
	numReduced  int

	directed            bool
	effectivelyDirected bool

	edges     []Edge
	partition [][]int
}

// New returns a Graph over [0, numVertices) with the identity partition
// (a single uncolored cell) and NumReduced == numVertices.
func New(numVertices int, directed bool) *Graph {
	cells := [][]int{make([]int, numVertices)}
	for i := range cells[0] {
		cells[0][i] = i
	}
	return &Graph{
		numVertices: numVertices,
		numReduced:  numVertices,
		directed:    directed,
		partition:   cells,
	}
}

// NumVertices returns the total vertex count, including any auxiliary
// color vertices appended via AddAuxiliaryVertices.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumReduced returns the prefix of "real" vertices: automorphism
// generators only ever permute [0, NumReduced).
func (g *Graph) NumReduced() int { return g.numReduced }

// Directed reports whether edges were added as directed arcs.
func (g *Graph) Directed() bool { return g.directed }

// EffectivelyDirected reports whether an undirected graph's coloring still
// requires a directed encoding when handed to the oracle (set via
// SetEffectivelyDirected).
func (g *Graph) EffectivelyDirected() bool { return g.effectivelyDirected }

// SetEffectivelyDirected marks an undirected graph as needing a directed
// encoding, e.g. because asymmetric edge colors were encoded as auxiliary
// vertices reachable in only one direction.
func (g *Graph) SetEffectivelyDirected(v bool) { g.effectivelyDirected = v }

// Edges returns the recorded edge list, in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Partition returns the vertex partition (color classes), in cell order.
func (g *Graph) Partition() [][]int {
	out := make([][]int, len(g.partition))
	for i, cell := range g.partition {
		out[i] = append([]int(nil), cell...)
	}
	return out
}

// AddEdge adds a single edge (u, v), skipping it if already present.
// Returns ErrDomainError if either endpoint is outside [0, NumVertices()).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.numVertices || v < 0 || v >= g.numVertices {
		return ErrDomainError
	}
	for _, e := range g.edges {
		if e.From == u && e.To == v {
			return nil
		}
	}
	g.edges = append(g.edges, Edge{From: u, To: v})
	return nil
}

// AddEdges bulk-adds edges from an adjacency map: adj[u] lists every v with
// an edge (u, v).
func (g *Graph) AddEdges(adj map[int][]int) error {
	for u, vs := range adj {
		for _, v := range vs {
			if err := g.AddEdge(u, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddAuxiliaryVertices appends n fresh vertices beyond the current
// NumVertices() (without changing NumReduced()) and returns their indices.
// Used to encode extra vertex/edge colors to an oracle that only
// understands a single (possibly directed) adjacency relation.
func (g *Graph) AddAuxiliaryVertices(n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = g.numVertices
		g.numVertices++
	}
	return out
}

// SetPartition replaces the vertex partition. Returns ErrDomainError if
// cells is not a partition of [0, NumVertices()): every vertex must appear
// in exactly one cell.
func (g *Graph) SetPartition(cells [][]int) error {
	seen := make([]bool, g.numVertices)
	count := 0
	for _, cell := range cells {
		for _, v := range cell {
			if v < 0 || v >= g.numVertices || seen[v] {
				return ErrDomainError
			}
			seen[v] = true
			count++
		}
	}
	if count != g.numVertices {
		return ErrDomainError
	}

	out := make([][]int, len(cells))
	for i, cell := range cells {
		out[i] = append([]int(nil), cell...)
	}
	g.partition = out
	return nil
}
