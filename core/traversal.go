package core

// IsConnected reports whether every vertex is reachable from the first vertex.
// A graph with zero vertices is trivially connected.
//
// Neither MST engine calls this; it is a diagnostic for callers that want to
// distinguish a spanning tree from a spanning-forest fragment.
//
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	start, ok := g.First()
	if !ok {
		return true
	}

	return len(g.reach(start, make(map[string]bool, len(g.vertices)))) == len(g.vertices)
}

// Components partitions the vertices into connected components.
// Components are ordered by their first vertex in insertion order, and each
// component lists its vertices in BFS discovery order.
//
// Complexity: O(V + E).
func (g *Graph) Components() [][]string {
	seen := make(map[string]bool, len(g.vertices))
	var out [][]string
	for _, v := range g.vertices {
		if seen[v] {
			continue
		}
		out = append(out, g.reach(v, seen))
	}

	return out
}

// reach runs a breadth-first traversal from start, marking every discovered
// vertex in seen, and returns the vertices in discovery order.
func (g *Graph) reach(start string, seen map[string]bool) []string {
	seen[start] = true
	queue := []string{start}
	for head := 0; head < len(queue); head++ {
		curr := queue[head]
		for _, e := range g.adjacency[curr] {
			next := e.Other(curr)
			if seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}

	return queue
}
