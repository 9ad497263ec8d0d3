package kg

import (
	"fmt"
	"strings"
)

// DefaultMaxDepth is the path search bound used when callers have no
// better number.
const DefaultMaxDepth = 5

// Path is a sequence of triples in which each triple's object is the next
// triple's subject. An empty path connects an entity to itself.
type Path []Triple

// String renders the path as "A --[rel]--> B --[rel]--> C". An empty path
// renders as the empty string.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p[0].Subject)
	for _, t := range p {
		fmt.Fprintf(&sb, " --[%s]--> %s", t.Predicate, t.Object)
	}
	return sb.String()
}

// FindPath searches for a directed path from start to end using at most
// maxDepth hops. It returns the hop-count-shortest path and true, or nil
// and false when no path exists within the bound or either endpoint is
// unregistered. If start equals end the result is an empty path and true;
// the boolean is what distinguishes that from not found.
//
// The search is breadth-first. Among equal-length paths the returned one
// follows neighbor insertion order at each expansion step. With maxDepth
// zero or negative only the start == end case can succeed.
func (g *Graph) FindPath(start, end string, maxDepth int) (Path, bool) {
	if !g.HasEntity(start) || !g.HasEntity(end) {
		return nil, false
	}

	type frame struct {
		entity string
		path   Path
	}
	queue := []frame{{entity: start, path: Path{}}}
	visited := map[string]struct{}{start: {}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Goal test comes before the depth cutoff so a path of exactly
		// maxDepth hops is still reported.
		if cur.entity == end {
			return cur.path, true
		}
		if len(cur.path) >= maxDepth {
			continue
		}

		for _, e := range g.adjacency[cur.entity] {
			if _, seen := visited[e.Object]; seen {
				continue
			}
			visited[e.Object] = struct{}{}
			next := make(Path, len(cur.path), len(cur.path)+1)
			copy(next, cur.path)
			next = append(next, Triple{Subject: cur.entity, Predicate: e.Predicate, Object: e.Object})
			queue = append(queue, frame{entity: e.Object, path: next})
		}
	}
	return nil, false
}
