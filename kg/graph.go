package kg

// Triple represents a single directed fact in the graph.
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// Edge is the outgoing half of a triple as stored in a subject's
// adjacency list.
type Edge struct {
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// Graph is an in-memory triple store. The adjacency lists are the source
// of truth; entity and relationship registries are derived from them and
// never shrink. The zero value is not usable, call New.
type Graph struct {
	adjacency map[string][]Edge

	entities    map[string]struct{}
	entityOrder []string

	relationships     map[string]struct{}
	relationshipOrder []string

	// subjectOrder records the order in which entities first appeared as
	// subjects. Query iterates it so results stay reproducible.
	subjectOrder []string

	size int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		adjacency:     make(map[string][]Edge),
		entities:      make(map[string]struct{}),
		relationships: make(map[string]struct{}),
	}
}

// Insert adds the triple (subject, predicate, object) to the graph. The
// subject and object are registered as entities and the predicate as a
// relationship; this is the only write path, so every stored triple has
// registered endpoints. Duplicates are stored again, not collapsed.
func (g *Graph) Insert(subject, predicate, object string) {
	if _, ok := g.adjacency[subject]; !ok {
		g.subjectOrder = append(g.subjectOrder, subject)
	}
	g.adjacency[subject] = append(g.adjacency[subject], Edge{Predicate: predicate, Object: object})
	g.registerEntity(subject)
	g.registerEntity(object)
	if _, ok := g.relationships[predicate]; !ok {
		g.relationships[predicate] = struct{}{}
		g.relationshipOrder = append(g.relationshipOrder, predicate)
	}
	g.size++
}

func (g *Graph) registerEntity(name string) {
	if _, ok := g.entities[name]; ok {
		return
	}
	g.entities[name] = struct{}{}
	g.entityOrder = append(g.entityOrder, name)
}

// Neighbors returns the outgoing edges of entity in insertion order.
// The result is a copy; mutating it does not affect the graph. An unknown
// entity, or one with no outgoing edges, yields nil.
func (g *Graph) Neighbors(entity string) []Edge {
	list := g.adjacency[entity]
	if len(list) == 0 {
		return nil
	}
	out := make([]Edge, len(list))
	copy(out, list)
	return out
}

// NeighborsByPredicate returns the outgoing edges of entity whose predicate
// matches exactly, preserving insertion order.
func (g *Graph) NeighborsByPredicate(entity, predicate string) []Edge {
	var out []Edge
	for _, e := range g.adjacency[entity] {
		if e.Predicate == predicate {
			out = append(out, e)
		}
	}
	return out
}

// HasEntity reports whether name has ever appeared as a subject or object.
func (g *Graph) HasEntity(name string) bool {
	_, ok := g.entities[name]
	return ok
}

// HasRelationship reports whether name has ever appeared as a predicate.
func (g *Graph) HasRelationship(name string) bool {
	_, ok := g.relationships[name]
	return ok
}

// Entities returns all known entities in the order they were first seen,
// counting both subject and object positions.
func (g *Graph) Entities() []string {
	out := make([]string, len(g.entityOrder))
	copy(out, g.entityOrder)
	return out
}

// Relationships returns all known predicates in first-seen order.
func (g *Graph) Relationships() []string {
	out := make([]string, len(g.relationshipOrder))
	copy(out, g.relationshipOrder)
	return out
}

// Len returns the number of stored triples, duplicates included.
func (g *Graph) Len() int {
	return g.size
}

// Triples returns every stored triple: subjects in first-insertion order,
// then each subject's edges in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, g.size)
	for _, s := range g.subjectOrder {
		for _, e := range g.adjacency[s] {
			out = append(out, Triple{Subject: s, Predicate: e.Predicate, Object: e.Object})
		}
	}
	return out
}

// EntityInfo gathers everything stated about entity as a map from predicate
// to objects, objects in insertion order per predicate. It returns nil for
// an unregistered entity and an empty map for one with no outgoing edges.
func (g *Graph) EntityInfo(entity string) map[string][]string {
	if !g.HasEntity(entity) {
		return nil
	}
	info := make(map[string][]string)
	for _, e := range g.adjacency[entity] {
		info[e.Predicate] = append(info[e.Predicate], e.Object)
	}
	return info
}
