// Package kg provides an in-memory knowledge graph: a directed, labeled
// multigraph of subject-predicate-object triples with filtered queries and
// bounded breadth-first path search.
//
// # Data Model
//
// A fact is a Triple: (subject, predicate, object). All three parts are
// opaque strings compared byte-for-byte; the empty string is a valid
// identifier. Triples are not deduplicated: inserting the same fact twice
// stores it twice, and both copies show up in neighbor lists, query results
// and Len.
//
// The graph keeps one adjacency list per subject, in insertion order, and
// cumulative registries of every entity and relationship ever mentioned.
// Registries only grow; there is no delete.
//
// # Basic Usage
//
//	g := kg.New()
//	g.Insert("Go", "created_by", "Google")
//	g.Insert("Go", "is_a", "Language")
//
//	g.Neighbors("Go")            // both edges, in insertion order
//	g.HasEntity("Google")        // true, objects are registered too
//	g.Query(kg.WithPredicate("is_a"))
//
//	path, ok := g.FindPath("Go", "Language", kg.DefaultMaxDepth)
//
// # Determinism
//
// Every read is deterministic. Query walks subjects in the order they first
// appeared as subjects; Entities and Relationships report first-seen order;
// FindPath breaks ties between equal-length paths by neighbor insertion
// order. No result depends on map iteration.
//
// # Concurrency
//
// A Graph is not synchronized. It is safe for any number of goroutines to
// read concurrently as long as nothing writes; interleaving Insert with
// other calls requires external locking.
package kg
