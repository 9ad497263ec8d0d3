package kg

type queryFilter struct {
	subject     string
	predicate   string
	object      string
	bySubject   bool
	byPredicate bool
	byObject    bool
}

// QueryOption narrows a Query. Options combine as a conjunction: a triple
// matches only if it satisfies every option given. Because identifiers are
// opaque strings, filtering on the empty string is valid and different from
// not filtering at all.
type QueryOption func(*queryFilter)

// WithSubject keeps only triples with exactly this subject.
func WithSubject(subject string) QueryOption {
	return func(f *queryFilter) {
		f.subject = subject
		f.bySubject = true
	}
}

// WithPredicate keeps only triples with exactly this predicate.
func WithPredicate(predicate string) QueryOption {
	return func(f *queryFilter) {
		f.predicate = predicate
		f.byPredicate = true
	}
}

// WithObject keeps only triples with exactly this object.
func WithObject(object string) QueryOption {
	return func(f *queryFilter) {
		f.object = object
		f.byObject = true
	}
}

// Query returns the triples matching every given option; with no options it
// returns all triples. Results are ordered by the subject's first insertion
// as a subject, then by insertion order within the subject. When a subject
// filter is present only that subject's adjacency list is scanned. No
// matches means a nil result, never an error.
func (g *Graph) Query(opts ...QueryOption) []Triple {
	var f queryFilter
	for _, opt := range opts {
		opt(&f)
	}

	subjects := g.subjectOrder
	if f.bySubject {
		if _, ok := g.adjacency[f.subject]; !ok {
			return nil
		}
		subjects = []string{f.subject}
	}

	var out []Triple
	for _, s := range subjects {
		for _, e := range g.adjacency[s] {
			if f.byPredicate && e.Predicate != f.predicate {
				continue
			}
			if f.byObject && e.Object != f.object {
				continue
			}
			out = append(out, Triple{Subject: s, Predicate: e.Predicate, Object: e.Object})
		}
	}
	return out
}
