// Package loader sources triples for a knowledge graph from static data,
// text files, JSON, HTML and Markdown.
//
// Loaders only produce triples; inserting them is the caller's business,
// usually through LoadInto:
//
//	g := kg.New()
//	n, err := loader.LoadInto(ctx, g,
//		loader.NewText("facts.txt"),
//		loader.NewJSON("facts.json"),
//	)
//
// FromFile picks a loader from the file extension and returns
// ErrUnsupportedFormat for anything it does not recognize.
package loader
