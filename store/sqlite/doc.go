// Package sqlite provides a session store backed by a single SQLite file.
//
// The store bootstraps its own schema on open, so pointing it at a fresh
// path is enough. Metadata is kept as a JSON column; everything else maps to
// plain columns so the transcript table stays queryable with ordinary SQL.
//
//	st, err := sqlite.NewSessionStore(sqlite.Options{
//		Path: "./sessions.db",
//	})
package sqlite
