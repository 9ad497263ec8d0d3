// Package redis provides a Redis-backed session store.
//
// Each record is stored as a JSON value under its own key, and a per-session
// set indexes record IDs so listing and clearing a session never scan the
// keyspace. An optional TTL expires records and index sets together, which
// suits transcript retention policies.
//
//	st := redis.NewSessionStore(redis.Options{
//		Addr:   "localhost:6379",
//		Prefix: "myapp:",
//		TTL:    24 * time.Hour,
//	})
//	defer st.Close()
package redis
