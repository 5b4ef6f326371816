// Package persist provides whole-document persistence for the
// bookstore state.
//
// The storage model mirrors a browser key-value store: the entire
// application state is one serialized JSON document under a fixed key,
// and the active session is a second document under its own key. There
// are no partial updates and no schema versioning: every mutation
// rewrites the full document, and the last write wins.
//
// Repository is the port; SQLiteRepository is the durable
// implementation (a single kv table) and MemoryRepository backs tests.
package persist
