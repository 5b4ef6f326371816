// Package store implements the domain store: one explicit state object
// owning the catalog, the sales ledger, the supplier list and the
// settings singleton.
//
// Every mutating operation applies its change to the in-memory state
// and then writes the full document through the injected persistence
// port before returning. There is no transaction primitive underneath;
// single-writer execution is the concurrency model, and last write
// wins.
//
// The store never cascades deletes: removing a Book leaves Sales that
// reference it untouched, with their snapshot fields intact.
package store
