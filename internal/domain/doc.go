// Package domain defines the entities of the bookstore data model and
// the error types shared by every operation.
//
// The model follows a deliberately denormalized design:
//   - Book is the catalog entry; its quantity changes only through the
//     sales workflow or an explicit restock.
//   - Sale is an append-only ledger record. Title and unit price are
//     snapshots taken at sale time, never live joins back to Book, so a
//     later Book edit must not change a historical Sale.
//   - Supplier is referenced by Book.SupplierID with no cascade rules.
//   - Settings is a global singleton (currency plus two stock
//     thresholds).
//   - Session is the single active user; at most one exists at a time.
//
// Identifiers are positive integers assigned as max existing id + 1,
// computed from the current collection state rather than from a
// separate counter. This keeps id assignment reproducible across
// export/import round trips.
package domain
