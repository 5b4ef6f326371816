// Package sales implements the sales workflow: the only operation that
// mutates two entities together. A sale decrements the book's stock,
// bumps its sales counter and appends an immutable ledger record whose
// title and unit price are snapshots taken at sale time.
//
// The two mutations are treated as one logical transaction even though
// the storage layer has no transaction primitive: if the full-state
// persist fails after the book was decremented, the book mutation is
// compensated and the sale record dropped, so callers never observe a
// half-applied sale.
package sales
