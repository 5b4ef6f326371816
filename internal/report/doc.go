// Package report derives the read-only views: dashboard statistics,
// low-stock classification, per-date sales totals, the grouped sales
// report and the inventory status table.
//
// All derivations are single-pass or small-slice sorts over state
// snapshots; none of them mutate state. Ordering rules are part of the
// contract: low stock sorts by ascending quantity with ties preserved
// in insertion order, and the sales report lists date groups newest
// first while keeping ledger order within each group.
package report
