// Package backup implements the data exchange surfaces: the CSV sales
// export, the JSON backup document, and wholesale import.
//
// Import never partially applies: the candidate document is parsed and
// validated against a CUE schema first, and only a document that passes
// in full replaces the current state.
package backup
