// Package kasharian implements the daily cash ledger of a small shop:
// sales, cash received, bank transfers and expenses are recorded per day,
// and the tool computes the reconciliation difference
// (cash + transfers) - (sales + expenses).
//
// The package holds the whole testable core: rupiah formatting and parsing,
// transfer sets, the ledger collection with its persistent key-value store,
// the reconciliation calculator, and the JSON/CSV backup codec. The cmd
// package provides the command line on top of it.
package kasharian
