// Package models defines the core domain models for Qattah.
//
// # Models
//
//   - Transaction: one ledger entry owned by a single user. Ordinary entries
//     carry no settlement state; entries produced by a split carry IsPaid and
//     CameFrom.
//   - User: a registered person, used as the lookup target for notifications.
//
// # Split groups
//
// A split group is never stored as its own record. It is the set of
// transactions sharing one CameFrom value together with the same Title and
// Date (see GroupKey). CameFrom is a weak reference to the originating user,
// not an ownership edge.
//
// # Money
//
// Amounts are shopspring/decimal values end to end. They are persisted as
// decimal text and never converted through float64.
package models
