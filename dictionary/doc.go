// Package dictionary provides the data access facade for dictionary
// definitions stored in DynamoDB.
//
// The facade spans three collections: the definitions themselves, a single
// mirrored count document, and a singleton "definition of the day" slot.
//
// # The mirrored count
//
// The count document tracks the cardinality of the definitions collection so
// callers (and random selection) never pay for a full scan. It is updated
// synchronously after every successful insert and delete, but the two writes
// are not transactional: a failure between them leaves the mirror out of
// sync until the next reconciliation (see the reconcile package). The mirror
// is a best-effort cache, not a strongly consistent count.
//
// # The definition of the day
//
// The slot collection is expected to hold at most one document. Replacing it
// is delete-then-insert, so a failure between the two steps leaves the slot
// empty until the next successful call. Transient emptiness is preferred
// over stale duplication; reads take the first document when the invariant
// is ever violated, and writes prune the slot back to one.
//
// # Search
//
// Word, tag, and free-text lookups are case-insensitive. Each definition is
// stored with lower-cased shadow attributes of its searchable fields, and
// query terms are folded the same way before comparison.
package dictionary
