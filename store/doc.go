// Package store provides a keyed-document data access layer over DynamoDB.
//
// Every collection is a DynamoDB table whose partition key is the string
// attribute "id". The store exposes point CRUD operations plus filtered,
// offset-paginated scans; it knows nothing about the documents it moves
// beyond their key.
//
// # Operations
//
//   - [Store.Get] - point read by id
//   - [Store.Create] - insert, fails on an existing id
//   - [Store.Replace] - overwrite, fails on a missing id
//   - [Store.Upsert] - unconditional write
//   - [Store.Delete] - remove, fails on a missing id
//   - [Store.Query] - filtered scan with skip/limit bounds
//   - [Store.Count] - collection cardinality
//
// # Filters
//
// Filters are built with [Eq] for exact equality and [AnyContains] for an
// OR-group of substring matches. The store renders them as DynamoDB filter
// expressions, so matching happens server-side; skip/limit bounds are applied
// client-side over matched documents because DynamoDB's Limit counts items
// before filtering.
//
// # Errors
//
// The package defines domain-specific errors:
//
//   - [ErrNotFound] - the document doesn't exist
//   - [ErrAlreadyExists] - a document with the id already exists
//
// Transient failures (throttling, timeouts) surface as the SDK errors they
// are; retry policy belongs to the configured DynamoDB client, not here.
package store
