// Package kernel provides the identity primitives shared across the order
// manager domain. Identifiers arrive from external channels as opaque strings
// (the submission path assigns order IDs, the identity provider assigns user
// IDs), so the value objects here guard non-emptiness and immutability rather
// than any particular format.
//
// The package includes:
//   - OrderID: opaque unique identifier of an order record
//   - UserID: identity of a customer or barista
//   - CallbackToken: opaque handle that resumes a suspended caller
//
// All value objects are immutable and safe for concurrent use.
package kernel
