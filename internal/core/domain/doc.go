// Package domain defines the core domain models for minidb.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - Record: an ordered set of text field-name/field-value pairs
//   - State: the full store content, collection name to record sequence
//   - Errors: coded domain error definitions
package domain
