// Package domain contains shared domain types used across entity sub-packages.
// The Todo entity lives in domain/todo; this root package holds the sentinel
// errors and typed errors (validation, not-found, bad-argument) that the HTTP
// boundary classifies into status codes.
package domain
