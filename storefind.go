// Package storefind turns free-form shopping utterances, typed or
// transcribed from speech, into structured catalog filters and applies
// them to a product collection.
//
// This package contains domain types, the query interpreter and the
// filter pipeline. Implementations that depend on other libraries live in
// subdirectories named after their primary dependency (e.g., yaml/, slog/).
package storefind
