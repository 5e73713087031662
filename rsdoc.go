// Package rsdoc looks up the generated documentation index for a Rust
// crate, either from the local cargo-doc cache or from docs.rs, and turns
// the "list of all items" page into structured, searchable listings.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package rsdoc
