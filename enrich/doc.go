// Package enrich derives presentation and validation metadata for
// configuration keys: human labels, type-specific validation rules, UI
// rendering options, and platform restrictions.
//
// Every lookup is a pure function over declarative, package-level rule
// tables that are never mutated after load. Each table is layered the same
// way: an exact-key entry replaces the per-type default WHOLESALE -- there is
// no field-level merging between the two, so key-specific entries are
// written fully expanded. Lookups return fresh copies; callers may mutate
// results freely without corrupting the tables.
//
// Validation and options are independent namespaces with independent allowed
// field sets per value type; the two must never be checked against each
// other.
package enrich
