// Package verify checks a compiled schema document for coverage against its
// documentation source, completeness of mandatory fields, conformance of
// validation/options field names to the per-value-type allowed sets (the
// schema-of-schema), and platform legality.
//
// The four checks run independently and accumulate findings instead of
// short-circuiting, so one pass surfaces every problem. Verification never
// mutates its input; the caller decides success or failure from whether the
// report is empty.
package verify
