// Package export renders a compiled schema document as JSON Schema
// (Draft 7), one property per configuration key in document order.
//
// The exported schema is a convenience surface for editors and validators
// that speak JSON Schema: labels become titles, documentation comments
// become descriptions, shaped defaults become defaults, enumeration option
// values become enum constraints, and numeric validation bounds become
// minimum/maximum. It intentionally fails open: additionalProperties stays
// permissive unless strict mode is requested.
package export
