// Package properties parses the documentation-bearing properties source: a
// line-oriented text format of `key = value` assignments interleaved with
// `#` comment blocks.
//
// The parser preserves the two facts downstream stages depend on and that
// are easy to get wrong:
//
//   - Duplicate assignments of a key keep all values, in source order. The
//     documentation comment for a key is captured at its first occurrence
//     only and never overwritten by later duplicates.
//   - Each key records the position of its first appearance across the whole
//     source; this canonical order drives section-level reordering later in
//     the pipeline.
//
// Comment accumulation is asymmetric: blank lines keep an
// in-progress comment block alive, while any other line that is neither a
// comment nor an assignment discards it. An assignment whose key trims to
// empty is skipped with a diagnostic but also keeps the block alive, so the
// documentation attaches to the next real key. Downstream documentation
// attachment depends on this exact behavior.
//
// Parsing is total. A malformed line never aborts the run; it is recorded as
// a [Diagnostic] and skipped.
package properties
