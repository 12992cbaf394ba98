// Package structval parses the two embedded micro-languages found in raw
// configuration values: keybinding assignments and command-palette entries.
//
// Both parsers are total: for any input they return either a populated
// record or an error carrying a human-readable reason, and they never panic.
// Failures are matched with [errors.Is] against [ErrInvalidKeybinding] and
// [ErrInvalidCommandEntry]; callers treat a failure as a per-value
// diagnostic, not as a reason to halt the pipeline.
package structval
