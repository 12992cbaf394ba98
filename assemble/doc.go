// Package assemble compiles a categorization tree and parsed properties
// source into the final schema document, then reconciles each section's key
// order against the documentation source's canonical order.
//
// Assembly is best-effort: a key listed in the tree but absent
// from the source simply gets no default value, and a raw keybinding or
// command value that fails structured parsing becomes a [Diagnostic] while
// the rest of the run continues. Holistic correctness checks belong to the
// verify package, not to assembly.
//
// The [Config] type bridges CLI flags to [Assembler] options following the
// RegisterFlags / RegisterCompletions / constructor pattern used across this
// module.
package assemble
