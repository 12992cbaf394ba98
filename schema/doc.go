// Package schema defines the compiled settings-schema document model: a tree
// of tabs and sections whose leaves interleave documentation comments with
// enriched configuration properties, plus the externally authored
// categorization tree the compiler consumes.
//
// The comment-vs-config distinction is an explicit tagged union ([Node] with
// the [CommentNode] and [ConfigNode] variants) so that every consumer handles
// both cases exhaustively. [NodeList] carries the union through JSON in the
// envelope format downstream consumers expect:
//
//	{"type": "comment", "content": "..."}
//	{"type": "config", "key": "...", "valueType": "...", ...}
//
// Interleaving order inside a section is significant: a comment node that
// documents a key appears immediately before that key's config node.
//
// Documents are constructed once by the assembler and only reordered (never
// mutated in content) afterward. The verification suite reads but never
// writes.
package schema
