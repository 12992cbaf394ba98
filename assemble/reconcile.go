package assemble

import (
	"sort"

	"github.com/confschema/confschema/schema"
)

// unit is a reorderable chunk of a section: one config node together with
// the comment nodes immediately preceding it. Trailing comment nodes with no
// following config node form a unit of their own with no position.
type unit struct {
	nodes  []schema.Node
	pos    int
	hasPos bool
}

// SectionOrdered reports whether the section's keys that appear in the
// canonical order occur in non-decreasing canonical-position order. Keys
// without a canonical position are ignored.
func SectionOrdered(sec *schema.Section, position func(string) (int, bool)) bool {
	last := -1

	for _, key := range sec.ConfigKeys() {
		pos, ok := position(key)
		if !ok {
			continue
		}

		if pos < last {
			return false
		}

		last = pos
	}

	return true
}

// ReconcileSection restores canonical key order within a section: units with
// a canonical position are stable-sorted by position, units without one are
// appended in their original relative order, and each config node keeps its
// documentation comments immediately before it. The operation is idempotent
// and only reorders; it never adds, removes, or duplicates entries. Returns
// true when the section was changed.
func ReconcileSection(sec *schema.Section, position func(string) (int, bool)) bool {
	if SectionOrdered(sec, position) {
		return false
	}

	units := splitUnits(sec.Keys, position)

	var positioned, unpositioned []unit

	for _, u := range units {
		if u.hasPos {
			positioned = append(positioned, u)
		} else {
			unpositioned = append(unpositioned, u)
		}
	}

	sort.SliceStable(positioned, func(i, j int) bool {
		return positioned[i].pos < positioned[j].pos
	})

	reordered := make(schema.NodeList, 0, len(sec.Keys))

	for _, u := range positioned {
		reordered = append(reordered, u.nodes...)
	}

	for _, u := range unpositioned {
		reordered = append(reordered, u.nodes...)
	}

	sec.Keys = reordered

	return true
}

// ReconcileDocument applies [ReconcileSection] to every section and returns
// the number of sections that needed fixing.
func ReconcileDocument(doc *schema.Document, position func(string) (int, bool)) int {
	fixed := 0

	for ti := range doc.Tabs {
		for si := range doc.Tabs[ti].Sections {
			if ReconcileSection(&doc.Tabs[ti].Sections[si], position) {
				fixed++
			}
		}
	}

	return fixed
}

// splitUnits groups a node list into reorderable units.
func splitUnits(nodes schema.NodeList, position func(string) (int, bool)) []unit {
	var (
		units   []unit
		pending []schema.Node
	)

	for _, node := range nodes {
		switch n := node.(type) {
		case schema.CommentNode:
			pending = append(pending, n)

		case schema.ConfigNode:
			u := unit{nodes: append(pending, node)}
			pending = nil

			if pos, ok := position(n.Property.Key); ok {
				u.pos = pos
				u.hasPos = true
			}

			units = append(units, u)
		}
	}

	if len(pending) > 0 {
		units = append(units, unit{nodes: pending})
	}

	return units
}
