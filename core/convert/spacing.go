package convert

import "github.com/ditra-consulting/html-to-ricos-converter/core/ricos"

// margin is the vertical space a block asks for, counted in spacing nodes.
type margin struct {
	before int // emitted ahead of the block when spliced without normalization
	after  int // emitted behind the block when spliced without normalization
	// detached blocks are always separated from their predecessor once
	// normalized, even when before is zero.
	detached bool
}

type blockKind struct {
	t     ricos.NodeType
	level int
}

// spacingPolicy is the single source of synthetic spacing. Section
// containers and empty tables are not listed: they emit explicit spacing
// nodes, which normalization collapses.
var spacingPolicy = map[blockKind]margin{
	{ricos.TypeHeading, 1}:      {after: 1, detached: true},
	{ricos.TypeHeading, 2}:      {before: 1, after: 2, detached: true},
	{ricos.TypeHeading, 3}:      {before: 1, after: 1, detached: true},
	{ricos.TypeHeading, 4}:      {after: 1, detached: true},
	{ricos.TypeHeading, 5}:      {after: 1, detached: true},
	{ricos.TypeHeading, 6}:      {after: 1, detached: true},
	{ricos.TypeBulletedList, 0}: {after: 1},
	{ricos.TypeOrderedList, 0}:  {after: 1},
	{ricos.TypeBlockquote, 0}:   {after: 1},
	{ricos.TypeCodeBlock, 0}:    {after: 1},
}

func kindOf(n *ricos.Node) blockKind {
	k := blockKind{t: n.Type}
	if n.HeadingData != nil {
		k.level = n.HeadingData.Level
	}
	return k
}

// separated reports whether a normalized sequence keeps a spacing node
// between the adjacent blocks prev and next.
func separated(prev, next *ricos.Node) bool {
	p, q := spacingPolicy[kindOf(prev)], spacingPolicy[kindOf(next)]
	return p.after > 0 || q.before > 0 || q.detached
}

// Normalize rewrites seq so that:
//   - runs of spacing nodes collapse to one,
//   - every block the policy separates from its neighbour gets exactly one
//     spacing node in between,
//   - the sequence neither starts nor ends with spacing.
//
// Existing spacing nodes are reused; missing ones take identifiers from ids.
func Normalize(seq []*ricos.Node, ids ricos.IDSource) []*ricos.Node {
	if ids == nil {
		ids = &ricos.Counter{}
	}
	var (
		out     []*ricos.Node
		prev    *ricos.Node
		pending *ricos.Node
	)
	for _, n := range seq {
		if ricos.IsSpacing(n) {
			if pending == nil {
				pending = n
			}
			continue
		}
		if prev != nil && (pending != nil || separated(prev, n)) {
			if pending == nil {
				pending = ricos.NewSpacing(ids.NextID())
			}
			out = append(out, pending)
		}
		out = append(out, n)
		prev, pending = n, nil
	}
	return out
}

func (c *converter) normalize(seq []*ricos.Node) []*ricos.Node {
	return Normalize(seq, c.ids)
}

// materialize expands the policy margins of every block in seq into literal
// spacing nodes, without collapsing. Block content spliced into an inline run
// keeps its spacing this way.
func materialize(seq []*ricos.Node, spacing func() *ricos.Node) []*ricos.Node {
	out := make([]*ricos.Node, 0, len(seq))
	for _, n := range seq {
		m := spacingPolicy[kindOf(n)]
		for i := 0; i < m.before; i++ {
			out = append(out, spacing())
		}
		out = append(out, n)
		for i := 0; i < m.after; i++ {
			out = append(out, spacing())
		}
	}
	return out
}
