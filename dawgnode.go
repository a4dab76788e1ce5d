// dawgnode.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the in-memory node representation used by the
// DAWG builder during incremental minimization, before it is
// renumbered and serialized.

package skrafl

import (
	"sort"
	"strconv"
	"strings"
)

// dawgEdge is one outgoing edge of a builder-time node: a prefix
// string (one or more alphabet runes, possibly containing an
// embedded '|' final marker) and the child node it leads to (nil for
// a null-targeted, implicitly-final edge).
type dawgEdge struct {
	prefix string
	child  *dawgNode
}

// dawgNode is a builder-time trie/DAWG node. Two nodes are
// interchangeable (and collapse to the same canonical instance) iff
// they have the same final flag and the same edge set, which is
// exactly what signature() captures.
type dawgNode struct {
	id    int
	final bool
	edges []dawgEdge
}

// firstRune returns the first rune of the prefix of edge i,
// used to keep edges sorted by collation order as they're inserted.
func (n *dawgNode) firstRune(i int) rune {
	r := []rune(n.edges[i].prefix)
	return r[0]
}

// addEdge inserts a new edge into the node, keeping edges sorted
// under the given alphabet's collation order on the first rune of
// each prefix.
func (n *dawgNode) addEdge(alphabet *Alphabet, prefix string, child *dawgNode) {
	first := []rune(prefix)[0]
	i := sort.Search(len(n.edges), func(i int) bool {
		return !alphabet.Less(n.firstRune(i), first)
	})
	n.edges = append(n.edges, dawgEdge{})
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = dawgEdge{prefix: prefix, child: child}
}

// lastEdge returns a pointer to the node's most recently added edge,
// which during incremental construction is always the edge along the
// word currently being added (the working frontier).
func (n *dawgNode) lastEdge() *dawgEdge {
	if len(n.edges) == 0 {
		return nil
	}
	return &n.edges[len(n.edges)-1]
}

// childID returns the serialized id for a (possibly nil) child: 0 is
// the null sentinel, any other node must already have a stable id
// assigned by the caller (signatures are only computed bottom-up,
// after descendant ids are fixed, as required by the builder
// contract).
func childID(child *dawgNode) int {
	if child == nil {
		return 0
	}
	return child.id
}

// signature returns the textual edge form used both to detect
// duplicate nodes during minimization and, unmodified, as the line
// written to the serialized DAWG file.
func (n *dawgNode) signature() string {
	var sb strings.Builder
	if n.final {
		sb.WriteString("|_")
	}
	for i, e := range n.edges {
		if i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(e.prefix)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(childID(e.child)))
	}
	return sb.String()
}
