// dawg.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the loaded DAWG representation (a node map
// parsed from the text serialization format) and the generic,
// policy-driven Navigation walk over it.

package skrafl

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// node is the loaded representation of one DAWG node: a final flag
// and an ordered prefix -> child-id edge list. The root is held
// separately by Dawg and addressed with id 0 by convention (it is
// line 1 on disk); 0 is otherwise reserved as the null sentinel, but
// no edge ever targets the root, so the two meanings never collide.
type node struct {
	final bool
	edges []edge
}

type edge struct {
	prefix string
	child  uint32
}

// Dawg is an immutable, loaded Directed Acyclic Word Graph, safe for
// concurrent read-only use by many Navigations at once.
type Dawg struct {
	alphabet *Alphabet
	root     *node
	nodes    map[uint32]*node

	mu         sync.Mutex
	crossCache *lru.LRU
	navCache   *lru.LRU
}

const crossCacheSize = 2048
const navCacheSize = 4096

// LoadDawgText parses the line-oriented text DAWG format of the
// external interface into a Dawg.
func LoadDawgText(alphabet *Alphabet, r io.Reader) (*Dawg, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	d := &Dawg{
		alphabet: alphabet,
		nodes:    make(map[uint32]*node),
	}
	d.crossCache, _ = lru.NewLRU(crossCacheSize, nil)
	d.navCache, _ = lru.NewLRU(navCacheSize, nil)

	lineNo := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		lineNo++
		if line == "" {
			continue
		}
		n, err := parseDawgLine(line)
		if err != nil {
			return nil, NewError(MalformedDawgLine, err)
		}
		if lineNo == 1 {
			d.root = n
			continue
		}
		// Line k (k>=2) carries node id k.
		d.nodes[uint32(lineNo)] = n
	}
	if err := scanner.Err(); err != nil {
		return nil, NewError(IoError, err)
	}
	if d.root == nil {
		d.root = &node{}
	}
	return d, nil
}

// parseDawgLine parses a single serialized node line.
func parseDawgLine(line string) (*node, error) {
	n := &node{}
	s := line
	if strings.HasPrefix(s, "|_") {
		n.final = true
		s = s[2:]
	}
	if s == "" {
		return n, nil
	}
	for _, tok := range strings.Split(s, "_") {
		colon := strings.Index(tok, ":")
		if colon < 0 {
			return nil, &parseError{line: line, tok: tok}
		}
		prefix := tok[:colon]
		if prefix == "" || strings.HasPrefix(prefix, "|") || strings.Contains(prefix, "||") {
			return nil, &parseError{line: line, tok: tok}
		}
		id, err := strconv.Atoi(tok[colon+1:])
		if err != nil || id < 0 {
			return nil, &parseError{line: line, tok: tok}
		}
		n.edges = append(n.edges, edge{prefix: prefix, child: uint32(id)})
	}
	return n, nil
}

type parseError struct {
	line, tok string
}

func (e *parseError) Error() string {
	return "malformed DAWG edge " + strconv.Quote(e.tok) + " in line " + strconv.Quote(e.line)
}

// nodeAt resolves a node id (0 = root) to its loaded node
func (d *Dawg) nodeAt(id uint32) *node {
	if id == 0 {
		return d.root
	}
	return d.nodes[id]
}

func (d *Dawg) isFinalNode(id uint32) bool {
	if id == 0 {
		// The null sentinel denotes an implicit final with no successor.
		return true
	}
	n := d.nodes[id]
	return n != nil && n.final
}

// Alphabet returns the alphabet the DAWG was loaded with
func (d *Dawg) Alphabet() *Alphabet {
	return d.alphabet
}

// --- generic navigation driver ---------------------------------------

// navState is a resumption point within the DAWG: the unconsumed
// suffix of the edge currently being walked (empty if positioned
// exactly at a node boundary) plus the node that suffix leads to.
type navState struct {
	prefix string
	next   uint32
}

// Navigator is the capability-set policy interface the Navigation
// driver calls into. A concrete Navigator never touches Dawg
// internals directly; it only observes characters and matches.
type Navigator interface {
	// IsAccepting reports whether the walk should continue at all.
	IsAccepting() bool
	// Accepts consumes one more character, returning whether it's legal.
	Accepts(ch rune) bool
	// Accept records a match; final means a valid word ends exactly here.
	Accept(matched []rune, final bool, state *navState)
	// PushEdge is asked for permission to enter an edge starting with ch.
	PushEdge(ch rune) bool
	// PopEdge restores saved state on backtrack; its return value
	// decides whether sibling edges are visited.
	PopEdge() bool
	// Done is a finalization hook called once the walk is complete.
	Done()
}

// Navigation drives a single Navigator over a single Dawg.
type Navigation struct {
	dawg      *Dawg
	navigator Navigator
}

// Go runs navigator over dawg from the root to completion.
func Go(dawg *Dawg, navigator Navigator) {
	n := &Navigation{dawg: dawg, navigator: navigator}
	if navigator.IsAccepting() {
		n.FromNode(0, nil)
	}
	navigator.Done()
}

// Resume continues a previously suspended walk from state, with
// matched holding the characters accumulated so far. Used by the
// move generator to hand a LeftPart match off to an ExtendRight walk.
func Resume(dawg *Dawg, navigator Navigator, state *navState, matched []rune) {
	n := &Navigation{dawg: dawg, navigator: navigator}
	if navigator.IsAccepting() {
		if state.prefix != "" {
			n.FromEdge(state, matched)
		} else if state.next != 0 {
			n.FromNode(state.next, matched)
		}
	}
	navigator.Done()
}

// FromNode visits every outgoing edge of the node identified by id,
// in collation order, offering each to the navigator in turn.
func (n *Navigation) FromNode(id uint32, matched []rune) {
	nd := n.dawg.nodeAt(id)
	if nd == nil {
		return
	}
	for _, e := range nd.edges {
		first := []rune(e.prefix)[0]
		if !n.navigator.PushEdge(first) {
			continue
		}
		n.FromEdge(&navState{prefix: e.prefix, next: e.child}, matched)
		if !n.navigator.PopEdge() {
			break
		}
	}
}

// FromEdge walks the characters of state.prefix left to right,
// calling into the navigator before and after each character and
// recursing into the successor node once the prefix is exhausted.
func (n *Navigation) FromEdge(state *navState, matched []rune) {
	runes := []rune(state.prefix)
	nextNode := state.next
	i := 0
	for i < len(runes) {
		ch := runes[i]
		if !n.navigator.IsAccepting() {
			return
		}
		if !n.navigator.Accepts(ch) {
			return
		}
		matched = append(matched, ch)
		i++
		final := false
		if i < len(runes) && runes[i] == '|' {
			i++
			final = true
		} else if i == len(runes) && n.dawg.isFinalNode(nextNode) {
			final = true
		}
		resume := &navState{prefix: string(runes[i:]), next: nextNode}
		n.navigator.Accept(append([]rune(nil), matched...), final, resume)
	}
	if nextNode != 0 && n.navigator.IsAccepting() {
		n.FromNode(nextNode, matched)
	}
}
