// builder.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the DAWG builder: incremental trie-to-DAWG
// minimization with edge compression, a k-way merge of sorted word
// sources with removal-list lock-step, and text serialization.

package skrafl

import (
	"bufio"
	"container/heap"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
)

// MaxWordLength is the longest word the builder will accept (MAXLEN)
const MaxWordLength = 48

// FilterKind selects a length-based acceptance filter for build input
type FilterKind int

const (
	// FilterNone accepts every word up to MaxWordLength
	FilterNone FilterKind = iota
	// FilterScrabble accepts words of length <= 15 (playable on a
	// 15x15 board)
	FilterScrabble
	// FilterCommon accepts words of length <= 12
	FilterCommon
)

// scrabbleMaxLen and commonMaxLen mirror the reference filter lengths
const (
	scrabbleMaxLen = 15
	commonMaxLen   = 12
)

// Accepts reports whether a word of the given rune length passes this filter
func (f FilterKind) Accepts(runeLen int) bool {
	switch f {
	case FilterScrabble:
		return runeLen <= scrabbleMaxLen
	case FilterCommon:
		return runeLen <= commonMaxLen
	default:
		return true
	}
}

// DawgBuilder performs incremental minimization of a trie into a DAWG,
// one sorted word at a time.
type DawgBuilder struct {
	alphabet    *Alphabet
	dicts       []*dawgNode
	root        *dawgNode
	lastWord    []rune
	uniqueNodes map[string]*dawgNode
	uniqueOrder []*dawgNode
	WordCount   int
	DupCount    int
	Logger      *log.Logger
}

// NewDawgBuilder constructs an empty builder over the given alphabet
func NewDawgBuilder(alphabet *Alphabet) *DawgBuilder {
	root := &dawgNode{}
	dicts := make([]*dawgNode, MaxWordLength+1)
	dicts[0] = root
	return &DawgBuilder{
		alphabet:    alphabet,
		dicts:       dicts,
		root:        root,
		uniqueNodes: make(map[string]*dawgNode),
	}
}

func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// AddWord feeds one word, in strict ascending collation order relative
// to all previously added words, into the builder.
func (b *DawgBuilder) AddWord(word string) error {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) > MaxWordLength {
		return NewError(WordTooLong, fmt.Errorf("word %q exceeds %d characters", word, MaxWordLength))
	}
	if len(runes) == len(b.lastWord) && string(runes) == string(b.lastWord) {
		b.DupCount++
		return nil
	}
	p := commonPrefixLen(b.lastWord, runes)
	b.collapseTo(p)
	node := b.dicts[p]
	for j := p; j < len(runes); j++ {
		child := &dawgNode{}
		node.addEdge(b.alphabet, string(runes[j]), child)
		b.dicts[j+1] = child
		node = child
	}
	node.final = true
	b.lastWord = runes
	b.WordCount++
	return nil
}

// collapseTo collapses the working chain from the deepest populated
// depth down to divergence+1, deduplicating against the unique-node
// table bottom-up so that every signature is computed only after its
// descendants' ids are stable.
func (b *DawgBuilder) collapseTo(divergence int) {
	for j := len(b.lastWord); j > divergence; j-- {
		parent := b.dicts[j-1]
		edge := parent.lastEdge()
		if edge == nil {
			continue
		}
		b.collapseBranch(edge)
	}
}

// collapseBranch applies the three collapse rules to a single edge:
// null-target a childless child, splice a single-edge child into the
// parent edge's prefix, then canonicalize against previously seen
// nodes with an identical signature.
func (b *DawgBuilder) collapseBranch(edge *dawgEdge) {
	child := edge.child
	if child == nil {
		return
	}
	if len(child.edges) == 0 {
		// No outgoing edges: the prefix's last letter is an implicit
		// final, expressed as a null-targeted edge.
		edge.child = nil
		return
	}
	if len(child.edges) == 1 {
		only := child.edges[0]
		sep := ""
		if child.final {
			sep = "|"
		}
		edge.prefix = edge.prefix + sep + only.prefix
		edge.child = only.child
		child = edge.child
		if child == nil {
			return
		}
	}
	sig := child.signature()
	if existing, ok := b.uniqueNodes[sig]; ok {
		edge.child = existing
		return
	}
	b.uniqueNodes[sig] = child
	// Give the node its final line number now, so that the signatures
	// of its ancestors see a stable id.
	child.id = len(b.uniqueOrder) + 2
	b.uniqueOrder = append(b.uniqueOrder, child)
}

// Finish collapses the remaining chain down to the root and assigns
// stable line numbers to every unique node, starting at 2 (1 is
// reserved for the root line, 0 is the null sentinel).
func (b *DawgBuilder) Finish() {
	b.collapseTo(0)
	for i := range b.root.edges {
		b.collapseBranch(&b.root.edges[i])
	}
	id := 2
	for _, n := range b.uniqueOrder {
		n.id = id
		id++
	}
	b.root.id = 1
}

// WriteText serializes the finished DAWG to w in the line-oriented
// text format: line 1 is the root's edge list, lines 2..M are the
// other unique nodes in id order.
func (b *DawgBuilder) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, b.root.signature()); err != nil {
		return NewError(IoError, err)
	}
	for _, n := range b.uniqueOrder {
		if _, err := fmt.Fprintln(bw, n.signature()); err != nil {
			return NewError(IoError, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return NewError(IoError, err)
	}
	return nil
}

// Stats returns the number of unique nodes and the number of edges
// across all unique nodes (including the root), for the canonical
// minimization testable property.
func (b *DawgBuilder) Stats() (nodes, edges int) {
	nodes = len(b.uniqueOrder) + 1
	edges = len(b.root.edges)
	for _, n := range b.uniqueOrder {
		edges += len(n.edges)
	}
	return
}

// --- k-way merge of sorted word sources -----------------------------

// wordSource reads words, one per line, from an already-sorted stream.
type wordSource struct {
	scanner *bufio.Scanner
	current string
	ok      bool
}

func newWordSource(r io.Reader) *wordSource {
	s := &wordSource{scanner: bufio.NewScanner(r)}
	s.advance()
	return s
}

func (s *wordSource) advance() {
	for s.scanner.Scan() {
		line := strings.TrimRight(s.scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		s.current = line
		s.ok = true
		return
	}
	s.ok = false
}

// sourceHeap is a min-heap of wordSources ordered by collation key of
// their current word, driving the k-way merge.
type sourceHeap struct {
	sources  []*wordSource
	alphabet *Alphabet
}

func (h *sourceHeap) Len() int { return len(h.sources) }
func (h *sourceHeap) Less(i, j int) bool {
	return CompareKeys(
		h.alphabet.SortKey(h.sources[i].current),
		h.alphabet.SortKey(h.sources[j].current),
	) < 0
}
func (h *sourceHeap) Swap(i, j int) { h.sources[i], h.sources[j] = h.sources[j], h.sources[i] }
func (h *sourceHeap) Push(x interface{}) {
	h.sources = append(h.sources, x.(*wordSource))
}
func (h *sourceHeap) Pop() interface{} {
	old := h.sources
	n := len(old)
	item := old[n-1]
	h.sources = old[:n-1]
	return item
}

// SortedReader sorts an entire input stream in memory under alphabet's
// collation order and returns a reader over the sorted word list, for
// input files that are not already pre-sorted on disk.
func SortedReader(alphabet *Alphabet, r io.Reader) (io.Reader, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, NewError(IoError, err)
	}
	alphabet.SortWords(words)
	return strings.NewReader(strings.Join(words, "\n") + "\n"), nil
}

// MergeAndBuild performs the strict k-way merge of sources (each
// already in ascending collation order), drops duplicates across
// sources, lock-steps the optional removal stream, applies filter,
// and feeds surviving words into b in order. It logs progress every
// 10000 words, mirroring the reference builder's console output.
func (b *DawgBuilder) MergeAndBuild(sources []io.Reader, removal io.Reader, filter FilterKind) error {
	h := &sourceHeap{alphabet: b.alphabet}
	for _, r := range sources {
		ws := newWordSource(r)
		if ws.ok {
			h.sources = append(h.sources, ws)
		}
	}
	heap.Init(h)

	var removalSrc *wordSource
	if removal != nil {
		removalSrc = newWordSource(removal)
	}

	logger := b.Logger
	if logger == nil {
		logger = log.Default()
	}

	var lastEmitted string
	haveLast := false
	count := 0
	for h.Len() > 0 {
		src := h.sources[0]
		word := src.current
		// Drop exact duplicates across sources (and within a source).
		if haveLast && word == lastEmitted {
			b.DupCount++
			src.advance()
			if src.ok {
				heap.Fix(h, 0)
			} else {
				heap.Pop(h)
			}
			continue
		}
		if haveLast && CompareKeys(b.alphabet.SortKey(word), b.alphabet.SortKey(lastEmitted)) < 0 {
			logger.Printf("warning: input out of order: %q follows %q", word, lastEmitted)
		}
		// Advance the removal cursor in lock-step.
		skip := false
		if removalSrc != nil {
			for removalSrc.ok && CompareKeys(b.alphabet.SortKey(removalSrc.current), b.alphabet.SortKey(word)) < 0 {
				removalSrc.advance()
			}
			if removalSrc.ok && removalSrc.current == word {
				skip = true
			}
		}
		if !skip && filter.Accepts(len([]rune(word))) {
			if err := b.AddWord(word); err != nil {
				return err
			}
		}
		lastEmitted = word
		haveLast = true
		count++
		if count%10000 == 0 {
			logger.Printf("processed %d words", count)
		}
		src.advance()
		if src.ok {
			heap.Fix(h, 0)
		} else {
			heap.Pop(h)
		}
	}
	return nil
}

var _ sort.Interface = (*sourceHeap)(nil)
