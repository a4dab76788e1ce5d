// navigators.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the stock DAWG navigation policies: exact
// lookup, wildcard pattern matching, and rack permutation, plus the
// Dawg convenience methods built on top of them.

package skrafl

// FindNavigator implements exact word lookup.
type FindNavigator struct {
	target []rune
	pos    int
	found  bool
}

// NewFindNavigator constructs a FindNavigator for word
func NewFindNavigator(word string) *FindNavigator {
	return &FindNavigator{target: []rune(word)}
}

func (n *FindNavigator) IsAccepting() bool { return n.pos < len(n.target) }

func (n *FindNavigator) Accepts(ch rune) bool {
	if n.pos >= len(n.target) || ch != n.target[n.pos] {
		return false
	}
	n.pos++
	return true
}

func (n *FindNavigator) Accept(matched []rune, final bool, state *navState) {
	if final && len(matched) == len(n.target) {
		n.found = true
	}
}

func (n *FindNavigator) PushEdge(ch rune) bool {
	return n.pos < len(n.target) && ch == n.target[n.pos]
}

func (n *FindNavigator) PopEdge() bool { return false }
func (n *FindNavigator) Done()         {}

// Found reports whether the walk located the target word
func (n *FindNavigator) Found() bool { return n.found }

// Find reports whether word is present in the dictionary
func (d *Dawg) Find(word string) bool {
	if word == "" {
		return false
	}
	nav := NewFindNavigator(word)
	Go(d, nav)
	return nav.Found()
}

// matchFrame records one matched character for backtracking
type matchFrame struct {
	pos        int
	isWildcard bool
}

// MatchNavigator implements '?'-wildcard pattern matching: each '?'
// in the pattern matches exactly one arbitrary letter.
type MatchNavigator struct {
	pattern   []rune
	pos       int
	stack     []matchFrame
	edgeMarks []int
	results   []string
}

// NewMatchNavigator constructs a MatchNavigator for pattern, where
// '?' stands for any single letter.
func NewMatchNavigator(pattern string) *MatchNavigator {
	return &MatchNavigator{pattern: []rune(pattern)}
}

func (n *MatchNavigator) IsAccepting() bool { return n.pos < len(n.pattern) }

func (n *MatchNavigator) Accepts(ch rune) bool {
	if n.pos >= len(n.pattern) {
		return false
	}
	pc := n.pattern[n.pos]
	isWild := pc == Wildcard
	if !isWild && pc != ch {
		return false
	}
	n.stack = append(n.stack, matchFrame{pos: n.pos, isWildcard: isWild})
	n.pos++
	return true
}

func (n *MatchNavigator) Accept(matched []rune, final bool, state *navState) {
	if final && n.pos == len(n.pattern) {
		n.results = append(n.results, string(matched))
	}
}

func (n *MatchNavigator) PushEdge(ch rune) bool {
	if n.pos >= len(n.pattern) {
		return false
	}
	pc := n.pattern[n.pos]
	if pc != Wildcard && pc != ch {
		return false
	}
	n.edgeMarks = append(n.edgeMarks, len(n.stack))
	return true
}

func (n *MatchNavigator) PopEdge() bool {
	if len(n.edgeMarks) == 0 {
		return false
	}
	mark := n.edgeMarks[len(n.edgeMarks)-1]
	n.edgeMarks = n.edgeMarks[:len(n.edgeMarks)-1]
	wasWildcard := false
	if len(n.stack) > mark {
		wasWildcard = n.stack[mark].isWildcard
		n.pos = n.stack[mark].pos
	}
	n.stack = n.stack[:mark]
	return wasWildcard
}

func (n *MatchNavigator) Done() {}

// Results returns the words matched by the walk
func (n *MatchNavigator) Results() []string { return n.results }

// Match returns every dictionary word matching pattern, where '?'
// stands for any single letter.
func (d *Dawg) Match(pattern string) []string {
	nav := NewMatchNavigator(pattern)
	Go(d, nav)
	return nav.Results()
}

// PermutationNavigator implements rack-permutation search: follow
// edges whose letter is present in the rack (or the rack contains a
// wildcard), recording every finalization of length >= minLen.
type PermutationNavigator struct {
	rack    map[rune]int
	minLen  int
	stack   []map[rune]int
	results []string
}

func cloneRackCounts(m map[rune]int) map[rune]int {
	out := make(map[rune]int, len(m))
	for r, n := range m {
		out[r] = n
	}
	return out
}

func rackCountsFromRunes(rack []rune) map[rune]int {
	m := make(map[rune]int)
	for _, r := range rack {
		m[r]++
	}
	return m
}

func totalCount(m map[rune]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// NewPermutationNavigator constructs a navigator that permutes rack
// (using '?' for blanks), recording finalizations of length >= minLen.
func NewPermutationNavigator(rack string, minLen int) *PermutationNavigator {
	return &PermutationNavigator{
		rack:   rackCountsFromRunes([]rune(rack)),
		minLen: minLen,
	}
}

func (n *PermutationNavigator) IsAccepting() bool { return totalCount(n.rack) > 0 }

func (n *PermutationNavigator) Accepts(ch rune) bool {
	if n.rack[ch] > 0 {
		n.rack[ch]--
		return true
	}
	if n.rack[Wildcard] > 0 {
		n.rack[Wildcard]--
		return true
	}
	return false
}

func (n *PermutationNavigator) Accept(matched []rune, final bool, state *navState) {
	if final && len(matched) >= n.minLen {
		n.results = append(n.results, string(matched))
	}
}

func (n *PermutationNavigator) PushEdge(ch rune) bool {
	ok := n.rack[ch] > 0 || n.rack[Wildcard] > 0
	if ok {
		n.stack = append(n.stack, cloneRackCounts(n.rack))
	}
	return ok
}

func (n *PermutationNavigator) PopEdge() bool {
	if len(n.stack) == 0 {
		return true
	}
	n.rack = n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

func (n *PermutationNavigator) Done() {}

// Results returns the permutations found by the walk
func (n *PermutationNavigator) Results() []string { return n.results }

// Permute returns every dictionary word of length >= minLen whose
// letters are a sub-multiset of rack (where '?' in rack matches any
// single letter).
func (d *Dawg) Permute(rack string, minLen int) []string {
	nav := NewPermutationNavigator(rack, minLen)
	Go(d, nav)
	return nav.Results()
}

// CrossSet returns the bitmask of letters that, placed between left
// and right, form a word present in the dictionary. An empty result
// (bitmask 0 with both left and right empty) degenerates to "no
// perpendicular constraint", which callers represent as all bits set.
func (d *Dawg) CrossSet(left, right []rune) uint {
	key := string(left) + string(Wildcard) + string(right)
	d.mu.Lock()
	if v, ok := d.crossCache.Get(key); ok {
		d.mu.Unlock()
		return v.(uint)
	}
	d.mu.Unlock()

	matches := d.Match(key)
	var set uint
	pos := len(left)
	for _, w := range matches {
		runes := []rune(w)
		if pos < len(runes) {
			set |= d.alphabet.BitOf(runes[pos])
		}
	}

	d.mu.Lock()
	d.crossCache.Add(key, set)
	d.mu.Unlock()
	return set
}
