// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains code to generate all valid tile moves
// on a crossword board, given a player's rack.
// It is a part of the Go 'skrafl' package.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

/*

The code herein finds all legal moves on a crossword board, using the
classic algorithm from Appel & Jacobson's "The World's Fastest Scrabble
Program" (http://www.cs.cmu.edu/afs/cs/academic/class/15451-s06/www/lectures/scrabble.pdf).

The main entry point is GameState.GenerateMoves(). Given a game state
comprising a Board, a Rack, and a vocabulary word graph (Dawg), it
returns all legal tile moves.

Moves are found by examining each one-dimensional Axis of the board in
turn: 15 rows and 15 columns, for a total of 30 axes. For each Axis, the
cross-check set of every empty square is calculated: the set of letters
that, placed there, would form valid cross words. Cross-check sets are
intersected with the letters actually held in the rack, unless the rack
holds a blank tile, which matches anything.

Any empty square with a non-null cross-check set that is adjacent to a
covered square (or, on an empty board, the center square) is a
potential anchor. Each anchor is examined in turn, left to right:

1) Count the number of open, non-anchor squares to the left of the
   anchor. Call this 'maxleft'.
2) Find every permutation of rack tiles reachable from the root of the
   Dawg with length 1..maxleft: every possible word beginning buildable
   from the rack. These are computed once for the whole generation pass.
3) For each such permutation, attempt to complete a word by placing
   the remaining rack tiles on the anchor square and to its right.
4) Even when maxleft is 0, place a starting tile directly on the
   anchor and attempt to complete a word to its right.
5) Placing a tile on the anchor square or to its right is constrained
   by (a) the cross-check set of the square, (b) a Dawg path matching
   the letters laid down so far, and (c) an available matching tile in
   the rack (blanks match anything).
6) Extending right onto a square already holding a board tile requires
   that the existing letter matches the Dawg path being followed.
7) Running off the edge of the axis, or reaching an empty square, while
   positioned at a final Dawg node completes a word: a candidate move.

Steps 1-2 are carried out by the left-part search (findLeftParts with
its LeftPermutationNavigator, and LeftFindNavigator for a left part
already on the board); steps 3-7 by ExtendRightNavigator.
These correspond to the Appel & Jacobson LeftPart and ExtendRight
functions.

*/

package skrafl

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LeftFindNavigator locates an existing left part of a word already on
// the board, yielding the navigation state to resume extending right
// from, without itself evaluating any rack tiles.
type LeftFindNavigator struct {
	target []rune
	index  int
	state  *navState
}

func newLeftFindNavigator(target []rune) *LeftFindNavigator {
	return &LeftFindNavigator{target: target}
}

func (n *LeftFindNavigator) IsAccepting() bool { return n.index < len(n.target) }

func (n *LeftFindNavigator) Accepts(ch rune) bool {
	if n.index >= len(n.target) || ch != n.target[n.index] {
		return false
	}
	n.index++
	return true
}

func (n *LeftFindNavigator) Accept(matched []rune, final bool, state *navState) {
	if n.index == len(n.target) {
		n.state = state
	}
}

func (n *LeftFindNavigator) PushEdge(ch rune) bool {
	return n.index < len(n.target) && n.target[n.index] == ch
}

// PopEdge always returns false: there is only ever one matching
// outgoing edge for a specific target prefix.
func (n *LeftFindNavigator) PopEdge() bool { return false }
func (n *LeftFindNavigator) Done()         {}

// LeftPart records the resumption point after matching a particular
// left part within the Dawg, together with the rack left over, so
// that an ExtendRightNavigator can continue from there.
type LeftPart struct {
	matched []rune
	rack    map[rune]int
	state   *navState
}

type leftPermItem struct {
	rack  map[rune]int
	index int
}

// LeftPermutationNavigator enumerates every left part reachable from
// the root of the Dawg using a sub-multiset of rack, grouped by
// length. This is done once per move-generation pass.
type LeftPermutationNavigator struct {
	rack      map[rune]int
	index     int
	maxLeft   int
	stack     []leftPermItem
	leftParts [][]*LeftPart
}

func newLeftPermutationNavigator(rack map[rune]int) *LeftPermutationNavigator {
	maxLeft := totalCount(rack) - 1
	if maxLeft < 0 {
		maxLeft = 0
	}
	leftParts := make([][]*LeftPart, maxLeft)
	return &LeftPermutationNavigator{
		rack:      cloneRackCounts(rack),
		maxLeft:   maxLeft,
		leftParts: leftParts,
	}
}

// findLeftParts returns all left-part permutations reachable from
// rack, grouped by length (index 0 holds length-1 parts).
func findLeftParts(dawg *Dawg, rack map[rune]int) [][]*LeftPart {
	nav := newLeftPermutationNavigator(rack)
	Go(dawg, nav)
	return nav.leftParts
}

func (n *LeftPermutationNavigator) IsAccepting() bool { return n.index < n.maxLeft }

func (n *LeftPermutationNavigator) Accepts(ch rune) bool {
	switch {
	case n.rack[ch] > 0:
		n.rack[ch]--
	case n.rack[Wildcard] > 0:
		n.rack[Wildcard]--
	default:
		return false
	}
	n.index++
	return true
}

func (n *LeftPermutationNavigator) Accept(matched []rune, final bool, state *navState) {
	ix := len(matched) - 1
	if ix < 0 || ix >= n.maxLeft {
		return
	}
	n.leftParts[ix] = append(n.leftParts[ix], &LeftPart{
		matched: append([]rune(nil), matched...),
		rack:    cloneRackCounts(n.rack),
		state:   state,
	})
}

func (n *LeftPermutationNavigator) PushEdge(ch rune) bool {
	ok := n.rack[ch] > 0 || n.rack[Wildcard] > 0
	if ok {
		n.stack = append(n.stack, leftPermItem{rack: cloneRackCounts(n.rack), index: n.index})
	}
	return ok
}

func (n *LeftPermutationNavigator) PopEdge() bool {
	last := len(n.stack) - 1
	n.rack, n.index = n.stack[last].rack, n.stack[last].index
	n.stack = n.stack[:last]
	return true
}

func (n *LeftPermutationNavigator) Done() {}

// Matching outcomes for ExtendRightNavigator.check
const (
	mNo = iota
	mBoardTile
	mRackTile
)

type ernItem struct {
	rack  map[rune]int
	index int
}

// ExtendRightNavigator implements the core of the Appel & Jacobson
// algorithm: it proceeds along an Axis, covering empty squares with
// tiles from the rack while obeying the Dawg and cross-check
// constraints. Every final node reached yields a candidate TileMove.
type ExtendRightNavigator struct {
	axis      *Axis
	anchor    int
	index     int
	rack      map[rune]int
	stack     []ernItem
	lastCheck int
	moves     []Move
}

func newExtendRightNavigator(axis *Axis, anchor int, rack map[rune]int) *ExtendRightNavigator {
	return &ExtendRightNavigator{
		axis:   axis,
		anchor: anchor,
		index:  anchor,
		rack:   cloneRackCounts(rack),
	}
}

func (ern *ExtendRightNavigator) check(letter rune) int {
	tileAtSq := ern.axis.sq[ern.index].Tile
	if tileAtSq != nil {
		if letter == tileAtSq.Meaning {
			return mBoardTile
		}
		return mNo
	}
	if ern.rack[letter] == 0 && ern.rack[Wildcard] == 0 {
		return mNo
	}
	if ern.axis.Allows(ern.index, letter) {
		return mRackTile
	}
	return mNo
}

func (ern *ExtendRightNavigator) PushEdge(letter rune) bool {
	ern.lastCheck = ern.check(letter)
	if ern.lastCheck == mNo {
		return false
	}
	ern.stack = append(ern.stack, ernItem{rack: cloneRackCounts(ern.rack), index: ern.index})
	return true
}

func (ern *ExtendRightNavigator) PopEdge() bool {
	last := len(ern.stack) - 1
	ern.rack, ern.index = ern.stack[last].rack, ern.stack[last].index
	ern.stack = ern.stack[:last]
	return true
}

func (ern *ExtendRightNavigator) Done() {}

func (ern *ExtendRightNavigator) IsAccepting() bool {
	if ern.index >= BoardSize {
		return false
	}
	return totalCount(ern.rack) > 0 || ern.axis.sq[ern.index].Tile != nil
}

func (ern *ExtendRightNavigator) Accepts(letter rune) bool {
	match := ern.lastCheck
	if match == 0 {
		match = ern.check(letter)
	}
	ern.lastCheck = 0
	if match == mNo {
		return false
	}
	ern.index++
	if match == mRackTile {
		if ern.rack[letter] > 0 {
			ern.rack[letter]--
		} else {
			ern.rack[Wildcard]--
		}
	}
	return true
}

func (ern *ExtendRightNavigator) Accept(matched []rune, final bool, state *navState) {
	if !final || (ern.index < BoardSize && ern.axis.sq[ern.index].Tile != nil) {
		// Not a complete word, or it ends on an occupied square
		return
	}
	if len(matched) < 2 {
		// A single-letter placement is never a legal tile move
		return
	}
	covers := make(Covers)
	start := ern.index - len(matched)
	rack := cloneRackCounts(ern.axis.rack)
	for i, meaning := range matched {
		sq := ern.axis.sq[start+i]
		if sq.Tile != nil {
			continue
		}
		letter := meaning
		if rack[meaning] > 0 {
			rack[meaning]--
		} else {
			letter = Wildcard
			rack[Wildcard]--
		}
		covers[Coordinate{sq.Row, sq.Col}] = Cover{Letter: letter, Meaning: meaning}
	}
	ern.moves = append(ern.moves, NewTileMove(ern.axis.state.Board, covers))
}

func min(a, b int) int {
	if a <= b {
		return a
	}
	return b
}

// genMovesFromAnchor returns the moves available using the given
// square within the Axis as an anchor.
func (axis *Axis) genMovesFromAnchor(anchor int, maxLeft int, leftParts [][]*LeftPart) []Move {
	dawg, board := axis.state.Dawg, axis.state.Board
	sq := axis.sq[anchor]

	if maxLeft == 0 && anchor > 0 && axis.sq[anchor-1].Tile != nil {
		// There is already a left part on the board: find it in the
		// Dawg and extend right from there, using the whole rack.
		var direction int
		if axis.horizontal {
			direction = LEFT
		} else {
			direction = ABOVE
		}
		fragment := board.Fragment(sq.Row, sq.Col, direction)
		left := make([]rune, len(fragment))
		for i, tile := range fragment {
			left[len(fragment)-1-i] = tile.Meaning
		}
		lfn := newLeftFindNavigator(left)
		Go(dawg, lfn)
		if lfn.state == nil {
			// No matching prefix: no valid completion exists
			return nil
		}
		ern := newExtendRightNavigator(axis, anchor, axis.rack)
		Resume(dawg, ern, lfn.state, append([]rune(nil), left...))
		return ern.moves
	}

	// Extend an empty prefix to the right: tiles placed on the anchor
	// square itself and beyond.
	ern := newExtendRightNavigator(axis, anchor, axis.rack)
	Go(dawg, ern)
	moves := append([]Move(nil), ern.moves...)

	// Permute left prefixes into the open space to the left of the
	// anchor, for every length up to maxLeft.
	for leftLen := 1; leftLen <= maxLeft; leftLen++ {
		for _, leftPart := range leftParts[leftLen-1] {
			ern := newExtendRightNavigator(axis, anchor, leftPart.rack)
			Resume(dawg, ern, leftPart.state, append([]rune(nil), leftPart.matched...))
			moves = append(moves, ern.moves...)
		}
	}
	return moves
}

// GenerateMoves returns every legal move along this Axis.
func (axis *Axis) GenerateMoves(lenRack int, leftParts [][]*LeftPart) []Move {
	var moves []Move
	lastAnchor := -1
	for i := 0; i < BoardSize; i++ {
		if !axis.IsAnchor(i) {
			continue
		}
		if axis.crossCheck[i] > 0 {
			// Count open squares to the anchor's left, stopping at the
			// previous anchor (exclusive) if any.
			openCnt := 0
			left := i
			for left > 0 && left > (lastAnchor+1) && axis.IsOpen(left-1) {
				openCnt++
				left--
			}
			moves = append(moves,
				axis.genMovesFromAnchor(i, min(openCnt, lenRack-1), leftParts)...,
			)
		}
		lastAnchor = i
	}
	return moves
}

// GenerateMoves returns every legal move in the GameState, considering
// the Board and the player's Rack. The task is split into 30
// sub-tasks, one per row and column, run concurrently via errgroup.
func (state *GameState) GenerateMoves(ctx context.Context) ([]Move, error) {
	rack := state.Rack.AsRunes()
	rackCounts := rackCountsFromRunes(rack)
	rackSet := state.Dawg.Alphabet().MakeSet(rack)
	lenRack := len(rack)
	leftParts := findLeftParts(state.Dawg, rackCounts)

	results := make([][]Move, BoardSize*2)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < BoardSize; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			axis := newAxis(state, rackSet, rackCounts, i, true)
			results[i] = axis.GenerateMoves(lenRack, leftParts)
			return nil
		})
	}
	for i := 0; i < BoardSize; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			axis := newAxis(state, rackSet, rackCounts, i, false)
			results[BoardSize+i] = axis.GenerateMoves(lenRack, leftParts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var moves []Move
	for _, r := range results {
		moves = append(moves, r...)
	}
	return moves, nil
}
