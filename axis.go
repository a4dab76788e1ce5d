// axis.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Axis type: a single row or column of the
// board, together with its anchor squares and cross-check bitmasks,
// as used by the Appel & Jacobson move generator in movegen.go.

package skrafl

// Axis stores information about a row or column on the board where
// the robot player is looking for valid moves.
type Axis struct {
	state      *GameState
	horizontal bool
	// A bitmap of the letters in the rack, having all bits set if
	// the rack has a blank ('?') in it
	rackSet uint
	// rack is the original rack tile multiset
	rack map[rune]int
	// Array of convenience pointers to the board squares on this Axis
	sq [BoardSize]*Square
	// A bitmap of the letters that are allowed on each square,
	// intersected with the current rack
	crossCheck [BoardSize]uint
	// A boolean for each square indicating whether it is an anchor square
	isAnchor [BoardSize]bool
}

// newAxis builds an Axis for the row (horizontal=true) or column
// (horizontal=false) identified by index, within the given GameState.
func newAxis(state *GameState, rackSet uint, rack map[rune]int, index int, horizontal bool) *Axis {
	axis := &Axis{
		state:      state,
		horizontal: horizontal,
		rackSet:    rackSet,
		rack:       rack,
	}
	board := state.Board
	for i := 0; i < BoardSize; i++ {
		if horizontal {
			axis.sq[i] = board.Sq(index, i)
		} else {
			axis.sq[i] = board.Sq(i, index)
		}
	}
	// Mark all empty squares having at least one occupied adjacent
	// square as anchors
	for i := 0; i < BoardSize; i++ {
		sq := axis.sq[i]
		if sq.Tile != nil {
			// Already occupied: not an anchor, no cross-check needed
			continue
		}
		var isAnchor bool
		if board.NumTiles == 0 {
			// Special case: before the first tile is placed, only the
			// center square of the center column is an anchor
			isAnchor = (sq.Row == BoardSize/2) && (sq.Col == BoardSize/2) && !horizontal
		} else {
			isAnchor = board.HasAdjacent(sq.Row, sq.Col)
		}
		if !isAnchor {
			// No adjacent tiles: any rack letter may be tried here,
			// but only once an anchor to its left or right pulls it in
			axis.crossCheck[i] = rackSet
		} else {
			axis.isAnchor[i] = true
			axis.crossCheck[i] = rackSet & axis.crossSet(sq)
		}
	}
	return axis
}

// crossSet returns the bitmask of letters allowed in sq by virtue of
// the cross word(s) it would complete, or all bits set if there is no
// cross word to satisfy.
func (axis *Axis) crossSet(sq *Square) uint {
	left, right := axis.state.Board.CrossWords(sq.Row, sq.Col, !axis.horizontal)
	if left == "" && right == "" {
		return axis.state.Dawg.Alphabet().AllBitsSet()
	}
	return axis.state.Dawg.CrossSet([]rune(left), []rune(right))
}

// IsAnchor returns true if the given square within the Axis is an
// anchor square.
func (axis *Axis) IsAnchor(index int) bool {
	return axis.isAnchor[index]
}

// IsOpen returns true if the given square within the Axis is open
// for a new Tile from the Rack.
func (axis *Axis) IsOpen(index int) bool {
	return axis.sq[index].Tile == nil && axis.crossCheck[index] > 0
}

// Allows returns true if the given letter can legally be placed in
// the indexed square within the Axis, per the cross-check set.
func (axis *Axis) Allows(index int, letter rune) bool {
	if axis.sq[index].Tile != nil {
		return false
	}
	return axis.state.Dawg.Alphabet().Member(letter, axis.crossCheck[index])
}
