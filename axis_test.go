// axis_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

// TestNewAxisEmptyBoardAnchor exercises the Appel & Jacobson special case:
// on an empty board only the center square of the center column (the
// vertical axis) is an anchor. No horizontal axis has one, since the
// very first tile placed must cover the board's start square and the
// board's symmetry means a single vertical anchor suffices to reach
// every rotationally-equivalent first move.
func TestNewAxisEmptyBoardAnchor(t *testing.T) {
	board := NewBoard("standard")
	dawg := buildTestDawg(t, NewEnglishAlphabet(), []string{"cat"})
	rack := NewRack([]rune("cat"), EnglishTileSet)
	state := NewGameState(dawg, EnglishTileSet, board, rack, false)
	rackCounts := rackCountsFromRunes(rack.AsRunes())
	rackSet := dawg.Alphabet().MakeSet(rack.AsRunes())

	vertical := newAxis(state, rackSet, rackCounts, BoardSize/2, false)
	for i := 0; i < BoardSize; i++ {
		want := i == BoardSize/2
		if got := vertical.IsAnchor(i); got != want {
			t.Errorf("vertical axis IsAnchor(%d) = %v, want %v", i, got, want)
		}
	}

	for col := 0; col < BoardSize; col++ {
		horizontal := newAxis(state, rackSet, rackCounts, col, true)
		for i := 0; i < BoardSize; i++ {
			if horizontal.IsAnchor(i) {
				t.Errorf("horizontal axis %d: IsAnchor(%d) = true, want false on an empty board", col, i)
			}
		}
	}
}

// TestAxisCrossCheckAfterPlacement checks that once a tile sits on the
// board, the squares next to it become anchors with a crossCheck
// narrowed by the cross word those squares would form.
func TestAxisCrossCheckAfterPlacement(t *testing.T) {
	board := NewBoard("standard")
	board.PlaceTile(7, 7, &Tile{Letter: 'c', Meaning: 'c', Score: EnglishTileSet.Scores['c']})
	dawg := buildTestDawg(t, NewEnglishAlphabet(), []string{"ac", "at"})
	rack := NewRack([]rune("at"), EnglishTileSet)
	state := NewGameState(dawg, EnglishTileSet, board, rack, false)
	rackCounts := rackCountsFromRunes(rack.AsRunes())
	rackSet := dawg.Alphabet().MakeSet(rack.AsRunes())

	// Column 7 (vertical axis) has the 'c' tile at row 7; row 8 in that
	// column is empty and adjacent to it, so it must be an anchor.
	vertical := newAxis(state, rackSet, rackCounts, 7, false)
	if !vertical.IsAnchor(8) {
		t.Fatalf("vertical axis: IsAnchor(8) = false, want true (adjacent to the tile at row 7)")
	}
	if vertical.IsAnchor(7) {
		t.Errorf("vertical axis: IsAnchor(7) = true, want false (already occupied)")
	}
	// Row 7 (horizontal axis) has the 'c' tile at column 7; column 6 is
	// empty and adjacent to it, so it is an anchor too.
	horizontalRow := newAxis(state, rackSet, rackCounts, 7, true)
	if !horizontalRow.IsAnchor(6) {
		t.Fatalf("horizontal axis: IsAnchor(6) = false, want true (adjacent to the tile at col 7)")
	}
	// Row 6 (horizontal axis): column 7 sits above the 'c', so a tile
	// there forms the vertical cross word "?c". Only "ac" is a word, so
	// the crossCheck lets 'a' through and keeps 't' out.
	above := newAxis(state, rackSet, rackCounts, 6, true)
	if !above.Allows(7, 'a') {
		t.Errorf("row 6 axis: Allows(7, 'a') = false, want true (\"ac\" is a word)")
	}
	if above.Allows(7, 't') {
		t.Errorf("row 6 axis: Allows(7, 't') = true, want false (\"tc\" is not a word)")
	}
}

func TestAxisAllowsRespectsCrossCheck(t *testing.T) {
	board := NewBoard("standard")
	dawg := buildTestDawg(t, NewEnglishAlphabet(), []string{"cat"})
	rack := NewRack([]rune("cat"), EnglishTileSet)
	state := NewGameState(dawg, EnglishTileSet, board, rack, false)
	rackCounts := rackCountsFromRunes(rack.AsRunes())
	rackSet := dawg.Alphabet().MakeSet(rack.AsRunes())

	vertical := newAxis(state, rackSet, rackCounts, BoardSize/2, false)
	if !vertical.Allows(BoardSize/2, 'c') {
		t.Errorf("Allows(center, 'c') = false, want true: 'c' is in the rack")
	}
	if vertical.Allows(BoardSize/2, 'z') {
		t.Errorf("Allows(center, 'z') = true, want false: 'z' is not in the rack")
	}
}
