// movegen_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import (
	"context"
	"testing"
)

// TestGenerateMovesFirstMove checks the opening-move case against a
// single-word dictionary, where every legal placement is known ahead
// of time: "cat" must pass through the center square, and the board's
// symmetry means the move generator reaches it from a single anchor on
// the center column, trying the rack's permutations around it.
func TestGenerateMovesFirstMove(t *testing.T) {
	board := NewBoard("standard")
	dawg := buildTestDawg(t, NewEnglishAlphabet(), []string{"cat"})
	rack := NewRack([]rune("cat"), EnglishTileSet)
	state := NewGameState(dawg, EnglishTileSet, board, rack, false)

	moves, err := state.GenerateMoves(context.Background())
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("len(moves) = %d, want 3", len(moves))
	}

	wantTopRow := []int{7, 6, 5}
	for i, m := range moves {
		tm, ok := m.(*TileMove)
		if !ok {
			t.Fatalf("moves[%d] is a %T, want *TileMove", i, m)
		}
		if tm.CleanWord() != "cat" {
			t.Errorf("moves[%d].CleanWord() = %q, want %q", i, tm.CleanWord(), "cat")
		}
		if tm.Horizontal {
			t.Errorf("moves[%d].Horizontal = true, want false (the only anchor is on the center column)", i)
		}
		if tm.TopLeft.Col != 7 {
			t.Errorf("moves[%d].TopLeft.Col = %d, want 7", i, tm.TopLeft.Col)
		}
		if tm.TopLeft.Row != wantTopRow[i] {
			t.Errorf("moves[%d].TopLeft.Row = %d, want %d", i, tm.TopLeft.Row, wantTopRow[i])
		}
		if tm.BottomRight.Row != tm.TopLeft.Row+2 || tm.BottomRight.Col != 7 {
			t.Errorf("moves[%d].BottomRight = %+v, want row %d col 7", i, tm.BottomRight, tm.TopLeft.Row+2)
		}
	}
}

// TestGenerateMovesExtendsExistingWord plants "cat" on the board and
// checks that with only an 's' in the rack and "cats" in the
// dictionary, the single move found extends it into "cats" by placing
// the 's' immediately to its right.
func TestGenerateMovesExtendsExistingWord(t *testing.T) {
	board := NewBoard("standard")
	board.PlaceTile(7, 7, &Tile{Letter: 'c', Meaning: 'c', Score: EnglishTileSet.Scores['c']})
	board.PlaceTile(7, 8, &Tile{Letter: 'a', Meaning: 'a', Score: EnglishTileSet.Scores['a']})
	board.PlaceTile(7, 9, &Tile{Letter: 't', Meaning: 't', Score: EnglishTileSet.Scores['t']})
	dawg := buildTestDawg(t, NewEnglishAlphabet(), []string{"cat", "cats"})
	rack := NewRack([]rune("s"), EnglishTileSet)
	state := NewGameState(dawg, EnglishTileSet, board, rack, false)

	moves, err := state.GenerateMoves(context.Background())
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	if len(moves) != 1 {
		t.Fatalf("len(moves) = %d, want 1", len(moves))
	}

	tm, ok := moves[0].(*TileMove)
	if !ok {
		t.Fatalf("moves[0] is a %T, want *TileMove", moves[0])
	}
	if tm.Word != "cats" {
		t.Errorf("Word = %q, want %q", tm.Word, "cats")
	}
	if !tm.Horizontal {
		t.Errorf("Horizontal = false, want true")
	}
	if len(tm.Covers) != 1 {
		t.Fatalf("len(Covers) = %d, want 1", len(tm.Covers))
	}
	cover, ok := tm.Covers[Coordinate{Row: 7, Col: 10}]
	if !ok {
		t.Fatalf("Covers does not contain (7, 10): %+v", tm.Covers)
	}
	if cover.Letter != 's' {
		t.Errorf("Covers[(7,10)].Letter = %q, want 's'", cover.Letter)
	}
}

// TestGenerateMovesNoMovesWithoutMatchingDictionaryEntry checks that an
// unreachable rack (no dictionary word can be formed from it touching
// the center square) yields zero moves rather than an error.
func TestGenerateMovesNoMovesWithoutMatchingDictionaryEntry(t *testing.T) {
	board := NewBoard("standard")
	dawg := buildTestDawg(t, NewEnglishAlphabet(), []string{"cat"})
	rack := NewRack([]rune("xyz"), EnglishTileSet)
	state := NewGameState(dawg, EnglishTileSet, board, rack, false)

	moves, err := state.GenerateMoves(context.Background())
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("len(moves) = %d, want 0", len(moves))
	}
}
