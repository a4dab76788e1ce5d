// game_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

func newGameTestGame(t *testing.T, words []string) *Game {
	t.Helper()
	game := &Game{}
	game.Board.Init("standard")
	game.Racks[0].Init()
	game.Racks[1].Init()
	game.TileSet = EnglishTileSet
	game.Bag = makeBag(EnglishTileSet)
	game.Dawg = buildTestDawg(t, NewEnglishAlphabet(), words)
	return game
}

func TestGamePlayerToMove(t *testing.T) {
	game := newGameTestGame(t, legalityWords)
	if got := game.PlayerToMove(); got != 0 {
		t.Errorf("PlayerToMove() = %d, want 0", got)
	}
	game.MoveList = append(game.MoveList, &MoveItem{Move: NewPassMove()})
	if got := game.PlayerToMove(); got != 1 {
		t.Errorf("PlayerToMove() = %d, want 1", got)
	}
}

func TestGameStateUsesPlayerToMoveRack(t *testing.T) {
	game := newGameTestGame(t, legalityWords)
	setRack(game, 0, "catdefg")
	setRack(game, 1, "bargxyz")
	state := game.State()
	if state.Rack != &game.Racks[0] {
		t.Errorf("State().Rack = %p, want &game.Racks[0] (%p)", state.Rack, &game.Racks[0])
	}
	game.MoveList = append(game.MoveList, &MoveItem{Move: NewPassMove()})
	state = game.State()
	if state.Rack != &game.Racks[1] {
		t.Errorf("State().Rack = %p, want &game.Racks[1] (%p)", state.Rack, &game.Racks[1])
	}
}

func TestGameMakeTileMoveScoresAndReplenishesRack(t *testing.T) {
	game := newGameTestGame(t, legalityWords)
	setRack(game, 0, "catdefg")
	tiles := game.Racks[0].FindTiles([]rune("cat"))
	if len(tiles) != 3 {
		t.Fatalf("FindTiles returned %d tiles, want 3", len(tiles))
	}
	if !game.MakeTileMove(7, 7, true, tiles) {
		t.Fatalf("MakeTileMove returned false, want true")
	}
	// c=3, a=1, t=1, summed then doubled by the center square: (3+1+1)*2
	if game.Scores[0] != 10 {
		t.Errorf("Scores[0] = %d, want 10", game.Scores[0])
	}
	if len(game.MoveList) != 1 {
		t.Fatalf("len(MoveList) = %d, want 1", len(game.MoveList))
	}
	if got := len(game.Racks[0].AsRunes()); got != RackSize {
		t.Errorf("rack size after replenishment = %d, want %d", got, RackSize)
	}
}

func TestGameMakeTileMoveRejectsTileNotInRack(t *testing.T) {
	game := newGameTestGame(t, legalityWords)
	setRack(game, 0, "catdefg")
	foreign := &Tile{Letter: 'z', Meaning: 'z', Score: EnglishTileSet.Scores['z']}
	if game.MakeTileMove(7, 7, true, []*Tile{foreign}) {
		t.Errorf("MakeTileMove returned true for a tile not in the rack")
	}
	if len(game.MoveList) != 0 {
		t.Errorf("len(MoveList) = %d, want 0", len(game.MoveList))
	}
}

func TestGameApplyRejectsInvalidMove(t *testing.T) {
	game := newGameTestGame(t, legalityWords)
	setRack(game, 0, "catdefg")
	move := NewExchangeMove("z")
	if game.Apply(move) {
		t.Errorf("Apply returned true for an exchange of a letter not in the rack")
	}
	if len(game.MoveList) != 0 {
		t.Errorf("len(MoveList) = %d, want 0", len(game.MoveList))
	}
}

func TestGameIsOver(t *testing.T) {
	game := newGameTestGame(t, legalityWords)
	if game.IsOver() {
		t.Errorf("IsOver() = true for a game with no moves yet, want false")
	}
	game.MoveList = append(game.MoveList, &MoveItem{Move: NewPassMove()})
	if game.IsOver() {
		t.Errorf("IsOver() = true, want false")
	}
	game.NumPassMoves = 6
	if !game.IsOver() {
		t.Errorf("IsOver() = false after six consecutive pass moves, want true")
	}
}

func TestGameIsOverWhenLastPlayerEmptiesRack(t *testing.T) {
	game := newGameTestGame(t, legalityWords)
	// Two moves played: player 0 then player 1, whose rack is now empty.
	game.MoveList = append(game.MoveList,
		&MoveItem{Move: NewPassMove()},
		&MoveItem{Move: NewPassMove()},
	)
	game.Racks[1].Init()
	if !game.IsOver() {
		t.Errorf("IsOver() = false when the last player to move has an empty rack, want true")
	}
}

func TestGameApplyValidFinishesGameWithFinalMoves(t *testing.T) {
	game := newGameTestGame(t, legalityWords)
	// Player 0 has exactly "cat" and nothing else; player 1 keeps "xyz".
	setRack(game, 0, "cat")
	setRack(game, 1, "xyz")
	// Empty the bag so the rack can't be replenished after the move,
	// which is what actually ends the game (an empty rack with tiles
	// still in the bag just gets refilled).
	game.Bag.Contents = nil
	tiles := game.Racks[0].FindTiles([]rune("cat"))
	if !game.MakeTileMove(7, 7, true, tiles) {
		t.Fatalf("MakeTileMove returned false, want true")
	}
	if !game.Racks[0].IsEmpty() {
		t.Fatalf("player 0's rack is not empty after playing all its tiles")
	}
	if !game.IsOver() {
		t.Fatalf("IsOver() = false after the last tile was played, want true")
	}
	// Two FinalMoves are appended on top of the tile move.
	if got := len(game.MoveList); got != 3 {
		t.Fatalf("len(MoveList) = %d, want 3", got)
	}
	// Player 0 scores 10 for "cat" plus a bonus of player 1's remaining
	// tile values doubled (x=8, y=4, z=10): 10 + (8+4+10)*2 = 54. Player
	// 1's own FinalMove carries player 0's (now empty) rack value, so it
	// adds nothing.
	if game.Scores[0] != 54 {
		t.Errorf("Scores[0] = %d, want 54", game.Scores[0])
	}
	if game.Scores[1] != 0 {
		t.Errorf("Scores[1] = %d, want 0", game.Scores[1])
	}
}
