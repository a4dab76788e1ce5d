// legality.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the explicit move-legality error taxonomy and
// the CheckLegality algorithm for TileMoves.

package skrafl

// LegalityResult enumerates the move legality outcomes
type LegalityResult int

const (
	// Legal means the move is legal
	Legal LegalityResult = iota
	// NullMove means the move has no covers at all
	NullMove
	// FirstMoveNotInCenter means the first move of the game does not
	// cover the center square
	FirstMoveNotInCenter
	// Disjoint means the covers are neither all in one row nor all in
	// one column
	Disjoint
	// NotAdjacent means a non-first move does not touch any existing tile
	NotAdjacent
	// SquareAlreadyOccupied means a cover lands on an occupied square
	SquareAlreadyOccupied
	// CoverOutOfBounds means a cover names a square off the board
	CoverOutOfBounds
	// HasGap means there is an uncovered, untiled square between covers
	HasGap
	// WordNotInDictionary means the primary word is not in the dictionary
	WordNotInDictionary
	// CrossWordNotInDictionary means a cross word formed by the move
	// is not in the dictionary
	CrossWordNotInDictionary
	// TooManyTilesPlayed means more than RackSize covers were given
	TooManyTilesPlayed
	// TileNotInRack means a cover's tile is not available in the rack
	TileNotInRack
	// GameOver means the move was attempted after the game ended
	GameOver
)

func (r LegalityResult) String() string {
	switch r {
	case Legal:
		return "LEGAL"
	case NullMove:
		return "NULL_MOVE"
	case FirstMoveNotInCenter:
		return "FIRST_MOVE_NOT_IN_CENTER"
	case Disjoint:
		return "DISJOINT"
	case NotAdjacent:
		return "NOT_ADJACENT"
	case SquareAlreadyOccupied:
		return "SQUARE_ALREADY_OCCUPIED"
	case CoverOutOfBounds:
		return "COVER_OUT_OF_BOUNDS"
	case HasGap:
		return "HAS_GAP"
	case WordNotInDictionary:
		return "WORD_NOT_IN_DICTIONARY"
	case CrossWordNotInDictionary:
		return "CROSS_WORD_NOT_IN_DICTIONARY"
	case TooManyTilesPlayed:
		return "TOO_MANY_TILES_PLAYED"
	case TileNotInRack:
		return "TILE_NOT_IN_RACK"
	case GameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// CheckLegality runs the full §4.E legality algorithm against move,
// returning a specific LegalityResult rather than a bare bool.
func CheckLegality(move *TileMove, game *Game) LegalityResult {
	if game.IsOver() {
		return GameOver
	}
	if len(move.Covers) == 0 {
		return NullMove
	}
	if len(move.Covers) > RackSize {
		return TooManyTilesPlayed
	}
	rack := &game.Racks[game.PlayerToMove()]
	needed := make(map[rune]int)
	for _, cover := range move.Covers {
		if cover.Letter == Wildcard {
			needed[Wildcard]++
		} else {
			needed[cover.Letter]++
		}
	}
	have := make(map[rune]int)
	for _, sq := range rack.Slots {
		if sq.Tile != nil {
			have[sq.Tile.Letter]++
		}
	}
	for letter, n := range needed {
		if have[letter] < n {
			return TileNotInRack
		}
	}
	board := game.Board
	for coord := range move.Covers {
		if coord.Row < 0 || coord.Row >= BoardSize || coord.Col < 0 || coord.Col >= BoardSize {
			return CoverOutOfBounds
		}
		if board.TileAt(coord.Row, coord.Col) != nil {
			return SquareAlreadyOccupied
		}
	}
	if move.BottomRight.Row > move.TopLeft.Row && move.BottomRight.Col > move.TopLeft.Col {
		return Disjoint
	}
	if move.Horizontal {
		row := move.TopLeft.Row
		for i := move.TopLeft.Col; i <= move.BottomRight.Col; i++ {
			if _, covered := move.Covers[Coordinate{row, i}]; !covered && board.TileAt(row, i) == nil {
				return HasGap
			}
		}
	} else {
		col := move.TopLeft.Col
		for i := move.TopLeft.Row; i <= move.BottomRight.Row; i++ {
			if _, covered := move.Covers[Coordinate{i, col}]; !covered && board.TileAt(i, col) == nil {
				return HasGap
			}
		}
	}
	if board.NumTiles == 0 {
		if _, covered := move.Covers[Coordinate{BoardSize / 2, BoardSize / 2}]; !covered {
			return FirstMoveNotInCenter
		}
	} else {
		adjacent := false
		for coord := range move.Covers {
			if board.HasAdjacent(coord.Row, coord.Col) {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return NotAdjacent
		}
	}
	if move.ValidateWords && game.Dawg != nil {
		if move.Word == "" || move.Word == IllegalMoveWord {
			return WordNotInDictionary
		}
		if !game.Dawg.Find(move.CleanWord()) {
			return WordNotInDictionary
		}
		for coord, cover := range move.Covers {
			left, right := board.CrossWords(coord.Row, coord.Col, !move.Horizontal)
			if len(left) > 0 || len(right) > 0 {
				if !game.Dawg.Find(left + string(cover.Meaning) + right) {
					return CrossWordNotInDictionary
				}
			}
		}
	}
	return Legal
}
