// robot.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements a SCRABBLE(tm) playing robot,
// and is a part of the Go 'skrafl' package.

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

package skrafl

import (
	"context"

	"golang.org/x/exp/slices"
)

// Robot is an interface for automatic players that implement
// a playing strategy to pick a move given a list of legal tile
// moves.
type Robot interface {
	PickMove(state *GameState, moves []Move) Move
}

// RobotWrapper wraps a Robot implementation
type RobotWrapper struct {
	Robot
}

// GenerateMove generates a list of legal tile moves, then
// asks the wrapped robot to pick one of them to play
func (rw *RobotWrapper) GenerateMove(ctx context.Context, state *GameState) (Move, error) {
	moves, err := state.GenerateMoves(ctx)
	if err != nil {
		return nil, err
	}
	return rw.PickMove(state, moves), nil
}

// HighScoreRobot implements a simple strategy: it always picks
// the highest-scoring move available, or exchanges all tiles
// if there is no valid tile move, or passes if exchange is not
// allowed.
type HighScoreRobot struct {
}

// coverCount returns the number of newly placed tiles in a move, or 0
// for a move that doesn't cover any board squares (e.g. an exchange).
func coverCount(m Move) int {
	if tm, ok := m.(*TileMove); ok {
		return len(tm.Covers)
	}
	return 0
}

// topRow returns the row of a tile move's top-left square, or 0 for a
// move that doesn't occupy a square.
func topRow(m Move) int {
	if tm, ok := m.(*TileMove); ok {
		return tm.TopLeft.Row
	}
	return 0
}

// PickMove for a HighScoreRobot picks the highest scoring move available,
// or an exchange move, or a pass move as a last resort. Ties are broken
// by descending cover count, except on the first move of the game,
// where a lower row is preferred, leaving the board more open.
func (robot *HighScoreRobot) PickMove(state *GameState, moves []Move) Move {
	if len(moves) > 0 {
		firstMove := state.Board == nil || state.Board.NumTiles == 0
		slices.SortStableFunc(moves, func(a, b Move) bool {
			scoreA, scoreB := a.Score(state), b.Score(state)
			if scoreA != scoreB {
				return scoreA > scoreB
			}
			if firstMove {
				return topRow(a) < topRow(b)
			}
			return coverCount(a) > coverCount(b)
		})
		return moves[0]
	}
	// No valid tile moves
	if !state.exchangeForbidden {
		// Exchange all tiles, since that is allowed
		return NewExchangeMove(state.Rack.AsString())
	}
	// Exchange forbidden: Return a pass move
	return NewPassMove()
}

// NewHighScoreRobot returns a fresh instance of a HighScoreRobot,
// wrapped in a RobotWrapper
func NewHighScoreRobot() *RobotWrapper {
	return &RobotWrapper{&HighScoreRobot{}}
}
