// main.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

// skraflsvc is a compact HTTP service that receives a board position
// and rack as JSON and returns the legal moves available, ranked by
// score. It mirrors the teacher's App Engine move-request handler.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"unicode"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"

	skrafl "github.com/vthorsteinsson/Skrafl"
)

// authHeader is the expected "Authorization" header value, or "" if
// no access key is configured.
var authHeader string

// movesRequest describes an incoming /moves request: a board position,
// a rack, and an optional cap on the number of moves returned.
type movesRequest struct {
	Locale    string   `json:"locale"`
	BoardType string   `json:"board_type"`
	Board     []string `json:"board"`
	Rack      string   `json:"rack"`
	Limit     int      `json:"limit"`
}

// moveResult is one candidate move in the response, carrying its
// score alongside the board coordinates and the word it spells.
type moveResult struct {
	Word  string `json:"word"`
	Coord string `json:"coord"`
	Score int    `json:"score"`
}

type movesResponse struct {
	Version string       `json:"version"`
	Count   int          `json:"count"`
	Moves   []moveResult `json:"moves"`
}

func dictionaryForLocale(locale string) (*skrafl.Dawg, *skrafl.TileSet, error) {
	switch locale {
	case "is", "ice", "icelandic", "is_IS", "is-IS":
		dawg, err := skrafl.IcelandicDictionary()
		if err != nil {
			return nil, nil, err
		}
		return dawg, skrafl.NewTileSetFromAlphabet(skrafl.NewIcelandicAlphabet()), nil
	case "en", "en_GB", "en-GB", "sowpods":
		dawg, err := skrafl.SowpodsDictionary()
		if err != nil {
			return nil, nil, err
		}
		return dawg, skrafl.EnglishTileSet, nil
	case "", "en_US", "en-US", "twl06":
		dawg, err := skrafl.Twl06Dictionary()
		if err != nil {
			return nil, nil, err
		}
		return dawg, skrafl.EnglishTileSet, nil
	case "pl", "polish", "pl_PL", "pl-PL":
		dawg, err := skrafl.PolishDictionary()
		if err != nil {
			return nil, nil, err
		}
		return dawg, skrafl.PolishTileSet, nil
	case "no", "nb", "norwegian", "nb_NO", "nb-NO":
		dawg, err := skrafl.NorwegianDictionary()
		if err != nil {
			return nil, nil, err
		}
		return dawg, skrafl.NorwegianTileSet, nil
	default:
		return nil, nil, &skrafl.BadArgsError{Msg: "unknown locale: " + locale}
	}
}

func movesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
		return
	}
	if authHeader != "" && r.Header.Get("Authorization") != authHeader {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req movesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.BoardType == "" {
		req.BoardType = "standard"
	}

	dawg, tileSet, err := dictionaryForLocale(req.Locale)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rackRunes := []rune(req.Rack)
	if len(rackRunes) == 0 || len(rackRunes) > skrafl.RackSize {
		http.Error(w, "invalid rack", http.StatusBadRequest)
		return
	}
	if len(req.Board) != skrafl.BoardSize {
		http.Error(w, fmt.Sprintf("board must have %d rows", skrafl.BoardSize), http.StatusBadRequest)
		return
	}

	board := skrafl.NewBoard(req.BoardType)
	for rowIx, rowString := range req.Board {
		row := []rune(rowString)
		if len(row) != skrafl.BoardSize {
			http.Error(w, fmt.Sprintf("board row %d must have %d columns", rowIx, skrafl.BoardSize), http.StatusBadRequest)
			return
		}
		for colIx, letter := range row {
			if letter == '.' || letter == ' ' {
				continue
			}
			meaning := letter
			score := 0
			if unicode.IsUpper(letter) {
				// An upper-case letter denotes a blank tile resolved to
				// that letter's meaning.
				meaning = unicode.ToLower(letter)
				letter = skrafl.Wildcard
			} else {
				score = tileSet.Scores[letter]
			}
			if !tileSet.Contains(letter) {
				http.Error(w, fmt.Sprintf("invalid letter %q at %d,%d", letter, rowIx, colIx), http.StatusBadRequest)
				return
			}
			tile := &skrafl.Tile{Letter: letter, Meaning: meaning, Score: score}
			if !board.PlaceTile(rowIx, colIx, tile) {
				http.Error(w, fmt.Sprintf("square already occupied at %d,%d", rowIx, colIx), http.StatusBadRequest)
				return
			}
		}
	}
	if board.NumTiles > 0 && !board.HasStartTile() {
		http.Error(w, "the start square must be occupied", http.StatusBadRequest)
		return
	}

	rack := skrafl.NewRack(rackRunes, tileSet)
	if rack == nil {
		http.Error(w, "rack contains a letter not in the tile set", http.StatusBadRequest)
		return
	}

	exchangeForbidden := tileSet.Size-board.NumTiles-2*skrafl.RackSize < skrafl.RackSize
	state := skrafl.NewGameState(dawg, tileSet, board, rack, exchangeForbidden)

	moves, err := state.GenerateMoves(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	results := make([]moveResult, 0, len(moves))
	for _, m := range moves {
		tm, ok := m.(*skrafl.TileMove)
		if !ok {
			continue
		}
		results = append(results, moveResult{
			Word:  tm.Word,
			Coord: skrafl.Coord(tm.TopLeft.Row, tm.TopLeft.Col, tm.Horizontal),
			Score: tm.Score(state),
		})
	}
	slices.SortFunc(results, func(a, b moveResult) bool {
		return a.Score > b.Score
	})
	if req.Limit > 0 && req.Limit < len(results) {
		results = results[:req.Limit]
	}

	resp := movesResponse{Version: "1.0", Count: len(results), Moves: results}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func main() {
	log.SetOutput(os.Stderr)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	log.Printf("Moves service starting, Go version %s", runtime.Version())
	if key := os.Getenv("ACCESS_KEY"); key != "" {
		authHeader = "Bearer " + key
	}

	http.HandleFunc("/moves", movesHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Listening on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}
