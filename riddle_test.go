// riddle_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDefaultHeuristicsValues(t *testing.T) {
	h := DefaultHeuristics
	if h.MinTiles != 50 || h.MaxTiles != 70 {
		t.Errorf("MinTiles/MaxTiles = %d/%d, want 50/70", h.MinTiles, h.MaxTiles)
	}
	if h.MinMoves != 16 {
		t.Errorf("MinMoves = %d, want 16", h.MinMoves)
	}
	if h.SolutionFilter != nil {
		t.Errorf("SolutionFilter = %v, want nil", h.SolutionFilter)
	}
}

// TestIcelandicHeuristicsAppliesCommonWordFilter checks that
// IcelandicHeuristics loads a common-word dictionary into
// SolutionFilter while leaving the other threshold fields untouched,
// using icelandicCommonDict's own singleton so this test doesn't
// collide with any other caller of the Icelandic dictionaries.
func TestIcelandicHeuristicsAppliesCommonWordFilter(t *testing.T) {
	dir := t.TempDir()
	writeTestDawgFile(t, dir, "ordalisti.common.dawg.txt", NewIcelandicAlphabet(), []string{"afi", "alda"})
	t.Setenv("SKRAFL_DICT_DIR", dir)

	h, err := IcelandicHeuristics()
	if err != nil {
		t.Fatalf("IcelandicHeuristics: %v", err)
	}
	if h.SolutionFilter == nil {
		t.Fatalf("SolutionFilter is nil, want the loaded common-word dictionary")
	}
	if !h.SolutionFilter.Find("afi") {
		t.Errorf("SolutionFilter.Find(%q) = not found, want found", "afi")
	}
	if h.MinTiles != DefaultHeuristics.MinTiles || h.BingoBonus != DefaultHeuristics.BingoBonus {
		t.Errorf("IcelandicHeuristics changed a threshold field it shouldn't have: %+v", h)
	}
}

// TestGenerateRiddleNoCandidatesReturnsError points the sowpods
// dictionary at an empty directory, so every candidate attempt fails
// to even load a game, and checks that GenerateRiddle still reports a
// clean "no riddle found" error rather than hanging or panicking once
// its time budget runs out.
func TestGenerateRiddleNoCandidatesReturnsError(t *testing.T) {
	t.Setenv("SKRAFL_DICT_DIR", t.TempDir())
	params := GenerationParams{
		Locale:        "sowpods",
		BoardType:     "standard",
		TimeLimit:     50 * time.Millisecond,
		NumWorkers:    1,
		NumCandidates: 1,
	}
	riddle, stats, err := GenerateRiddle(params, DefaultHeuristics)
	if err == nil {
		t.Fatalf("GenerateRiddle: want an error, got riddle %+v", riddle)
	}
	if riddle != nil {
		t.Errorf("riddle = %+v, want nil", riddle)
	}
	if stats != nil {
		t.Errorf("stats = %+v, want nil", stats)
	}
}

// norwegianPairDictWords returns every ordered two-letter combination
// of the Norwegian alphabet's own letters as a "word" list. Since any
// rack drawn from the Norwegian bag has at least two tiles, some
// ordered pair of them is always a member of this dictionary, which
// makes a candidate game's opening move (and most follow-on moves)
// reliably findable without depending on a realistic word list.
func norwegianPairDictWords() []string {
	letters := []rune(NorwegianAlphabet)
	words := make([]string, 0, len(letters)*len(letters))
	for _, a := range letters {
		for _, b := range letters {
			words = append(words, string([]rune{a, b}))
		}
	}
	return words
}

// TestGenerateCandidateProducesRiddle drives generateCandidate
// directly (rather than the full GenerateRiddle worker pool) against
// an exhaustive two-letter Norwegian dictionary and heuristics loose
// enough that the first candidate reaching a handful of tiles on the
// board is accepted, then checks the resulting Riddle's shape.
func TestGenerateCandidateProducesRiddle(t *testing.T) {
	dir := t.TempDir()
	writeTestDawgFile(t, dir, "nsf2023.dawg.txt", NewNorwegianAlphabet(), norwegianPairDictWords())
	t.Setenv("SKRAFL_DICT_DIR", dir)

	params := GenerationParams{Locale: "no", BoardType: "standard"}
	heuristics := HeuristicConfig{
		MinTiles:      4,
		MaxTiles:      6,
		MinMoves:      1,
		MinBestScore:  1,
		MinWordLength: 2,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stats := &Stats{}

	candidate, err := generateCandidate(ctx, params, heuristics, stats)
	if err != nil {
		t.Fatalf("generateCandidate: %v", err)
	}
	if candidate == nil {
		t.Fatalf("generateCandidate returned a nil candidate; stats = %+v", stats)
	}
	riddle := candidate.Riddle
	if riddle.ID == uuid.Nil {
		t.Errorf("Riddle.ID is the zero UUID")
	}
	if len(riddle.Board) != BoardSize {
		t.Errorf("len(Board) = %d, want %d", len(riddle.Board), BoardSize)
	}
	if riddle.Solution.Move == "" {
		t.Errorf("Solution.Move is empty")
	}
	if riddle.Solution.Score < heuristics.MinBestScore {
		t.Errorf("Solution.Score = %d, want >= %d", riddle.Solution.Score, heuristics.MinBestScore)
	}
	if riddle.Analysis.TotalMoves < heuristics.MinMoves {
		t.Errorf("Analysis.TotalMoves = %d, want >= %d", riddle.Analysis.TotalMoves, heuristics.MinMoves)
	}
}

// TestGenerateCandidateRejectsWhenTooFewMoves forces the TooFewMoves
// rejection path with an unreachable MinMoves threshold, checking
// that a rejected candidate comes back as (nil, nil) rather than an
// error, with the matching Stats counter incremented.
func TestGenerateCandidateRejectsWhenTooFewMoves(t *testing.T) {
	dir := t.TempDir()
	writeTestDawgFile(t, dir, "nsf2023.dawg.txt", NewNorwegianAlphabet(), norwegianPairDictWords())
	t.Setenv("SKRAFL_DICT_DIR", dir)

	params := GenerationParams{Locale: "no", BoardType: "standard"}
	heuristics := HeuristicConfig{
		MinTiles:     4,
		MaxTiles:     6,
		MinMoves:     1 << 20,
		MinBestScore: 1,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stats := &Stats{}

	candidate, err := generateCandidate(ctx, params, heuristics, stats)
	if err != nil {
		t.Fatalf("generateCandidate: %v", err)
	}
	if candidate != nil {
		t.Fatalf("generateCandidate returned a candidate, want nil (rejected for too few moves)")
	}
	if stats.TooFewMoves != 1 {
		t.Errorf("stats.TooFewMoves = %d, want 1", stats.TooFewMoves)
	}
}
