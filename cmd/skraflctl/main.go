// main.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

// skraflctl is the command-line front end to the skrafl library: it
// builds text DAWGs from word lists, plays a robot-against-robot
// regression game, and generates practice riddles.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	skrafl "github.com/vthorsteinsson/Skrafl"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild(os.Args[2:])
	case "test":
		err = runTest(os.Args[2:])
	case "riddle":
		err = runRiddle(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err == nil {
		return
	}
	log.Printf("error: %v", err)
	if ec, ok := err.(skrafl.ExitCoder); ok {
		os.Exit(ec.ExitCode())
	}
	os.Exit(4)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: skraflctl <build|test|riddle> [flags]")
}

func alphabetForLocale(locale string) (*skrafl.Alphabet, error) {
	switch strings.ToLower(locale) {
	case "ice", "icelandic":
		return skrafl.NewIcelandicAlphabet(), nil
	case "twl06", "sowpods", "en", "english":
		return skrafl.NewEnglishAlphabet(), nil
	case "pl", "polish":
		return skrafl.NewPolishAlphabet(), nil
	case "no", "nb", "norwegian":
		return skrafl.NewNorwegianAlphabet(), nil
	default:
		return nil, &skrafl.BadArgsError{Msg: "unknown locale: " + locale}
	}
}

// runBuild merges one or more sorted word-list files into a text DAWG,
// mirroring the reference builder's filter/removal-list orchestration
// (inputs, an optional removal list, a length filter, an output base).
func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	removePath := fs.String("remove", "", "file of words to remove from the merged input")
	filterName := fs.String("filter", "none", "length filter to apply: scrabble, common, or none")
	localeName := fs.String("locale", "ice", "alphabet/locale to build for: ice, twl06, sowpods, polish, norwegian")
	// Flags may come before, between or after the positional arguments:
	// parse repeatedly, collecting one positional argument per round.
	var rest []string
	for {
		if err := fs.Parse(args); err != nil {
			return &skrafl.BadArgsError{Msg: err.Error()}
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		rest = append(rest, args[0])
		args = args[1:]
	}
	if len(rest) < 2 {
		return &skrafl.BadArgsError{Msg: "build requires at least one input file and an output base name"}
	}
	inputs, outputBase := rest[:len(rest)-1], rest[len(rest)-1]

	var filter skrafl.FilterKind
	switch *filterName {
	case "scrabble":
		filter = skrafl.FilterScrabble
	case "common":
		filter = skrafl.FilterCommon
	case "none", "":
		filter = skrafl.FilterNone
	default:
		return &skrafl.BadArgsError{Msg: "unknown filter: " + *filterName}
	}

	alphabet, err := alphabetForLocale(*localeName)
	if err != nil {
		return err
	}

	sources := make([]io.Reader, 0, len(inputs))
	for _, path := range inputs {
		f, err := os.Open(path)
		if err != nil {
			return skrafl.NewError(skrafl.IoError, err)
		}
		defer f.Close()
		sources = append(sources, f)
	}

	var removal io.Reader
	if *removePath != "" {
		f, err := os.Open(*removePath)
		if err != nil {
			return skrafl.NewError(skrafl.IoError, err)
		}
		defer f.Close()
		removal = f
	}

	builder := skrafl.NewDawgBuilder(alphabet)
	builder.Logger = log.Default()
	if err := builder.MergeAndBuild(sources, removal, filter); err != nil {
		return err
	}

	outPath := outputBase + ".text.dawg"
	out, err := os.Create(outPath)
	if err != nil {
		return skrafl.NewError(skrafl.IoError, err)
	}
	defer out.Close()
	if err := builder.WriteText(out); err != nil {
		return err
	}
	nodes, edges := builder.Stats()
	log.Printf("Wrote %s: %d words, %d duplicates, %d nodes, %d edges",
		outPath, builder.WordCount, builder.DupCount, nodes, edges)
	return nil
}

// runTest plays a self-play game between two high-score robots for
// regression purposes. Tiles are drawn from the bag at random and the
// generator is not seeded, so the game differs from run to run.
func runTest(args []string) error {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	localeName := fs.String("locale", "ice", "locale to test: ice, twl06, sowpods, polish, norwegian")
	if err := fs.Parse(args); err != nil {
		return &skrafl.BadArgsError{Msg: err.Error()}
	}

	game, err := skrafl.NewGameForLocale(*localeName, "standard")
	if err != nil {
		return err
	}
	game.SetPlayerNames("Robot A", "Robot B")

	robotA := skrafl.NewHighScoreRobot()
	robotB := skrafl.NewHighScoreRobot()

	ctx := context.Background()
	fmt.Print(game)
	for i := 0; ; i++ {
		state := game.State()
		var move skrafl.Move
		if i%2 == 0 {
			move, err = robotA.GenerateMove(ctx, state)
		} else {
			move, err = robotB.GenerateMove(ctx, state)
		}
		if err != nil {
			return err
		}
		if move == nil {
			break
		}
		game.ApplyValid(move)
		fmt.Print(game)
		if game.IsOver() {
			fmt.Println("Game over!")
			break
		}
	}
	fmt.Printf("Final score: %s %d : %d %s\n",
		game.PlayerNames[0], game.Scores[0], game.Scores[1], game.PlayerNames[1])
	return nil
}

// runRiddle generates a single practice riddle and prints it as JSON.
func runRiddle(args []string) error {
	fs := flag.NewFlagSet("riddle", flag.ContinueOnError)
	locale := fs.String("locale", "ice", "locale to generate a riddle for")
	workers := fs.Int("workers", 4, "number of concurrent candidate-generation workers")
	candidates := fs.Int("candidates", 200, "number of candidates to evaluate before picking the best")
	timeout := fs.Duration("timeout", 20*time.Second, "time budget for riddle generation")
	if err := fs.Parse(args); err != nil {
		return &skrafl.BadArgsError{Msg: err.Error()}
	}

	heuristics := skrafl.DefaultHeuristics
	if *locale == "ice" {
		h, err := skrafl.IcelandicHeuristics()
		if err != nil {
			return err
		}
		heuristics = h
	}

	params := skrafl.GenerationParams{
		Locale:        *locale,
		BoardType:     "standard",
		TimeLimit:     *timeout,
		NumWorkers:    *workers,
		NumCandidates: *candidates,
	}
	riddle, stats, err := skrafl.GenerateRiddle(params, heuristics)
	if err != nil {
		return err
	}
	log.Printf("generated riddle from %d candidates (rejections: %+v)", stats.Candidates, *stats)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(riddle)
}
