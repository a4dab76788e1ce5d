// dictionary_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestDawgFile builds a tiny in-memory DAWG for the given words
// and writes its text serialization to fileName inside dir, mirroring
// the on-disk layout dictDir()/dictPath() expect.
func writeTestDawgFile(t *testing.T, dir, fileName string, alphabet *Alphabet, words []string) {
	t.Helper()
	sorted := append([]string(nil), words...)
	alphabet.SortWords(sorted)
	b := NewDawgBuilder(alphabet)
	for _, w := range sorted {
		if err := b.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q): %v", w, err)
		}
	}
	b.Finish()
	var sb strings.Builder
	if err := b.WriteText(&sb); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDictDirDefaultsToDicts(t *testing.T) {
	t.Setenv("SKRAFL_DICT_DIR", "")
	if got := dictDir(); got != "dicts" {
		t.Errorf("dictDir() = %q, want %q", got, "dicts")
	}
	if got := dictPath("foo.dawg.txt"); got != filepath.Join("dicts", "foo.dawg.txt") {
		t.Errorf("dictPath(%q) = %q", "foo.dawg.txt", got)
	}
}

func TestDictDirHonorsEnvOverride(t *testing.T) {
	t.Setenv("SKRAFL_DICT_DIR", "/tmp/some-dicts")
	if got := dictDir(); got != "/tmp/some-dicts" {
		t.Errorf("dictDir() = %q, want %q", got, "/tmp/some-dicts")
	}
}

func TestIcelandicDictionaryLoadsOnceAndCaches(t *testing.T) {
	dir := t.TempDir()
	writeTestDawgFile(t, dir, "ordalisti.dawg.txt", NewIcelandicAlphabet(), []string{"afi", "alda"})
	t.Setenv("SKRAFL_DICT_DIR", dir)

	dawg1, err := IcelandicDictionary()
	if err != nil {
		t.Fatalf("IcelandicDictionary: %v", err)
	}
	if !dawg1.Find("afi") {
		t.Errorf("Find(%q) = not found, want found", "afi")
	}
	dawg2, err := IcelandicDictionary()
	if err != nil {
		t.Fatalf("IcelandicDictionary (second call): %v", err)
	}
	if dawg1 != dawg2 {
		t.Errorf("IcelandicDictionary returned different *Dawg values across calls, want the cached one")
	}
}

// TestTwl06DictionaryMissingFileReturnsIoError points SKRAFL_DICT_DIR at
// a directory lacking twl06.dawg.txt and checks the load surfaces an
// IoError rather than panicking, as component I requires.
func TestTwl06DictionaryMissingFileReturnsIoError(t *testing.T) {
	t.Setenv("SKRAFL_DICT_DIR", t.TempDir())
	_, err := Twl06Dictionary()
	if err == nil {
		t.Fatalf("Twl06Dictionary: want an error, got nil")
	}
	skraflErr, ok := err.(*SkraflError)
	if !ok {
		t.Fatalf("Twl06Dictionary error is a %T, want *SkraflError", err)
	}
	if skraflErr.Kind != IoError {
		t.Errorf("error Kind = %v, want IoError", skraflErr.Kind)
	}
}

func TestNewGameForLocaleUnknown(t *testing.T) {
	_, err := NewGameForLocale("klingon", "standard")
	if err == nil {
		t.Fatalf("NewGameForLocale: want an error, got nil")
	}
	if _, ok := err.(*BadArgsError); !ok {
		t.Errorf("error is a %T, want *BadArgsError", err)
	}
}

func TestNewGameForLocalePolish(t *testing.T) {
	dir := t.TempDir()
	writeTestDawgFile(t, dir, "osps37.dawg.txt", NewPolishAlphabet(), []string{"kot", "pies"})
	t.Setenv("SKRAFL_DICT_DIR", dir)

	game, err := NewGameForLocale("pl", "standard")
	if err != nil {
		t.Fatalf("NewGameForLocale(pl): %v", err)
	}
	if game.TileSet != PolishTileSet {
		t.Errorf("game.TileSet = %p, want the PolishTileSet (%p)", game.TileSet, PolishTileSet)
	}
	if game.Dawg == nil {
		t.Fatalf("game.Dawg is nil")
	}
	if !game.Dawg.Find("kot") {
		t.Errorf("Find(%q) = not found, want found", "kot")
	}
}
