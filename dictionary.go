// dictionary.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements load-once dictionary handles per locale,
// replacing the teacher's go:embed'd, panic-on-error binary DAWGs
// with sync.Once-guarded loads of the text DAWG format that error
// out to the caller instead.

package skrafl

import (
	"os"
	"path/filepath"
	"sync"
)

// dictHandle lazily loads and caches a single Dawg, guaranteeing the
// underlying file is read at most once no matter how many games
// request it concurrently.
type dictHandle struct {
	once sync.Once
	dawg *Dawg
	err  error
}

func (h *dictHandle) get(path string, alphabet *Alphabet) (*Dawg, error) {
	h.once.Do(func() {
		f, err := os.Open(path)
		if err != nil {
			h.err = NewError(IoError, err)
			return
		}
		defer f.Close()
		h.dawg, h.err = LoadDawgText(alphabet, f)
	})
	return h.dawg, h.err
}

var (
	icelandicDict       dictHandle
	twl06Dict           dictHandle
	sowpodsDict         dictHandle
	icelandicCommonDict dictHandle
	polishDict          dictHandle
	norwegianDict       dictHandle
)

// dictDir returns the directory dictionaries are loaded from: the
// SKRAFL_DICT_DIR environment variable if set, otherwise "dicts",
// mirroring the relative location of the teacher's embedded dicts/
// directory.
func dictDir() string {
	if dir := os.Getenv("SKRAFL_DICT_DIR"); dir != "" {
		return dir
	}
	return "dicts"
}

func dictPath(fileName string) string {
	return filepath.Join(dictDir(), fileName)
}

// IcelandicDictionary returns the canonical Icelandic dictionary,
// loading it from disk on first use.
func IcelandicDictionary() (*Dawg, error) {
	return icelandicDict.get(dictPath("ordalisti.dawg.txt"), NewIcelandicAlphabet())
}

// Twl06Dictionary returns the TWL06 English dictionary, loading it
// from disk on first use.
func Twl06Dictionary() (*Dawg, error) {
	return twl06Dict.get(dictPath("twl06.dawg.txt"), NewEnglishAlphabet())
}

// SowpodsDictionary returns the SOWPODS English dictionary, loading
// it from disk on first use.
func SowpodsDictionary() (*Dawg, error) {
	return sowpodsDict.get(dictPath("sowpods.dawg.txt"), NewEnglishAlphabet())
}

// IcelandicCommonWordsDictionary returns a smaller Icelandic
// dictionary restricted to common words, used by the riddle generator
// to filter solutions down to words a casual player would recognize.
func IcelandicCommonWordsDictionary() (*Dawg, error) {
	return icelandicCommonDict.get(dictPath("ordalisti.common.dawg.txt"), NewIcelandicAlphabet())
}

// PolishDictionary returns the OSPS Polish dictionary, loading it
// from disk on first use.
func PolishDictionary() (*Dawg, error) {
	return polishDict.get(dictPath("osps37.dawg.txt"), NewPolishAlphabet())
}

// NorwegianDictionary returns the Bokmål Norwegian dictionary, loading
// it from disk on first use.
func NorwegianDictionary() (*Dawg, error) {
	return norwegianDict.get(dictPath("nsf2023.dawg.txt"), NewNorwegianAlphabet())
}

// NewGameForLocale instantiates a new Game for the given locale
// ("ice", "twl06", "sowpods", "polish" or "norwegian") and board type
// ("standard" or "explo"), loading the corresponding dictionary and
// tile set.
func NewGameForLocale(locale, boardType string) (*Game, error) {
	var dawg *Dawg
	var err error
	var tileSet *TileSet

	switch locale {
	case "ice", "icelandic":
		dawg, err = IcelandicDictionary()
		tileSet = NewTileSetFromAlphabet(NewIcelandicAlphabet())
	case "twl06":
		dawg, err = Twl06Dictionary()
		tileSet = EnglishTileSet
	case "sowpods":
		dawg, err = SowpodsDictionary()
		tileSet = EnglishTileSet
	case "pl", "polish":
		dawg, err = PolishDictionary()
		tileSet = PolishTileSet
	case "no", "nb", "norwegian":
		dawg, err = NorwegianDictionary()
		tileSet = NorwegianTileSet
	default:
		return nil, &BadArgsError{Msg: "unknown locale: " + locale}
	}
	if err != nil {
		return nil, err
	}

	game := &Game{}
	game.Init(tileSet, dawg, boardType)
	return game, nil
}
