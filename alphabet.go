// alphabet.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Alphabet type: sort order, scores,
// bag composition and bitmask encoding of letters.

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

import "sort"

// Wildcard is the blank tile token
const Wildcard = '?'

// IcelandicAlphabet is the default 32-letter collation order
const IcelandicAlphabet = "aábdðeéfghiíjklmnoóprstuúvxyýþæö"

// EnglishAlphabet is the 26-letter collation order for TWL06/SOWPODS play
const EnglishAlphabet = "abcdefghijklmnopqrstuvwxyz"

// IcelandicScores maps each Icelandic letter (and the wildcard) to its
// Scrabble tile score
var IcelandicScores = map[rune]int{
	'a': 1, 'á': 4, 'b': 6, 'd': 4, 'ð': 2, 'e': 1, 'é': 6, 'f': 3,
	'g': 2, 'h': 3, 'i': 1, 'í': 4, 'j': 5, 'k': 2, 'l': 2, 'm': 2,
	'n': 1, 'o': 3, 'ó': 6, 'p': 8, 'r': 1, 's': 1, 't': 1, 'u': 1,
	'ú': 8, 'v': 3, 'x': 10, 'y': 7, 'ý': 9, 'þ': 4, 'æ': 5, 'ö': 7,
	Wildcard: 0,
}

// IcelandicBag maps each Icelandic letter (and the wildcard) to the
// number of tiles of that letter in a full bag
var IcelandicBag = map[rune]int{
	'a': 10, 'á': 2, 'b': 1, 'd': 2, 'ð': 5, 'e': 3, 'é': 1, 'f': 3,
	'g': 4, 'h': 2, 'i': 8, 'í': 2, 'j': 1, 'k': 3, 'l': 3, 'm': 3,
	'n': 8, 'o': 3, 'ó': 2, 'p': 1, 'r': 8, 's': 7, 't': 6, 'u': 6,
	'ú': 1, 'v': 2, 'x': 1, 'y': 1, 'ý': 1, 'þ': 1, 'æ': 2, 'ö': 1,
	Wildcard: 2,
}

// Alphabet encapsulates the sort order, tile scores and bag
// composition for a single language.
type Alphabet struct {
	order  []rune
	index  map[rune]int
	scores map[rune]int
	bag    map[rune]int
}

// NewAlphabet constructs an Alphabet from a collation order string,
// a score table and a bag composition table.
func NewAlphabet(order string, scores, bag map[rune]int) *Alphabet {
	a := &Alphabet{
		order:  []rune(order),
		index:  make(map[rune]int),
		scores: scores,
		bag:    bag,
	}
	for i, r := range a.order {
		a.index[r] = i
	}
	return a
}

// NewIcelandicAlphabet constructs the default 32-letter alphabet
func NewIcelandicAlphabet() *Alphabet {
	return NewAlphabet(IcelandicAlphabet, IcelandicScores, IcelandicBag)
}

// EnglishScores maps each English letter (and the wildcard) to its
// standard Scrabble tile score
var EnglishScores = map[rune]int{
	'a': 1, 'b': 3, 'c': 3, 'd': 2, 'e': 1,
	'f': 4, 'g': 2, 'h': 4, 'i': 1, 'j': 8,
	'k': 5, 'l': 1, 'm': 3, 'n': 1, 'o': 1,
	'p': 3, 'q': 10, 'r': 1, 's': 1, 't': 1,
	'u': 1, 'v': 4, 'w': 4, 'x': 8, 'y': 4,
	'z': 10, Wildcard: 0,
}

// EnglishBag maps each English letter (and the wildcard) to the
// number of tiles of that letter in a full bag
var EnglishBag = map[rune]int{
	'a': 9, 'b': 2, 'c': 2, 'd': 4, 'e': 12,
	'f': 2, 'g': 3, 'h': 2, 'i': 9, 'j': 1,
	'k': 1, 'l': 4, 'm': 2, 'n': 6, 'o': 8,
	'p': 2, 'q': 1, 'r': 6, 's': 4, 't': 6,
	'u': 4, 'v': 2, 'w': 2, 'x': 1, 'y': 2,
	'z': 1, Wildcard: 2,
}

// NewEnglishAlphabet constructs the 26-letter alphabet used for
// TWL06/SOWPODS play
func NewEnglishAlphabet() *Alphabet {
	return NewAlphabet(EnglishAlphabet, EnglishScores, EnglishBag)
}

// PolishAlphabet is the collation order for OSPS play
const PolishAlphabet = "aąbcćdeęfghijklłmnńoóprsśtuwyzźż"

// NorwegianAlphabet is the collation order for Bokmål play
const NorwegianAlphabet = "aäbcdefghijklmnoöpqrstuüvwxyzæøå"

// polishScores and polishBag mirror PolishTileSet's tables, so that a
// Polish game's DAWG navigation bitmasks agree with its tile scoring.
var polishScores = map[rune]int{
	'a': 1, 'ą': 5, 'b': 3, 'c': 2, 'ć': 6,
	'd': 2, 'e': 1, 'ę': 5, 'f': 5, 'g': 3,
	'h': 3, 'i': 1, 'j': 3, 'k': 3, 'l': 2,
	'ł': 3, 'm': 2, 'n': 1, 'ń': 7, 'o': 1,
	'ó': 5, 'p': 2, 'r': 1, 's': 1, 'ś': 5,
	't': 2, 'u': 3, 'w': 1, 'y': 2, 'z': 1,
	'ź': 9, 'ż': 5, Wildcard: 0,
}

var polishBag = map[rune]int{
	'a': 9, 'ą': 1, 'b': 2, 'c': 3, 'ć': 1,
	'd': 3, 'e': 7, 'ę': 1, 'f': 1, 'g': 2,
	'h': 2, 'i': 8, 'j': 2, 'k': 3, 'l': 3,
	'ł': 2, 'm': 3, 'n': 5, 'ń': 1, 'o': 6,
	'ó': 1, 'p': 3, 'r': 4, 's': 4, 'ś': 1,
	't': 3, 'u': 2, 'w': 4, 'y': 4, 'z': 5,
	'ź': 1, 'ż': 1, Wildcard: 2,
}

// NewPolishAlphabet constructs the 32-letter alphabet used for OSPS play
func NewPolishAlphabet() *Alphabet {
	return NewAlphabet(PolishAlphabet, polishScores, polishBag)
}

// norwegianScores and norwegianBag mirror NorwegianTileSet's tables.
var norwegianScores = map[rune]int{
	'a': 1, 'b': 3, 'c': 8, 'd': 2, 'e': 1,
	'f': 4, 'g': 2, 'h': 3, 'i': 1, 'j': 5,
	'k': 2, 'l': 1, 'm': 2, 'n': 1, 'o': 2,
	'p': 3, 'r': 1, 's': 1, 't': 1, 'u': 3,
	'v': 3, 'w': 10, 'y': 3, 'æ': 6, 'ø': 4,
	'å': 3, Wildcard: 0,
}

var norwegianBag = map[rune]int{
	'a': 11, 'b': 3, 'c': 1, 'd': 4, 'e': 12,
	'f': 2, 'g': 3, 'h': 3, 'i': 5, 'j': 2,
	'k': 4, 'l': 5, 'm': 2, 'n': 5, 'o': 4,
	'p': 2, 'r': 6, 's': 4, 't': 5, 'u': 4,
	'v': 3, 'w': 1, 'y': 2, 'æ': 1, 'ø': 2,
	'å': 2, Wildcard: 2,
}

// NewNorwegianAlphabet constructs the alphabet used for Bokmål play.
// Note this alphabet's collation order includes 'ä', 'ö', 'q', 'ü', 'x'
// and 'z', which are absent from the scoring and bag tables above: they
// score zero and have no tiles in the bag, matching the teacher's own
// NorwegianTileSet, which likewise omits them.
func NewNorwegianAlphabet() *Alphabet {
	return NewAlphabet(NorwegianAlphabet, norwegianScores, norwegianBag)
}

// Length returns the number of letters in the alphabet (not counting
// the wildcard)
func (a *Alphabet) Length() int {
	return len(a.order)
}

// Order returns the collation order as a rune slice
func (a *Alphabet) Order() []rune {
	return a.order
}

// Score returns the tile score for a letter; 0 for the wildcard or an
// unknown rune
func (a *Alphabet) Score(letter rune) int {
	return a.scores[letter]
}

// FullBag returns a fresh copy of the full bag composition
func (a *Alphabet) FullBag() map[rune]int {
	out := make(map[rune]int, len(a.bag))
	for r, n := range a.bag {
		out[r] = n
	}
	return out
}

// Subtract returns the multiset difference a-b, clamped at zero
func Subtract(a, b map[rune]int) map[rune]int {
	out := make(map[rune]int, len(a))
	for r, n := range a {
		d := n - b[r]
		if d > 0 {
			out[r] = d
		}
	}
	return out
}

// indexOf returns the collation index of r, or -1 if r is not in the
// alphabet
func (a *Alphabet) indexOf(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// BitOf returns the single-bit bitmask for a letter, or 0 if the
// letter is not part of the alphabet
func (a *Alphabet) BitOf(letter rune) uint {
	i := a.indexOf(letter)
	if i < 0 {
		return 0
	}
	return 1 << uint(i)
}

// AllBitsSet returns a bitmask with every alphabet letter's bit set
func (a *Alphabet) AllBitsSet() uint {
	return (uint(1) << uint(a.Length())) - 1
}

// MakeSet returns a bitmask with the bits of every letter in runes
// set. If runes contains the wildcard, every bit is set, since a
// blank can stand in for any letter.
func (a *Alphabet) MakeSet(runes []rune) uint {
	var set uint
	for _, r := range runes {
		if r == Wildcard {
			return a.AllBitsSet()
		}
		set |= a.BitOf(r)
	}
	return set
}

// BitPattern is a synonym for MakeSet, named to mirror the
// bit_pattern(word) operation named in the component design.
func (a *Alphabet) BitPattern(word []rune) uint {
	return a.MakeSet(word)
}

// Member returns true if letter's bit is set in set
func (a *Alphabet) Member(letter rune, set uint) bool {
	bit := a.BitOf(letter)
	return bit != 0 && set&bit != 0
}

// Less reports whether x sorts before y under the alphabet's
// collation order. Runes absent from the alphabet (e.g. '|', used
// internally by the DAWG builder) sort after every alphabet letter,
// in code point order among themselves.
func (a *Alphabet) Less(x, y rune) bool {
	ix, iy := a.indexOf(x), a.indexOf(y)
	if ix >= 0 && iy >= 0 {
		return ix < iy
	}
	if ix >= 0 {
		return true
	}
	if iy >= 0 {
		return false
	}
	return x < y
}

// SortKey returns a comparable sort key for a word under this
// alphabet's collation
func (a *Alphabet) SortKey(word string) []int {
	runes := []rune(word)
	key := make([]int, len(runes))
	for i, r := range runes {
		if idx := a.indexOf(r); idx >= 0 {
			key[i] = idx
		} else {
			// Unknown runes sort after all known letters
			key[i] = a.Length() + int(r)
		}
	}
	return key
}

// CompareKeys compares two sort keys lexicographically
func CompareKeys(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// SortWords sorts a slice of words in place under this alphabet's
// collation order
func (a *Alphabet) SortWords(words []string) {
	sort.Slice(words, func(i, j int) bool {
		return CompareKeys(a.SortKey(words[i]), a.SortKey(words[j])) < 0
	})
}
