// navigators_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import (
	"sort"
	"strings"
	"testing"
)

// buildTestDawg constructs a small in-memory Dawg from a word list,
// without depending on any dictionary files on disk.
func buildTestDawg(t *testing.T, alphabet *Alphabet, words []string) *Dawg {
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
	dawg, err := LoadDawgText(alphabet, strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("LoadDawgText: %v", err)
	}
	return dawg
}

var testWords = []string{
	"cat", "cats", "car", "cars", "care", "cared",
	"bat", "bats", "bar", "bars", "bare", "bared",
	"at", "art", "are", "ate",
}

func TestDawgFind(t *testing.T) {
	dawg := buildTestDawg(t, NewEnglishAlphabet(), testWords)
	for _, w := range testWords {
		if !dawg.Find(w) {
			t.Errorf("Find(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"ca", "ba", "care2", "zebra", ""} {
		if dawg.Find(w) {
			t.Errorf("Find(%q) = true, want false", w)
		}
	}
}

func TestDawgMatch(t *testing.T) {
	dawg := buildTestDawg(t, NewEnglishAlphabet(), testWords)
	got := dawg.Match("c?t")
	sort.Strings(got)
	want := []string{"cat"}
	if !equalStrings(got, want) {
		t.Errorf("Match(\"c?t\") = %v, want %v", got, want)
	}

	got = dawg.Match("?a?")
	sort.Strings(got)
	want = []string{"bar", "bat", "car", "cat"}
	if !equalStrings(got, want) {
		t.Errorf("Match(\"?a?\") = %v, want %v", got, want)
	}
}

func TestDawgPermute(t *testing.T) {
	dawg := buildTestDawg(t, NewEnglishAlphabet(), testWords)
	got := dawg.Permute("tac", 3)
	sort.Strings(got)
	want := []string{"cat"}
	if !equalStrings(got, want) {
		t.Errorf("Permute(\"tac\", 3) = %v, want %v", got, want)
	}

	// A blank (wildcard) may stand in for any single letter.
	got = dawg.Permute("a?", 2)
	sort.Strings(got)
	want = []string{"at"}
	if !equalStrings(got, want) {
		t.Errorf("Permute(\"a?\", 2) = %v, want %v", got, want)
	}
}

func TestDawgCrossSet(t *testing.T) {
	dawg := buildTestDawg(t, NewEnglishAlphabet(), testWords)
	alphabet := dawg.Alphabet()

	// "ca_" followed by nothing: letters that complete "ca?" into a
	// dictionary word, i.e. 'r' (car) and 't' (cat).
	set := dawg.CrossSet([]rune("ca"), nil)
	if !alphabet.Member('r', set) {
		t.Errorf("CrossSet(\"ca\", \"\") should allow 'r' (car)")
	}
	if !alphabet.Member('t', set) {
		t.Errorf("CrossSet(\"ca\", \"\") should allow 't' (cat)")
	}
	if alphabet.Member('b', set) {
		t.Errorf("CrossSet(\"ca\", \"\") should not allow 'b' (no word \"cab\")")
	}

	// "_t" with right context "": letters before "t" forming "?t",
	// i.e. 'a' (at).
	set = dawg.CrossSet(nil, []rune("t"))
	if !alphabet.Member('a', set) {
		t.Errorf("CrossSet(\"\", \"t\") should allow 'a' (at)")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
