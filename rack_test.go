// rack_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

func TestRackFillByLetters(t *testing.T) {
	bag := makeBag(EnglishTileSet)
	rack := &Rack{}
	rack.Init()
	if !rack.FillByLetters(bag, []rune("cat")) {
		t.Fatalf("FillByLetters(\"cat\") = false, want true")
	}
	if got := rack.AsString(); got != "cat" {
		t.Errorf("AsString() = %q, want %q", got, "cat")
	}
}

func TestRackFillByLettersMissingLetterFails(t *testing.T) {
	bag := &Bag{} // empty bag, no tile can be found
	rack := &Rack{}
	rack.Init()
	if rack.FillByLetters(bag, []rune("z")) {
		t.Errorf("FillByLetters on an empty bag returned true, want false")
	}
}

func TestRackFillFromString(t *testing.T) {
	bag := makeBag(EnglishTileSet)
	rack := &Rack{}
	rack.Init()
	if !rack.FillFromString(bag, "dog") {
		t.Fatalf("FillFromString(\"dog\") = false, want true")
	}
	if got := rack.AsString(); got != "dog" {
		t.Errorf("AsString() = %q, want %q", got, "dog")
	}
}

func TestRackAsSet(t *testing.T) {
	alphabet := NewEnglishAlphabet()
	rack := NewRack([]rune("cat"), EnglishTileSet)
	set := rack.AsSet(alphabet)
	if !alphabet.Member('c', set) || !alphabet.Member('a', set) || !alphabet.Member('t', set) {
		t.Errorf("AsSet does not allow all of the rack's own letters")
	}
	if alphabet.Member('z', set) {
		t.Errorf("AsSet allows 'z', which is not in the rack")
	}
}

func TestRackAsSetWithBlankAllowsEverything(t *testing.T) {
	alphabet := NewEnglishAlphabet()
	rack := NewRack([]rune("?"), EnglishTileSet)
	set := rack.AsSet(alphabet)
	if !alphabet.Member('z', set) {
		t.Errorf("a rack holding a blank tile should allow every letter, including 'z'")
	}
}

func TestRackHasTileAndRemoveTile(t *testing.T) {
	rack := NewRack([]rune("cat"), EnglishTileSet)
	tile := rack.FindTile('a')
	if tile == nil {
		t.Fatalf("FindTile('a') = nil, want a tile")
	}
	if !rack.HasTile(tile) {
		t.Fatalf("HasTile(tile) = false, want true")
	}
	if !rack.RemoveTile(tile) {
		t.Fatalf("RemoveTile(tile) = false, want true")
	}
	if rack.HasTile(tile) {
		t.Errorf("HasTile(tile) = true after removal, want false")
	}
	if rack.RemoveTile(tile) {
		t.Errorf("RemoveTile(tile) a second time = true, want false")
	}
}

func TestRackHasTileRejectsForeignTile(t *testing.T) {
	rack := NewRack([]rune("cat"), EnglishTileSet)
	foreign := &Tile{Letter: 'a', Meaning: 'a', Score: EnglishTileSet.Scores['a']}
	if rack.HasTile(foreign) {
		t.Errorf("HasTile matched a tile by letter rather than identity")
	}
}

func TestRackReturnToBag(t *testing.T) {
	bag := makeBag(EnglishTileSet)
	// Draw exactly the tiles the test rack will hold, so the bag's
	// count reflects the rack's contents leaving and returning.
	rack := &Rack{}
	rack.Init()
	rack.FillFromString(bag, "cat")
	beforeReturn := bag.TileCount()
	rack.ReturnToBag(bag)
	if bag.TileCount() != beforeReturn+3 {
		t.Errorf("TileCount() after ReturnToBag = %d, want %d", bag.TileCount(), beforeReturn+3)
	}
	if !rack.IsEmpty() {
		t.Errorf("rack is not empty after ReturnToBag")
	}
}

func TestRackExtractAssignsBlankMeaning(t *testing.T) {
	rack := NewRack([]rune("a?t"), EnglishTileSet)
	extracted := rack.Extract(3, 'e')
	if len(extracted) != 3 {
		t.Fatalf("len(Extract(3, 'e')) = %d, want 3", len(extracted))
	}
	found := false
	for _, tile := range extracted {
		if tile.Letter == '?' {
			found = true
			if tile.Meaning != 'e' {
				t.Errorf("blank tile Meaning = %q, want 'e'", tile.Meaning)
			}
		}
	}
	if !found {
		t.Errorf("Extract did not include the blank tile")
	}
}

func TestRackIsEmptyOnNilRack(t *testing.T) {
	var rack *Rack
	if !rack.IsEmpty() {
		t.Errorf("(*Rack)(nil).IsEmpty() = false, want true")
	}
}
