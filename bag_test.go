// bag_test.go
// Copyright (C) 2025 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

func TestMakeBagCopiesTileSet(t *testing.T) {
	bag := makeBag(EnglishTileSet)
	if bag.TileCount() != EnglishTileSet.Size {
		t.Errorf("TileCount() = %d, want %d", bag.TileCount(), EnglishTileSet.Size)
	}
	if len(bag.Tiles) != len(EnglishTileSet.Tiles) {
		t.Fatalf("len(bag.Tiles) = %d, want %d", len(bag.Tiles), len(EnglishTileSet.Tiles))
	}
	// The bag must hold its own copy of the tiles, not share storage
	// with the prototype tile set.
	bag.Tiles[0].Score = -1
	if EnglishTileSet.Tiles[0].Score == -1 {
		t.Errorf("mutating a bag tile mutated the prototype tile set")
	}
}

func TestBagDrawTileShrinksContents(t *testing.T) {
	bag := makeBag(EnglishTileSet)
	initial := bag.TileCount()
	tile := bag.DrawTile()
	if tile == nil {
		t.Fatalf("DrawTile() = nil, want a tile")
	}
	if bag.TileCount() != initial-1 {
		t.Errorf("TileCount() = %d, want %d", bag.TileCount(), initial-1)
	}
	for _, c := range bag.Contents {
		if c == tile {
			t.Errorf("drawn tile is still present in bag.Contents")
		}
	}
}

func TestBagDrawTileEmptyReturnsNil(t *testing.T) {
	bag := &Bag{}
	if tile := bag.DrawTile(); tile != nil {
		t.Errorf("DrawTile() on an empty bag = %v, want nil", tile)
	}
}

func TestBagDrawTileByLetter(t *testing.T) {
	bag := makeBag(EnglishTileSet)
	tile := bag.DrawTileByLetter('q')
	if tile == nil || tile.Letter != 'q' {
		t.Fatalf("DrawTileByLetter('q') = %v, want a 'q' tile", tile)
	}
	// EnglishTileSet has exactly one 'q'; drawing it again must fail.
	if again := bag.DrawTileByLetter('q'); again != nil {
		t.Errorf("DrawTileByLetter('q') after exhausting the letter = %v, want nil", again)
	}
}

func TestBagReturnTile(t *testing.T) {
	bag := makeBag(EnglishTileSet)
	initial := bag.TileCount()
	tile := bag.DrawTile()
	bag.ReturnTile(tile)
	if bag.TileCount() != initial {
		t.Errorf("TileCount() after ReturnTile = %d, want %d", bag.TileCount(), initial)
	}
}

func TestBagExchangeAllowed(t *testing.T) {
	bag := makeBag(EnglishTileSet)
	if !bag.ExchangeAllowed() {
		t.Errorf("ExchangeAllowed() = false on a full bag, want true")
	}
	for bag.TileCount() >= RackSize {
		bag.DrawTile()
	}
	if bag.ExchangeAllowed() {
		t.Errorf("ExchangeAllowed() = true with fewer than %d tiles left, want false", RackSize)
	}
}

func TestBagStringNilAndEmpty(t *testing.T) {
	var nilBag *Bag
	if got := nilBag.String(); got != "" {
		t.Errorf("(*Bag)(nil).String() = %q, want empty string", got)
	}
	empty := &Bag{}
	if got := empty.String(); got != "Empty" {
		t.Errorf("empty Bag.String() = %q, want %q", got, "Empty")
	}
}
