package meld

import (
	"testing"

	"github.com/sullenb/agari/tile"
)

func TestSequenceTiles(t *testing.T) {
	m := NewSequence(tile.Suited(tile.Man, 4), false)
	got := m.Tiles()
	want := []tile.Tile{tile.Suited(tile.Man, 4), tile.Suited(tile.Man, 5), tile.Suited(tile.Man, 6)}
	for i, tl := range want {
		if got[i] != tl {
			t.Errorf("Tiles()[%d] = %v, want %v", i, got[i], tl)
		}
	}
}

func TestTripletAndQuadTiles(t *testing.T) {
	triplet := NewTriplet(tile.FromHonor(tile.White), false)
	if len(triplet.Tiles()) != 3 {
		t.Errorf("triplet has %d tiles, want 3", len(triplet.Tiles()))
	}
	quad := NewQuad(tile.Suited(tile.Pin, 5), QuadClosed)
	if len(quad.Tiles()) != 4 {
		t.Errorf("quad has %d tiles, want 4", len(quad.Tiles()))
	}
}

func TestIsOpen(t *testing.T) {
	cases := []struct {
		name string
		m    Meld
		want bool
	}{
		{"closed triplet", NewTriplet(tile.Suited(tile.Man, 1), false), false},
		{"open triplet", NewTriplet(tile.Suited(tile.Man, 1), true), true},
		{"closed quad", NewQuad(tile.Suited(tile.Man, 1), QuadClosed), false},
		{"open quad", NewQuad(tile.Suited(tile.Man, 1), QuadOpen), true},
		{"triplet-promoted quad", NewQuad(tile.Suited(tile.Man, 1), QuadPromotedFromTriplet), true},
	}
	for _, c := range cases {
		if got := c.m.IsOpen(); got != c.want {
			t.Errorf("%s: IsOpen() = %v, want %v", c.name, got, c.want)
		}
		if got := c.m.IsConcealed(); got == c.want {
			t.Errorf("%s: IsConcealed() should be the negation of IsOpen()", c.name)
		}
	}
}

func TestContains(t *testing.T) {
	seq := NewSequence(tile.Suited(tile.Sou, 1), false)
	if !seq.Contains(tile.Suited(tile.Sou, 2)) {
		t.Error("sequence 1-2-3s should contain 2s")
	}
	if seq.Contains(tile.Suited(tile.Sou, 4)) {
		t.Error("sequence 1-2-3s should not contain 4s")
	}
}

func TestIsTripletOrQuad(t *testing.T) {
	if NewSequence(tile.Suited(tile.Man, 1), false).IsTripletOrQuad() {
		t.Error("sequence should not be IsTripletOrQuad")
	}
	if !NewTriplet(tile.Suited(tile.Man, 1), false).IsTripletOrQuad() {
		t.Error("triplet should be IsTripletOrQuad")
	}
	if !NewQuad(tile.Suited(tile.Man, 1), QuadClosed).IsTripletOrQuad() {
		t.Error("quad should be IsTripletOrQuad")
	}
}
