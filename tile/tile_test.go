package tile

import "testing"

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < 34; i++ {
		tile := FromIndex(i)
		if tile.Index() != i {
			t.Errorf("FromIndex(%d).Index() = %d, want %d", i, tile.Index(), i)
		}
	}
}

func TestSuitedPredicates(t *testing.T) {
	cases := []struct {
		tile                           Tile
		simple, terminal, terminalOrHonor bool
	}{
		{Suited(Man, 1), false, true, true},
		{Suited(Man, 5), true, false, false},
		{Suited(Sou, 9), false, true, true},
		{FromHonor(East), false, false, true},
	}
	for _, c := range cases {
		if got := c.tile.IsSimple(); got != c.simple {
			t.Errorf("%v.IsSimple() = %v, want %v", c.tile, got, c.simple)
		}
		if got := c.tile.IsTerminal(); got != c.terminal {
			t.Errorf("%v.IsTerminal() = %v, want %v", c.tile, got, c.terminal)
		}
		if got := c.tile.IsTerminalOrHonor(); got != c.terminalOrHonor {
			t.Errorf("%v.IsTerminalOrHonor() = %v, want %v", c.tile, got, c.terminalOrHonor)
		}
	}
}

func TestDoraNext(t *testing.T) {
	cases := []struct{ indicator, want Tile }{
		{Suited(Man, 9), Suited(Man, 1)},
		{Suited(Pin, 3), Suited(Pin, 4)},
		{FromHonor(North), FromHonor(East)},
		{FromHonor(Red), FromHonor(White)},
	}
	for _, c := range cases {
		if got := c.indicator.DoraNext(); got != c.want {
			t.Errorf("%v.DoraNext() = %v, want %v", c.indicator, got, c.want)
		}
	}
}

func TestIsGreen(t *testing.T) {
	green := []Tile{Suited(Sou, 2), Suited(Sou, 3), Suited(Sou, 4), Suited(Sou, 6), Suited(Sou, 8), FromHonor(Green)}
	for _, tl := range green {
		if !tl.IsGreen() {
			t.Errorf("%v.IsGreen() = false, want true", tl)
		}
	}
	notGreen := []Tile{Suited(Sou, 1), Suited(Sou, 5), Suited(Sou, 9), Suited(Pin, 2), FromHonor(White)}
	for _, tl := range notGreen {
		if tl.IsGreen() {
			t.Errorf("%v.IsGreen() = true, want false", tl)
		}
	}
}

func TestLessOrdersBySuitThenHonor(t *testing.T) {
	if !Suited(Man, 9).Less(Suited(Pin, 1)) {
		t.Error("9m should sort before 1p")
	}
	if !Suited(Sou, 9).Less(FromHonor(East)) {
		t.Error("9s should sort before East")
	}
	if !FromHonor(East).Less(FromHonor(White)) {
		t.Error("East should sort before White")
	}
}

func TestMultisetAddRemoveImmutable(t *testing.T) {
	m := NewMultiset([]Tile{Suited(Man, 1), Suited(Man, 1)})
	added := m.Add(Suited(Man, 2))
	if m.Count(Suited(Man, 2)) != 0 {
		t.Error("Add mutated the receiver")
	}
	if added.Count(Suited(Man, 2)) != 1 {
		t.Error("Add did not add to the returned multiset")
	}

	removed := added.Remove(Suited(Man, 1))
	if added.Count(Suited(Man, 1)) != 2 {
		t.Error("Remove mutated the receiver")
	}
	if removed.Count(Suited(Man, 1)) != 1 {
		t.Errorf("Remove left count %d, want 1", removed.Count(Suited(Man, 1)))
	}
}

func TestCountsRoundTrip(t *testing.T) {
	tiles := []Tile{Suited(Man, 1), Suited(Man, 1), FromHonor(White), Suited(Sou, 9)}
	m := NewMultiset(tiles)
	back := m.ToCounts().ToMultiset()
	if back.Total() != m.Total() {
		t.Errorf("round trip total = %d, want %d", back.Total(), m.Total())
	}
	for t2, n := range m {
		if back.Count(t2) != n {
			t.Errorf("round trip count for %v = %d, want %d", t2, back.Count(t2), n)
		}
	}
}
