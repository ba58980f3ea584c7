package shanten

import (
	"testing"
	"time"

	"github.com/sullenb/agari/internal/cache"
	"github.com/sullenb/agari/tile"
)

func counts(tiles ...tile.Tile) tile.Counts {
	return tile.NewMultiset(tiles).ToCounts()
}

func TestCalculateCompleteHandIsMinusOne(t *testing.T) {
	hand := counts(
		tile.Suited(tile.Man, 1), tile.Suited(tile.Man, 2), tile.Suited(tile.Man, 3),
		tile.Suited(tile.Pin, 4), tile.Suited(tile.Pin, 5), tile.Suited(tile.Pin, 6),
		tile.Suited(tile.Sou, 7), tile.Suited(tile.Sou, 8), tile.Suited(tile.Sou, 9),
		tile.FromHonor(tile.White), tile.FromHonor(tile.White), tile.FromHonor(tile.White),
		tile.Suited(tile.Man, 9), tile.Suited(tile.Man, 9),
	)
	r := Calculate(hand, 0)
	if r.Shanten != -1 {
		t.Errorf("Shanten = %d, want -1 for a complete hand", r.Shanten)
	}
}

func TestCalculateTenpai(t *testing.T) {
	// One tile short of the hand above: missing the 9s.
	hand := counts(
		tile.Suited(tile.Man, 1), tile.Suited(tile.Man, 2), tile.Suited(tile.Man, 3),
		tile.Suited(tile.Pin, 4), tile.Suited(tile.Pin, 5), tile.Suited(tile.Pin, 6),
		tile.Suited(tile.Sou, 7), tile.Suited(tile.Sou, 8),
		tile.FromHonor(tile.White), tile.FromHonor(tile.White), tile.FromHonor(tile.White),
		tile.Suited(tile.Man, 9), tile.Suited(tile.Man, 9),
	)
	r := Calculate(hand, 0)
	if r.Shanten != 0 {
		t.Errorf("Shanten = %d, want 0 (tenpai)", r.Shanten)
	}
}

func TestChiitoitsuShanten(t *testing.T) {
	hand := counts(
		tile.Suited(tile.Man, 1), tile.Suited(tile.Man, 1),
		tile.Suited(tile.Man, 2), tile.Suited(tile.Man, 2),
		tile.Suited(tile.Man, 3), tile.Suited(tile.Man, 3),
		tile.Suited(tile.Pin, 4), tile.Suited(tile.Pin, 4),
		tile.Suited(tile.Pin, 5), tile.Suited(tile.Pin, 5),
		tile.Suited(tile.Sou, 6), tile.Suited(tile.Sou, 6),
		tile.FromHonor(tile.East),
	)
	r := Calculate(hand, 0)
	if r.Shanten != 0 || r.Shape != SevenPairs {
		t.Errorf("Calculate = %+v, want shanten 0 shape SevenPairs", r)
	}
}

func TestKokushiShanten(t *testing.T) {
	tiles := append([]tile.Tile{}, tile.KokushiTiles[:12]...)
	hand := counts(tiles...)
	r := Calculate(hand, 0)
	if r.Shape != ThirteenOrphans {
		t.Errorf("expected ThirteenOrphans shape to win out, got %v shanten %d", r.Shape, r.Shanten)
	}
}

func TestCalledMeldsExcludeSpecialShapes(t *testing.T) {
	hand := counts(tile.KokushiTiles[:13]...)
	r := Calculate(hand, 1)
	if r.Shape == ThirteenOrphans {
		t.Error("ThirteenOrphans should not be considered once a meld has been called")
	}
}

func TestTileDeficitCapsShantenWithFewTiles(t *testing.T) {
	hand := counts(tile.Suited(tile.Man, 1), tile.Suited(tile.Man, 2))
	r := Calculate(hand, 1)
	// 1 called meld needs 13-3=10 hand tiles at tenpai; only 2 are held.
	if r.Shanten < 7 {
		t.Errorf("Shanten = %d, want a large deficit-driven value", r.Shanten)
	}
}

func TestUkeireOnTenpaiHand(t *testing.T) {
	hand := counts(
		tile.Suited(tile.Man, 1), tile.Suited(tile.Man, 2), tile.Suited(tile.Man, 3),
		tile.Suited(tile.Pin, 4), tile.Suited(tile.Pin, 5), tile.Suited(tile.Pin, 6),
		tile.Suited(tile.Sou, 7), tile.Suited(tile.Sou, 8),
		tile.FromHonor(tile.White), tile.FromHonor(tile.White), tile.FromHonor(tile.White),
		tile.Suited(tile.Man, 9), tile.Suited(tile.Man, 9),
	)
	r := Ukeire(hand, 0)
	found := false
	for _, ut := range r.Tiles {
		if ut.Tile == tile.Suited(tile.Sou, 9) {
			found = true
			if ut.Available != 4 {
				t.Errorf("available for 9s = %d, want 4", ut.Available)
			}
		}
	}
	if !found {
		t.Error("expected 9s to be in the ukeire set (completes 789s)")
	}
}

func TestCacheDisabledMatchesNoCache(t *testing.T) {
	hand := counts(tile.Suited(tile.Man, 1), tile.Suited(tile.Man, 2), tile.Suited(tile.Man, 3))
	miss := CalculateCached(hand, 0, nil)
	hit := CalculateCached(hand, 0, nil)
	if miss != hit {
		t.Errorf("cache-disabled result %+v differs across calls: %+v", miss, hit)
	}
}

func TestCacheHitMatchesMiss(t *testing.T) {
	c, err := cache.New()
	if err != nil {
		t.Fatalf("cache.New: %v", err)
	}
	defer c.Close()

	hand := counts(
		tile.Suited(tile.Man, 1), tile.Suited(tile.Man, 2), tile.Suited(tile.Man, 3),
		tile.Suited(tile.Pin, 4), tile.Suited(tile.Pin, 5), tile.Suited(tile.Pin, 6),
		tile.Suited(tile.Sou, 7), tile.Suited(tile.Sou, 8),
		tile.FromHonor(tile.White), tile.FromHonor(tile.White), tile.FromHonor(tile.White),
		tile.Suited(tile.Man, 9), tile.Suited(tile.Man, 9),
	)

	miss := CalculateCached(hand, 0, c)
	time.Sleep(10 * time.Millisecond) // ristretto applies Set asynchronously
	hit := CalculateCached(hand, 0, c)
	if miss != hit {
		t.Errorf("cache hit %+v differs from the original miss %+v", hit, miss)
	}
	if miss.Shanten != 0 {
		t.Errorf("Shanten = %d, want 0 (tenpai)", miss.Shanten)
	}
}
