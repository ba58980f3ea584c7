package wait

import (
	"testing"

	"github.com/sullenb/agari/decomp"
	"github.com/sullenb/agari/gamectx"
	"github.com/sullenb/agari/meld"
	"github.com/sullenb/agari/tile"
)

func TestDetectRyanmenAndPenchan(t *testing.T) {
	d := decomp.Decomposition{
		Shape: decomp.Standard,
		Pair:  tile.FromHonor(tile.White),
		Melds: []meld.Meld{meld.NewSequence(tile.Suited(tile.Man, 3), false)},
	}
	// 3-4-5m, winning on 5m (high tile, not an edge) is ryanmen.
	types := Detect(d, tile.Suited(tile.Man, 5))
	if len(types) != 1 || types[0] != Ryanmen {
		t.Errorf("Detect = %v, want [Ryanmen]", types)
	}

	highEdge := decomp.Decomposition{
		Shape: decomp.Standard,
		Pair:  tile.FromHonor(tile.White),
		Melds: []meld.Meld{meld.NewSequence(tile.Suited(tile.Man, 7), false)},
	}
	types = Detect(highEdge, tile.Suited(tile.Man, 7))
	if len(types) != 1 || types[0] != Penchan {
		t.Errorf("Detect (789m won on 7m) = %v, want [Penchan]", types)
	}
}

func TestDetectKanchan(t *testing.T) {
	d := decomp.Decomposition{
		Shape: decomp.Standard,
		Pair:  tile.FromHonor(tile.White),
		Melds: []meld.Meld{meld.NewSequence(tile.Suited(tile.Pin, 3), false)},
	}
	types := Detect(d, tile.Suited(tile.Pin, 4))
	if len(types) != 1 || types[0] != Kanchan {
		t.Errorf("Detect (3-4-5p won on 4p) = %v, want [Kanchan]", types)
	}
}

func TestDetectTanki(t *testing.T) {
	d := decomp.Decomposition{
		Shape: decomp.Standard,
		Pair:  tile.Suited(tile.Man, 9),
		Melds: []meld.Meld{meld.NewTriplet(tile.FromHonor(tile.White), false)},
	}
	types := Detect(d, tile.Suited(tile.Man, 9))
	if len(types) != 1 || types[0] != Tanki {
		t.Errorf("Detect = %v, want [Tanki]", types)
	}
}

func TestDetectShanpon(t *testing.T) {
	d := decomp.Decomposition{
		Shape: decomp.Standard,
		Pair:  tile.FromHonor(tile.White),
		Melds: []meld.Meld{meld.NewTriplet(tile.Suited(tile.Man, 5), false)},
	}
	types := Detect(d, tile.Suited(tile.Man, 5))
	if len(types) != 1 || types[0] != Shanpon {
		t.Errorf("Detect = %v, want [Shanpon]", types)
	}
}

func TestBestPrefersRyanmenOverEqualFuOptions(t *testing.T) {
	best, ok := Best(decomp.Decomposition{
		Shape: decomp.Standard,
		Pair:  tile.FromHonor(tile.White),
		Melds: []meld.Meld{
			// 5m also completes this triplet (Shanpon, 0 fu like Ryanmen),
			// and Detect lists it first.
			meld.NewTriplet(tile.Suited(tile.Man, 5), false),
			meld.NewSequence(tile.Suited(tile.Man, 3), false),
		},
	}, tile.Suited(tile.Man, 5))
	if !ok || best != Ryanmen {
		t.Errorf("Best = %v, %v, want Ryanmen, true", best, ok)
	}
}

func TestIsPinfuRequiresRyanmenAndNonYakuhaiPair(t *testing.T) {
	d := decomp.Decomposition{
		Shape: decomp.Standard,
		Pair:  tile.Suited(tile.Pin, 2),
		Melds: []meld.Meld{
			meld.NewSequence(tile.Suited(tile.Man, 3), false),
			meld.NewSequence(tile.Suited(tile.Pin, 4), false),
			meld.NewSequence(tile.Suited(tile.Sou, 1), false),
			meld.NewSequence(tile.Suited(tile.Sou, 5), false),
		},
	}
	ctx := gamectx.New(gamectx.Ron, tile.East, tile.East)
	if !IsPinfu(d, tile.Suited(tile.Man, 5), ctx) {
		t.Error("expected pinfu: all sequences, ryanmen wait, simple pair")
	}

	yakuhaiPair := d
	yakuhaiPair.Pair = tile.FromHonor(tile.East)
	if IsPinfu(yakuhaiPair, tile.Suited(tile.Man, 5), ctx) {
		t.Error("a round-wind pair should disqualify pinfu")
	}
}

func TestIsPinfuRejectsOpenHand(t *testing.T) {
	d := decomp.Decomposition{
		Shape: decomp.Standard,
		Pair:  tile.Suited(tile.Pin, 2),
		Melds: []meld.Meld{meld.NewSequence(tile.Suited(tile.Man, 3), false)},
	}
	ctx := gamectx.New(gamectx.Ron, tile.East, tile.East).WithOpenHand()
	if IsPinfu(d, tile.Suited(tile.Man, 5), ctx) {
		t.Error("an open hand cannot be pinfu")
	}
}
