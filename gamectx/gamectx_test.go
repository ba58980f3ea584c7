package gamectx

import (
	"testing"

	"github.com/sullenb/agari/tile"
)

func TestIsDealer(t *testing.T) {
	dealer := New(Tsumo, tile.East, tile.East)
	if !dealer.IsDealer() {
		t.Error("seat wind East should be dealer")
	}
	nonDealer := New(Tsumo, tile.East, tile.South)
	if nonDealer.IsDealer() {
		t.Error("seat wind South should not be dealer")
	}
}

func TestIsMenzen(t *testing.T) {
	closed := New(Ron, tile.East, tile.East)
	if !closed.IsMenzen() {
		t.Error("default context should be menzen")
	}
	open := closed.WithOpenHand()
	if open.IsMenzen() {
		t.Error("WithOpenHand should clear menzen")
	}
	if closed.HandIsOpen {
		t.Error("WithOpenHand should not mutate the receiver (value semantics)")
	}
}

func TestDoraCount(t *testing.T) {
	hand := tile.NewMultiset([]tile.Tile{tile.Suited(tile.Man, 4), tile.Suited(tile.Man, 4), tile.Suited(tile.Pin, 1)})
	indicators := []tile.Tile{tile.Suited(tile.Man, 3)}
	if n := DoraCount(hand, indicators); n != 2 {
		t.Errorf("DoraCount = %d, want 2", n)
	}
}

func TestTotalDoraIncludesUraOnlyOnRiichi(t *testing.T) {
	hand := tile.NewMultiset([]tile.Tile{tile.Suited(tile.Man, 5), tile.Suited(tile.Man, 5)})
	ctx := New(Ron, tile.East, tile.East).
		WithDora([]tile.Tile{tile.Suited(tile.Man, 4)}).
		WithUraDora([]tile.Tile{tile.Suited(tile.Man, 4)}).
		WithRedFives(1)

	if got := ctx.TotalDora(hand); got != 3 {
		t.Errorf("without riichi: TotalDora = %d, want 3 (2 dora + 1 red five, no ura)", got)
	}

	riichiCtx := ctx.WithRiichi()
	if got := riichiCtx.TotalDora(hand); got != 5 {
		t.Errorf("with riichi: TotalDora = %d, want 5 (2 dora + 2 ura + 1 red five)", got)
	}
}

func TestWithDoubleRiichiImpliesRiichi(t *testing.T) {
	ctx := New(Tsumo, tile.East, tile.East).WithDoubleRiichi()
	if !ctx.IsRiichi || !ctx.IsDoubleRiichi {
		t.Error("WithDoubleRiichi should set both IsRiichi and IsDoubleRiichi")
	}
}
