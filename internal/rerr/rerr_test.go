package rerr

import (
	"errors"
	"testing"
)

func TestIsMatchesByKindNotMessage(t *testing.T) {
	err := New(KindTileOverflow, "tile %s appears %d times", "1m", 5)
	if !errors.Is(err, ErrTileOverflow) {
		t.Error("expected errors.Is to match the sentinel by Kind")
	}
	if errors.Is(err, ErrNoYaku) {
		t.Error("expected errors.Is to reject a different Kind")
	}
}

func TestErrorMessageIncludesFormattedMsg(t *testing.T) {
	err := New(KindInvalidHandSize, "expected %d or %d, got %d", 13, 14, 10)
	want := "invalid hand size: expected 13 or 14, got 10"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSentinelErrorMessageOmitsColonWhenNoMsg(t *testing.T) {
	if ErrNoYaku.Error() != "no yaku" {
		t.Errorf("Error() = %q, want %q", ErrNoYaku.Error(), "no yaku")
	}
}
