// Package wait classifies the shape a completed hand was in immediately
// before the winning tile, per spec §4.5. Grounded directly on
// original_source/wait.rs's WaitType enum and detection/best-wait/pinfu
// logic, generalized onto this repo's own decomp.Decomposition and
// gamectx.Context types.
package wait

import (
	"github.com/sullenb/agari/decomp"
	"github.com/sullenb/agari/gamectx"
	"github.com/sullenb/agari/meld"
	"github.com/sullenb/agari/tile"
)

// Type is one of the six ways a winning tile can have completed a hand.
type Type uint8

const (
	Ryanmen Type = iota
	Kanchan
	Penchan
	Shanpon
	Tanki
	Kokushi13
)

// Fu returns the fu this wait type contributes (spec §4.5's table).
func (t Type) Fu() int {
	switch t {
	case Kanchan, Penchan, Tanki:
		return 2
	default:
		return 0
	}
}

// priority orders wait types for "best wait" selection: Ryanmen first
// (to enable pinfu), then Shanpon, Kanchan, Penchan, Tanki, Kokushi13.
func (t Type) priority() int {
	switch t {
	case Ryanmen:
		return 0
	case Shanpon:
		return 1
	case Kanchan:
		return 2
	case Penchan:
		return 3
	case Tanki:
		return 4
	default: // Kokushi13
		return 5
	}
}

// Detect enumerates every wait kind by which winningTile could have
// completed d. Multiple interpretations may coexist (spec §4.5).
func Detect(d decomp.Decomposition, winningTile tile.Tile) []Type {
	switch d.Shape {
	case decomp.SevenPairs:
		for _, p := range d.Pairs {
			if p == winningTile {
				return []Type{Tanki}
			}
		}
		return nil

	case decomp.ThirteenOrphans:
		if d.Doubled == winningTile {
			return []Type{Tanki}
		}
		return []Type{Kokushi13}

	default: // Standard
		var types []Type
		if d.Pair == winningTile {
			types = append(types, Tanki)
		}
		for _, m := range d.Melds {
			switch m.Kind {
			case meld.Triplet:
				if m.Tile == winningTile {
					types = append(types, Shanpon)
				}
			case meld.Sequence:
				if wt, ok := shuntsuWait(m.Tile, winningTile); ok {
					types = append(types, wt)
				}
			}
		}
		return types
	}
}

// shuntsuWait reports the wait type if winningTile is part of the
// sequence starting at start, following the original's position-based
// classification: winning the low tile implies a pre-win high-pair
// shape (ryanmen, or penchan at the 789 edge); the middle tile is always
// kanchan; winning the high tile implies a pre-win low-pair shape
// (ryanmen, or penchan at the 123 edge).
func shuntsuWait(start, winningTile tile.Tile) (Type, bool) {
	if start.Kind != tile.KindSuited || winningTile.Kind != tile.KindSuited || start.Suit != winningTile.Suit {
		return 0, false
	}
	if winningTile.Value < start.Value || winningTile.Value > start.Value+2 {
		return 0, false
	}

	switch winningTile.Value {
	case start.Value:
		if start.Value+2 == 9 {
			return Penchan, true
		}
		return Ryanmen, true
	case start.Value + 1:
		return Kanchan, true
	default: // start.Value + 2
		if start.Value == 1 {
			return Penchan, true
		}
		return Ryanmen, true
	}
}

// Best returns the lowest-fu wait, preferring Ryanmen among equal-fu
// waits, per spec §4.5's "best wait for scoring" rule.
func Best(d decomp.Decomposition, winningTile tile.Tile) (Type, bool) {
	types := Detect(d, winningTile)
	if len(types) == 0 {
		return 0, false
	}
	best := types[0]
	for _, t := range types[1:] {
		if t.Fu() < best.Fu() || (t.Fu() == best.Fu() && t.priority() < best.priority()) {
			best = t
		}
	}
	return best, true
}

// IsPinfu reports whether d qualifies for pinfu when won on winningTile
// under ctx: closed hand, all-sequence standard shape, a non-value-honor
// pair, and a ryanmen wait present (not merely the minimum wait).
func IsPinfu(d decomp.Decomposition, winningTile tile.Tile, ctx gamectx.Context) bool {
	if ctx.HandIsOpen {
		return false
	}
	if d.Shape != decomp.Standard {
		return false
	}
	for _, m := range d.Melds {
		if !m.IsSequence() {
			return false
		}
	}
	if isYakuhaiPair(d.Pair, ctx) {
		return false
	}
	for _, t := range Detect(d, winningTile) {
		if t == Ryanmen {
			return true
		}
	}
	return false
}

func isYakuhaiPair(pair tile.Tile, ctx gamectx.Context) bool {
	if !pair.IsHonor() {
		return false
	}
	if pair.Honor.IsDragon() {
		return true
	}
	return pair.Honor == ctx.RoundWind || pair.Honor == ctx.SeatWind
}
