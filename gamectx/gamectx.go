// Package gamectx holds the situational information a winning hand is
// scored against: who won and how, the prevailing winds, riichi and
// situational yaku flags, and dora. It is kept separate from the root
// facade package so that wait, yaku, and score can all depend on it
// without creating an import cycle back through the facade.
package gamectx

import "github.com/sullenb/agari/tile"

// WinMode distinguishes a self-draw win from a win on a discard.
type WinMode uint8

const (
	Ron WinMode = iota
	Tsumo
)

// Context is the full set of inputs a scoring pass needs beyond the hand
// itself, matching spec §3's GameContext table one-for-one.
type Context struct {
	WinMode      WinMode
	WinningTile  tile.Tile
	RoundWind    tile.Honor
	SeatWind     tile.Honor
	HandIsOpen   bool
	IsRiichi     bool
	IsDoubleRiichi bool
	IsIppatsu    bool

	IsRinshan bool // win on a replacement tile drawn after a kan
	IsChankan bool // ron on another player's added-kan tile
	IsHaitei  bool // tsumo on the last drawable tile
	IsHoutei  bool // ron on the last discard of the game
	IsTenhou  bool // dealer wins on their first uncalled draw
	IsChiihou bool // non-dealer wins on their first uncalled draw

	DoraIndicators    []tile.Tile
	UraDoraIndicators []tile.Tile
	RedFiveCount      int
}

// New returns a minimal context for the given win mode and winds; callers
// chain the With* builders to set situational flags, mirroring the
// original Rust builder but adapted to Go value semantics (each With*
// has a value receiver and returns a modified copy, leaving the Context
// it was called on unchanged).
func New(mode WinMode, roundWind, seatWind tile.Honor) Context {
	return Context{WinMode: mode, RoundWind: roundWind, SeatWind: seatWind}
}

func (c Context) WithWinningTile(t tile.Tile) Context { c.WinningTile = t; return c }
func (c Context) WithOpenHand() Context               { c.HandIsOpen = true; return c }
func (c Context) WithRiichi() Context                 { c.IsRiichi = true; return c }
func (c Context) WithDoubleRiichi() Context {
	c.IsDoubleRiichi = true
	c.IsRiichi = true
	return c
}
func (c Context) WithIppatsu() Context { c.IsIppatsu = true; return c }
func (c Context) WithRinshan() Context { c.IsRinshan = true; return c }
func (c Context) WithChankan() Context { c.IsChankan = true; return c }
func (c Context) WithHaitei() Context  { c.IsHaitei = true; return c }
func (c Context) WithHoutei() Context  { c.IsHoutei = true; return c }
func (c Context) WithTenhou() Context  { c.IsTenhou = true; return c }
func (c Context) WithChiihou() Context { c.IsChiihou = true; return c }

func (c Context) WithDora(indicators []tile.Tile) Context {
	c.DoraIndicators = indicators
	return c
}

func (c Context) WithUraDora(indicators []tile.Tile) Context {
	c.UraDoraIndicators = indicators
	return c
}

func (c Context) WithRedFives(n int) Context { c.RedFiveCount = n; return c }

// IsDealer reports whether the winning seat is the round's dealer.
func (c Context) IsDealer() bool { return c.SeatWind == tile.East }

// IsMenzen reports whether the hand is fully concealed.
func (c Context) IsMenzen() bool { return !c.HandIsOpen }

// DoraCount returns how many tiles in hand (passed in) match the dora
// succeeding each indicator in indicators, summed over every indicator.
func DoraCount(hand tile.Multiset, indicators []tile.Tile) int {
	n := 0
	for _, ind := range indicators {
		dora := ind.DoraNext()
		n += hand.Count(dora)
	}
	return n
}

// TotalDora returns the hand's dora + ura-dora + red-five count, the
// figure added to han after yaku detection (spec §9: dora never
// promotes a hand to a limit on its own).
func (c Context) TotalDora(hand tile.Multiset) int {
	total := DoraCount(hand, c.DoraIndicators)
	if c.IsRiichi {
		total += DoraCount(hand, c.UraDoraIndicators)
	}
	return total + c.RedFiveCount
}
