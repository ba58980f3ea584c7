// Package riichi is the public facade wiring the tile/meld/decomp/shanten/
// wait/yaku/score components into one evaluation API, per spec §6.
// Grounded on the teacher's top-level orchestration in main.go/actions.go,
// which drives decomposition, yaku checks, and fu calculation from one
// entry point per turn.
package riichi

import (
	"strconv"

	"github.com/sullenb/agari/decomp"
	"github.com/sullenb/agari/gamectx"
	"github.com/sullenb/agari/internal/cache"
	"github.com/sullenb/agari/internal/config"
	"github.com/sullenb/agari/internal/rerr"
	"github.com/sullenb/agari/internal/rlog"
	"github.com/sullenb/agari/meld"
	"github.com/sullenb/agari/score"
	"github.com/sullenb/agari/shanten"
	"github.com/sullenb/agari/tile"
	"github.com/sullenb/agari/yaku"
)

// Context is spec §3's GameContext, kept in its own gamectx package (rather
// than here) so wait/yaku/score can depend on it without an import cycle
// back through this facade; re-exported here under the name SPEC_FULL.md
// gives it.
type Context = gamectx.Context

const (
	Ron   = gamectx.Ron
	Tsumo = gamectx.Tsumo
)

// NewContext builds a minimal Context; chain the With* builders to set
// situational flags.
func NewContext(mode gamectx.WinMode, roundWind, seatWind tile.Honor) Context {
	return gamectx.New(mode, roundWind, seatWind)
}

// EvaluateResult is spec §6's output record for a completed winning hand.
type EvaluateResult struct {
	Score           score.Result
	InferredTile    tile.Tile
	TileWasInferred bool
}

// Evaluate scores hand (the uncommitted tiles: 14-3k or 13-3k of them for
// k called melds) plus called (the already-fixed melds), against ctx, per
// spec §4.7.5's best-interpretation
// selection. If ctx.WinningTile is the zero Tile, every tile present in hand
// is tried as the winning tile and the best result is returned with
// TileWasInferred set.
func Evaluate(hand tile.Multiset, called []meld.Meld, ctx Context, rules config.RuleTable, log *rlog.Logger) (EvaluateResult, error) {
	if err := validate(hand, called); err != nil {
		log.Warn("validation failed", "err", err)
		return EvaluateResult{}, err
	}

	inferred := ctx.WinningTile == (tile.Tile{})

	r, ok := score.Best(hand, called, ctx.WinningTile, ctx, rules)
	if !ok {
		if !decomp.IsWinning(hand, called) {
			return EvaluateResult{}, rerr.ErrNoValidDecomposition
		}
		return EvaluateResult{}, rerr.ErrNoYaku
	}

	log.Info("evaluated", "han", r.Han, "fu", r.Fu, "tier", r.Tier.String())

	return EvaluateResult{
		Score:           r,
		InferredTile:    r.WinningTile,
		TileWasInferred: inferred,
	}, nil
}

// ShantenResult is spec §6's shanten output record.
type ShantenResult struct {
	Shanten     int
	Shape       shanten.Shape
	Description string
}

// Shanten computes the distance-to-tenpai for hand, given calledMelds
// already-called melds, memoized via c (which may be nil).
func Shanten(hand tile.Multiset, calledMelds int, c *cache.ShantenCache) ShantenResult {
	r := shanten.CalculateCached(hand.ToCounts(), calledMelds, c)
	return ShantenResult{Shanten: r.Shanten, Shape: r.Shape, Description: describeShanten(r)}
}

func describeShanten(r shanten.Result) string {
	shape := "standard"
	switch r.Shape {
	case shanten.SevenPairs:
		shape = "seven pairs"
	case shanten.ThirteenOrphans:
		shape = "thirteen orphans"
	}
	switch {
	case r.Shanten < 0:
		return "complete (" + shape + ")"
	case r.Shanten == 0:
		return "tenpai (" + shape + ")"
	default:
		return "shanten " + strconv.Itoa(r.Shanten) + " (" + shape + ")"
	}
}

// UkeireResult is spec §6's ukeire output record.
type UkeireResult struct {
	Shanten int
	Tiles   []shanten.UkeireTile
	Total   int
}

// Ukeire returns every tile that would strictly lower hand's shanten.
func Ukeire(hand tile.Multiset, calledMelds int, c *cache.ShantenCache) UkeireResult {
	r := shanten.UkeireCached(hand.ToCounts(), calledMelds, c)
	return UkeireResult{Shanten: r.Shanten, Tiles: r.Tiles, Total: r.Total}
}

// DetectYaku exposes the yaku detector directly, for callers that already
// have a Decomposition (e.g. from enumerating Decompose themselves).
func DetectYaku(d decomp.Decomposition, hand tile.Multiset, ctx Context, rules config.RuleTable) yaku.Result {
	return yaku.Detect(d, hand, ctx, rules)
}

// validate implements spec §7's structural validation errors.
func validate(hand tile.Multiset, called []meld.Meld) error {
	counts := map[tile.Tile]int{}
	for t, n := range hand {
		counts[t] += n
	}
	for _, m := range called {
		for _, t := range m.Tiles() {
			counts[t]++
		}
	}
	for t, n := range counts {
		if n > 4 {
			return rerr.New(rerr.KindTileOverflow, "tile %s appears %d times", t, n)
		}
	}

	expected := 13 - 3*len(called) + 1
	have := hand.Total()
	if have != expected && have != expected-1 {
		return rerr.New(rerr.KindInvalidHandSize, "expected %d or %d tiles in hand, got %d", expected-1, expected, have)
	}
	return nil
}
