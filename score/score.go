// Package score computes fu, han-derived score tier, and payment split for
// a winning decomposition, per spec §4.7. Grounded on
// original_source/scoring.rs's ScoreLevel/FuBreakdown/Payment shapes and
// the teacher's fu_calculation.go component-by-component accumulation
// style (base, wait, pair, meld, rounding, minimum).
package score

import (
	"github.com/sullenb/agari/decomp"
	"github.com/sullenb/agari/gamectx"
	"github.com/sullenb/agari/internal/config"
	"github.com/sullenb/agari/meld"
	"github.com/sullenb/agari/tile"
	"github.com/sullenb/agari/wait"
	"github.com/sullenb/agari/yaku"
)

// Tier classifies a score by han/fu per spec §4.7.3.
type Tier uint8

const (
	Normal Tier = iota
	Mangan
	Haneman
	Baiman
	Sanbaiman
	Limit
	DoubleLimit
)

func (t Tier) String() string {
	switch t {
	case Mangan:
		return "Mangan"
	case Haneman:
		return "Haneman"
	case Baiman:
		return "Baiman"
	case Sanbaiman:
		return "Sanbaiman"
	case Limit:
		return "Limit"
	case DoubleLimit:
		return "Double Limit"
	default:
		return "Normal"
	}
}

// Payment is the point transfer for one winning hand.
type Payment struct {
	FromDealer        int // 0 if the winner is the dealer
	FromDiscarder     int // 0 on a self-draw
	FromEachNonDealer int // self-draw only: what each non-dealer loser pays
	Total             int
}

// Result is one scored interpretation of a win, matching spec §6's score
// output record.
type Result struct {
	Decomposition  decomp.Decomposition
	WinningTile    tile.Tile
	Yaku           yaku.Result
	Fu             int
	Han            int
	Tier           Tier
	IsCountedLimit bool
	Payment        Payment
}

// Score evaluates d as a win on winningTile under ctx, using rules for the
// fu/tier constants. It returns an error-free zero Result with Han == 0
// when d admits no yaku (an invalid interpretation, per spec §4.7.5,
// skipped by inference rather than flagged).
func Score(d decomp.Decomposition, winningTile tile.Tile, ctx gamectx.Context, rules config.RuleTable) Result {
	ctx = ctx.WithWinningTile(winningTile)
	y := yaku.Detect(d, collectMultiset(d), ctx, rules)

	if !y.IsYakuman && len(y.Yaku) == 0 {
		return Result{Decomposition: d, WinningTile: winningTile}
	}

	fu := Fu(d, winningTile, ctx, y, rules)
	han := y.Han + y.Dora.Total()

	tier, counted := tierFor(han, fu, y.IsYakuman, len(y.Yaku))
	payment := splitPayment(tier, han, fu, ctx, rules)

	return Result{
		Decomposition:  d,
		WinningTile:    winningTile,
		Yaku:           y,
		Fu:             fu,
		Han:            han,
		Tier:           tier,
		IsCountedLimit: counted,
		Payment:        payment,
	}
}

func collectMultiset(d decomp.Decomposition) tile.Multiset {
	var tiles []tile.Tile
	switch d.Shape {
	case decomp.SevenPairs:
		for _, t := range d.Pairs {
			tiles = append(tiles, t, t)
		}
	case decomp.ThirteenOrphans:
		tiles = append(tiles, tile.KokushiTiles...)
		tiles = append(tiles, d.Doubled)
	default:
		tiles = append(tiles, d.Pair, d.Pair)
		for _, ml := range d.Melds {
			tiles = append(tiles, ml.Tiles()...)
		}
	}
	return tile.NewMultiset(tiles)
}

func hasPinfu(y yaku.Result) bool {
	for _, s := range y.Yaku {
		if s.Name == yaku.Pinfu {
			return true
		}
	}
	return false
}

// Fu implements spec §4.7.1/§4.7.2.
func Fu(d decomp.Decomposition, winningTile tile.Tile, ctx gamectx.Context, y yaku.Result, rules config.RuleTable) int {
	if y.IsYakuman {
		return 0
	}

	switch d.Shape {
	case decomp.SevenPairs:
		return rules.ChiitoitsuFu
	case decomp.ThirteenOrphans:
		return 30
	}

	pinfu := hasPinfu(y)
	if pinfu && ctx.WinMode == gamectx.Tsumo {
		return rules.PinfuTsumoFu
	}
	if pinfu && ctx.WinMode == gamectx.Ron {
		return rules.PinfuRonFu
	}

	total := rules.BaseFu

	if ctx.WinMode == gamectx.Ron && ctx.IsMenzen() {
		total += rules.MenzenRonFu
	}
	if ctx.WinMode == gamectx.Tsumo && !pinfu {
		total += rules.TsumoFu
	}

	total += meldFu(d, winningTile, ctx, rules)
	total += pairFu(d, ctx, rules)

	if !pinfu {
		if best, ok := wait.Best(d, winningTile); ok {
			total += waitFuFrom(best, rules)
		}
	}

	rounded := roundUp10(total)
	if ctx.HandIsOpen && rounded < rules.MinimumFu {
		rounded = rules.MinimumFu
	}
	return rounded
}

func waitFuFrom(t wait.Type, rules config.RuleTable) int {
	if t.Fu() == 0 {
		return 0
	}
	return rules.WaitFu
}

func meldFu(d decomp.Decomposition, winningTile tile.Tile, ctx gamectx.Context, rules config.RuleTable) int {
	nobetan := ctx.WinMode == gamectx.Ron && yaku.WinningTileInClosedSequence(d, winningTile)

	total := 0
	for _, m := range d.Melds {
		if m.IsSequence() {
			continue
		}
		termOrHonor := m.Tile.IsTerminalOrHonor()
		concealed := !m.IsOpen()

		if m.Kind == meld.Triplet && ctx.WinMode == gamectx.Ron && m.Tile == winningTile && !nobetan {
			concealed = false
		}

		total += tripletOrKanFu(m.Kind, concealed, termOrHonor, rules)
	}
	return total
}

func tripletOrKanFu(kind meld.Kind, concealed, termOrHonor bool, rules config.RuleTable) int {
	if kind == meld.Quad {
		switch {
		case concealed && termOrHonor:
			return rules.TermClosedKanFu
		case concealed && !termOrHonor:
			return rules.SimpleClosedKanFu
		case !concealed && termOrHonor:
			return rules.TermOpenKanFu
		default:
			return rules.SimpleOpenKanFu
		}
	}
	switch {
	case concealed && termOrHonor:
		return rules.TermClosedTripletFu
	case concealed && !termOrHonor:
		return rules.SimpleClosedTripletFu
	case !concealed && termOrHonor:
		return rules.TermOpenTripletFu
	default:
		return rules.SimpleOpenTripletFu
	}
}

func pairFu(d decomp.Decomposition, ctx gamectx.Context, rules config.RuleTable) int {
	if d.Shape != decomp.Standard {
		return 0
	}
	fu := 0
	if d.Pair.IsHonor() {
		if d.Pair.Honor.IsDragon() {
			fu += rules.YakuhaiPairFu
		}
		if d.Pair.Honor == ctx.RoundWind {
			fu += rules.YakuhaiPairFu
		}
		if d.Pair.Honor == ctx.SeatWind {
			fu += rules.YakuhaiPairFu
		}
	}
	return fu
}

func roundUp10(n int) int {
	if n%10 == 0 {
		return n
	}
	return n + (10 - n%10)
}

// tierFor implements spec §4.7.3. counted reports whether Limit tier was
// reached by han accumulation rather than by an asserted limit pattern.
func tierFor(han, fu int, isYakuman bool, limitPatternCount int) (Tier, bool) {
	if isYakuman {
		if limitPatternCount >= 2 || han >= 26 {
			return DoubleLimit, false
		}
		return Limit, false
	}
	switch {
	case han >= 13:
		return Limit, true
	case han >= 11:
		return Sanbaiman, false
	case han >= 8:
		return Baiman, false
	case han == 6 || han == 7:
		return Haneman, false
	case han == 5:
		return Mangan, false
	case han == 4 && fu >= 40:
		return Mangan, false
	case han == 3 && fu >= 70:
		return Mangan, false
	default:
		return Normal, false
	}
}

func basePoints(tier Tier, han, fu int, rules config.RuleTable) int {
	switch tier {
	case Mangan:
		return rules.ManganBasePoints
	case Haneman:
		return rules.HanemanBasePoints
	case Baiman:
		return rules.BaimanBasePoints
	case Sanbaiman:
		return rules.SanbaimanBasePoints
	case Limit:
		return rules.YakumanBasePoints
	case DoubleLimit:
		return rules.DoubleYakumanBasePoints
	default:
		base := fu * (1 << uint(han+2))
		if base > 2000 {
			base = 2000
		}
		return base
	}
}

func roundUp100(n int) int {
	if n%100 == 0 {
		return n
	}
	return n + (100 - n%100)
}

// splitPayment implements spec §4.7.4.
func splitPayment(tier Tier, han, fu int, ctx gamectx.Context, rules config.RuleTable) Payment {
	base := basePoints(tier, han, fu, rules)
	dealer := ctx.IsDealer()

	switch {
	case dealer && ctx.WinMode == gamectx.Tsumo:
		each := roundUp100(base * 2)
		return Payment{FromEachNonDealer: each, Total: each * 3}
	case dealer && ctx.WinMode == gamectx.Ron:
		amount := roundUp100(base * 6)
		return Payment{FromDiscarder: amount, Total: amount}
	case !dealer && ctx.WinMode == gamectx.Tsumo:
		fromDealer := roundUp100(base * 2)
		fromOthers := roundUp100(base)
		return Payment{FromDealer: fromDealer, FromEachNonDealer: fromOthers, Total: fromDealer + 2*fromOthers}
	default: // non-dealer, discard
		amount := roundUp100(base * 4)
		return Payment{FromDiscarder: amount, Total: amount}
	}
}

// Best implements spec §4.7.5: select the highest-payment (tie: highest
// han, tie: lowest fu) interpretation across every decomposition and, when
// winningTile is zero, every candidate winning tile present in hand.
func Best(hand tile.Multiset, called []meld.Meld, winningTile tile.Tile, ctx gamectx.Context, rules config.RuleTable) (Result, bool) {
	candidates := []tile.Tile{winningTile}
	if winningTile == (tile.Tile{}) {
		candidates = hand.Sorted()
	}

	var best Result
	found := false

	for _, wt := range candidates {
		for _, d := range decomp.Decompose(hand, called) {
			r := Score(d, wt, ctx, rules)
			if r.Han == 0 {
				continue
			}
			if !found || better(r, best) {
				best = r
				found = true
			}
		}
	}
	return best, found
}

func better(a, b Result) bool {
	if a.Payment.Total != b.Payment.Total {
		return a.Payment.Total > b.Payment.Total
	}
	if a.Han != b.Han {
		return a.Han > b.Han
	}
	return a.Fu < b.Fu
}
