// Package yaku detects satisfied scoring patterns for a decomposition,
// grounded on original_source/yaku.rs's Yaku enum and its han/han_open
// tables and yakuman-first detection order; the per-pattern structural
// checks (check_suuankou, check_daisangen, etc.) were not present in the
// retrieved source, so they are implemented from spec.md §4.6 directly,
// in the same detection order the reference establishes.
package yaku

import (
	"github.com/sullenb/agari/decomp"
	"github.com/sullenb/agari/gamectx"
	"github.com/sullenb/agari/internal/config"
	"github.com/sullenb/agari/meld"
	"github.com/sullenb/agari/tile"
	"github.com/sullenb/agari/wait"
)

// Name identifies one scoring pattern.
type Name uint8

const (
	Riichi Name = iota
	DoubleRiichi
	Ippatsu
	MenzenTsumo
	Tanyao
	Pinfu
	Iipeikou
	Ryanpeikou
	Yakuhai
	RinshanKaihou
	Chankan
	Haitei
	Houtei
	Toitoi
	SanshokuDoujun
	SanshokuDoukou
	Ittsu
	Chiitoitsu
	Chanta
	Junchan
	SanAnkou
	SanKantsu
	Honroutou
	Shousangen
	Honitsu
	Chinitsu

	// Limit patterns (yakuman)
	Tenhou
	Chiihou
	KokushiMusou
	KokushiMusouJuusanmen // thirteen-sided wait: double yakuman
	Suuankou
	Daisangen
	Shousuushii
	Daisuushii
	Tsuuiisou
	Chinroutou
	Ryuuiisou
	ChuurenPoutou
	ChuurenPoutouJunsei // "pure" nine gates: double yakuman
	Suukantsu
)

var names = map[Name]string{
	Riichi: "Riichi", DoubleRiichi: "Double Riichi", Ippatsu: "Ippatsu",
	MenzenTsumo: "Menzen Tsumo", Tanyao: "Tanyao", Pinfu: "Pinfu",
	Iipeikou: "Iipeikou", Ryanpeikou: "Ryanpeikou", Yakuhai: "Yakuhai",
	RinshanKaihou: "Rinshan Kaihou", Chankan: "Chankan", Haitei: "Haitei Raoyue",
	Houtei: "Houtei Raoyui", Toitoi: "Toitoi", SanshokuDoujun: "Sanshoku Doujun",
	SanshokuDoukou: "Sanshoku Doukou", Ittsu: "Ittsu", Chiitoitsu: "Chiitoitsu",
	Chanta: "Chanta", Junchan: "Junchan", SanAnkou: "San Ankou",
	SanKantsu: "San Kantsu", Honroutou: "Honroutou", Shousangen: "Shousangen",
	Honitsu: "Honitsu", Chinitsu: "Chinitsu", Tenhou: "Tenhou", Chiihou: "Chiihou",
	KokushiMusou: "Kokushi Musou", KokushiMusouJuusanmen: "Kokushi Musou Juusanmenmachi",
	Suuankou: "Suuankou", Daisangen: "Daisangen",
	Shousuushii: "Shousuushii", Daisuushii: "Daisuushii", Tsuuiisou: "Tsuuiisou",
	Chinroutou: "Chinroutou", Ryuuiisou: "Ryuuiisou", ChuurenPoutou: "Chuuren Poutou",
	ChuurenPoutouJunsei: "Junsei Chuuren Poutou", Suukantsu: "Suukantsu",
}

func (n Name) String() string { return names[n] }

// closedHan / openHan give the base han for a closed resp. open hand; an
// absent entry in openHan means the pattern requires a closed hand.
var closedHan = map[Name]int{
	Riichi: 1, Ippatsu: 1, MenzenTsumo: 1, Tanyao: 1, Pinfu: 1, Iipeikou: 1,
	Yakuhai: 1, RinshanKaihou: 1, Chankan: 1, Haitei: 1, Houtei: 1,
	DoubleRiichi: 2, Toitoi: 2, SanshokuDoujun: 2, SanshokuDoukou: 2, Ittsu: 2,
	Chiitoitsu: 2, Chanta: 2, SanAnkou: 2, SanKantsu: 2, Honroutou: 2, Shousangen: 2,
	Honitsu: 3, Junchan: 3, Ryanpeikou: 3,
	Chinitsu: 6,
}

var openHan = map[Name]int{
	Tanyao: 1, Yakuhai: 1, RinshanKaihou: 1, Chankan: 1, Haitei: 1, Houtei: 1,
	Toitoi: 2, SanshokuDoukou: 2, SanAnkou: 2, SanKantsu: 2, Honroutou: 2, Shousangen: 2,
	SanshokuDoujun: 1, Ittsu: 1, Chanta: 1,
	Honitsu: 2, Junchan: 2,
	Chinitsu: 5,
}

// Yakuman han value (a reporting convention; a limit hand's actual score
// comes from score.Tier, not this number).
const YakumanHan = 13

// Satisfied is one fired pattern with its post-adjustment han.
type Satisfied struct {
	Name Name
	Han  int
}

// DoraBreakdown separates dora by source.
type DoraBreakdown struct {
	Regular int
	Ura     int
	Aka     int
}

func (d DoraBreakdown) Total() int { return d.Regular + d.Ura + d.Aka }

// Result is the full yaku-detection output, matching spec §6's yaku
// output record.
type Result struct {
	Yaku      []Satisfied
	Han       int
	IsYakuman bool
	Dora      DoraBreakdown
}

// Detect implements spec §4.6's contract and order of operations, using
// rules.DoubleSuuankouTanki to decide the one configurable ruling noted in
// spec §9 (defaults to the single-limit behavior when zero-valued).
func Detect(d decomp.Decomposition, hand tile.Multiset, ctx gamectx.Context, rules config.RuleTable) Result {
	limit := detectLimitPatterns(d, hand, ctx, rules)
	if len(limit) > 0 {
		han := 0
		for _, s := range limit {
			han += s.Han
		}
		return Result{Yaku: limit, Han: han, IsYakuman: true}
	}

	var found []Name
	found = append(found, detectContextPatterns(ctx)...)
	found = append(found, detectStructurePatterns(d, hand, ctx)...)

	var satisfied []Satisfied
	han := 0
	for _, n := range found {
		h, ok := hanFor(n, ctx.HandIsOpen)
		if !ok {
			continue
		}
		satisfied = append(satisfied, Satisfied{Name: n, Han: h})
		han += h
	}

	dora := countDora(hand, ctx)

	return Result{Yaku: satisfied, Han: han, IsYakuman: false, Dora: dora}
}

func hanFor(n Name, open bool) (int, bool) {
	if !open {
		return closedHan[n], true
	}
	h, ok := openHan[n]
	return h, ok
}

func countDora(hand tile.Multiset, ctx gamectx.Context) DoraBreakdown {
	regular := gamectx.DoraCount(hand, ctx.DoraIndicators)
	ura := 0
	if ctx.IsRiichi {
		ura = gamectx.DoraCount(hand, ctx.UraDoraIndicators)
	}
	return DoraBreakdown{Regular: regular, Ura: ura, Aka: ctx.RedFiveCount}
}

// detectLimitPatterns checks every yakuman pattern, in original_source's
// order: win-condition yakuman first, then structure-driven yakuman.
func detectLimitPatterns(d decomp.Decomposition, hand tile.Multiset, ctx gamectx.Context, rules config.RuleTable) []Satisfied {
	var out []Satisfied
	add := func(n Name) { out = append(out, Satisfied{Name: n, Han: YakumanHan}) }
	addDouble := func(n Name) { out = append(out, Satisfied{Name: n, Han: YakumanHan * 2}) }

	if ctx.IsTenhou && ctx.WinMode == gamectx.Tsumo && !ctx.HandIsOpen && ctx.IsDealer() {
		add(Tenhou)
	}
	if ctx.IsChiihou && ctx.WinMode == gamectx.Tsumo && !ctx.HandIsOpen && !ctx.IsDealer() {
		add(Chiihou)
	}

	switch d.Shape {
	case decomp.ThirteenOrphans:
		if wts := wait.Detect(d, ctx.WinningTile); len(wts) == 1 && wts[0] == wait.Kokushi13 {
			addDouble(KokushiMusouJuusanmen)
		} else {
			add(KokushiMusou)
		}
		return out

	case decomp.SevenPairs:
		if allHonor(d.Pairs) {
			add(Tsuuiisou)
		} else if allTerminal(d.Pairs) {
			add(Chinroutou)
		}
		return out

	default: // Standard
		if checkSuuankou(d, ctx) {
			if rules.DoubleSuuankouTanki && ctx.WinMode == gamectx.Tsumo && d.Pair == ctx.WinningTile {
				addDouble(Suuankou)
			} else {
				add(Suuankou)
			}
		}
		if checkDaisangen(d.Melds) {
			add(Daisangen)
		}
		if n, ok := checkFourWinds(d.Melds, d.Pair); ok {
			add(n)
		}
		allTiles := collectTiles(d)
		if allTilesHonor(allTiles) {
			add(Tsuuiisou)
		}
		if allTilesTerminal(allTiles) {
			add(Chinroutou)
		}
		if checkRyuuiisou(allTiles) {
			add(Ryuuiisou)
		}
		if checkSuukantsu(d.Melds) {
			add(Suukantsu)
		}
		if !ctx.HandIsOpen {
			if pure, ok := checkChuurenPoutou(hand, ctx); ok {
				if pure {
					addDouble(ChuurenPoutouJunsei)
				} else {
					add(ChuurenPoutou)
				}
			}
		}
		return out
	}
}

func detectContextPatterns(ctx gamectx.Context) []Name {
	var out []Name
	if ctx.IsRiichi && !ctx.HandIsOpen {
		if ctx.IsDoubleRiichi {
			out = append(out, DoubleRiichi)
		} else {
			out = append(out, Riichi)
		}
		if ctx.IsIppatsu {
			out = append(out, Ippatsu)
		}
	}
	if ctx.WinMode == gamectx.Tsumo && !ctx.HandIsOpen {
		out = append(out, MenzenTsumo)
	}
	if ctx.IsRinshan && ctx.WinMode == gamectx.Tsumo {
		out = append(out, RinshanKaihou)
	}
	if ctx.IsChankan && ctx.WinMode == gamectx.Ron {
		out = append(out, Chankan)
	}
	if ctx.IsHaitei && ctx.WinMode == gamectx.Tsumo {
		out = append(out, Haitei)
	}
	if ctx.IsHoutei && ctx.WinMode == gamectx.Ron {
		out = append(out, Houtei)
	}
	return out
}

func detectStructurePatterns(d decomp.Decomposition, hand tile.Multiset, ctx gamectx.Context) []Name {
	switch d.Shape {
	case decomp.SevenPairs:
		var out []Name
		out = append(out, Chiitoitsu)
		if allSimple(d.Pairs) {
			out = append(out, Tanyao)
		}
		if allTerminalOrHonor(d.Pairs) {
			out = append(out, Honroutou)
		}
		if n, ok := checkFlush(d.Pairs); ok {
			out = append(out, n)
		}
		return out

	case decomp.ThirteenOrphans:
		return nil

	default: // Standard
		var out []Name
		allTiles := collectTiles(d)

		if allSimple(allTiles) {
			out = append(out, Tanyao)
		}
		if ctx.WinningTile != (tile.Tile{}) && wait.IsPinfu(d, ctx.WinningTile, ctx) {
			out = append(out, Pinfu)
		}
		if !ctx.HandIsOpen {
			if n, ok := checkPeikou(d.Melds); ok {
				out = append(out, n)
			}
		}
		out = append(out, checkYakuhai(d.Melds, ctx)...)

		if allTripletOrQuad(d.Melds) {
			out = append(out, Toitoi)
		}
		if checkSanshokuDoujun(d.Melds) {
			out = append(out, SanshokuDoujun)
		}
		if checkSanshokuDoukou(d.Melds) {
			out = append(out, SanshokuDoukou)
		}
		if checkIttsu(d.Melds) {
			out = append(out, Ittsu)
		}
		isChanta := checkChanta(d.Melds, d.Pair)
		isJunchan := checkJunchan(d.Melds, d.Pair)
		if isChanta && !isJunchan {
			out = append(out, Chanta)
		}
		if countConcealedTriplets(d, ctx) == 3 {
			out = append(out, SanAnkou)
		}
		if countKans(d.Melds) == 3 {
			out = append(out, SanKantsu)
		}
		if allTerminalOrHonor(allTiles) {
			out = append(out, Honroutou)
		}
		if checkShousangen(d.Melds, d.Pair) {
			out = append(out, Shousangen)
		}
		if isJunchan {
			out = append(out, Junchan)
		}
		if n, ok := checkFlush(allTiles); ok {
			out = append(out, n)
		}
		return out
	}
}

func collectTiles(d decomp.Decomposition) []tile.Tile {
	tiles := []tile.Tile{d.Pair, d.Pair}
	for _, m := range d.Melds {
		tiles = append(tiles, m.Tiles()...)
	}
	return tiles
}

func allSimple(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsSimple() {
			return false
		}
	}
	return true
}

func allTerminal(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsTerminal() {
			return false
		}
	}
	return true
}

func allHonor(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsHonor() {
			return false
		}
	}
	return true
}

func allTilesHonor(tiles []tile.Tile) bool    { return allHonor(tiles) }
func allTilesTerminal(tiles []tile.Tile) bool { return allTerminal(tiles) }

func allTerminalOrHonor(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

func allTripletOrQuad(melds []meld.Meld) bool {
	for _, m := range melds {
		if !m.IsTripletOrQuad() {
			return false
		}
	}
	return true
}

func countKans(melds []meld.Meld) int {
	n := 0
	for _, m := range melds {
		if m.Kind == meld.Quad {
			n++
		}
	}
	return n
}

func checkSuukantsu(melds []meld.Meld) bool { return countKans(melds) == 4 }

func checkRyuuiisou(tiles []tile.Tile) bool {
	for _, t := range tiles {
		if !t.IsGreen() {
			return false
		}
	}
	return true
}

// checkDaisangen reports whether all three dragon triplets/quads are
// present among melds.
func checkDaisangen(melds []meld.Meld) bool {
	seen := map[tile.Honor]bool{}
	for _, m := range melds {
		if m.IsTripletOrQuad() && m.Tile.IsDragon() {
			seen[m.Tile.Honor] = true
		}
	}
	return seen[tile.White] && seen[tile.Green] && seen[tile.Red]
}

func checkShousangen(melds []meld.Meld, pair tile.Tile) bool {
	triplets := 0
	for _, m := range melds {
		if m.IsTripletOrQuad() && m.Tile.IsDragon() {
			triplets++
		}
	}
	return triplets == 2 && pair.IsHonor() && pair.Honor.IsDragon()
}

// checkFourWinds reports Daisuushii (all four wind triplets) or
// Shousuushii (three wind triplets plus a wind pair).
func checkFourWinds(melds []meld.Meld, pair tile.Tile) (Name, bool) {
	windTriplets := 0
	for _, m := range melds {
		if m.IsTripletOrQuad() && m.Tile.IsWind() {
			windTriplets++
		}
	}
	if windTriplets == 4 {
		return Daisuushii, true
	}
	if windTriplets == 3 && pair.IsHonor() && pair.Honor.IsWind() {
		return Shousuushii, true
	}
	return 0, false
}

// checkSuuankou reports four-concealed-triplets per spec §4.6: no
// sequences, and every triplet/quad concealed under §4.6.2's rule.
func checkSuuankou(d decomp.Decomposition, ctx gamectx.Context) bool {
	for _, m := range d.Melds {
		if m.IsSequence() {
			return false
		}
	}
	return countConcealedTriplets(d, ctx) == 4
}

// countConcealedTriplets implements spec §4.6.2, the shared
// nobetan/discard-open-triplet helper: a triplet counts as concealed
// unless declared open; a quad counts as concealed iff Closed kind; for
// win-by-discard the triplet completed by the winning tile is treated as
// opened unless the winning tile also belongs to a closed sequence in
// this decomposition.
func countConcealedTriplets(d decomp.Decomposition, ctx gamectx.Context) int {
	nobetan := ctx.WinMode == gamectx.Ron && WinningTileInClosedSequence(d, ctx.WinningTile)

	count := 0
	for _, m := range d.Melds {
		if !m.IsTripletOrQuad() {
			continue
		}
		if m.IsOpen() {
			continue
		}
		if m.Kind == meld.Triplet && ctx.WinMode == gamectx.Ron && m.Tile == ctx.WinningTile && !nobetan {
			continue
		}
		count++
	}
	return count
}

// WinningTileInClosedSequence reports whether winningTile completes a
// concealed sequence in d. Shared with package score, whose fu
// calculation applies the same nobetan exception to the open-triplet
// discard rule (spec §9).
func WinningTileInClosedSequence(d decomp.Decomposition, winningTile tile.Tile) bool {
	for _, m := range d.Melds {
		if m.IsSequence() && m.IsConcealed() && m.Contains(winningTile) {
			return true
		}
	}
	return false
}

// checkChuurenPoutou reports whether hand satisfies nine-gates, and if so
// whether it is the "pure" (junsei) variant: the 13 tiles held before the
// winning tile already formed the bare 1,1,1,2,3,4,5,6,7,8,9,9,9 shape, so
// the winning tile could have been any of the nine values (spec §4.6's
// "the 'pure' variant when the winning tile is the thirteenth tile
// completing the base pattern").
func checkChuurenPoutou(hand tile.Multiset, ctx gamectx.Context) (pure bool, ok bool) {
	var suit tile.Suit
	found := false
	for t := range hand {
		if t.IsHonor() {
			return false, false
		}
		if !found {
			suit = t.Suit
			found = true
		} else if t.Suit != suit {
			return false, false
		}
	}
	if !found || ctx.WinningTile.IsHonor() || ctx.WinningTile.Suit != suit {
		return false, false
	}

	counts := hand.ToCounts()
	required := map[int]int{1: 3, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1, 8: 1, 9: 3}
	base := 0
	switch suit {
	case tile.Pin:
		base = 9
	case tile.Sou:
		base = 18
	}
	extra := 0
	for v, need := range required {
		c := counts[base+v-1]
		if c < need {
			return false, false
		}
		extra += c - need
	}
	if extra != 1 {
		return false, false
	}

	preWin := counts
	preWin[ctx.WinningTile.Index()]--
	pure = true
	for v, need := range required {
		if preWin[base+v-1] != need {
			pure = false
			break
		}
	}
	return pure, true
}

func checkYakuhai(melds []meld.Meld, ctx gamectx.Context) []Name {
	var out []Name
	for _, m := range melds {
		if !m.IsTripletOrQuad() || !m.Tile.IsHonor() {
			continue
		}
		if m.Tile.Honor.IsDragon() {
			out = append(out, Yakuhai)
			continue
		}
		if m.Tile.Honor == ctx.RoundWind {
			out = append(out, Yakuhai)
		}
		if m.Tile.Honor == ctx.SeatWind {
			out = append(out, Yakuhai)
		}
	}
	return out
}

func checkPeikou(melds []meld.Meld) (Name, bool) {
	counts := map[tile.Tile]int{}
	for _, m := range melds {
		if m.IsSequence() {
			counts[m.Tile]++
		}
	}
	pairs := 0
	for _, c := range counts {
		pairs += c / 2
	}
	switch pairs {
	case 1:
		return Iipeikou, true
	case 2:
		return Ryanpeikou, true
	default:
		return 0, false
	}
}

func checkSanshokuDoujun(melds []meld.Meld) bool {
	seen := map[int]map[tile.Suit]bool{}
	for _, m := range melds {
		if !m.IsSequence() {
			continue
		}
		if seen[m.Tile.Value] == nil {
			seen[m.Tile.Value] = map[tile.Suit]bool{}
		}
		seen[m.Tile.Value][m.Tile.Suit] = true
	}
	for _, suits := range seen {
		if suits[tile.Man] && suits[tile.Pin] && suits[tile.Sou] {
			return true
		}
	}
	return false
}

func checkSanshokuDoukou(melds []meld.Meld) bool {
	seen := map[int]map[tile.Suit]bool{}
	for _, m := range melds {
		if !m.IsTripletOrQuad() || m.Tile.IsHonor() {
			continue
		}
		if seen[m.Tile.Value] == nil {
			seen[m.Tile.Value] = map[tile.Suit]bool{}
		}
		seen[m.Tile.Value][m.Tile.Suit] = true
	}
	for _, suits := range seen {
		if suits[tile.Man] && suits[tile.Pin] && suits[tile.Sou] {
			return true
		}
	}
	return false
}

func checkIttsu(melds []meld.Meld) bool {
	need := map[tile.Suit]map[int]bool{tile.Man: {}, tile.Pin: {}, tile.Sou: {}}
	for _, m := range melds {
		if m.IsSequence() {
			need[m.Tile.Suit][m.Tile.Value] = true
		}
	}
	for _, vals := range need {
		if vals[1] && vals[4] && vals[7] {
			return true
		}
	}
	return false
}

func checkChanta(melds []meld.Meld, pair tile.Tile) bool {
	if !pair.IsTerminalOrHonor() {
		return false
	}
	for _, m := range melds {
		if !meldHasTerminalOrHonor(m) {
			return false
		}
	}
	return true
}

func checkJunchan(melds []meld.Meld, pair tile.Tile) bool {
	if !pair.IsTerminal() {
		return false
	}
	for _, m := range melds {
		if m.Tile.IsHonor() {
			return false
		}
		if !meldHasTerminalOrHonor(m) {
			return false
		}
	}
	return true
}

func meldHasTerminalOrHonor(m meld.Meld) bool {
	for _, t := range m.Tiles() {
		if t.IsTerminalOrHonor() {
			return true
		}
	}
	return false
}

func checkFlush(tiles []tile.Tile) (Name, bool) {
	suits := map[tile.Suit]bool{}
	hasHonor := false
	for _, t := range tiles {
		if t.IsHonor() {
			hasHonor = true
			continue
		}
		suits[t.Suit] = true
	}
	if len(suits) != 1 {
		return 0, false
	}
	if hasHonor {
		return Honitsu, true
	}
	return Chinitsu, true
}
