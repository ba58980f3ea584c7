// Package shanten computes distance-to-tenpai and tile acceptance.
// Grounded on original_source/shanten.rs's three-target-shape formula,
// extended with the called-meld adjustment spec.md §4.4 adds (no
// counterpart in original_source) and memoized via internal/cache when
// a cache is supplied.
package shanten

import (
	"github.com/sullenb/agari/internal/cache"
	"github.com/sullenb/agari/tile"
)

// Shape tags which of the three target structures produced the result.
type Shape uint8

const (
	Standard Shape = iota
	SevenPairs
	ThirteenOrphans
)

// Result is the outcome of a shanten calculation. Shanten is signed:
// -1 means complete, 0 means tenpai, n>0 means n tile exchanges away.
type Result struct {
	Shanten int
	Shape   Shape
}

// Calculate returns the minimum shanten across all three target shapes
// for the tiles in hand, given k already-called melds. SevenPairs and
// ThirteenOrphans are only considered when k == 0, per spec §4.4.
func Calculate(hand tile.Counts, calledMelds int) Result {
	return CalculateCached(hand, calledMelds, nil)
}

// CalculateCached is Calculate but consults c (if non-nil) first and
// populates it on a miss. A cache hit and a cache miss always return the
// identical Result.
func CalculateCached(hand tile.Counts, calledMelds int, c *cache.ShantenCache) Result {
	key := cache.Key(hand, calledMelds)
	if v, ok := c.Get(key); ok {
		return v.(Result)
	}

	std := standardShanten(hand, calledMelds)
	best := Result{Shanten: std, Shape: Standard}

	if calledMelds == 0 {
		if chi := chiitoitsuShanten(hand); chi < best.Shanten {
			best = Result{Shanten: chi, Shape: SevenPairs}
		}
		if kok := kokushiShanten(hand); kok < best.Shanten {
			best = Result{Shanten: kok, Shape: ThirteenOrphans}
		}
	}

	c.Set(key, best)
	return best
}

// standardShanten implements spec §4.4's standard-shape formula: try
// both "no pair extracted" and "pair extracted at each candidate tile",
// apply the called-meld offset, then the tile-deficit lower bound.
func standardShanten(counts tile.Counts, calledMelds int) int {
	best := 8

	melds, taatsu := countMeldsAndTaatsu(counts)
	if v := shantenValue(melds, taatsu, false, calledMelds); v < best {
		best = v
	}

	for i := 0; i < 34; i++ {
		if counts[i] < 2 {
			continue
		}
		c2 := counts
		c2[i] -= 2
		melds, taatsu := countMeldsAndTaatsu(c2)
		if v := shantenValue(melds, taatsu, true, calledMelds); v < best {
			best = v
		}
	}

	deficit := tileDeficit(counts, calledMelds)
	if deficit > best {
		return deficit
	}
	return best
}

// tileDeficit implements spec §4.4's called-meld tile-deficit
// correction: with k called melds the minimum hand-tile count required
// to be at tenpai is max(1, 13-3k); fewer tiles than that caps shanten
// from below by the missing-tile count. This has no counterpart in
// original_source/shanten.rs, which never models called melds.
func tileDeficit(counts tile.Counts, calledMelds int) int {
	if calledMelds == 0 {
		return -1
	}
	required := 13 - 3*calledMelds
	if required < 1 {
		required = 1
	}
	have := counts.Total()
	if have >= required {
		return -1
	}
	return required - have
}

func shantenValue(melds, taatsu int, hasPair bool, calledMelds int) int {
	totalMelds := melds + calledMelds
	if totalMelds >= 4 && hasPair {
		return -1
	}

	maxMelds := totalMelds
	if maxMelds > 4 {
		maxMelds = 4
	}
	maxUsefulTaatsu := 4 - maxMelds
	usefulTaatsu := taatsu
	if usefulTaatsu > maxUsefulTaatsu {
		usefulTaatsu = maxUsefulTaatsu
	}

	shanten := 8 - 2*maxMelds - usefulTaatsu
	if hasPair {
		shanten--
	}

	totalBlocks := maxMelds + usefulTaatsu
	if totalBlocks > 4 {
		shanten += totalBlocks - 4
	}
	return shanten
}

// countMeldsAndTaatsu counts complete melds and partial melds (taatsu)
// across the three suits (sequences and triplets) and the honors
// (triplets and pairs only).
func countMeldsAndTaatsu(counts tile.Counts) (melds, taatsu int) {
	tiles := counts
	for _, start := range []int{0, 9, 18} {
		m, t := countSuitMelds(&tiles, start)
		melds += m
		taatsu += t
	}

	for i := 27; i < 34; i++ {
		if tiles[i] >= 3 {
			melds++
			tiles[i] -= 3
		}
		if tiles[i] >= 2 {
			taatsu++
			tiles[i] -= 2
		}
	}
	return melds, taatsu
}

func countSuitMelds(tiles *tile.Counts, start int) (melds, taatsu int) {
	m1, rem1 := extractSequencesFirst(*tiles, start)
	m2, rem2 := extractTripletsFirst(*tiles, start)

	bestMelds, remaining := m1, rem1
	if m2 > m1 {
		bestMelds, remaining = m2, rem2
	}
	melds = bestMelds

	for i := start; i < start+9; i++ {
		if remaining[i] >= 2 {
			taatsu++
			remaining[i] -= 2
		}
	}
	for i := start; i < start+8; i++ {
		if remaining[i] >= 1 && remaining[i+1] >= 1 {
			taatsu++
			remaining[i]--
			remaining[i+1]--
		}
	}
	for i := start; i < start+7; i++ {
		if remaining[i] >= 1 && remaining[i+2] >= 1 {
			taatsu++
			remaining[i]--
			remaining[i+2]--
		}
	}

	for i := start; i < start+9; i++ {
		tiles[i] = remaining[i]
	}
	return melds, taatsu
}

func extractSequencesFirst(tiles tile.Counts, start int) (int, tile.Counts) {
	melds := 0
	for i := start; i < start+7; i++ {
		for tiles[i] >= 1 && tiles[i+1] >= 1 && tiles[i+2] >= 1 {
			melds++
			tiles[i]--
			tiles[i+1]--
			tiles[i+2]--
		}
	}
	for i := start; i < start+9; i++ {
		for tiles[i] >= 3 {
			melds++
			tiles[i] -= 3
		}
	}
	return melds, tiles
}

func extractTripletsFirst(tiles tile.Counts, start int) (int, tile.Counts) {
	melds := 0
	for i := start; i < start+9; i++ {
		for tiles[i] >= 3 {
			melds++
			tiles[i] -= 3
		}
	}
	for i := start; i < start+7; i++ {
		for tiles[i] >= 1 && tiles[i+1] >= 1 && tiles[i+2] >= 1 {
			melds++
			tiles[i]--
			tiles[i+1]--
			tiles[i+2]--
		}
	}
	return melds, tiles
}

// chiitoitsuShanten implements spec §4.4's seven-pairs distance.
func chiitoitsuShanten(counts tile.Counts) int {
	pairs, unique := 0, 0
	for _, c := range counts {
		if c >= 1 {
			unique++
		}
		if c >= 2 {
			pairs++
		}
	}
	deficit := 7 - unique
	if deficit < 0 {
		deficit = 0
	}
	return 6 - pairs + deficit
}

// kokushiShanten implements spec §4.4's thirteen-orphans distance.
func kokushiShanten(counts tile.Counts) int {
	distinct, hasPair := 0, 0
	for _, t := range tile.KokushiTiles {
		c := counts[t.Index()]
		if c >= 1 {
			distinct++
		}
		if c >= 2 {
			hasPair = 1
		}
	}
	return 13 - distinct - hasPair
}

// UkeireTile is one acceptance tile and the number of its copies still
// available (4 minus the count already in hand).
type UkeireTile struct {
	Tile      tile.Tile
	Available int
}

type UkeireResult struct {
	Shanten int
	Tiles   []UkeireTile
	Total   int
}

// Ukeire returns every tile that, added to hand (respecting the 4-copy
// cap), strictly lowers the shanten, paired with its remaining
// availability, per spec §4.4.
func Ukeire(hand tile.Counts, calledMelds int) UkeireResult {
	return UkeireCached(hand, calledMelds, nil)
}

func UkeireCached(hand tile.Counts, calledMelds int, c *cache.ShantenCache) UkeireResult {
	current := CalculateCached(hand, calledMelds, c)
	result := UkeireResult{Shanten: current.Shanten}

	for i := 0; i < 34; i++ {
		if hand[i] >= 4 {
			continue
		}
		trial := hand.Plus(i)
		next := CalculateCached(trial, calledMelds, c)
		if next.Shanten < current.Shanten {
			available := 4 - hand[i]
			result.Tiles = append(result.Tiles, UkeireTile{Tile: tile.FromIndex(i), Available: available})
			result.Total += available
		}
	}
	return result
}
