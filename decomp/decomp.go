// Package decomp enumerates every legal structural decomposition of a
// tile multiset plus a fixed set of already-called melds. Unlike the
// teacher's findMeldsRecursive (which returns on the first success), this
// follows original_source/hand.rs's find_all_meld_combinations and
// explores every branch, then deduplicates structurally.
package decomp

import (
	"sort"

	"github.com/sullenb/agari/meld"
	"github.com/sullenb/agari/tile"
)

// Shape tags the three target structures a hand can decompose into.
type Shape uint8

const (
	Standard Shape = iota
	SevenPairs
	ThirteenOrphans
)

// Decomposition is one legal structural reading of a hand.
type Decomposition struct {
	Shape Shape

	// Standard: Melds holds 4 entries in canonical tile order (including
	// any called melds from F), Pair is the head pair tile.
	Melds []meld.Meld
	Pair  tile.Tile

	// SevenPairs: the seven distinct paired tiles, canonical order.
	Pairs []tile.Tile

	// ThirteenOrphans: the one terminal/honor tile held twice.
	Doubled tile.Tile
}

// Decompose returns every distinct Decomposition of hand (the tiles not
// already committed to called), given called — the already-fixed melds,
// each contributing one complete meld toward the 4 needed. hand must
// contain exactly the uncommitted tiles (so len(hand)+3*|quads counted
// once|... == 13 or 14 as appropriate for the caller).
func Decompose(hand tile.Multiset, called []meld.Meld) []Decomposition {
	var results []Decomposition

	if len(called) == 0 {
		if doubled, ok := kokushiPair(hand); ok {
			results = append(results, Decomposition{Shape: ThirteenOrphans, Doubled: doubled})
		}
		if pairs, ok := sevenPairs(hand); ok {
			results = append(results, Decomposition{Shape: SevenPairs, Pairs: pairs})
		}
	}

	meldsNeeded := 4 - len(called)
	for _, pairTile := range hand.Sorted() {
		if hand.Count(pairTile) < 2 {
			continue
		}
		remaining := hand.Remove(pairTile).Remove(pairTile)
		for _, combo := range findMeldCombinations(remaining.ToCounts(), meldsNeeded) {
			all := append(append([]meld.Meld{}, called...), combo...)
			sort.Slice(all, func(i, j int) bool { return all[i].Tile.Less(all[j].Tile) })
			results = append(results, Decomposition{Shape: Standard, Melds: all, Pair: pairTile})
		}
	}

	return dedup(results)
}

// findMeldCombinations returns every way to form exactly needed melds
// from counts, recursing on the smallest remaining tile each step (the
// same fixed processing order original_source/hand.rs uses, so that
// revisits produce the same candidates and dedup is reliable).
func findMeldCombinations(counts tile.Counts, needed int) [][]meld.Meld {
	if needed == 0 {
		if counts.Total() == 0 {
			return [][]meld.Meld{{}}
		}
		return nil
	}
	if counts.Total() == 0 {
		return nil
	}

	idx := smallestNonzero(counts)
	if idx == -1 {
		return nil
	}
	t := tile.FromIndex(idx)

	var results [][]meld.Meld

	if counts[idx] >= 3 {
		after := counts
		after[idx] -= 3
		for _, sub := range findMeldCombinations(after, needed-1) {
			results = append(results, append([]meld.Meld{meld.NewTriplet(t, false)}, sub...))
		}
	}

	if t.Kind == tile.KindSuited && t.Value <= 7 {
		i1 := idx + 1
		i2 := idx + 2
		if counts[i1] >= 1 && counts[i2] >= 1 {
			after := counts
			after[idx]--
			after[i1]--
			after[i2]--
			for _, sub := range findMeldCombinations(after, needed-1) {
				results = append(results, append([]meld.Meld{meld.NewSequence(t, false)}, sub...))
			}
		}
	}

	return results
}

func smallestNonzero(counts tile.Counts) int {
	for i, n := range counts {
		if n > 0 {
			return i
		}
	}
	return -1
}

func sevenPairs(hand tile.Multiset) ([]tile.Tile, bool) {
	sorted := hand.Sorted()
	if len(sorted) != 7 {
		return nil, false
	}
	for _, t := range sorted {
		if hand.Count(t) != 2 {
			return nil, false
		}
	}
	return sorted, true
}

func kokushiPair(hand tile.Multiset) (tile.Tile, bool) {
	if hand.Total() != 14 {
		return tile.Tile{}, false
	}
	for _, t := range hand.Sorted() {
		if !tile.IsKokushiTile(t) {
			return tile.Tile{}, false
		}
	}
	var doubled tile.Tile
	found := false
	for _, t := range tile.KokushiTiles {
		c := hand.Count(t)
		if c < 1 {
			return tile.Tile{}, false
		}
		if c == 2 {
			if found {
				return tile.Tile{}, false
			}
			doubled = t
			found = true
		} else if c > 2 {
			return tile.Tile{}, false
		}
	}
	if !found {
		return tile.Tile{}, false
	}
	return doubled, true
}

// dedup removes structurally-equal decompositions, preserving first-seen
// order. Two Standard decompositions compare equal when their (sorted)
// melds and pair match; the melds are already canonically sorted by
// Decompose before this runs.
func dedup(ds []Decomposition) []Decomposition {
	seen := make(map[string]bool, len(ds))
	out := make([]Decomposition, 0, len(ds))
	for _, d := range ds {
		key := decompKey(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

func decompKey(d Decomposition) string {
	switch d.Shape {
	case Standard:
		b := []byte{byte(d.Shape), byte(d.Pair.Index())}
		for _, m := range d.Melds {
			b = append(b, byte(m.Kind), byte(m.Tile.Index()))
			if m.Kind == meld.Quad {
				b = append(b, byte(m.QuadKind))
			} else {
				b = append(b, boolByte(m.Open))
			}
		}
		return string(b)
	case SevenPairs:
		b := []byte{byte(d.Shape)}
		for _, t := range d.Pairs {
			b = append(b, byte(t.Index()))
		}
		return string(b)
	default: // ThirteenOrphans
		return string([]byte{byte(d.Shape), byte(d.Doubled.Index())})
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// IsWinning reports whether hand (with called melds) admits at least one
// decomposition.
func IsWinning(hand tile.Multiset, called []meld.Meld) bool {
	return len(Decompose(hand, called)) > 0
}
