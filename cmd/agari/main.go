// Command agari is a small demonstration driver for the riichi package:
// it builds one sample hand, prints its shanten (and its ukeire when the
// hand is tenpai; the sample hand is already complete), then scores it
// as a win. Grounded on the teacher's main.go/display.go orchestration
// (build a hand, report its state, report the result of the turn) with
// the interactive draw/discard loop dropped since this engine only
// evaluates already-decided hands, not whole games.
package main

import (
	"fmt"
	"os"

	agari "github.com/sullenb/agari"
	"github.com/sullenb/agari/internal/cache"
	"github.com/sullenb/agari/internal/config"
	"github.com/sullenb/agari/internal/rlog"
	"github.com/sullenb/agari/meld"
	"github.com/sullenb/agari/tile"
)

func sampleHand() tile.Multiset {
	return tile.NewMultiset([]tile.Tile{
		tile.Suited(tile.Man, 2), tile.Suited(tile.Man, 3), tile.Suited(tile.Man, 4),
		tile.Suited(tile.Pin, 5), tile.Suited(tile.Pin, 6), tile.Suited(tile.Pin, 7),
		tile.Suited(tile.Sou, 3), tile.Suited(tile.Sou, 4), tile.Suited(tile.Sou, 5),
		tile.FromHonor(tile.White), tile.FromHonor(tile.White), tile.FromHonor(tile.White),
		tile.Suited(tile.Man, 8), tile.Suited(tile.Man, 8),
	})
}

func main() {
	log := rlog.New()
	rules := config.Default()
	hand := sampleHand()

	shantenCache, err := cache.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cache.New: %v\n", err)
		os.Exit(1)
	}
	defer shantenCache.Close()

	// Ukeire re-derives shanten for every candidate tile, so sharing one
	// cache across both calls lets the second reuse the first's work.
	shanten := agari.Shanten(hand, 0, shantenCache)
	fmt.Printf("shanten: %s\n", shanten.Description)

	if shanten.Shanten == 0 {
		ukeire := agari.Ukeire(hand, 0, shantenCache)
		fmt.Printf("ukeire: %d tiles across %d kinds\n", ukeire.Total, len(ukeire.Tiles))
	}

	ctx := agari.NewContext(agari.Tsumo, tile.East, tile.East)
	result, err := agari.Evaluate(hand, []meld.Meld{}, ctx, rules, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no win: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("won on %s: %d han, %d fu, %s\n", result.InferredTile, result.Score.Han, result.Score.Fu, result.Score.Tier)
	for _, y := range result.Score.Yaku.Yaku {
		fmt.Printf("  %s (%d han)\n", y.Name, y.Han)
	}
	fmt.Printf("payment: %+v\n", result.Score.Payment)
}
