// Package config loads the one configurable surface this engine exposes:
// an optional override of fu base values, kan fu multipliers, score-tier
// base points, and the four-concealed-pair-wait-doubling rule flag
// (spec §9, §4.8). Absent a file, Load returns compiled-in
// defaults identical to spec.md's tables. Grounded on
// lamyinia-GoMahjong/GoMahjong/common/config/app_config.go's
// viper+fsnotify load-and-watch pattern, narrowed to this engine's one
// mapstructure-tagged table instead of a server's full node config.
package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// RuleTable holds every fu/score constant the engine consults. The zero
// value is not meaningful; use Default() or Load().
type RuleTable struct {
	BaseFu               int `mapstructure:"baseFu"`
	MenzenRonFu          int `mapstructure:"menzenRonFu"`
	TsumoFu              int `mapstructure:"tsumoFu"`
	PinfuTsumoFu         int `mapstructure:"pinfuTsumoFu"`
	PinfuRonFu           int `mapstructure:"pinfuRonFu"`
	ChiitoitsuFu         int `mapstructure:"chiitoitsuFu"`
	WaitFu               int `mapstructure:"waitFu"`
	SimpleOpenTripletFu  int `mapstructure:"simpleOpenTripletFu"`
	SimpleClosedTripletFu int `mapstructure:"simpleClosedTripletFu"`
	TermOpenTripletFu    int `mapstructure:"termOpenTripletFu"`
	TermClosedTripletFu  int `mapstructure:"termClosedTripletFu"`
	SimpleOpenKanFu      int `mapstructure:"simpleOpenKanFu"`
	SimpleClosedKanFu    int `mapstructure:"simpleClosedKanFu"`
	TermOpenKanFu        int `mapstructure:"termOpenKanFu"`
	TermClosedKanFu      int `mapstructure:"termClosedKanFu"`
	YakuhaiPairFu        int `mapstructure:"yakuhaiPairFu"`
	MinimumFu            int `mapstructure:"minimumFu"`

	ManganBasePoints      int `mapstructure:"manganBasePoints"`
	HanemanBasePoints     int `mapstructure:"hanemanBasePoints"`
	BaimanBasePoints      int `mapstructure:"baimanBasePoints"`
	SanbaimanBasePoints   int `mapstructure:"sanbaimanBasePoints"`
	YakumanBasePoints     int `mapstructure:"yakumanBasePoints"`
	DoubleYakumanBasePoints int `mapstructure:"doubleYakumanBasePoints"`

	// DoubleSuuankouTanki selects the rule variant where a four-concealed-
	// triplet hand won by self-draw on its pair tile doubles suuankou to
	// double-yakuman; a ron on the pair tile stays single.
	// Defaults to false (spec §9's single-limit default).
	DoubleSuuankouTanki bool `mapstructure:"doubleSuuankouTanki"`
}

// Default returns the compiled-in rule table matching spec.md's tables.
func Default() RuleTable {
	return RuleTable{
		BaseFu:                20,
		MenzenRonFu:           10,
		TsumoFu:               2,
		PinfuTsumoFu:          20,
		PinfuRonFu:            30,
		ChiitoitsuFu:          25,
		WaitFu:                2,
		SimpleOpenTripletFu:   2,
		SimpleClosedTripletFu: 4,
		TermOpenTripletFu:     4,
		TermClosedTripletFu:   8,
		SimpleOpenKanFu:       8,
		SimpleClosedKanFu:     16,
		TermOpenKanFu:         16,
		TermClosedKanFu:       32,
		YakuhaiPairFu:         2,
		MinimumFu:             30,

		ManganBasePoints:        2000,
		HanemanBasePoints:       3000,
		BaimanBasePoints:        4000,
		SanbaimanBasePoints:     6000,
		YakumanBasePoints:       8000,
		DoubleYakumanBasePoints: 16000,

		DoubleSuuankouTanki: false,
	}
}

// Load reads an optional YAML/JSON/TOML override file at path, merging
// it onto Default(). If onChange is non-nil, it also watches the file via
// fsnotify and invokes onChange with the reloaded table whenever the file
// is edited; with a nil onChange no watcher is started. If path is empty,
// Load returns Default() with no watcher.
func Load(path string, onChange func(RuleTable)) (RuleTable, error) {
	table := Default()
	if path == "" {
		return table, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v, table)

	if err := v.ReadInConfig(); err != nil {
		return table, err
	}
	if err := v.Unmarshal(&table); err != nil {
		return table, err
	}

	if onChange != nil {
		v.WatchConfig()
		v.OnConfigChange(func(_ fsnotify.Event) {
			reloaded := Default()
			if err := v.Unmarshal(&reloaded); err == nil {
				onChange(reloaded)
			}
		})
	}

	return table, nil
}

func setDefaults(v *viper.Viper, t RuleTable) {
	v.SetDefault("baseFu", t.BaseFu)
	v.SetDefault("menzenRonFu", t.MenzenRonFu)
	v.SetDefault("tsumoFu", t.TsumoFu)
	v.SetDefault("pinfuTsumoFu", t.PinfuTsumoFu)
	v.SetDefault("pinfuRonFu", t.PinfuRonFu)
	v.SetDefault("chiitoitsuFu", t.ChiitoitsuFu)
	v.SetDefault("waitFu", t.WaitFu)
	v.SetDefault("simpleOpenTripletFu", t.SimpleOpenTripletFu)
	v.SetDefault("simpleClosedTripletFu", t.SimpleClosedTripletFu)
	v.SetDefault("termOpenTripletFu", t.TermOpenTripletFu)
	v.SetDefault("termClosedTripletFu", t.TermClosedTripletFu)
	v.SetDefault("simpleOpenKanFu", t.SimpleOpenKanFu)
	v.SetDefault("simpleClosedKanFu", t.SimpleClosedKanFu)
	v.SetDefault("termOpenKanFu", t.TermOpenKanFu)
	v.SetDefault("termClosedKanFu", t.TermClosedKanFu)
	v.SetDefault("yakuhaiPairFu", t.YakuhaiPairFu)
	v.SetDefault("minimumFu", t.MinimumFu)
	v.SetDefault("manganBasePoints", t.ManganBasePoints)
	v.SetDefault("hanemanBasePoints", t.HanemanBasePoints)
	v.SetDefault("baimanBasePoints", t.BaimanBasePoints)
	v.SetDefault("sanbaimanBasePoints", t.SanbaimanBasePoints)
	v.SetDefault("yakumanBasePoints", t.YakumanBasePoints)
	v.SetDefault("doubleYakumanBasePoints", t.DoubleYakumanBasePoints)
	v.SetDefault("doubleSuuankouTanki", t.DoubleSuuankouTanki)
}
