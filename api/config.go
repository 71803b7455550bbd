package api

import (
	"github.com/spf13/viper"

	"github.com/codeXAI06/ReliefLink/score"
)

// Heuristic knobs are calibration, not law. Viper carries overrides;
// the defaults here match the score package.
func extractConfig() score.ExtractConfig {
	cfg := score.DefaultExtractConfig()
	if v := viper.GetFloat64("score.distress_increment"); v > 0 {
		cfg.DistressIncrement = v
	}
	if v := viper.GetFloat64("score.distress_dampener"); v > 0 {
		cfg.DistressDampener = v
	}
	return cfg
}

func duplicateConfig() score.DuplicateConfig {
	cfg := score.DefaultDuplicateConfig()
	if v := viper.GetFloat64("duplicate.radius_km"); v > 0 {
		cfg.RadiusKM = v
	}
	if v := viper.GetFloat64("duplicate.threshold"); v > 0 {
		cfg.Threshold = v
	}
	if v := viper.GetDuration("duplicate.window"); v > 0 {
		cfg.Window = v
	}
	return cfg
}

func matchConfig() score.MatchConfig {
	cfg := score.DefaultMatchConfig()
	if v := viper.GetFloat64("match.max_distance_km"); v > 0 {
		cfg.MaxDistanceKM = v
	}
	if v := viper.GetInt("match.top_n"); v > 0 {
		cfg.TopN = v
	}
	return cfg
}
