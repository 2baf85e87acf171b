package generator

import (
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides of generator settings, as in
// GRADEBOOK_SEED or GRADEBOOK_PENALTY.
const EnvPrefix = "GRADEBOOK"

// LoadConfig reads generator settings from a YAML, JSON or TOML file over
// DefaultConfig. Keys missing from the file keep their defaults; scalar
// keys can also come from the environment. An empty path reads only the
// environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("penalty_after", cfg.PenaltyAfter)
	v.SetDefault("penalty", cfg.Penalty)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read generator config %s: %w", path, err)
		}
	}

	// Lists in the file replace the default menus instead of merging
	// into them element by element.
	for key, menu := range map[string]*[]Range{
		"post_counts":   &cfg.PostCounts,
		"first_lengths": &cfg.FirstLengths,
		"later_lengths": &cfg.LaterLengths,
		"first_images":  &cfg.FirstImages,
	} {
		if v.IsSet(key) {
			*menu = nil
		}
	}
	for key, menu := range map[string]*[]int{
		"strong_scores": &cfg.StrongScores,
		"weak_scores":   &cfg.WeakScores,
	} {
		if v.IsSet(key) {
			*menu = nil
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode generator config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
