package generator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Range is an inclusive integer interval [Low, High].
type Range struct {
	Low  int `mapstructure:"low"`
	High int `mapstructure:"high" validate:"gtefield=Low"`
}

// Config controls the Randomized Generator.
type Config struct {
	// Seed feeds the generator's random source. Zero picks a seed from
	// the clock, making output non-reproducible.
	Seed uint64 `mapstructure:"seed"`

	// IDs bounds the student ids drawn without replacement.
	IDs Range `mapstructure:"ids"`

	// StrongScores and WeakScores are the categorical score menus for
	// strong and weak students. Duplicates weight the draw.
	StrongScores []int `mapstructure:"strong_scores" validate:"min=1"`
	WeakScores   []int `mapstructure:"weak_scores" validate:"min=1"`

	// Assignment profile menus. One entry of each is chosen per
	// assignment and shared by every student.
	PostCounts   []Range `mapstructure:"post_counts" validate:"min=1,dive"`
	FirstLengths []Range `mapstructure:"first_lengths" validate:"min=1,dive"`
	LaterLengths []Range `mapstructure:"later_lengths" validate:"min=1,dive"`
	FirstImages  []Range `mapstructure:"first_images" validate:"min=1,dive"`

	// Late and Early are the hour ranges for late and early submissions.
	Late  Range `mapstructure:"late"`
	Early Range `mapstructure:"early"`

	// PenaltyAfter is the lateness in hours beyond which Penalty points
	// are deducted from the score.
	PenaltyAfter int `mapstructure:"penalty_after"`
	Penalty      int `mapstructure:"penalty" validate:"gte=0"`
}

// DefaultConfig returns the standard synthetic-cohort settings with a
// clock-derived seed.
func DefaultConfig() Config {
	return Config{
		IDs:          Range{1001, 8999},
		StrongScores: []int{50, 50, 50, 40, 40, 30},
		WeakScores:   []int{40, 40, 30, 30, 20},
		PostCounts:   []Range{{1, 1}, {1, 3}, {1, 5}, {2, 5}},
		FirstLengths: []Range{{200, 800}, {700, 1300}, {700, 1300}, {1000, 2500}},
		LaterLengths: []Range{{100, 200}, {100, 300}, {200, 400}},
		FirstImages:  []Range{{0, 1}, {0, 2}, {1, 2}},
		Late:         Range{4, 72},
		Early:        Range{-48, -4},
		PenaltyAfter: 12,
		Penalty:      5,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(configStructValidation, Config{})
	return v
}

// configStructValidation rejects menus that would produce posts with no
// first post or negative counters.
func configStructValidation(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)

	check := func(field string, menu []Range, floor int) {
		for _, r := range menu {
			if r.Low < floor {
				sl.ReportError(menu, field, field, "min_low", fmt.Sprint(floor))
				return
			}
		}
	}
	check("PostCounts", cfg.PostCounts, 1)
	check("FirstLengths", cfg.FirstLengths, 0)
	check("LaterLengths", cfg.LaterLengths, 0)
	check("FirstImages", cfg.FirstImages, 0)

	if cfg.IDs.Low < 0 {
		sl.ReportError(cfg.IDs, "IDs", "IDs", "min_low", "0")
	}
}

// Validate reports every setting that would make generation fail or
// produce an invalid gradebook.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("generator config: %w", err)
	}
	return nil
}
