// Package config loads the CLI's and server's configuration surface
// (spec.md §6): board size, difficulty list, variant, batch count, an
// optional seed, and the refinement/output toggles. Values are layered
// flags > environment > config file > defaults via viper, the way the
// teacher's plain os.Getenv loader resolves PORT/PUZZLES_FILE, but
// extended to the richer option set the generator core needs.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the fully-resolved configuration the CLI and server hand to
// the core (spec.md §6's Configuration block). Unknown keys in the
// backing viper instance are ignored.
type Config struct {
	Size                int
	BoxRows             int
	BoxCols             int
	Difficulty          string
	Variant             string
	Count               int
	Seed                int64
	SeedSet             bool
	UseRefinement       bool
	IncludeSolution     bool
	IncludeSolvingSheet bool

	Port string
}

// Defaults populates a viper instance with this package's baseline
// values before flags, environment, and an optional config file are
// layered on top by the caller.
func Defaults(v *viper.Viper) {
	v.SetDefault("size", 9)
	v.SetDefault("box_rows", 3)
	v.SetDefault("box_cols", 3)
	v.SetDefault("difficulty", "medium")
	v.SetDefault("variant", "classical")
	v.SetDefault("count", 1)
	v.SetDefault("seed_set", false)
	v.SetDefault("use_refinement", true)
	v.SetDefault("include_solution", true)
	v.SetDefault("include_solving_sheet", false)
	v.SetDefault("port", "8080")
}

// Load reads a fully-populated viper instance into a Config and
// fail-fast validates the geometry fields, mirroring the teacher's
// fail-fast style in pkg/config/config.go (there: JWT_SECRET presence
// and length; here: board shape consistency).
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Size:                v.GetInt("size"),
		BoxRows:             v.GetInt("box_rows"),
		BoxCols:             v.GetInt("box_cols"),
		Difficulty:          v.GetString("difficulty"),
		Variant:             v.GetString("variant"),
		Count:               v.GetInt("count"),
		Seed:                v.GetInt64("seed"),
		SeedSet:             v.IsSet("seed"),
		UseRefinement:       v.GetBool("use_refinement"),
		IncludeSolution:     v.GetBool("include_solution"),
		IncludeSolvingSheet: v.GetBool("include_solving_sheet"),
		Port:                v.GetString("port"),
	}

	if cfg.BoxRows*cfg.BoxCols != cfg.Size {
		return nil, fmt.Errorf("config: box_rows*box_cols (%d*%d) must equal size (%d)", cfg.BoxRows, cfg.BoxCols, cfg.Size)
	}
	if cfg.Size <= 0 {
		return nil, errors.New("config: size must be positive")
	}
	if cfg.Count <= 0 {
		return nil, errors.New("config: count must be positive")
	}

	return cfg, nil
}
