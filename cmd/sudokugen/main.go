package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew867/sudokugen/internal/batch"
	"github.com/andrew867/sudokugen/internal/core"
	"github.com/andrew867/sudokugen/internal/generator"
	"github.com/andrew867/sudokugen/internal/rating"
	"github.com/andrew867/sudokugen/internal/refiner"
	"github.com/andrew867/sudokugen/internal/stats"
	"github.com/andrew867/sudokugen/internal/technique"
	"github.com/andrew867/sudokugen/pkg/config"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:   "sudokugen",
		Short: "Generate, rate, and batch-produce Sudoku puzzles",
	}

	root.AddCommand(newGenerateCmd(), newRateCmd(), newBatchCmd(), newPracticeCmd())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func newGenerateCmd() *cobra.Command {
	v := viper.New()
	config.Defaults(v)

	var difficulty string
	var variant string
	var size, boxRows, boxCols int
	var useRefinement bool
	var seed int64
	var seedSet bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			v.Set("size", size)
			v.Set("box_rows", boxRows)
			v.Set("box_cols", boxCols)
			v.Set("difficulty", difficulty)
			v.Set("use_refinement", useRefinement)
			if seedSet {
				v.Set("seed", seed)
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			class, ok := core.ParseClass(cfg.Difficulty)
			if !ok {
				return fmt.Errorf("unrecognized difficulty %q", cfg.Difficulty)
			}
			vr := core.ParseVariant(variant)

			var gen *generator.Generator
			if cfg.SeedSet {
				gen = generator.NewWithSeed(cfg.Seed)
			} else {
				gen = generator.New()
			}

			gp, err := gen.Generate(class, vr, cfg.Size, cfg.BoxRows, cfg.BoxCols, cfg.UseRefinement)
			if err != nil {
				return err
			}
			if cfg.UseRefinement {
				result := refiner.New().RefineToDifficulty(gp.Puzzle, gp.Solution, class, newWorkerRNG(0), false)
				gp.Puzzle = result.Puzzle
				gp.Rating = result.Rating
				gp.RefinementIterations = result.Iterations
			}

			fmt.Println(gp.Puzzle.String())
			if cfg.IncludeSolution {
				fmt.Println(gp.Solution.String())
			}
			log.Info().
				Str("class", gp.Difficulty.String()).
				Float64("score", gp.Rating.CompositeScore).
				Int("clues", gp.Rating.ClueCount).
				Msg("generated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "difficulty class")
	cmd.Flags().StringVarP(&variant, "variant", "k", "classical", "puzzle variant")
	cmd.Flags().IntVar(&size, "size", 9, "board size")
	cmd.Flags().IntVar(&boxRows, "box-rows", 3, "box rows")
	cmd.Flags().IntVar(&boxCols, "box-cols", 3, "box cols")
	cmd.Flags().BoolVar(&useRefinement, "refine", true, "refine difficulty after carving")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed")
	cmd.Flags().BoolVar(&seedSet, "seed-set", false, "treat --seed as explicitly set")

	return cmd
}

func newRateCmd() *cobra.Command {
	var size, boxRows, boxCols int

	cmd := &cobra.Command{
		Use:   "rate [puzzle-string]",
		Short: "Rate an existing puzzle's difficulty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, offenses, err := core.ParseBoard(size, boxRows, boxCols, args[0])
			if err != nil {
				return err
			}
			if offenses != nil {
				return offenses
			}

			r := rating.NewRater()
			result := r.Rate(b)
			fmt.Printf("class=%s score=%.2f clues=%d iterations=%d\n",
				result.EstimatedClass, result.CompositeScore, result.ClueCount, result.IterationCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 9, "board size")
	cmd.Flags().IntVar(&boxRows, "box-rows", 3, "box rows")
	cmd.Flags().IntVar(&boxCols, "box-cols", 3, "box cols")
	return cmd
}

// newPracticeCmd rates a puzzle against a restricted set of techniques,
// for players drilling a specific technique: everything not named in
// --techniques is disabled in the registry before detection runs, so the
// composite score and instance list only reflect the allowed subset.
func newPracticeCmd() *cobra.Command {
	var size, boxRows, boxCols int
	var techniques string

	cmd := &cobra.Command{
		Use:   "practice [puzzle-string]",
		Short: "Rate a puzzle using only a chosen subset of solving techniques",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, offenses, err := core.ParseBoard(size, boxRows, boxCols, args[0])
			if err != nil {
				return err
			}
			if offenses != nil {
				return offenses
			}

			r := rating.NewRater()
			if techniques != "" {
				reg := technique.NewRegistry()
				for _, tag := range allTags() {
					reg.SetEnabled(tag, false)
				}
				for _, name := range strings.Split(techniques, ",") {
					tag, ok := core.ParseTag(name)
					if !ok {
						return fmt.Errorf("unrecognized technique %q", name)
					}
					reg.SetEnabled(tag, true)
				}
				r = rating.NewRaterWithRegistry(reg)
			}

			result := r.Rate(b)
			fmt.Printf("class=%s score=%.2f techniqueScore=%.1f instances=%d\n",
				result.EstimatedClass, result.CompositeScore, result.TechniqueScore, len(result.Techniques))
			for _, inst := range result.Techniques {
				fmt.Printf("  %s at (%d,%d): %s\n", inst.Tag, inst.AnchorRow, inst.AnchorCol, inst.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 9, "board size")
	cmd.Flags().IntVar(&boxRows, "box-rows", 3, "box rows")
	cmd.Flags().IntVar(&boxCols, "box-cols", 3, "box cols")
	cmd.Flags().StringVar(&techniques, "techniques", "", "comma-separated technique names to allow (default: all)")
	return cmd
}

func allTags() []core.Tag {
	return []core.Tag{
		core.NakedSingle, core.HiddenSingle, core.NakedPair, core.HiddenPair,
		core.XWing, core.XYWing, core.Swordfish, core.XYZWing,
	}
}

func newBatchCmd() *cobra.Command {
	var difficulties string
	var count int
	var size, boxRows, boxCols int
	var workers int
	var useRefinement bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate a batch of puzzles across one or more difficulties",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			classes := batch.ParseDifficulties(difficulties)
			plan := batch.Distribute(classes, count)

			st := stats.New()
			work := make(chan int, count)
			for i := range plan {
				work <- i
			}
			close(work)

			var wg sync.WaitGroup
			start := time.Now()
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					gen := generator.New()
					rf := refiner.New()
					for idx := range work {
						class := plan[idx]
						gp, err := gen.Generate(class, core.Classical, size, boxRows, boxCols, useRefinement)
						if err != nil {
							log.Error().Err(err).Int("index", idx).Msg("generation failed")
							continue
						}
						if useRefinement {
							rng := newWorkerRNG(idx)
							result := rf.RefineToDifficulty(gp.Puzzle, gp.Solution, class, rng, false)
							gp.Puzzle = result.Puzzle
							gp.Rating = result.Rating
							gp.RefinementIterations = result.Iterations
						}
						st.Append(stats.Record{
							TargetClass:          class,
							ActualClass:          gp.Rating.EstimatedClass,
							IterationCount:       gp.Rating.IterationCount,
							CompositeScore:       gp.Rating.CompositeScore,
							ClueCount:            gp.Rating.ClueCount,
							Matched:              gp.Rating.IsInTargetRange,
							RefinementIterations: gp.RefinementIterations,
							GuessCount:           gp.Rating.GuessCount,
							MaxBacktrackDepth:    gp.Rating.MaxBacktrackDepth,
						})
					}
				}()
			}
			wg.Wait()

			elapsed := time.Since(start)
			log.Info().
				Int("count", count).
				Dur("elapsed", elapsed).
				Msg("batch complete")

			for _, class := range classes {
				sum := st.SummaryFor(class)
				if sum.Count == 0 {
					continue
				}
				fmt.Printf("%s: n=%d success=%.0f%% meanIter=%.1f meanScore=%.1f meanClues=%.1f\n",
					class, sum.Count, sum.SuccessRate*100, sum.MeanIterations, sum.MeanCompositeScore, sum.MeanClueCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulties, "difficulty", "medium", "comma-separated difficulty list")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of puzzles to generate")
	cmd.Flags().IntVar(&size, "size", 9, "board size")
	cmd.Flags().IntVar(&boxRows, "box-rows", 3, "box rows")
	cmd.Flags().IntVar(&boxCols, "box-cols", 3, "box cols")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker goroutines (default: num CPUs)")
	cmd.Flags().BoolVar(&useRefinement, "refine", true, "refine difficulty after carving")

	return cmd
}

func newWorkerRNG(idx int) *rand.Rand {
	seed := uint64(time.Now().UnixNano()) ^ uint64(idx)*0x9e3779b97f4a7c15
	return rand.New(rand.NewPCG(seed, seed>>1))
}
