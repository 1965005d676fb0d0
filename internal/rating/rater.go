package rating

import (
	"math"

	"github.com/andrew867/sudokugen/internal/core"
	"github.com/andrew867/sudokugen/internal/solver"
	"github.com/andrew867/sudokugen/internal/technique"
)

// Rater computes a full DifficultyRating for a puzzle (spec.md §4.6).
type Rater struct {
	targets  Targets
	solver   *solver.Solver
	registry *technique.Registry
}

// NewRater returns a Rater over the default targets table, a fresh
// solver, and every technique enabled.
func NewRater() *Rater {
	return &Rater{
		targets:  DefaultTargets(),
		solver:   solver.New(),
		registry: technique.NewRegistry(),
	}
}

// NewRaterWithTargets allows tests to supply an alternate targets table
// (spec.md §4.5: "must be configurable by tests").
func NewRaterWithTargets(targets Targets) *Rater {
	return &Rater{
		targets:  targets,
		solver:   solver.New(),
		registry: technique.NewRegistry(),
	}
}

// NewRaterWithRegistry allows a caller (the CLI's practice mode) to
// supply a registry with a restricted set of enabled techniques, so the
// composite score only reflects detections from that subset.
func NewRaterWithRegistry(registry *technique.Registry) *Rater {
	return &Rater{
		targets:  DefaultTargets(),
		solver:   solver.New(),
		registry: registry,
	}
}

// Registry exposes the rater's technique registry so callers can
// enable/disable individual techniques.
func (r *Rater) Registry() *technique.Registry { return r.registry }

// Targets exposes the rater's targets table.
func (r *Rater) Targets() Targets { return r.targets }

// Rate computes a DifficultyRating for puzzle with no explicit target
// class (spec.md §4.6 steps 1-5).
func (r *Rater) Rate(puzzle *core.Board) core.Rating {
	return r.rate(puzzle, false, core.Easy)
}

// RateWithTarget computes a DifficultyRating against an explicit target
// class, additionally populating TargetClass/IsInTargetRange.
func (r *Rater) RateWithTarget(puzzle *core.Board, target core.Class) core.Rating {
	return r.rate(puzzle, true, target)
}

func (r *Rater) rate(puzzle *core.Board, hasTarget bool, target core.Class) core.Rating {
	clueCount := puzzle.ClueCount()
	emptyCells := len(puzzle.Cells) - clueCount

	result, metrics := r.solver.SolveWithMetrics(puzzle)
	_ = result

	cg := core.NewCandidateGrid(puzzle)
	instances := r.registry.DetectAll(puzzle, cg)
	techScore := core.TechniqueScore(instances)

	clueRatio := 0.0
	if clueCount+emptyCells > 0 {
		clueRatio = float64(clueCount) / float64(clueCount+emptyCells)
	}

	composite := 0.40*float64(metrics.IterationCount) +
		0.20*(2*techScore) +
		0.15*(2*float64(metrics.MaxBacktrackDepth)) +
		0.15*(3*float64(metrics.GuessCount)) +
		0.10*(20*(1-clueRatio))

	rating := core.Rating{
		ClueCount:         clueCount,
		EmptyCells:        emptyCells,
		IterationCount:    metrics.IterationCount,
		MaxBacktrackDepth: metrics.MaxBacktrackDepth,
		GuessCount:        metrics.GuessCount,
		PropagationCycles: metrics.PropagationCycles,
		TechniqueScore:    techScore,
		Techniques:        instances,
		CompositeScore:    composite,
	}

	estimated := r.targets.ClassifyByScore(composite)
	rating.EstimatedClass = estimated
	rating.HasRange, rating.MinClass, rating.MaxClass = r.classifyRange(estimated, composite)

	if hasTarget {
		rating.HasTarget = true
		rating.TargetClass = target
		rating.IsInTargetRange = r.targets.Compare(composite, target) == InRange
	}

	return rating
}

// classifyRange implements spec.md §4.6 step 5: if the score sits in the
// lower 20% of its class range, the band's min drops to the class below;
// if in the upper 20%, the band's max rises to the class above.
func (r *Rater) classifyRange(estimated core.Class, score float64) (bool, core.Class, core.Class) {
	rng := r.targets.For(estimated).Score
	minClass, maxClass := estimated, estimated
	widened := false

	if !math.IsInf(rng.Max, 1) {
		span := rng.Max - rng.Min
		if span > 0 {
			lowerBound := rng.Min + 0.20*span
			upperBound := rng.Max - 0.20*span
			if score < lowerBound && estimated > core.Easy {
				minClass = estimated - 1
				widened = true
			}
			if score >= upperBound && estimated < core.Evil {
				maxClass = estimated + 1
				widened = true
			}
		}
	} else if estimated > core.Easy {
		// Evil's range is open-ended: base the lower-20% test on the
		// score span from the class below's minimum to this class's minimum.
		below := r.targets.For(estimated - 1).Score
		span := rng.Min - below.Min
		if span > 0 && score < rng.Min+0.20*span {
			minClass = estimated - 1
			widened = true
		}
	}

	return widened, minClass, maxClass
}
