// Package rating implements the difficulty-classification policy surface
// of spec.md §4.5 (DifficultyTargets) and the composite rater of §4.6
// (DifficultyRater).
package rating

import (
	"math"

	"github.com/andrew867/sudokugen/internal/core"
)

// Range is a half-open numeric interval [Min, Max); Max may be
// math.Inf(1) for the open-ended top class.
type Range struct {
	Min, Max float64
}

// Contains reports whether v falls in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// ClassTargets bundles one difficulty class's iteration range, score
// range, and iteration goal.
type ClassTargets struct {
	Iterations    Range
	Score         Range
	IterationGoal float64
}

// Targets is the policy surface of spec.md §4.5: a closed mapping from
// difficulty class to iteration/score ranges and an iteration goal. It is
// a plain value, not a package-level singleton, so tests can construct
// alternate tables (spec.md: "must be configurable by tests").
type Targets struct {
	byClass [5]ClassTargets
}

// DefaultTargets returns the table specified in spec.md §4.5.
func DefaultTargets() Targets {
	return Targets{byClass: [5]ClassTargets{
		core.Easy: {
			Iterations:    Range{1, 11},
			Score:         Range{0, 8},
			IterationGoal: 5,
		},
		core.Medium: {
			Iterations:    Range{11, 26},
			Score:         Range{8, 20},
			IterationGoal: 15,
		},
		core.Hard: {
			Iterations:    Range{26, 81},
			Score:         Range{20, 60},
			IterationGoal: 40,
		},
		core.Expert: {
			Iterations:    Range{81, 351},
			Score:         Range{60, 250},
			IterationGoal: 150,
		},
		core.Evil: {
			Iterations:    Range{351, math.Inf(1)},
			Score:         Range{250, math.Inf(1)},
			IterationGoal: 400,
		},
	}}
}

// For returns the ClassTargets for c.
func (t Targets) For(c core.Class) ClassTargets {
	return t.byClass[c]
}

// ClassifyByIterations maps an iteration count to its difficulty class.
func (t Targets) ClassifyByIterations(n int) core.Class {
	v := float64(n)
	for c := core.Easy; c <= core.Evil; c++ {
		if t.byClass[c].Iterations.Contains(v) {
			return c
		}
	}
	return core.Evil
}

// ClassifyByScore maps a composite score to its difficulty class.
func (t Targets) ClassifyByScore(score float64) core.Class {
	for c := core.Easy; c <= core.Evil; c++ {
		if t.byClass[c].Score.Contains(score) {
			return c
		}
	}
	return core.Evil
}

// Comparison is the three-valued result of comparing a measured score
// against a target class's score range.
type Comparison int

const (
	TooEasy Comparison = iota
	InRange
	TooHard
)

// Compare reports whether score sits below, within, or above the target
// class's score range.
func (t Targets) Compare(score float64, target core.Class) Comparison {
	r := t.byClass[target].Score
	switch {
	case score < r.Min:
		return TooEasy
	case score >= r.Max:
		return TooHard
	default:
		return InRange
	}
}

// CloseToTarget reports whether value is within relTol (relative to goal)
// or absTol (absolute) of goal — spec.md §4.5's "close-to-target
// predicate with relative and absolute tolerances".
func CloseToTarget(value, goal, relTol, absTol float64) bool {
	diff := math.Abs(value - goal)
	if diff <= absTol {
		return true
	}
	if goal == 0 {
		return false
	}
	return diff <= relTol*math.Abs(goal)
}

// Tiles reports whether the score ranges of every adjacent class pair
// tile contiguously (spec.md §8's DifficultyTargets tiling property):
// the upper endpoint of the lower class equals the lower endpoint of the
// higher class.
func (t Targets) Tiles() bool {
	for c := core.Easy; c < core.Evil; c++ {
		if t.byClass[c].Score.Max != t.byClass[c+1].Score.Min {
			return false
		}
	}
	return true
}
