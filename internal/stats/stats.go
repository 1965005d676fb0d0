// Package stats implements Statistics (spec.md §4.11): an append-only,
// concurrency-safe aggregator of per-puzzle generation records with
// derived metrics computed on demand.
package stats

import (
	"math"
	"sync"

	"github.com/andrew867/sudokugen/internal/core"
)

// Record is one puzzle's generation outcome.
type Record struct {
	TargetClass          core.Class
	ActualClass          core.Class
	IterationCount       int
	CompositeScore       float64
	ClueCount            int
	Matched              bool
	RefinementIterations int
	GuessCount           int
	MaxBacktrackDepth    int
}

// Summary holds the derived metrics of spec.md §4.11 for one difficulty
// class: count, mean and sample standard deviation of iterations,
// success rate, mean composite score, mean clue count.
type Summary struct {
	Count              int
	MeanIterations     float64
	StdDevIterations   float64
	SuccessRate        float64
	MeanCompositeScore float64
	MeanClueCount      float64
}

// Statistics accumulates Records from potentially many concurrent
// producers under a single mutex (spec.md §5: no ordering guarantee is
// required across producers).
type Statistics struct {
	mu      sync.Mutex
	records []Record
}

// New returns an empty Statistics aggregator.
func New() *Statistics {
	return &Statistics{}
}

// Append adds r to the record list. Safe for concurrent use.
func (s *Statistics) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// Records returns a copy of every record appended so far, in append
// order for a single producer (no cross-producer ordering guarantee).
func (s *Statistics) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// SummaryFor computes the derived metrics for every record whose
// TargetClass equals class.
func (s *Statistics) SummaryFor(class core.Class) Summary {
	s.mu.Lock()
	subset := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if r.TargetClass == class {
			subset = append(subset, r)
		}
	}
	s.mu.Unlock()

	return summarize(subset)
}

// Summary computes the derived metrics across every record regardless
// of class.
func (s *Statistics) Summary() Summary {
	return summarize(s.Records())
}

func summarize(records []Record) Summary {
	n := len(records)
	if n == 0 {
		return Summary{}
	}

	var sumIter, sumScore, sumClues float64
	matched := 0
	for _, r := range records {
		sumIter += float64(r.IterationCount)
		sumScore += float64(r.CompositeScore)
		sumClues += float64(r.ClueCount)
		if r.Matched {
			matched++
		}
	}
	meanIter := sumIter / float64(n)

	var sumSqDiff float64
	for _, r := range records {
		d := float64(r.IterationCount) - meanIter
		sumSqDiff += d * d
	}
	var stddev float64
	if n > 1 {
		stddev = math.Sqrt(sumSqDiff / float64(n-1))
	}

	return Summary{
		Count:              n,
		MeanIterations:     meanIter,
		StdDevIterations:   stddev,
		SuccessRate:        float64(matched) / float64(n),
		MeanCompositeScore: sumScore / float64(n),
		MeanClueCount:      sumClues / float64(n),
	}
}
