package core

// Rating is the full per-puzzle difficulty assessment produced by the
// rater (spec.md §3, §4.6).
type Rating struct {
	ClueCount         int
	EmptyCells        int
	IterationCount    int
	MaxBacktrackDepth int
	GuessCount        int
	PropagationCycles int
	TechniqueScore    float64
	Techniques        []Instance
	CompositeScore    float64
	EstimatedClass    Class

	// HasRange is true when a (MinClass, MaxClass) band was attached
	// (spec.md §4.6 step 5).
	HasRange bool
	MinClass Class
	MaxClass Class

	// HasTarget is true when the rating was produced against an explicit
	// target class.
	HasTarget       bool
	TargetClass     Class
	IsInTargetRange bool
}
