package technique

import "github.com/andrew867/sudokugen/internal/core"

// DetectorFunc is the shape every technique detector implements.
type DetectorFunc func(b *core.Board, cg *core.CandidateGrid) []core.Instance

// allDetectors lists every technique in the pedagogical order a human
// solver would reach for them — simplest first — matching the order the
// rater and the registry both iterate in.
var allDetectors = []struct {
	Tag    core.Tag
	Detect DetectorFunc
}{
	{core.NakedSingle, DetectNakedSingles},
	{core.HiddenSingle, DetectHiddenSingles},
	{core.NakedPair, DetectNakedPairs},
	{core.HiddenPair, DetectHiddenPairs},
	{core.XWing, DetectXWing},
	{core.XYWing, DetectXYWing},
	{core.Swordfish, DetectSwordfish},
	{core.XYZWing, DetectXYZWing},
}

// DetectAll runs every technique detector over b and returns the
// combined instance list, in the order above. Detection is pure: b is
// never mutated, so the rater may call this speculatively.
func DetectAll(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var all []core.Instance
	for _, d := range allDetectors {
		all = append(all, d.Detect(b, cg)...)
	}
	return all
}

// Registry supports enabling/disabling individual techniques at runtime
// — used by the rater and by the CLI's technique-practice filter
// (grounded on the teacher's TechniqueRegistry enable/disable surface).
type Registry struct {
	enabled map[core.Tag]bool
}

// NewRegistry returns a Registry with every technique enabled.
func NewRegistry() *Registry {
	r := &Registry{enabled: make(map[core.Tag]bool, len(allDetectors))}
	for _, d := range allDetectors {
		r.enabled[d.Tag] = true
	}
	return r
}

// SetEnabled toggles one technique on or off.
func (r *Registry) SetEnabled(tag core.Tag, enabled bool) {
	r.enabled[tag] = enabled
}

// Enabled reports whether tag is currently enabled.
func (r *Registry) Enabled(tag core.Tag) bool {
	return r.enabled[tag]
}

// DetectAll runs only the enabled detectors.
func (r *Registry) DetectAll(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var all []core.Instance
	for _, d := range allDetectors {
		if !r.enabled[d.Tag] {
			continue
		}
		all = append(all, d.Detect(b, cg)...)
	}
	return all
}
