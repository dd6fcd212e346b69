// Package maze types: corridor bias, randomness source, sentinel errors.
package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrNilStructure indicates a nil structure was passed.
	ErrNilStructure = errors.New("maze: structure is nil")

	// ErrNilSource indicates a nil randomness source was passed.
	ErrNilSource = errors.New("maze: randomness source is nil")

	// ErrUnknownBias indicates a Bias value outside the declared constants.
	ErrUnknownBias = errors.New("maze: unknown bias")

	// ErrDisjoint indicates the effective-adjacency graph is not connected,
	// so no spanning tree exists.
	ErrDisjoint = errors.New("maze: structure is disjointed")
)

// Bias selects which frontier cell the growing-tree algorithm extends next.
type Bias uint8

const (
	// Default picks a uniformly random frontier index on every step.
	Default Bias = iota
	// Straight always picks index 0, the oldest frontier entry. Each
	// cell's options are fully exhausted before the frontier advances,
	// producing long straight runs.
	Straight
	// Winding always picks the last index, the newest frontier entry.
	// Generation proceeds depth-first, producing winding corridors.
	Winding
)

// String returns the bias name.
func (b Bias) String() string {
	switch b {
	case Default:
		return "Default"
	case Straight:
		return "Straight"
	case Winding:
		return "Winding"
	}
	return "Bias(?)"
}

// Source yields integers in the half-open interval [low, high).
// Generation is a pure function of the structure, bias, and the sequence a
// Source produces.
type Source interface {
	Intn(low, high int) int
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(low, high int) int

// Intn calls f.
func (f SourceFunc) Intn(low, high int) int { return f(low, high) }

// randSource adapts a *rand.Rand.
type randSource struct{ r *rand.Rand }

// Rand wraps a *rand.Rand as a Source. Seed it deterministically for
// reproducible mazes.
func Rand(r *rand.Rand) Source { return randSource{r: r} }

// Intn returns a pseudo-random integer in [low, high).
func (s randSource) Intn(low, high int) int { return low + s.r.Intn(high-low) }
