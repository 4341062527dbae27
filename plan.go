package heightfield

import (
	"math"

	"github.com/ETSTribology/heightfield/noise"
)

// DefaultMaxCuts bounds the planned cut count so highly variable noise
// cannot explode the vertex count. 20 cuts is 441 grid vertices.
const DefaultMaxCuts = 20

// Gabor's tight oriented ripples alias at coarser sampling than the other
// kernels, so its variability is weighted harder.
const (
	cutScale      = 5.0
	cutScaleGabor = 8.0
)

// PlanCuts maps heightmap variability (its standard deviation) to a cut
// count for the face's edges, yielding a (cuts+1)×(cuts+1) vertex grid.
// Flat noise keeps the base density; variable noise adds cuts linearly.
// base values below 1 are raised to 1 and maxCuts values below 1 select
// DefaultMaxCuts. When the plan exceeds maxCuts the result is clamped and
// the clamped flag is set so callers can surface a warning; clamping is a
// graceful degradation, never a failure.
func PlanCuts(variability float64, kind noise.Kind, base, maxCuts int) (cuts int, clamped bool) {
	if base < 1 {
		base = 1
	}
	if maxCuts < 1 {
		maxCuts = DefaultMaxCuts
	}
	scale := cutScale
	if kind == noise.Gabor {
		scale = cutScaleGabor
	}
	cuts = base + int(math.Round(scale*variability))
	if cuts > maxCuts {
		return maxCuts, true
	}
	return cuts, false
}
