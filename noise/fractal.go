package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Single-octave Perlin parameters. Alpha and beta only shape the summation
// of multiple internal octaves, so with one octave they are inert; the
// conventional value 2 is kept for both.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 1
)

// gradientField is single-octave Perlin gradient noise with a seeded
// permutation table.
type gradientField struct {
	src *perlin.Perlin
}

func newGradient(seed int64) gradientField {
	return gradientField{src: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

func (g gradientField) At(u, v, w float64) float64 {
	return g.src.Noise3D(u, v, w)
}

// fractalField sums octaves of gradient noise. Octave o is sampled at
// frequency lacunarity^o and weighted by lacunarity^(-H·o), so a larger
// Hurst exponent damps the high-frequency octaves harder. Output is
// unbounded; grid-level normalization deals with the range.
type fractalField struct {
	src        gradientField
	lacunarity float64
	gain       float64 // lacunarity^(-H), amplitude ratio between octaves
	octaves    int
}

func newFractal(hurst, lacunarity float64, octaves int, seed int64) fractalField {
	return fractalField{
		src:        newGradient(seed),
		lacunarity: lacunarity,
		gain:       math.Pow(lacunarity, -hurst),
		octaves:    octaves,
	}
}

func (f fractalField) At(u, v, w float64) float64 {
	var sum float64
	freq, amp := 1.0, 1.0
	for o := 0; o < f.octaves; o++ {
		sum += amp * f.src.At(u*freq, v*freq, w*freq)
		freq *= f.lacunarity
		amp *= f.gain
	}
	return sum
}
