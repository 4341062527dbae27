// Package noise provides the scalar noise kernels used to generate
// heightmaps. Kernels are pure: a Field constructed from a Params value
// returns bit-identical output for identical inputs and holds no mutable
// state, so it is safe to sample tens of thousands of times per grid.
package noise

import (
	"errors"
	"fmt"
)

// Field is a scalar noise field sampled over the unit square. The third
// coordinate exists for kernels with a 3D domain and is normally zero.
type Field interface {
	At(u, v, w float64) float64
}

// Kind discriminates the available noise kernels.
type Kind int

const (
	// Fractal is fractal Brownian motion: summed octaves of gradient noise
	// at increasing frequency and decreasing amplitude.
	Fractal Kind = iota
	// Perlin is single-octave smooth gradient noise, nominally in [-1, 1].
	Perlin
	// Sine is the deterministic ripple sin(10u), independent of v.
	Sine
	// Square is the hard-edged step sign(sin(10u)), valued in {-1, 0, 1}.
	Square
	// Gabor is a sinusoidal carrier under a Gaussian envelope, producing
	// oriented band-limited texture.
	Gabor
	// Simplex is single-octave OpenSimplex gradient noise.
	Simplex
)

// String returns the kernel tag name.
func (k Kind) String() string {
	switch k {
	case Fractal:
		return "fractal"
	case Perlin:
		return "perlin"
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Gabor:
		return "gabor"
	case Simplex:
		return "simplex"
	}
	return "unknown"
}

// ErrUnknownKind is returned when a Params carries a Kind that does not
// name a kernel. It is a configuration error and is detected before any
// sampling takes place.
var ErrUnknownKind = errors.New("unknown noise kind")

const (
	minOctaves, maxOctaves       = 1, 10
	minLacunarity, maxLacunarity = 1.0, 5.0
)

// Params configures one kernel. Only the fields of the selected Kind are
// consulted; the rest are ignored. The zero value of every kernel-specific
// field selects the kernel's default.
type Params struct {
	Kind Kind
	// Seed fixes the gradient tables of the stochastic kernels
	// (Fractal, Perlin, Simplex) so output is reproducible.
	Seed int64

	// Fractal parameters.

	// Hurst is the fractal increment exponent H. Zero means 0.5.
	Hurst float64
	// Lacunarity is the per-octave frequency multiplier, in [1, 5].
	// Zero means 2.
	Lacunarity float64
	// Octaves is the octave count, in [1, 10]. Zero means 4.
	Octaves int

	// Gabor parameters.

	// Orientation rotates the carrier direction, in radians.
	Orientation float64
	// Bandwidth is the width of the Gaussian envelope. Zero means 1.
	Bandwidth float64
	// PowerSpectrum is the carrier frequency. Zero means 1.
	PowerSpectrum float64
}

// Field validates p and constructs the kernel it describes.
func (p Params) Field() (Field, error) {
	switch p.Kind {
	case Fractal:
		h := p.Hurst
		if h == 0 {
			h = 0.5
		}
		lac := p.Lacunarity
		if lac == 0 {
			lac = 2
		}
		oct := p.Octaves
		if oct == 0 {
			oct = 4
		}
		if lac < minLacunarity || lac > maxLacunarity {
			return nil, fmt.Errorf("fractal lacunarity %g outside [%g, %g]", lac, minLacunarity, maxLacunarity)
		}
		if oct < minOctaves || oct > maxOctaves {
			return nil, fmt.Errorf("fractal octave count %d outside [%d, %d]", oct, minOctaves, maxOctaves)
		}
		return newFractal(h, lac, oct, p.Seed), nil
	case Perlin:
		return newGradient(p.Seed), nil
	case Sine:
		return sineField{}, nil
	case Square:
		return squareField{}, nil
	case Gabor:
		bw := p.Bandwidth
		if bw == 0 {
			bw = 1
		}
		ps := p.PowerSpectrum
		if ps == 0 {
			ps = 1
		}
		if bw < 0 {
			return nil, fmt.Errorf("gabor bandwidth %g is negative", bw)
		}
		return gaborField{theta: p.Orientation, bandwidth: bw, power: ps}, nil
	case Simplex:
		return newSimplex(p.Seed), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, p.Kind)
}
