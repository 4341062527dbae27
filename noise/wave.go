package noise

import "math"

// waveFrequency matches the fixed ripple frequency of the sine and square
// kernels. Over the unit interval it yields just over one and a half periods.
const waveFrequency = 10.0

type sineField struct{}

// At returns sin(10u). The v and w coordinates are ignored, making the
// kernel a predictable 1D ripple useful as a test fixture.
func (sineField) At(u, v, w float64) float64 {
	return math.Sin(waveFrequency * u)
}

type squareField struct{}

// At returns sign(sin(10u)), valued in {-1, 0, 1}.
func (squareField) At(u, v, w float64) float64 {
	s := math.Sin(waveFrequency * u)
	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	}
	return 0
}
