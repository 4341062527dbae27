package noise

import "math"

// gaborField is a sinusoidal carrier modulated by a Gaussian envelope.
// The carrier runs along the rotated u axis; the envelope attenuates
// across the rotated v axis.
type gaborField struct {
	theta     float64 // carrier orientation, radians
	bandwidth float64 // envelope width
	power     float64 // carrier frequency
}

func (g gaborField) At(u, v, w float64) float64 {
	sin, cos := math.Sincos(g.theta)
	ur := u*cos + v*sin
	vr := -u*sin + v*cos
	carrier := math.Cos(2 * math.Pi * g.power * ur)
	envelope := math.Exp(-0.5 * (vr * vr) / (g.bandwidth * g.bandwidth))
	return carrier * envelope
}
