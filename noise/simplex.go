package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// simplexField is single-octave OpenSimplex gradient noise. Like Perlin it
// is nominally in [-1, 1] but with a more isotropic feature distribution.
type simplexField struct {
	src opensimplex.Noise
}

func newSimplex(seed int64) simplexField {
	return simplexField{src: opensimplex.New(seed)}
}

func (s simplexField) At(u, v, w float64) float64 {
	return s.src.Eval3(u, v, w)
}
