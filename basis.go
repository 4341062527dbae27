package heightfield

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tolerances are the geometric tolerances of face validation and grid
// reconstruction. The defaults are empirical values tuned for faces of
// roughly unit size; they are not rescaled automatically, so very large or
// very small faces may need their own values.
type Tolerances struct {
	// Plane is the maximum distance from the face plane at which a mesh
	// vertex is still considered part of the subdivided face. Too small
	// misses legitimate grid vertices, too large captures vertices of
	// unrelated geometry near the plane.
	Plane float64
	// UVSlop widens the accepted parametric window to [-UVSlop, 1+UVSlop]
	// to absorb floating-point error in the edge-length projection.
	UVSlop float64
	// Planar is the planarity precondition tolerance applied to the
	// selected face's corners before any work is done.
	Planar float64
}

// DefaultTolerances are the tolerances used when Options carries a zero
// Tolerances value.
var DefaultTolerances = Tolerances{
	Plane:  1e-2,
	UVSlop: 0.01,
	Planar: 1e-5,
}

// Basis is the local frame of a planar quadrilateral face: the unit normal
// together with a tangent along the face's first edge and the bitangent
// completing the right-handed pair. UV projects positions into the face's
// parametric square using the measured edge lengths, so the original
// corners land at (0,0), (1,0), (1,1) and (0,1).
type Basis struct {
	Origin    r3.Vec // first corner of the original face
	Centroid  r3.Vec
	Normal    r3.Vec
	Tangent   r3.Vec
	Bitangent r3.Vec

	edgeU, edgeV float64
}

// NewBasis derives the local frame from the corners of a quadrilateral in
// winding order. The frame must be captured before subdivision, while the
// original corner ordering is still known.
func NewBasis(corners [4]r3.Vec) (Basis, error) {
	eu := corners[1].Sub(corners[0])
	ev := corners[3].Sub(corners[0])
	n := r3.Cross(eu, ev)
	if r3.Norm(n) <= tolerance {
		return Basis{}, fmt.Errorf("%w: corner edges are parallel or zero length", ErrDegenerateNormal)
	}
	b := Basis{
		Origin:  corners[0],
		Normal:  r3.Unit(n),
		Tangent: r3.Unit(eu),
	}
	b.Bitangent = r3.Unit(r3.Cross(b.Normal, b.Tangent))
	b.edgeU = r3.Dot(eu, b.Tangent)
	b.edgeV = r3.Dot(ev, b.Bitangent)
	if math.Abs(b.edgeU) <= tolerance || math.Abs(b.edgeV) <= tolerance {
		return Basis{}, fmt.Errorf("%w: face collapses along an axis", ErrDegenerateNormal)
	}
	var c r3.Vec
	for _, p := range corners {
		c = r3.Add(c, p)
	}
	b.Centroid = r3.Scale(0.25, c)
	return b, nil
}

// UV projects p into the face's parametric square. Points on the original
// face map into [0,1]².
func (b Basis) UV(p r3.Vec) (u, v float64) {
	d := p.Sub(b.Origin)
	return r3.Dot(d, b.Tangent) / b.edgeU, r3.Dot(d, b.Bitangent) / b.edgeV
}

// PlaneDistance returns the signed distance of p from the face plane.
func (b Basis) PlaneDistance(p r3.Vec) float64 {
	return r3.Dot(b.Normal, p.Sub(b.Centroid))
}

const tolerance = 1e-9
