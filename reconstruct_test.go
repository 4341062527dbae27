package heightfield_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ETSTribology/heightfield"
	"github.com/ETSTribology/heightfield/internal/d3"
	"github.com/ETSTribology/heightfield/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

var unitQuad = [4]r3.Vec{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 0},
}

func TestNewBasisDegenerate(t *testing.T) {
	colinear := [4]r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
	}
	if _, err := heightfield.NewBasis(colinear); !errors.Is(err, heightfield.ErrDegenerateNormal) {
		t.Fatalf("got %v, want ErrDegenerateNormal", err)
	}
	var zero [4]r3.Vec
	if _, err := heightfield.NewBasis(zero); !errors.Is(err, heightfield.ErrDegenerateNormal) {
		t.Fatalf("got %v, want ErrDegenerateNormal", err)
	}
}

func TestBasisUV(t *testing.T) {
	b, err := heightfield.NewBasis(unitQuad)
	if err != nil {
		t.Fatal(err)
	}
	want := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, c := range unitQuad {
		u, v := b.UV(c)
		if math.Abs(u-want[i][0]) > 1e-12 || math.Abs(v-want[i][1]) > 1e-12 {
			t.Errorf("corner %d: got (%g, %g), want (%g, %g)", i, u, v, want[i][0], want[i][1])
		}
	}
	if !d3.EqualWithin(b.Normal, r3.Vec{Z: 1}, 1e-12) {
		t.Errorf("normal = %v, want +Z", b.Normal)
	}
}

// Subdividing a square face and reconstructing must recover every grid
// vertex exactly once, in row-major order with u on the first index.
func TestReconstructRoundTrip(t *testing.T) {
	const cuts = 4
	m, face := mesh.NewQuad(unitQuad)
	b, err := heightfield.NewBasis(unitQuad)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SubdivideFaceGrid(face, cuts); err != nil {
		t.Fatal(err)
	}
	verts, err := heightfield.ReconstructGrid(m, b, cuts, heightfield.DefaultTolerances)
	if err != nil {
		t.Fatal(err)
	}
	n := cuts + 1
	if len(verts) != n*n {
		t.Fatalf("got %d vertices, want %d", len(verts), n*n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := r3.Vec{X: float64(i) / cuts, Y: float64(j) / cuts}
			got := m.Position(verts[i*n+j])
			if !d3.EqualWithin(got, want, 1e-9) {
				t.Errorf("grid (%d, %d): got %v, want %v", i, j, got, want)
			}
		}
	}
}

// Reconstruction is basis-relative, so a tilted parallelogram face works
// the same as an axis-aligned one.
func TestReconstructTilted(t *testing.T) {
	const cuts = 3
	quad := [4]r3.Vec{
		{X: 1, Y: 2, Z: 3},
		{X: 2, Y: 2, Z: 4},
		{X: 2, Y: 3, Z: 4},
		{X: 1, Y: 3, Z: 3},
	}
	m, face := mesh.NewQuad(quad)
	b, err := heightfield.NewBasis(quad)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SubdivideFaceGrid(face, cuts); err != nil {
		t.Fatal(err)
	}
	verts, err := heightfield.ReconstructGrid(m, b, cuts, heightfield.DefaultTolerances)
	if err != nil {
		t.Fatal(err)
	}
	n := cuts + 1
	// Coordinate monotonicity along both axes of the recovered grid.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u, v := b.UV(m.Position(verts[i*n+j]))
			if j > 0 {
				uPrev, vPrev := b.UV(m.Position(verts[i*n+j-1]))
				if v <= vPrev || math.Abs(u-uPrev) > 1e-9 {
					t.Fatalf("row %d not monotone in v at column %d", i, j)
				}
			}
			if i > 0 {
				uPrev, _ := b.UV(m.Position(verts[(i-1)*n+j]))
				if u <= uPrev {
					t.Fatalf("column %d not monotone in u at row %d", j, i)
				}
			}
		}
	}
}

// An unsubdivided face cannot satisfy a finer grid; the mismatch must be
// reported, not papered over.
func TestReconstructMismatch(t *testing.T) {
	m, _ := mesh.NewQuad(unitQuad)
	b, err := heightfield.NewBasis(unitQuad)
	if err != nil {
		t.Fatal(err)
	}
	_, err = heightfield.ReconstructGrid(m, b, 4, heightfield.DefaultTolerances)
	if !errors.Is(err, heightfield.ErrGridMismatch) {
		t.Fatalf("got %v, want ErrGridMismatch", err)
	}
}

// Vertices far from the face plane are ignored even when their parametric
// projection lands inside the grid.
func TestReconstructIgnoresOffPlane(t *testing.T) {
	const cuts = 2
	m, face := mesh.NewQuad(unitQuad)
	b, err := heightfield.NewBasis(unitQuad)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SubdivideFaceGrid(face, cuts); err != nil {
		t.Fatal(err)
	}
	m.AddVertex(r3.Vec{X: 0.5, Y: 0.5, Z: 5})
	verts, err := heightfield.ReconstructGrid(m, b, cuts, heightfield.DefaultTolerances)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range verts {
		if m.Position(id).Z != 0 {
			t.Fatalf("off-plane vertex %d captured by reconstruction", id)
		}
	}
}
