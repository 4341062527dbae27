package heightfield

import (
	"fmt"
	"math"

	"github.com/ETSTribology/heightfield/mesh"
)

// ReconstructGrid recovers the (cuts+1)×(cuts+1) vertex grid of a
// subdivided face in row-major order, u varying along the first index to
// match Grid's indexing.
//
// Every mesh vertex within tol.Plane of the face plane is projected onto
// the basis, accepted if its parametric coordinates fall inside the slop
// window, and rounded to the nearest grid cell. The first vertex to claim
// a cell wins; true grid positions do not collide at this resolution, so
// later claimants are stray vertices of coincident geometry. A final count
// mismatch aborts with ErrGridMismatch rather than displacing a wrong
// subset of vertices.
func ReconstructGrid(m mesh.Editor, b Basis, cuts int, tol Tolerances) ([]mesh.VertexID, error) {
	if cuts < 1 {
		return nil, fmt.Errorf("cut count %d below 1", cuts)
	}
	n := cuts + 1
	grid := make([]mesh.VertexID, n*n)
	claimed := make([]bool, n*n)
	found := 0
	for k := 0; k < m.VertexCount(); k++ {
		id := mesh.VertexID(k)
		p := m.Position(id)
		if math.Abs(b.PlaneDistance(p)) >= tol.Plane {
			continue
		}
		u, v := b.UV(p)
		if u < -tol.UVSlop || u > 1+tol.UVSlop || v < -tol.UVSlop || v > 1+tol.UVSlop {
			continue
		}
		i := clampInt(int(math.Round(u*float64(cuts))), 0, cuts)
		j := clampInt(int(math.Round(v*float64(cuts))), 0, cuts)
		cell := i*n + j
		if claimed[cell] {
			continue
		}
		claimed[cell] = true
		grid[cell] = id
		found++
	}
	if found != n*n {
		return nil, fmt.Errorf("%w: found %d of %d vertices for %d cuts", ErrGridMismatch, found, n*n, cuts)
	}
	return grid, nil
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
