package heightfield

import (
	"fmt"

	"github.com/ETSTribology/heightfield/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Displace moves each grid vertex along normal by its height sample.
// Vertex k in the row-major vertex list corresponds to grid cell
// (k/ny, k%ny), which is exactly flat index k, so vertices and samples
// pair one to one. A length mismatch aborts before any vertex moves.
func Displace(m mesh.Editor, verts []mesh.VertexID, g *Grid, normal r3.Vec) error {
	if len(verts) != g.nx*g.ny {
		return fmt.Errorf("%w: %d vertices against %d×%d heightmap", ErrGridMismatch, len(verts), g.nx, g.ny)
	}
	for k, id := range verts {
		m.SetPosition(id, r3.Add(m.Position(id), r3.Scale(g.data[k], normal)))
	}
	return nil
}
