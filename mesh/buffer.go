package mesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Buffer is an editable in-memory mesh of polygonal faces. It implements
// Editor and is the fixture the pipeline and its tests run against when no
// host application is present.
type Buffer struct {
	verts []r3.Vec
	faces [][]VertexID
}

var _ Editor = (*Buffer)(nil)

// NewQuad returns a buffer holding a single quadrilateral face with the
// given corners in winding order, and the id of that face.
func NewQuad(corners [4]r3.Vec) (*Buffer, FaceID) {
	b := &Buffer{}
	var ids [4]VertexID
	for i, c := range corners {
		ids[i] = b.AddVertex(c)
	}
	f, _ := b.AddFace(ids[:]...)
	return b, f
}

// AddVertex appends a vertex at p and returns its id.
func (b *Buffer) AddVertex(p r3.Vec) VertexID {
	b.verts = append(b.verts, p)
	return VertexID(len(b.verts) - 1)
}

// AddFace appends a face over existing vertices and returns its id.
func (b *Buffer) AddFace(vs ...VertexID) (FaceID, error) {
	if len(vs) < 3 {
		return 0, fmt.Errorf("face needs at least 3 vertices, got %d", len(vs))
	}
	for _, v := range vs {
		if int(v) < 0 || int(v) >= len(b.verts) {
			return 0, fmt.Errorf("face references unknown vertex %d", v)
		}
	}
	face := make([]VertexID, len(vs))
	copy(face, vs)
	b.faces = append(b.faces, face)
	return FaceID(len(b.faces) - 1), nil
}

// FaceCount returns the number of faces in the buffer.
func (b *Buffer) FaceCount() int { return len(b.faces) }

// FaceVertices returns the boundary vertices of f in winding order.
func (b *Buffer) FaceVertices(f FaceID) ([]VertexID, error) {
	if int(f) < 0 || int(f) >= len(b.faces) {
		return nil, fmt.Errorf("%w: %d", ErrNoFace, f)
	}
	face := b.faces[f]
	out := make([]VertexID, len(face))
	copy(out, face)
	return out, nil
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int { return len(b.verts) }

// Position returns the position of v.
func (b *Buffer) Position(v VertexID) r3.Vec { return b.verts[v] }

// SetPosition moves v to p.
func (b *Buffer) SetPosition(v VertexID, p r3.Vec) { b.verts[v] = p }

// SubdivideFaceGrid replaces a quadrilateral face with a cuts×cuts grid of
// quads. Grid positions are bilinear in the corner positions, so for a
// planar face all new vertices land on the face plane. The original corner
// vertices are reused at the grid corners; edge vertices are not shared
// with neighboring faces, which is acceptable for a standalone patch.
func (b *Buffer) SubdivideFaceGrid(f FaceID, cuts int) error {
	if int(f) < 0 || int(f) >= len(b.faces) {
		return fmt.Errorf("%w: %d", ErrNoFace, f)
	}
	if cuts < 1 {
		return fmt.Errorf("cut count %d below 1", cuts)
	}
	face := b.faces[f]
	if len(face) != 4 {
		return errors.New("grid subdivision requires a quadrilateral face")
	}
	if cuts == 1 {
		return nil
	}
	c0 := b.verts[face[0]]
	c1 := b.verts[face[1]]
	c2 := b.verts[face[2]]
	c3 := b.verts[face[3]]

	// Vertex grid, indexed [i][j] with i along the c0->c1 edge.
	n := cuts + 1
	grid := make([][]VertexID, n)
	for i := 0; i < n; i++ {
		grid[i] = make([]VertexID, n)
		s := float64(i) / float64(cuts)
		for j := 0; j < n; j++ {
			switch {
			case i == 0 && j == 0:
				grid[i][j] = face[0]
			case i == cuts && j == 0:
				grid[i][j] = face[1]
			case i == cuts && j == cuts:
				grid[i][j] = face[2]
			case i == 0 && j == cuts:
				grid[i][j] = face[3]
			default:
				t := float64(j) / float64(cuts)
				p := r3.Add(
					r3.Add(r3.Scale((1-s)*(1-t), c0), r3.Scale(s*(1-t), c1)),
					r3.Add(r3.Scale(s*t, c2), r3.Scale((1-s)*t, c3)),
				)
				grid[i][j] = b.AddVertex(p)
			}
		}
	}
	// The original face becomes the first grid cell; the rest are appended.
	first := true
	for i := 0; i < cuts; i++ {
		for j := 0; j < cuts; j++ {
			quad := []VertexID{grid[i][j], grid[i+1][j], grid[i+1][j+1], grid[i][j+1]}
			if first {
				b.faces[f] = quad
				first = false
				continue
			}
			b.faces = append(b.faces, quad)
		}
	}
	return nil
}

// Triangles returns a fan triangulation of every face, suitable for STL
// export.
func (b *Buffer) Triangles() [][3]r3.Vec {
	var tris [][3]r3.Vec
	for _, face := range b.faces {
		for k := 1; k+1 < len(face); k++ {
			tris = append(tris, [3]r3.Vec{
				b.verts[face[0]],
				b.verts[face[k]],
				b.verts[face[k+1]],
			})
		}
	}
	return tris
}
