// Package mesh defines the editing capability the displacement pipeline
// needs from its host, together with Buffer, an in-memory implementation
// good enough to run the pipeline without a host application.
package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// VertexID identifies a vertex within an editor.
type VertexID int

// FaceID identifies a face within an editor.
type FaceID int

// ErrNoFace is returned when a face id does not name a face of the mesh.
var ErrNoFace = errors.New("no such face")

// Editor is the mutable mesh surface the pipeline operates on. Hosts adapt
// their own mesh representation to this interface. Implementations need not
// be safe for concurrent use; the pipeline runs as one synchronous edit.
type Editor interface {
	// FaceVertices returns the boundary vertices of f in winding order.
	FaceVertices(f FaceID) ([]VertexID, error)
	// VertexCount returns the number of vertices in the mesh. Vertex ids
	// are the integers [0, VertexCount).
	VertexCount() int
	// Position returns the position of v.
	Position(v VertexID) r3.Vec
	// SetPosition moves v to p.
	SetPosition(v VertexID, p r3.Vec)
	// SubdivideFaceGrid splits a quadrilateral face into a cuts×cuts grid
	// of quads, cuts counting segments per edge, so the refined face has a
	// (cuts+1)×(cuts+1) vertex grid. cuts == 1 leaves the face untouched.
	SubdivideFaceGrid(f FaceID, cuts int) error
}
