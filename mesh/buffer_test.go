package mesh_test

import (
	"errors"
	"testing"

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

func TestSubdivideFaceGrid(t *testing.T) {
	const cuts = 4
	m, face := mesh.NewQuad(unitQuad)
	if err := m.SubdivideFaceGrid(face, cuts); err != nil {
		t.Fatal(err)
	}
	n := cuts + 1
	if got := m.VertexCount(); got != n*n {
		t.Errorf("vertex count = %d, want %d", got, n*n)
	}
	if got := m.FaceCount(); got != cuts*cuts {
		t.Errorf("face count = %d, want %d", got, cuts*cuts)
	}
	// Subdividing a planar face keeps every vertex on the plane.
	for k := 0; k < m.VertexCount(); k++ {
		if m.Position(mesh.VertexID(k)).Z != 0 {
			t.Fatalf("vertex %d left the face plane", k)
		}
	}
}

func TestSubdivideFaceGridNoop(t *testing.T) {
	m, face := mesh.NewQuad(unitQuad)
	if err := m.SubdivideFaceGrid(face, 1); err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 4 || m.FaceCount() != 1 {
		t.Errorf("single-cut subdivision changed the mesh: %d verts, %d faces", m.VertexCount(), m.FaceCount())
	}
}

func TestSubdivideFaceGridErrors(t *testing.T) {
	m, face := mesh.NewQuad(unitQuad)
	if err := m.SubdivideFaceGrid(face, 0); err == nil {
		t.Error("cuts below 1 accepted")
	}
	if err := m.SubdivideFaceGrid(mesh.FaceID(7), 2); !errors.Is(err, mesh.ErrNoFace) {
		t.Errorf("got %v, want ErrNoFace", err)
	}
	tri := &mesh.Buffer{}
	a := tri.AddVertex(r3.Vec{})
	b := tri.AddVertex(r3.Vec{X: 1})
	c := tri.AddVertex(r3.Vec{Y: 1})
	f, err := tri.AddFace(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	if err := tri.SubdivideFaceGrid(f, 2); err == nil {
		t.Error("grid subdivision of a triangle accepted")
	}
}

func TestSubdivideReusesCorners(t *testing.T) {
	m, face := mesh.NewQuad(unitQuad)
	if err := m.SubdivideFaceGrid(face, 3); err != nil {
		t.Fatal(err)
	}
	for i, want := range unitQuad {
		if got := m.Position(mesh.VertexID(i)); !d3.EqualWithin(got, want, 0) {
			t.Errorf("corner vertex %d moved to %v", i, got)
		}
	}
}

func TestAddFaceValidation(t *testing.T) {
	m := &mesh.Buffer{}
	a := m.AddVertex(r3.Vec{})
	b := m.AddVertex(r3.Vec{X: 1})
	if _, err := m.AddFace(a, b); err == nil {
		t.Error("two-vertex face accepted")
	}
	if _, err := m.AddFace(a, b, mesh.VertexID(9)); err == nil {
		t.Error("face over unknown vertex accepted")
	}
}

func TestFaceVerticesCopy(t *testing.T) {
	m, face := mesh.NewQuad(unitQuad)
	vs, err := m.FaceVertices(face)
	if err != nil {
		t.Fatal(err)
	}
	vs[0] = 99
	again, err := m.FaceVertices(face)
	if err != nil {
		t.Fatal(err)
	}
	if again[0] != 0 {
		t.Error("FaceVertices exposes internal storage")
	}
	if _, err := m.FaceVertices(mesh.FaceID(3)); !errors.Is(err, mesh.ErrNoFace) {
		t.Errorf("got %v, want ErrNoFace", err)
	}
}

func TestTriangles(t *testing.T) {
	m, face := mesh.NewQuad(unitQuad)
	if got := len(m.Triangles()); got != 2 {
		t.Fatalf("quad triangulates to %d triangles, want 2", got)
	}
	const cuts = 3
	if err := m.SubdivideFaceGrid(face, cuts); err != nil {
		t.Fatal(err)
	}
	if got := len(m.Triangles()); got != 2*cuts*cuts {
		t.Fatalf("subdivided quad triangulates to %d triangles, want %d", got, 2*cuts*cuts)
	}
}
