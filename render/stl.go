// Package render writes heightfield geometry to inspectable formats:
// binary STL for displaced meshes and PNG heatmaps for generated grids.
package render

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"

	"github.com/ETSTribology/heightfield/mesh"
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateSTL writes the triangulation of m to a binary STL file at path.
func CreateSTL(path string, m *mesh.Buffer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteSTL(file, m)
}

// WriteSTL writes the triangulation of m to w in binary STL format.
func WriteSTL(w io.Writer, m *mesh.Buffer) error {
	tris := m.Triangles()
	if len(tris) == 0 {
		return errors.New("mesh has no triangles")
	}
	header := stlHeader{
		Count: uint32(len(tris)), // size of stl triangles is 50
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var d stlTriangle
	var b [50]byte
	for _, tri := range tris {
		d.Normal = f32From(triangleNormal(tri))
		d.Vertex1 = f32From(tri[0])
		d.Vertex2 = f32From(tri[1])
		d.Vertex3 = f32From(tri[2])
		if bad3F32(d.Vertex1) || bad3F32(d.Vertex2) || bad3F32(d.Vertex3) {
			return errors.New("inf/NaN STL triangle vertex")
		}
		d.put(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// triangleNormal returns the unit normal of the triangle, or the zero
// vector for a degenerate triangle.
func triangleNormal(tri [3]r3.Vec) r3.Vec {
	n := r3.Cross(tri[1].Sub(tri[0]), tri[2].Sub(tri[0]))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func (t stlTriangle) put(b []byte) {
	if len(b) < 50 {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func f32From(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
