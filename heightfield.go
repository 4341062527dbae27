// Package heightfield displaces planar quadrilateral mesh faces with
// noise-generated heightmaps. The pipeline is a single synchronous edit:
// generate a preview grid, plan a subdivision density from its variability,
// subdivide the face through the host editor, recover the resulting vertex
// grid, and displace each vertex along the face normal by the corresponding
// height sample. No state survives between invocations.
package heightfield

import (
	"fmt"

	"github.com/ETSTribology/heightfield/noise"
	"gonum.org/v1/gonum/stat"
)

// Grid is an nx×ny grid of height samples over the [0,1]² parametric
// domain, stored row-major with u varying along the first index.
type Grid struct {
	nx, ny int
	data   []float64
}

// NewGrid returns a zeroed nx×ny grid. Dimensions below 1 are invalid.
func NewGrid(nx, ny int) (*Grid, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("invalid grid size %d×%d", nx, ny)
	}
	return &Grid{nx: nx, ny: ny, data: make([]float64, nx*ny)}, nil
}

// Generate samples field at nx×ny points evenly spaced over [0,1]²,
// normalizes the result and scales it by amplitude.
//
// Normalization subtracts the grid mean and divides by three times the
// population standard deviation, mapping most values into roughly [-1, 1].
// This is deliberately not a hard clamp: fractal and Gabor outliers may
// exceed that range, and existing amplitude tunings depend on it. A grid
// with zero deviation normalizes to all zeros.
func Generate(nx, ny int, field noise.Field, amplitude float64) (*Grid, error) {
	g, err := NewGrid(nx, ny)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nx; i++ {
		u := unitCoord(i, nx)
		for j := 0; j < ny; j++ {
			g.data[i*ny+j] = field.At(u, unitCoord(j, ny), 0)
		}
	}
	mean := stat.Mean(g.data, nil)
	sigma := stat.PopStdDev(g.data, nil)
	if sigma == 0 {
		for k := range g.data {
			g.data[k] = 0
		}
		return g, nil
	}
	for k := range g.data {
		g.data[k] = (g.data[k] - mean) / (3 * sigma) * amplitude
	}
	return g, nil
}

// Nx returns the grid extent along the u axis.
func (g *Grid) Nx() int { return g.nx }

// Ny returns the grid extent along the v axis.
func (g *Grid) Ny() int { return g.ny }

// At returns the sample at grid cell (i, j).
func (g *Grid) At(i, j int) float64 { return g.data[i*g.ny+j] }

// Set stores h at grid cell (i, j).
func (g *Grid) Set(i, j int, h float64) { g.data[i*g.ny+j] = h }

// Mean returns the mean of all samples.
func (g *Grid) Mean() float64 { return stat.Mean(g.data, nil) }

// StdDev returns the population standard deviation of all samples. It is
// the variability measure consumed by the subdivision planner.
func (g *Grid) StdDev() float64 { return stat.PopStdDev(g.data, nil) }

// Dims, Z, X and Y implement gonum plot's plotter.GridXYZ so a grid can be
// drawn directly as a heatmap.

func (g *Grid) Dims() (c, r int)   { return g.nx, g.ny }
func (g *Grid) Z(c, r int) float64 { return g.At(c, r) }
func (g *Grid) X(c int) float64    { return unitCoord(c, g.nx) }
func (g *Grid) Y(r int) float64    { return unitCoord(r, g.ny) }

// unitCoord maps index i of n evenly spaced samples onto [0, 1]. A single
// sample sits at 0.
func unitCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
