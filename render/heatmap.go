package render

import (
	"github.com/ETSTribology/heightfield"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// heatPaletteColors is enough bands to see ridge structure without hiding
// the three-sigma outliers in a single bucket.
const heatPaletteColors = 12

// CreateHeatmapPNG draws g as a heatmap over its [0,1]² parametric domain
// and saves it as a PNG at path.
func CreateHeatmapPNG(path string, g *heightfield.Grid) error {
	p := plot.New()
	p.Title.Text = "heightmap"
	p.X.Label.Text = "u"
	p.Y.Label.Text = "v"
	p.Add(plotter.NewHeatMap(g, palette.Heat(heatPaletteColors, 1)))
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, path)
}
