package heightfield

import (
	"fmt"
	"math"

	"github.com/ETSTribology/heightfield/mesh"
	"github.com/ETSTribology/heightfield/noise"
	"gonum.org/v1/gonum/spatial/r3"
)

// Severity classifies a Reporter message.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

// Reporter receives human-readable progress and failure messages from the
// pipeline. Hosts route it to their own message sink.
type Reporter interface {
	Report(sev Severity, msg string)
}

// Discard is a Reporter that drops every message.
type Discard struct{}

func (Discard) Report(Severity, string) {}

// Options configures one application of a heightmap to a face. The zero
// value of every field selects its default, so Options{Noise: p} is a
// valid configuration.
type Options struct {
	// Noise selects and parameterizes the kernel.
	Noise noise.Params
	// Amplitude scales the normalized heightmap. Zero means 1.
	Amplitude float64
	// BaseCuts is the subdivision density applied even to flat noise,
	// at least 1. Zero means 1.
	BaseCuts int
	// MaxCuts bounds the planned subdivision density. Zero means
	// DefaultMaxCuts.
	MaxCuts int
	// Tolerances are the reconstruction tolerances. The zero value means
	// DefaultTolerances.
	Tolerances Tolerances
}

// Apply displaces the quadrilateral face of m with a heightmap generated
// from opts. The face must be planar with a well-defined normal. On any
// failure the operation stops, reports through rep and returns the error;
// precondition and configuration failures leave the mesh untouched, while
// consistency failures detected after subdivision leave the subdivided but
// undisplaced face to the caller. rep may be nil.
func Apply(m mesh.Editor, face mesh.FaceID, opts Options, rep Reporter) error {
	amp := opts.Amplitude
	if amp == 0 {
		amp = 1
	}
	tol := opts.Tolerances
	if tol == (Tolerances{}) {
		tol = DefaultTolerances
	}

	ids, err := m.FaceVertices(face)
	if err != nil {
		return fail(rep, err)
	}
	if len(ids) != 4 {
		return fail(rep, fmt.Errorf("%w: %d vertices", ErrNotQuad, len(ids)))
	}
	var corners [4]r3.Vec
	for i, id := range ids {
		corners[i] = m.Position(id)
	}
	basis, err := NewBasis(corners)
	if err != nil {
		return fail(rep, err)
	}
	for i, c := range corners {
		if d := math.Abs(basis.PlaneDistance(c)); d > tol.Planar {
			return fail(rep, fmt.Errorf("%w: corner %d is %g off the plane", ErrNotPlanar, i, d))
		}
	}

	field, err := opts.Noise.Field()
	if err != nil {
		return fail(rep, err)
	}

	// Preview pass: sample the kernel at a resolution independent of the
	// final grid to estimate how much geometric detail it needs.
	res := previewResolution(amp)
	preview, err := Generate(res, res, field, amp)
	if err != nil {
		return fail(rep, err)
	}
	cuts, clamped := PlanCuts(preview.StdDev(), opts.Noise.Kind, opts.BaseCuts, opts.MaxCuts)
	if clamped {
		say(rep, Warning, fmt.Sprintf("planned subdivision too fine, clamped to %d cuts per edge", cuts))
	}

	if err := m.SubdivideFaceGrid(face, cuts); err != nil {
		return fail(rep, fmt.Errorf("subdivision failed: %w", err))
	}
	verts, err := ReconstructGrid(m, basis, cuts, tol)
	if err != nil {
		return fail(rep, err)
	}
	final, err := Generate(cuts+1, cuts+1, field, amp)
	if err != nil {
		return fail(rep, err)
	}
	if err := Displace(m, verts, final, basis.Normal); err != nil {
		// Reconstruction already matched the grid, so this cannot trip
		// unless the editor mutated underneath us.
		return fail(rep, errMsg(err.Error()))
	}
	say(rep, Info, fmt.Sprintf("heightmap applied: %s noise, %d cuts, %d vertices displaced", opts.Noise.Kind, cuts, len(verts)))
	return nil
}

// previewResolution scales the preview grid with amplitude, at least 10
// samples per side.
func previewResolution(amplitude float64) int {
	res := int(20 * amplitude)
	if res < 10 {
		res = 10
	}
	return res
}

func say(rep Reporter, sev Severity, msg string) {
	if rep != nil {
		rep.Report(sev, msg)
	}
}

func fail(rep Reporter, err error) error {
	say(rep, Error, err.Error())
	return err
}
