package heightfield

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrNotQuad reports a selected face that is not a quadrilateral.
	ErrNotQuad = errors.New("face is not a quadrilateral")
	// ErrDegenerateNormal reports a face whose edges span no area.
	ErrDegenerateNormal = errors.New("face has a degenerate normal")
	// ErrNotPlanar reports a face whose corners leave the face plane.
	ErrNotPlanar = errors.New("face is not planar")
	// ErrGridMismatch reports a reconstructed vertex set whose size does
	// not match the expected grid, indicating a subdivision/projection
	// mismatch. Nothing is displaced when it is returned.
	ErrGridMismatch = errors.New("vertex count does not match heightmap grid")
)

// errMsg returns an error annotating msg with the calling function and
// line number.
func errMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s", msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s", fn.Name(), line, msg)
}
