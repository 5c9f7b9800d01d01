package msh

import (
	"fmt"
	"strings"

	"github.com/turtlep/gomsh/pkg/geom"
)

// Axis identifies one of the six signed cardinal directions of the
// source coordinate system.
type Axis int8

// Axis constants.
const (
	AxisPosX Axis = iota
	AxisNegX
	AxisPosY
	AxisNegY
	AxisPosZ
	AxisNegZ
)

// ParseAxis parses an axis name such as "Y", "+Y" or "-Z".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X", "+X":
		return AxisPosX, nil
	case "-X":
		return AxisNegX, nil
	case "Y", "+Y":
		return AxisPosY, nil
	case "-Y":
		return AxisNegY, nil
	case "Z", "+Z":
		return AxisPosZ, nil
	case "-Z":
		return AxisNegZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
}

// String returns the axis name, e.g. "+Y".
func (a Axis) String() string {
	switch a {
	case AxisPosX:
		return "+X"
	case AxisNegX:
		return "-X"
	case AxisPosY:
		return "+Y"
	case AxisNegY:
		return "-Y"
	case AxisPosZ:
		return "+Z"
	case AxisNegZ:
		return "-Z"
	default:
		return fmt.Sprintf("Axis(%d)", int8(a))
	}
}

// Vector returns the unit vector for the axis.
func (a Axis) Vector() geom.Vec3 {
	switch a {
	case AxisPosX:
		return geom.Vec3{X: 1}
	case AxisNegX:
		return geom.Vec3{X: -1}
	case AxisPosY:
		return geom.Vec3{Y: 1}
	case AxisNegY:
		return geom.Vec3{Y: -1}
	case AxisPosZ:
		return geom.Vec3{Z: 1}
	case AxisNegZ:
		return geom.Vec3{Z: -1}
	default:
		return geom.Vec3{}
	}
}

// RemapMatrix builds the signed permutation matrix that carries source
// positions into the engine convention selected by (forward, up). The
// side axis is derived as forward × up, and the matrix columns are
// (side, up, forward): source x is sent along side, y along up, z along
// forward. One matrix serves the whole export; the per-vertex loop is
// branch-free.
//
// Returns ErrInvalidAxes when forward and up lie on the same physical
// axis (identical or anti-parallel), since no side axis exists then.
func RemapMatrix(forward, up Axis) (geom.Mat3, error) {
	fwd := forward.Vector()
	upv := up.Vector()

	side := fwd.Cross(upv)
	if side.IsZero() {
		return geom.Mat3{}, fmt.Errorf("%w: forward=%s up=%s", ErrInvalidAxes, forward, up)
	}

	return geom.Mat3FromColumns(side, upv, fwd), nil
}
