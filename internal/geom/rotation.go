package geom

import (
	"fmt"
	"strings"
)

// Rotation is a quarter-turn rotation on the grid.
type Rotation uint8

const (
	R0   Rotation = iota // identity
	CW                   // 90 degrees clockwise
	R180                 // half turn
	CCW                  // 90 degrees counter-clockwise
)

// Rotations lists every rotation in declaration order.
var Rotations = [4]Rotation{R0, CW, R180, CCW}

// Apply rotates p around the origin.
// Panics on a value outside the four declared rotations.
func (r Rotation) Apply(p Coordinate) Coordinate {
	switch r {
	case R0:
		return p
	case CW:
		return Coordinate{X: p.Y, Y: -p.X}
	case R180:
		return Coordinate{X: -p.X, Y: -p.Y}
	case CCW:
		return Coordinate{X: -p.Y, Y: p.X}
	default:
		panic(fmt.Sprintf("geom: invalid rotation %d", uint8(r)))
	}
}

// Inverse returns the rotation that undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation((4 - uint8(r)%4) % 4)
}

// Then returns the rotation equivalent to applying r followed by next.
func (r Rotation) Then(next Rotation) Rotation {
	return Rotation((uint8(r) + uint8(next)) % 4)
}

// String returns the short name of the rotation.
func (r Rotation) String() string {
	switch r {
	case R0:
		return "R0"
	case CW:
		return "CW"
	case R180:
		return "R180"
	case CCW:
		return "CCW"
	default:
		return "Unknown"
	}
}

// ParseRotation converts a name such as "cw" or "180" to a Rotation.
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r0", "0", "none":
		return R0, nil
	case "cw", "90", "r90":
		return CW, nil
	case "r180", "180":
		return R180, nil
	case "ccw", "270", "r270", "-90":
		return CCW, nil
	default:
		return R0, fmt.Errorf("%w: unknown rotation %q", ErrInvalidArgument, s)
	}
}
