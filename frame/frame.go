// Package frame defines celestial reference frames, sky positions in those
// frames, and the generic transform and separation between positions.
//
// Frames are plain values passed to Transform; there is no registry. Two
// Instrument frames built from the same quaternion and spacecraft position
// compare equal with == and transform identically.
package frame

import (
	"errors"
	"fmt"

	"github.com/echoflaresat/gbmgeometry/attitude"
	"github.com/echoflaresat/gbmgeometry/vectors"
)

var ErrPartialPosition = errors.New("spacecraft position needs all of x, y, z or none")

// Frame converts unit vectors between itself and ICRS.
type Frame interface {
	Name() string
	ToICRS(v vectors.Vec3) vectors.Vec3
	FromICRS(v vectors.Vec3) vectors.Vec3
}

// ICRS is the standard inertial celestial frame.
type ICRS struct{}

func (ICRS) Name() string                         { return "icrs" }
func (ICRS) ToICRS(v vectors.Vec3) vectors.Vec3   { return v }
func (ICRS) FromICRS(v vectors.Vec3) vectors.Vec3 { return v }

// Instrument is the spacecraft body frame at one attitude. The spacecraft
// position travels with the frame as metadata; it never rotates directions.
type Instrument struct {
	Quaternion attitude.Quaternion

	scPos    vectors.Vec3
	hasSCPos bool
}

// NewInstrument builds the frame for attitude q. pos may be nil.
func NewInstrument(q attitude.Quaternion, pos *vectors.Vec3) Instrument {
	f := Instrument{Quaternion: q}
	if pos != nil {
		f.scPos = *pos
		f.hasSCPos = true
	}
	return f
}

func (Instrument) Name() string { return "instrument" }

// SpacecraftPosition returns the position carried by the frame, or nil.
func (f Instrument) SpacecraftPosition() *vectors.Vec3 {
	if !f.hasSCPos {
		return nil
	}
	p := f.scPos
	return &p
}

func (f Instrument) ToICRS(v vectors.Vec3) vectors.Vec3 {
	return attitude.NewTransform(f.Quaternion).BodyToInertial(v)
}

func (f Instrument) FromICRS(v vectors.Vec3) vectors.Vec3 {
	return attitude.NewTransform(f.Quaternion).InertialToBody(v)
}

// PositionFromComponents assembles a spacecraft position from optional
// components. All three must be set, or none (nil result).
func PositionFromComponents(x, y, z *float64) (*vectors.Vec3, error) {
	switch {
	case x == nil && y == nil && z == nil:
		return nil, nil
	case x != nil && y != nil && z != nil:
		return &vectors.Vec3{X: *x, Y: *y, Z: *z}, nil
	}
	return nil, ErrPartialPosition
}

// PositionFromSlice accepts an empty slice (no position) or exactly three
// components.
func PositionFromSlice(p []float64) (*vectors.Vec3, error) {
	switch len(p) {
	case 0:
		return nil, nil
	case 3:
		return &vectors.Vec3{X: p[0], Y: p[1], Z: p[2]}, nil
	}
	return nil, fmt.Errorf("%w: got %d components", ErrPartialPosition, len(p))
}
