package detector

import (
	"errors"
	"fmt"
	"slices"

	"github.com/echoflaresat/gbmgeometry/vectors"
	"golang.org/x/exp/maps"
)

var ErrUnknownDetector = errors.New("unknown detector")

// Spec is the fixed mounting of one detector, angles in degrees.
//
// The sky boresight is the instrument-frame point (lon Azimuth, lat Zenith),
// while the body unit vector treats Zenith as a polar angle from +Z. The
// two readings differ and both are kept as published. MountPoint is the
// mechanical reference point and plays no part in pointing.
type Spec struct {
	Name       string
	Azimuth    float64
	Zenith     float64
	MountPoint vectors.Vec3
}

// Catalog holds the twelve NaI scintillators (n0..nb) and the two BGO
// calorimeters (b0, b1).
var Catalog = map[string]Spec{
	"n0": {"n0", 45.89, 90 - 20.58, vectors.Vec3{X: 96.1, Y: 80.4, Z: 107.6}},
	"n1": {"n1", 45.11, 90 - 45.31, vectors.Vec3{X: 101.1, Y: 72.8, Z: 72.1}},
	"n2": {"n2", 58.44, 90 - 90.21, vectors.Vec3{X: 109.0, Y: 58.1, Z: 99.0}},
	"n3": {"n3", 314.87, 90 - 45.24, vectors.Vec3{X: 97.7, Y: -76.3, Z: 102.5}},
	"n4": {"n4", 303.15, 90 - 90.27, vectors.Vec3{X: 109.0, Y: -57.5, Z: 83.6}},
	"n5": {"n5", 3.35, 90 - 89.97, vectors.Vec3{X: 99.6, Y: -49.7, Z: 100.1}},
	"n6": {"n6", 224.93, 90 - 20.43, vectors.Vec3{X: -95.8, Y: -80.3, Z: 107.1}},
	"n7": {"n7", 224.62, 90 - 46.18, vectors.Vec3{X: -100.6, Y: -72.5, Z: 71.6}},
	"n8": {"n8", 236.61, 90 - 89.97, vectors.Vec3{X: -108.4, Y: -57.2, Z: 99.0}},
	"n9": {"n9", 135.19, 90 - 45.55, vectors.Vec3{X: -97.5, Y: 76.5, Z: 102.5}},
	"na": {"na", 123.73, 90 - 90.42, vectors.Vec3{X: -108.7, Y: 57.7, Z: 83.7}},
	"nb": {"nb", 183.74, 90 - 90.32, vectors.Vec3{X: -99.3, Y: 50.0, Z: 100.2}},
	"b0": {"b0", 0, 0, vectors.Vec3{X: 126.05, Y: 0.13, Z: 63.32}},
	"b1": {"b1", 180, 0, vectors.Vec3{X: -126.14, Y: 0.01, Z: 67.22}},
}

// Lookup returns the spec for a detector name.
func Lookup(name string) (Spec, error) {
	s, ok := Catalog[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownDetector, name)
	}
	return s, nil
}

// Names returns the catalog's detector names in sorted order.
func Names() []string {
	names := maps.Keys(Catalog)
	slices.Sort(names)
	return names
}

// NewByName looks up name in the catalog and resolves it against att.
func NewByName(name string, att Attitude, opts ...Option) (*Detector, error) {
	spec, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(spec, att, opts...)
}
