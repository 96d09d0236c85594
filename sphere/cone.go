// Package sphere builds circular regions (spherical caps) on the unit
// sphere and samples their boundaries.
package sphere

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// DefaultSamples is the boundary resolution used for detector footprints.
const DefaultSamples = 500

var (
	ErrInvalidRadius = errors.New("cone radius must be in (0, 180) degrees")
	ErrTooFewSamples = errors.New("cone boundary needs at least 4 samples")
)

// LonLat is a point on the sphere in degrees, longitude in [0, 360).
type LonLat struct {
	Lon, Lat float64
}

// Point returns p as an s2 unit vector.
func (p LonLat) Point() s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
}

func fromPoint(pt s2.Point) LonLat {
	ll := s2.LatLngFromPoint(pt)
	lon := ll.Lng.Degrees()
	if lon < 0 {
		lon += 360
	}
	if lon >= 360 {
		lon -= 360
	}
	return LonLat{Lon: lon, Lat: ll.Lat.Degrees()}
}

// Ring is a closed boundary: the last sample repeats the first.
type Ring []LonLat

// Closed reports whether the ring starts and ends on the same sample.
func (r Ring) Closed() bool {
	return len(r) > 1 && r[0] == r[len(r)-1]
}

// Cone returns the boundary of the spherical cap of the given angular
// radius (degrees) around (lon, lat), as samples points walking once around
// the centre. The vertices come from a regular s2 loop in the centre's own
// frame, so poles and the lon 0/360 seam need no special handling.
func Cone(lon, lat, radius float64, samples int) (Ring, error) {
	if !(radius > 0 && radius < 180) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if samples < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, samples)
	}

	center := LonLat{Lon: lon, Lat: lat}.Point()
	loop := s2.RegularLoop(center, s1.Angle(radius)*s1.Degree, samples-1)

	ring := make(Ring, 0, samples)
	for _, v := range loop.Vertices() {
		ring = append(ring, fromPoint(v))
	}
	return append(ring, ring[0]), nil
}

// Distance returns the great-circle angle in degrees between a and b.
func Distance(a, b LonLat) float64 {
	return a.Point().Distance(b.Point()).Degrees()
}

// Contains reports whether p lies within radius degrees of center.
func Contains(center LonLat, radius float64, p LonLat) bool {
	c := s2.CapFromCenterAngle(center.Point(), s1.Angle(radius)*s1.Degree)
	return c.ContainsPoint(p.Point())
}
