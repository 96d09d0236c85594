package frame

import (
	"math"

	"github.com/echoflaresat/gbmgeometry/vectors"
	"github.com/soniakeys/meeus/v3/angle"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/unit"
)

// Position is a direction on the sky expressed in a frame. For ICRS, Lon
// is right ascension and Lat declination.
type Position struct {
	Lon, Lat unit.Angle
	Frame    Frame
}

// New returns a position from longitude/latitude in degrees.
func New(lonDeg, latDeg float64, f Frame) Position {
	return Position{Lon: unit.AngleFromDeg(lonDeg), Lat: unit.AngleFromDeg(latDeg), Frame: f}
}

// FromVec returns the position of direction v in frame f.
func FromVec(v vectors.Vec3, f Frame) Position {
	lon, lat := v.LonLat()
	return Position{Lon: unit.Angle(lon), Lat: unit.Angle(lat), Frame: f}
}

// FromEquatorial wraps an ICRS equatorial coordinate.
func FromEquatorial(eq coord.Equatorial) Position {
	return FromVec(vectors.FromLonLat(float64(eq.RA), eq.Dec.Rad()), ICRS{})
}

// Vec returns the unit vector of p in its own frame.
func (p Position) Vec() vectors.Vec3 {
	return vectors.FromLonLat(p.Lon.Rad(), p.Lat.Rad())
}

func (p Position) LonDeg() float64 { return p.Lon.Deg() }
func (p Position) LatDeg() float64 { return p.Lat.Deg() }

// ICRS returns p transformed to ICRS.
func (p Position) ICRS() Position {
	return Transform(p, ICRS{})
}

// Transform expresses p in the target frame.
func Transform(p Position, target Frame) Position {
	if p.Frame == target {
		return p
	}
	return FromVec(target.FromICRS(p.Frame.ToICRS(p.Vec())), target)
}

// Separation returns the great-circle angle between a and b, after moving
// b into a's frame.
func Separation(a, b Position) unit.Angle {
	b = Transform(b, a.Frame)
	sep := angle.SepHav(a.Lon, a.Lat, b.Lon, b.Lat)
	if math.IsNaN(sep.Rad()) {
		// haversine term rounded past 1 for nearly antipodal points
		return unit.Angle(a.Vec().Angle(b.Vec()))
	}
	return sep
}
