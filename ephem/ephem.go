// Package ephem supplies apparent Sun and Earth directions for a given time,
// optionally as seen from a spacecraft in Earth orbit.
package ephem

import (
	"errors"
	"fmt"
	"time"

	"github.com/echoflaresat/gbmgeometry/vectors"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// AU is the astronomical unit in kilometers.
const AU = 149597870.7

var ErrUnknownBody = errors.New("unknown body")

// Body selects a solar-system body.
type Body int

const (
	Sun Body = iota
	Earth
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "sun"
	case Earth:
		return "earth"
	default:
		return fmt.Sprintf("body(%d)", int(b))
	}
}

// Provider returns apparent equatorial positions. sc, when non-nil, is the
// spacecraft position in km in an Earth-centred equatorial frame.
type Provider interface {
	Apparent(body Body, t time.Time, sc *vectors.Vec3) (coord.Equatorial, error)
}

// Meeus computes positions from the low-precision solar theory in
// Meeus, Astronomical Algorithms, chapter 25.
type Meeus struct{}

func (Meeus) Apparent(body Body, t time.Time, sc *vectors.Vec3) (coord.Equatorial, error) {
	jd := julian.TimeToJD(t.UTC())

	switch body {
	case Sun:
		ra, dec := solar.ApparentEquatorial(jd)
		if sc == nil {
			return coord.Equatorial{RA: ra, Dec: dec}, nil
		}
		dist := solar.Radius(base.J2000Century(jd)) * AU
		sun := vectors.FromLonLat(float64(ra), dec.Rad()).Scale(dist)
		return equatorial(sun.Sub(*sc)), nil

	case Earth:
		if sc != nil {
			return equatorial(sc.Scale(-1)), nil
		}
		// No vantage point: the Earth as seen from the Sun.
		ra, dec := solar.ApparentEquatorial(jd)
		return equatorial(vectors.FromLonLat(float64(ra), dec.Rad()).Scale(-1)), nil
	}

	return coord.Equatorial{}, fmt.Errorf("%w: %v", ErrUnknownBody, body)
}

func equatorial(v vectors.Vec3) coord.Equatorial {
	lon, lat := v.LonLat()
	return coord.Equatorial{RA: unit.RA(lon), Dec: unit.Angle(lat)}
}
