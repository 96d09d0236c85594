// Package detector resolves the pointing of individual instrument detectors
// on the sky for a given spacecraft attitude, position and time.
//
// A Detector is not safe for concurrent mutation; callers serialise
// UpdatePosition, SetQuaternion and SetSpacecraftPosition themselves.
package detector

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/echoflaresat/gbmgeometry/attitude"
	"github.com/echoflaresat/gbmgeometry/ephem"
	"github.com/echoflaresat/gbmgeometry/frame"
	"github.com/echoflaresat/gbmgeometry/sphere"
	"github.com/echoflaresat/gbmgeometry/vectors"
)

var ErrNoEphemeris = errors.New("no ephemeris data available: observation time not set")

// FrameChoice selects the frame a field of view is built in.
type FrameChoice int

const (
	// CelestialFrame builds the cone around the ICRS boresight.
	CelestialFrame FrameChoice = iota
	// InstrumentFrame builds the cone in instrument longitude/latitude.
	InstrumentFrame
)

func (c FrameChoice) String() string {
	switch c {
	case CelestialFrame:
		return "icrs"
	case InstrumentFrame:
		return "instrument"
	default:
		return fmt.Sprintf("frame(%d)", int(c))
	}
}

// ParseFrameChoice accepts "icrs" or "instrument".
func ParseFrameChoice(s string) (FrameChoice, error) {
	switch s {
	case "icrs", "celestial":
		return CelestialFrame, nil
	case "instrument", "body":
		return InstrumentFrame, nil
	}
	return 0, fmt.Errorf("unknown frame %q", s)
}

// Attitude is the spacecraft state a detector is resolved against.
type Attitude struct {
	Quaternion attitude.Quaternion
	// Position is the spacecraft position in km, Earth centred. Optional.
	Position *vectors.Vec3
	// Time of the observation. The zero value means no time, and no
	// Sun or Earth positions.
	Time time.Time
}

// Detector is one detector's pointing state.
type Detector struct {
	spec Spec
	xyz  vectors.Vec3
	eph  ephem.Provider

	att    Attitude
	frame  frame.Instrument
	center frame.Position
	sun    *frame.Position
	earth  *frame.Position
}

type Option func(*Detector)

// WithEphemeris sets the provider used for Sun and Earth positions.
func WithEphemeris(p ephem.Provider) Option {
	return func(d *Detector) {
		d.eph = p
	}
}

// New resolves spec against att.
func New(spec Spec, att Attitude, opts ...Option) (*Detector, error) {
	d := &Detector{
		spec: spec,
		xyz:  vectors.FromAzZen(deg2rad(spec.Azimuth), deg2rad(spec.Zenith)),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.eph == nil {
		d.eph = ephem.Default()
	}
	if err := d.UpdatePosition(att); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdatePosition replaces attitude, spacecraft position and time together
// and recomputes everything derived from them. On error d is unchanged.
func (d *Detector) UpdatePosition(att Attitude) error {
	if att.Position != nil {
		p := *att.Position
		att.Position = &p
	}

	f := frame.NewInstrument(att.Quaternion, att.Position)
	center := frame.New(d.spec.Azimuth, d.spec.Zenith, f)

	var sun, earth *frame.Position
	if !att.Time.IsZero() {
		var err error
		if sun, err = d.resolve(ephem.Sun, att, f); err != nil {
			return err
		}
		if earth, err = d.resolve(ephem.Earth, att, f); err != nil {
			return err
		}
	}

	d.att = att
	d.frame = f
	d.center = center
	d.sun = sun
	d.earth = earth
	return nil
}

// SetQuaternion changes the attitude only. Sun and Earth positions are
// re-expressed in the new frame.
func (d *Detector) SetQuaternion(q attitude.Quaternion) error {
	att := d.att
	att.Quaternion = q
	return d.UpdatePosition(att)
}

// SetSpacecraftPosition changes the spacecraft position only. pos may be nil.
func (d *Detector) SetSpacecraftPosition(pos *vectors.Vec3) error {
	att := d.att
	att.Position = pos
	return d.UpdatePosition(att)
}

func (d *Detector) resolve(body ephem.Body, att Attitude, f frame.Instrument) (*frame.Position, error) {
	eq, err := d.eph.Apparent(body, att.Time, att.Position)
	if err != nil {
		return nil, fmt.Errorf("%s %s position: %w", d.spec.Name, body, err)
	}
	p := frame.Transform(frame.FromEquatorial(eq), f)
	return &p, nil
}

// FieldOfView returns the boundary of the cone of radius degrees around the
// boresight, as sphere.DefaultSamples closed-ring points.
func (d *Detector) FieldOfView(radius float64, choice FrameChoice) (sphere.Ring, error) {
	c := d.center
	switch choice {
	case InstrumentFrame:
	case CelestialFrame:
		c = c.ICRS()
	default:
		return nil, fmt.Errorf("field of view: unknown %v", choice)
	}
	ll := lonLat(c)
	ring, err := sphere.Cone(ll.Lon, ll.Lat, radius, sphere.DefaultSamples)
	if err != nil {
		return nil, fmt.Errorf("%s field of view: %w", d.spec.Name, err)
	}
	return ring, nil
}

// SunInFieldOfView reports whether the Sun lies within radius degrees of
// the boresight.
func (d *Detector) SunInFieldOfView(radius float64) (bool, error) {
	if d.sun == nil {
		return false, ErrNoEphemeris
	}
	return sphere.Contains(lonLat(d.center), radius, lonLat(*d.sun)), nil
}

func lonLat(p frame.Position) sphere.LonLat {
	return sphere.LonLat{Lon: p.LonDeg(), Lat: p.LatDeg()}
}

// Center is the boresight in the instrument frame.
func (d *Detector) Center() frame.Position { return d.center }

// CenterICRS is the boresight in ICRS.
func (d *Detector) CenterICRS() frame.Position { return d.center.ICRS() }

// Frame is the current instrument frame.
func (d *Detector) Frame() frame.Instrument { return d.frame }

// XYZ is the body-frame boresight unit vector. It depends only on the
// detector's mounting and never changes with attitude.
func (d *Detector) XYZ() vectors.Vec3 { return d.xyz }

func (d *Detector) SunPosition() (frame.Position, error) {
	if d.sun == nil {
		return frame.Position{}, ErrNoEphemeris
	}
	return *d.sun, nil
}

// SunAngle is the boresight to Sun angle in degrees.
func (d *Detector) SunAngle() (float64, error) {
	if d.sun == nil {
		return 0, ErrNoEphemeris
	}
	return frame.Separation(d.center, *d.sun).Deg(), nil
}

func (d *Detector) EarthPosition() (frame.Position, error) {
	if d.earth == nil {
		return frame.Position{}, ErrNoEphemeris
	}
	return *d.earth, nil
}

// EarthAngle is the boresight to Earth angle in degrees.
func (d *Detector) EarthAngle() (float64, error) {
	if d.earth == nil {
		return 0, ErrNoEphemeris
	}
	return frame.Separation(d.center, *d.earth).Deg(), nil
}

// Separation is the angle in degrees between two detectors' boresights.
func (d *Detector) Separation(other *Detector) float64 {
	return frame.Separation(d.center, other.center).Deg()
}

func (d *Detector) Name() string                      { return d.spec.Name }
func (d *Detector) Spec() Spec                        { return d.spec }
func (d *Detector) Azimuth() float64                  { return d.spec.Azimuth }
func (d *Detector) Zenith() float64                   { return d.spec.Zenith }
func (d *Detector) MountPoint() vectors.Vec3          { return d.spec.MountPoint }
func (d *Detector) Quaternion() attitude.Quaternion   { return d.att.Quaternion }
func (d *Detector) SpacecraftPosition() *vectors.Vec3 { return d.frame.SpacecraftPosition() }
func (d *Detector) Time() time.Time                   { return d.att.Time }

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
