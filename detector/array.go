package detector

import (
	"runtime"

	"github.com/echoflaresat/gbmgeometry/ephem"
	"github.com/echoflaresat/gbmgeometry/sphere"
	"golang.org/x/sync/errgroup"
)

// Array is every catalog detector resolved against one attitude. Each
// detector is still independent; the array only fans work out.
type Array struct {
	detectors []*Detector
	byName    map[string]*Detector
}

// NewArray builds all catalog detectors, sharing one ephemeris provider
// unless opts supply another.
func NewArray(att Attitude, opts ...Option) (*Array, error) {
	opts = append([]Option{WithEphemeris(ephem.Default())}, opts...)

	a := &Array{byName: make(map[string]*Detector, len(Catalog))}
	for _, name := range Names() {
		d, err := New(Catalog[name], att, opts...)
		if err != nil {
			return nil, err
		}
		a.detectors = append(a.detectors, d)
		a.byName[name] = d
	}
	return a, nil
}

// Detectors returns the detectors in name order.
func (a *Array) Detectors() []*Detector {
	return a.detectors
}

func (a *Array) Get(name string) (*Detector, bool) {
	d, ok := a.byName[name]
	return d, ok
}

// Update applies att to every detector concurrently. On error some
// detectors may already hold att.
func (a *Array) Update(att Attitude) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, d := range a.detectors {
		d := d
		g.Go(func() error {
			return d.UpdatePosition(att)
		})
	}
	return g.Wait()
}

// FieldsOfView computes every detector's footprint concurrently, keyed by
// detector name.
func (a *Array) FieldsOfView(radius float64, choice FrameChoice) (map[string]sphere.Ring, error) {
	rings := make([]sphere.Ring, len(a.detectors))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range a.detectors {
		i, d := i, d
		g.Go(func() error {
			ring, err := d.FieldOfView(radius, choice)
			if err != nil {
				return err
			}
			rings[i] = ring
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]sphere.Ring, len(rings))
	for i, d := range a.detectors {
		out[d.Name()] = rings[i]
	}
	return out, nil
}
