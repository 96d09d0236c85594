package detector

import (
	"errors"
	"slices"
	"testing"

	"github.com/echoflaresat/gbmgeometry/attitude"
	"github.com/echoflaresat/gbmgeometry/sphere"
)

func TestCatalog(t *testing.T) {
	names := Names()
	if len(names) != 14 {
		t.Fatalf("catalog has %d detectors, want 14", len(names))
	}
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for name, spec := range Catalog {
		if spec.Name != name {
			t.Errorf("Catalog[%q].Name = %q", name, spec.Name)
		}
	}

	n0, err := Lookup("n0")
	if err != nil {
		t.Fatalf("Lookup(n0): %v", err)
	}
	if n0.Azimuth != 45.89 || n0.Zenith != 90-20.58 {
		t.Errorf("n0 = %+v", n0)
	}

	if _, err := Lookup("n12"); !errors.Is(err, ErrUnknownDetector) {
		t.Errorf("err = %v, want ErrUnknownDetector", err)
	}
	if _, err := NewByName("bgo", Attitude{Quaternion: attitude.Identity}); !errors.Is(err, ErrUnknownDetector) {
		t.Errorf("err = %v, want ErrUnknownDetector", err)
	}
}

func TestDetectorAccessors(t *testing.T) {
	d, err := NewByName("nb", Attitude{Quaternion: tilted})
	if err != nil {
		t.Fatalf("NewByName: %v", err)
	}
	spec := Catalog["nb"]
	if d.Name() != "nb" || d.Azimuth() != spec.Azimuth || d.Zenith() != spec.Zenith {
		t.Errorf("accessors = %s %v %v", d.Name(), d.Azimuth(), d.Zenith())
	}
	if d.MountPoint() != spec.MountPoint || d.Spec() != spec {
		t.Errorf("MountPoint = %v, want %v", d.MountPoint(), spec.MountPoint)
	}
	if d.SpacecraftPosition() != nil || !d.Time().IsZero() {
		t.Error("expected no position and no time")
	}
}

func TestArray(t *testing.T) {
	a, err := NewArray(Attitude{Quaternion: tilted, Position: &scPos, Time: obsTime})
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	if len(a.Detectors()) != len(Catalog) {
		t.Fatalf("array has %d detectors", len(a.Detectors()))
	}
	if _, ok := a.Get("n9"); !ok {
		t.Error("Get(n9) missing")
	}
	if _, ok := a.Get("x"); ok {
		t.Error("Get(x) should miss")
	}

	for _, choice := range []FrameChoice{InstrumentFrame, CelestialFrame} {
		rings, err := a.FieldsOfView(10, choice)
		if err != nil {
			t.Fatalf("FieldsOfView(%v): %v", choice, err)
		}
		if len(rings) != len(Catalog) {
			t.Fatalf("got %d rings", len(rings))
		}
		for name, ring := range rings {
			if len(ring) != sphere.DefaultSamples || !ring.Closed() {
				t.Errorf("%s: %d samples, closed=%v", name, len(ring), ring.Closed())
			}
		}
	}

	if _, err := a.FieldsOfView(0, CelestialFrame); !errors.Is(err, sphere.ErrInvalidRadius) {
		t.Errorf("err = %v, want ErrInvalidRadius", err)
	}
}

func TestArrayUpdate(t *testing.T) {
	a, err := NewArray(Attitude{Quaternion: attitude.Identity})
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	att := Attitude{Quaternion: tilted, Time: obsTime}
	if err := a.Update(att); err != nil {
		t.Fatalf("Update: %v", err)
	}
	for _, d := range a.Detectors() {
		fresh, err := NewByName(d.Name(), att)
		if err != nil {
			t.Fatalf("NewByName: %v", err)
		}
		if d.Center() != fresh.Center() {
			t.Errorf("%s centre = %v, want %v", d.Name(), d.Center(), fresh.Center())
		}
		if _, err := d.SunAngle(); err != nil {
			t.Errorf("%s SunAngle: %v", d.Name(), err)
		}
	}
}
