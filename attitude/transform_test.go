package attitude

import (
	"errors"
	"math"
	"testing"

	"github.com/echoflaresat/gbmgeometry/vectors"
)

const tol = 1e-10

func unitQuaternions() []Quaternion {
	raw := []Quaternion{
		Identity,
		{1, 0, 0, 0},
		{0, 0, math.Sin(math.Pi / 8), math.Cos(math.Pi / 8)},
		{0.0475, 0.6943, -0.1633, 0.6990},
		{-0.3, 0.5, 0.7, 0.2},
	}
	out := make([]Quaternion, len(raw))
	for i, q := range raw {
		n := q.Norm()
		out[i] = Quaternion{q.Q1 / n, q.Q2 / n, q.Q3 / n, q.Q4 / n}
	}
	return out
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	return math.Min(d, 2*math.Pi-d)
}

func TestRoundTrip(t *testing.T) {
	for _, q := range unitQuaternions() {
		tr := NewTransform(q)
		for _, lon := range []float64{0, 0.8, 3.1, 5.9} {
			for _, lat := range []float64{-1.2, 0, 0.36, 1.5} {
				ra, dec := tr.ToInertial(lon, lat)
				gotLon, gotLat := tr.ToBody(ra, dec)
				if angleDiff(gotLon, lon) > 1e-9 || math.Abs(gotLat-lat) > 1e-9 {
					t.Errorf("q=%v: (%v, %v) -> (%v, %v)", q, lon, lat, gotLon, gotLat)
				}
			}
		}
	}
}

func TestMatrixIsOrthonormal(t *testing.T) {
	for _, q := range unitQuaternions() {
		m := q.Matrix()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				var dot float64
				for k := 0; k < 3; k++ {
					dot += m.At(i, k) * m.At(j, k)
				}
				want := 0.0
				if i == j {
					want = 1
				}
				if math.Abs(dot-want) > tol {
					t.Errorf("q=%v: row %d · row %d = %v, want %v", q, i, j, dot, want)
				}
			}
		}
	}
}

func TestBodyToInertialMatchesQuaternionProduct(t *testing.T) {
	v := vectors.Vec3{X: 0.2, Y: -0.5, Z: 0.84}
	for _, q := range unitQuaternions() {
		got := NewTransform(q).BodyToInertial(v)
		want := q.rotateVec(v)
		if got.Sub(want).Norm() > tol {
			t.Errorf("q=%v: matrix %v, quaternion %v", q, got, want)
		}
	}
}

func TestRotationAboutZ(t *testing.T) {
	// 45° about +Z moves the body +X axis to RA 45°.
	q := Quaternion{0, 0, math.Sin(math.Pi / 8), math.Cos(math.Pi / 8)}
	ra, dec := NewTransform(q).ToInertial(0, 0)
	if math.Abs(ra-math.Pi/4) > tol || math.Abs(dec) > tol {
		t.Errorf("ToInertial = (%v, %v), want (π/4, 0)", ra, dec)
	}
}

func TestFlipQuaternionKeepsOrigin(t *testing.T) {
	ra, dec := NewTransform(Quaternion{1, 0, 0, 0}).ToInertial(0, 0)
	if math.Abs(ra) > tol || math.Abs(dec) > tol {
		t.Errorf("ToInertial = (%v, %v), want (0, 0)", ra, dec)
	}
}

func TestZeroQuaternionIsDegenerate(t *testing.T) {
	_, dec := NewTransform(Quaternion{}).ToInertial(0.3, 0.3)
	if !math.IsNaN(dec) {
		t.Errorf("dec = %v, want NaN for zero quaternion", dec)
	}
}

func TestFromSlice(t *testing.T) {
	q, err := FromSlice([]float64{0.1, 0.2, 0.3, 0.4})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if q != (Quaternion{0.1, 0.2, 0.3, 0.4}) {
		t.Errorf("FromSlice = %v", q)
	}
	if _, err := FromSlice([]float64{1, 0, 0}); !errors.Is(err, ErrQuaternionSize) {
		t.Errorf("err = %v, want ErrQuaternionSize", err)
	}
}

func TestNumber(t *testing.T) {
	q := Quaternion{0.1, 0.2, 0.3, 0.9}
	if n := q.Number(); n.Real != q.Q4 || n.Imag != q.Q1 || n.Jmag != q.Q2 || n.Kmag != q.Q3 {
		t.Errorf("Number() = %v, want scalar part from Q4", n)
	}
	if !Identity.IsUnit(1e-15) {
		t.Error("Identity should be unit")
	}
}
