package attitude

import (
	"github.com/echoflaresat/gbmgeometry/vectors"
	"gonum.org/v1/gonum/mat"
)

// Transform maps body-frame directions to inertial directions and back.
type Transform struct {
	q Quaternion
	m *mat.Dense
}

func NewTransform(q Quaternion) Transform {
	return Transform{q: q, m: q.Matrix()}
}

func (t Transform) Quaternion() Quaternion {
	return t.q
}

// BodyToInertial applies Mᵀ.
func (t Transform) BodyToInertial(v vectors.Vec3) vectors.Vec3 {
	return apply(t.m.T(), v)
}

// InertialToBody applies M.
func (t Transform) InertialToBody(v vectors.Vec3) vectors.Vec3 {
	return apply(t.m, v)
}

// ToInertial maps a body-frame longitude/latitude (radians) to inertial
// right ascension/declination (radians).
func (t Transform) ToInertial(lon, lat float64) (ra, dec float64) {
	return t.BodyToInertial(vectors.FromLonLat(lon, lat)).LonLat()
}

// ToBody is the inverse of ToInertial.
func (t Transform) ToBody(ra, dec float64) (lon, lat float64) {
	return t.InertialToBody(vectors.FromLonLat(ra, dec)).LonLat()
}

func apply(m mat.Matrix, v vectors.Vec3) vectors.Vec3 {
	var r mat.VecDense
	r.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return vectors.Vec3{X: r.AtVec(0), Y: r.AtVec(1), Z: r.AtVec(2)}
}
