// Package attitude converts spacecraft attitude quaternions into the
// rotation between the instrument body frame and the inertial sky frame.
package attitude

import (
	"errors"
	"fmt"
	"math"

	"github.com/echoflaresat/gbmgeometry/vectors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

var ErrQuaternionSize = errors.New("quaternion must have exactly 4 components")

// Quaternion is a spacecraft attitude. Q1..Q3 hold the vector part and Q4
// the scalar part. It is expected to be unit norm; nothing here checks.
type Quaternion struct {
	Q1, Q2, Q3, Q4 float64
}

// Identity is the attitude with body axes aligned to the inertial axes.
var Identity = Quaternion{Q4: 1}

// FromSlice builds a Quaternion from exactly four components.
func FromSlice(q []float64) (Quaternion, error) {
	if len(q) != 4 {
		return Quaternion{}, fmt.Errorf("%w: got %d", ErrQuaternionSize, len(q))
	}
	return Quaternion{q[0], q[1], q[2], q[3]}, nil
}

// Number returns q as a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.Q4, Imag: q.Q1, Jmag: q.Q2, Kmag: q.Q3}
}

func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// IsUnit reports whether |q| is within tol of 1.
func (q Quaternion) IsUnit(tol float64) bool {
	return math.Abs(q.Norm()-1) <= tol
}

// Matrix returns the direction cosine matrix that takes inertial vectors
// into the body frame. Its transpose goes the other way.
func (q Quaternion) Matrix() *mat.Dense {
	q1, q2, q3, q4 := q.Q1, q.Q2, q.Q3, q.Q4
	return mat.NewDense(3, 3, []float64{
		q1*q1 - q2*q2 - q3*q3 + q4*q4, 2 * (q1*q2 + q4*q3), 2 * (q1*q3 - q4*q2),
		2 * (q1*q2 - q4*q3), -q1*q1 + q2*q2 - q3*q3 + q4*q4, 2 * (q2*q3 + q4*q1),
		2 * (q1*q3 + q4*q2), 2 * (q2*q3 - q4*q1), -q1*q1 - q2*q2 + q3*q3 + q4*q4,
	})
}

// rotateVec rotates v by q using quaternion products (q v q*). For a unit
// quaternion it agrees with Transform.BodyToInertial.
func (q Quaternion) rotateVec(v vectors.Vec3) vectors.Vec3 {
	n := q.Number()
	p := quat.Mul(quat.Mul(n, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(n))
	return vectors.Vec3{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}
