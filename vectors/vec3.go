package vectors

import "math"

// Vec3 is a simple 3D vector with float64 components.
type Vec3 struct {
	X, Y, Z float64
}

// FromLonLat embeds a longitude/latitude pair (radians) on the unit sphere.
func FromLonLat(lon, lat float64) Vec3 {
	sLon, cLon := math.Sincos(lon)
	sLat, cLat := math.Sincos(lat)
	return Vec3{X: cLat * cLon, Y: cLat * sLon, Z: sLat}
}

// FromAzZen embeds an azimuth/zenith pair (radians) on the unit sphere,
// zenith measured from +Z.
func FromAzZen(az, zen float64) Vec3 {
	sAz, cAz := math.Sincos(az)
	sZen, cZen := math.Sincos(zen)
	return Vec3{X: cAz * sZen, Y: sAz * sZen, Z: cZen}
}

// LonLat returns the spherical angles (radians) of v. Longitude is in
// [0, 2π). A zero vector yields NaN latitude.
func (v Vec3) LonLat() (lon, lat float64) {
	lon = math.Atan2(v.Y, v.X)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	lat = math.Atan2(v.Z, math.Hypot(v.X, v.Y))
	if v.Norm() == 0 {
		lat = math.NaN()
	}
	return lon, lat
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Angle returns the angle in radians between v and o, stable for both
// small and nearly antiparallel vectors.
func (v Vec3) Angle(o Vec3) float64 {
	return math.Atan2(v.Cross(o).Norm(), v.Dot(o))
}
