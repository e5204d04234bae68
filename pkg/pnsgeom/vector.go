// Package pnsgeom provides the integer-coordinate 2D geometry primitives
// the router world model is built on: vectors, bounding boxes, shapes,
// line chains, and clearance-aware collision tests.
package pnsgeom

import "math"

// Vec is a 2D point or displacement in integer board units (nanometers).
type Vec struct {
	X, Y int64
}

// Add returns the sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns the vector scaled by an integer factor.
func (v Vec) Scale(factor int64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// Dot returns the dot product of two vectors.
func (v Vec) Dot(other Vec) int64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product (z component) of two vectors.
func (v Vec) Cross(other Vec) int64 {
	return v.X*other.Y - v.Y*other.X
}

// SquaredNorm returns the squared Euclidean length of the vector.
func (v Vec) SquaredNorm() int64 {
	return v.X*v.X + v.Y*v.Y
}

// EuclideanNorm returns the Euclidean length of the vector.
func (v Vec) EuclideanNorm() int64 {
	return int64(math.Sqrt(float64(v.SquaredNorm())))
}

// Equals reports whether two vectors are identical.
func (v Vec) Equals(other Vec) bool {
	return v.X == other.X && v.Y == other.Y
}
