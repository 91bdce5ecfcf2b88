// Package geom provides generic 2D point and rectangle primitives.
//
// It is patterned after image.Point and image.Rectangle, but is
// generic over its scalar type and keeps rectangles in origin/size
// form rather than corner form, normalizing negative extents inside
// every geometric predicate.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	~float32 | ~float64 | constraints.Integer
}

// Point is a 2D coordinate. It is a plain value: methods return new
// Points instead of mutating.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the vector sum of p and q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Pt(p.X+q.X, p.Y+q.Y)
}

// Sub returns the vector difference of p and q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Pt(p.X-q.X, p.Y-q.Y)
}

// In reports whether p is inside r. It is shorthand for
// r.Contains(p).
func (p Point[T]) In(r Rect[T]) bool {
	return r.Contains(p)
}
