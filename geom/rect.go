package geom

// Rect is an axis-aligned rectangle described by its origin and size.
// Width and Height may be negative: every geometric predicate
// normalizes first, so a Rect with negative extents is equivalent to
// the canonical Rect covering the same area.
type Rect[T Scalar] struct {
	Left, Top, Width, Height T
}

// Rt is shorthand for Rect[T]{left, top, width, height}.
func Rt[T Scalar](left, top, width, height T) Rect[T] {
	return Rect[T]{Left: left, Top: top, Width: width, Height: height}
}

// RtSize constructs a Rect from an origin point and a size vector.
func RtSize[T Scalar](pos, size Point[T]) Rect[T] {
	return Rt(pos.X, pos.Y, size.X, size.Y)
}

// Canon returns the canonical version of r: the rectangle covering
// the same area with non-negative Width and Height.
func (r Rect[T]) Canon() Rect[T] {
	if r.Width < 0 {
		r.Left += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Top += r.Height
		r.Height = -r.Height
	}
	return r
}

// Min returns the top-left corner of the canonical r.
func (r Rect[T]) Min() Point[T] {
	r = r.Canon()
	return Pt(r.Left, r.Top)
}

// Max returns the bottom-right corner of the canonical r. Max is
// exclusive: see Contains.
func (r Rect[T]) Max() Point[T] {
	r = r.Canon()
	return Pt(r.Left+r.Width, r.Top+r.Height)
}

// Dx returns the absolute width of r.
func (r Rect[T]) Dx() T {
	if r.Width < 0 {
		return -r.Width
	}
	return r.Width
}

// Dy returns the absolute height of r.
func (r Rect[T]) Dy() T {
	if r.Height < 0 {
		return -r.Height
	}
	return r.Height
}

// Empty reports whether r covers no area.
func (r Rect[T]) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains reports whether p is inside r. The left and top edges are
// inclusive and the right and bottom edges exclusive, so rectangles
// that tile a region assign every point to exactly one tile.
func (r Rect[T]) Contains(p Point[T]) bool {
	rmin, rmax := r.Min(), r.Max()
	return p.X >= rmin.X && p.X < rmax.X &&
		p.Y >= rmin.Y && p.Y < rmax.Y
}

// Intersect returns the canonical overlap of r and s. Rectangles that
// only share an edge or a corner do not overlap, matching the
// exclusive upper bound of Contains.
func (r Rect[T]) Intersect(s Rect[T]) (Rect[T], bool) {
	rmin, rmax := r.Min(), r.Max()
	smin, smax := s.Min(), s.Max()

	left := max(rmin.X, smin.X)
	top := max(rmin.Y, smin.Y)
	right := min(rmax.X, smax.X)
	bottom := min(rmax.Y, smax.Y)

	if left >= right || top >= bottom {
		return Rect[T]{}, false
	}
	return Rt(left, top, right-left, bottom-top), true
}

// Overlaps reports whether r and s share any area. It is shorthand
// for the second return value of Intersect.
func (r Rect[T]) Overlaps(s Rect[T]) bool {
	_, ok := r.Intersect(s)
	return ok
}

// Quadrants splits r into four equal tiles in NW, NE, SE, SW order.
// The tiles are computed from r's raw origin and size, so a
// negative-extent rectangle produces negative-extent tiles covering
// the same four areas. Together the tiles cover r exactly: every
// point contained in r is contained in exactly one tile.
//
// For integer scalars a rectangle with odd Width or Height loses the
// remainder strip to truncation; callers that need exact integer
// tiling should pick even (ideally power-of-two) extents.
func (r Rect[T]) Quadrants() [4]Rect[T] {
	w := r.Width / 2
	h := r.Height / 2
	return [4]Rect[T]{
		Rt(r.Left, r.Top, w, h),
		Rt(r.Left+w, r.Top, w, h),
		Rt(r.Left+w, r.Top+h, w, h),
		Rt(r.Left, r.Top+h, w, h),
	}
}
