// Package quadtree implements a region quadtree over a bounded plane.
// Points are stored at the finest node that can hold them under a
// fixed per-node capacity, and rectangular range queries skip every
// subtree whose region cannot contain a match.
package quadtree

import (
	"errors"
	"fmt"

	"deedles.dev/quadtree/geom"
)

// ErrUnsupported is returned by operations the tree declares but does
// not implement. It wraps [errors.ErrUnsupported].
var ErrUnsupported = fmt.Errorf("quadtree: %w", errors.ErrUnsupported)

// Tree is a node of a quadtree. A Tree starts as a leaf holding
// points directly; the first insert past its capacity splits it into
// four equal quadrants, and points inserted afterwards route into
// those instead. Points stored before the split stay attached to the
// node that accepted them.
//
// A Tree is owned by a single goroutine. No method is safe for
// concurrent use with Insert, Subdivide, or Clear.
type Tree[T geom.Scalar] struct {
	bounds      geom.Rect[T]
	capacity    int
	maxCapacity int // capacity handed to quadrants on subdivision
	depth       int
	maxDepth    int // 0 or less means unlimited
	points      []geom.Point[T]
	quads       *[4]Tree[T] // nil while a leaf; NW, NE, SE, SW
	presplit    bool
}

// Option configures a Tree during construction. Options run once
// inside New, before the tree holds any points; there is no way to
// reconfigure a tree that has already accumulated state.
type Option[T geom.Scalar] func(*Tree[T])

// Subdivided pre-splits the root into four equal-capacity leaves, so
// the root itself never stores points and only routes them. Useful
// when the caller wants bucket semantics at the leaves and pure
// routing at the root. The split happens after every option has run,
// so the leaves see the final configuration no matter where in the
// option list Subdivided appears.
func Subdivided[T geom.Scalar]() Option[T] {
	return func(t *Tree[T]) { t.presplit = true }
}

// WithMaxDepth caps how deep the tree may subdivide. A node at the
// limit absorbs points past its capacity instead of splitting, which
// bounds recursion and allocation when many points cluster in a tiny
// region. A depth of zero or less means no limit.
func WithMaxDepth[T geom.Scalar](depth int) Option[T] {
	return func(t *Tree[T]) { t.maxDepth = depth }
}

// New returns an empty leaf covering bounds that holds up to capacity
// points before subdividing. The right and bottom edges of bounds are
// exclusive, so bounds must be strictly larger than the largest
// coordinate the caller intends to insert.
func New[T geom.Scalar](bounds geom.Rect[T], capacity int, opts ...Option[T]) *Tree[T] {
	t := &Tree[T]{
		bounds:      bounds,
		capacity:    capacity,
		maxCapacity: capacity,
		points:      make([]geom.Point[T], 0, capacity),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.presplit {
		t.Subdivide()
	}
	return t
}

// Insert adds p to the subtree rooted at t. It reports whether p was
// stored; false means p lies outside t's bounds and the tree is
// unchanged.
func (t *Tree[T]) Insert(p geom.Point[T]) bool {
	if !t.bounds.Contains(p) {
		return false
	}

	if t.quads == nil {
		if len(t.points) < t.capacity {
			t.points = append(t.points, p)
			return true
		}
		if t.maxDepth > 0 && t.depth >= t.maxDepth {
			// At the depth limit the node overfills rather than split.
			logger().Debug(
				"insert past capacity at depth limit",
				"depth", t.depth,
				"points", len(t.points)+1,
			)
			t.points = append(t.points, p)
			return true
		}
		t.Subdivide()
	}

	// Exactly one quadrant can contain p, since the quadrants tile
	// this node's bounds without gap or overlap, but shared borders
	// are delicate with floating-point bounds. Try all four in order
	// and stop at the first that accepts.
	for i := range t.quads {
		if t.quads[i].Insert(p) {
			return true
		}
	}
	return false
}

// Subdivide splits t into four equal quadrants in NW, NE, SE, SW
// order. It does nothing if t has already subdivided. Points already
// stored at t stay at t; only points inserted afterwards route into
// the quadrants.
func (t *Tree[T]) Subdivide() {
	if t.quads != nil {
		return
	}

	rects := t.bounds.Quadrants()
	quads := new([4]Tree[T])
	for i, r := range rects {
		quads[i] = Tree[T]{
			bounds:      r,
			capacity:    t.maxCapacity,
			maxCapacity: t.maxCapacity,
			depth:       t.depth + 1,
			maxDepth:    t.maxDepth,
			points:      make([]geom.Point[T], 0, t.maxCapacity),
		}
	}
	t.quads = quads
}

// Clear resets t to an empty leaf, keeping its bounds and capacity.
// The backing storage for the node's own points is retained, so
// callers that rebuild the index every frame reuse it.
func (t *Tree[T]) Clear() {
	t.points = t.points[:0]
	t.quads = nil
}

// RemoveNearest would remove the stored point closest to p. The tree
// does not support removal yet: RemoveNearest always returns
// [ErrUnsupported] and leaves the tree unchanged.
func (t *Tree[T]) RemoveNearest(p geom.Point[T]) error {
	return ErrUnsupported
}

// Bounds returns the region this node governs.
func (t *Tree[T]) Bounds() geom.Rect[T] {
	return t.bounds
}

// Cap returns the number of points this node stores directly before
// it subdivides.
func (t *Tree[T]) Cap() int {
	return t.capacity
}

// Divided reports whether t has subdivided.
func (t *Tree[T]) Divided() bool {
	return t.quads != nil
}

// Points returns the points stored directly at this node, not those
// in its quadrants. The slice aliases the node's storage and must not
// be modified.
func (t *Tree[T]) Points() []geom.Point[T] {
	return t.points
}

// Quadrants returns this node's four quadrants in NW, NE, SE, SW
// order, or false if t is still a leaf. External renderers walk the
// tree through Quadrants and Points to draw node outlines and stored
// points.
func (t *Tree[T]) Quadrants() (*[4]Tree[T], bool) {
	return t.quads, t.quads != nil
}

// Len returns the number of points stored in the whole subtree.
func (t *Tree[T]) Len() int {
	n := len(t.points)
	if t.quads != nil {
		for i := range t.quads {
			n += t.quads[i].Len()
		}
	}
	return n
}
