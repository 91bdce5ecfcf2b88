package quadtree

import (
	"iter"

	"deedles.dev/quadtree/geom"
	"deedles.dev/xiter"
)

// Query returns every stored point inside rng. The order is
// deterministic: this node's own points in insertion order, then each
// quadrant's results in NW, NE, SE, SW order. Subtrees whose bounds
// do not overlap rng are never visited.
func (t *Tree[T]) Query(rng geom.Rect[T]) []geom.Point[T] {
	return t.query(rng, nil)
}

func (t *Tree[T]) query(rng geom.Rect[T], dst []geom.Point[T]) []geom.Point[T] {
	if !t.bounds.Overlaps(rng) {
		return dst
	}

	for _, p := range t.points {
		if rng.Contains(p) {
			dst = append(dst, p)
		}
	}

	if t.quads != nil {
		for i := range t.quads {
			dst = t.quads[i].query(rng, dst)
		}
	}
	return dst
}

// Within is the same as [Tree.Query] but yields the matching points
// from an iterator instead of collecting them into a slice.
func (t *Tree[T]) Within(rng geom.Rect[T]) iter.Seq[geom.Point[T]] {
	seq := iter.Seq[geom.Point[T]](func(yield func(geom.Point[T]) bool) {
		t.walk(yield, &rng)
	})
	return xiter.Filter(seq, rng.Contains)
}

// All yields every point stored in the subtree, own points first and
// quadrants in NW, NE, SE, SW order.
func (t *Tree[T]) All() iter.Seq[geom.Point[T]] {
	return func(yield func(geom.Point[T]) bool) {
		t.walk(yield, nil)
	}
}

// walk yields the subtree's points depth-first. A non-nil prune
// rectangle skips nodes whose bounds do not overlap it. It reports
// whether the caller wants more points.
func (t *Tree[T]) walk(yield func(geom.Point[T]) bool, prune *geom.Rect[T]) bool {
	if prune != nil && !t.bounds.Overlaps(*prune) {
		return true
	}

	for _, p := range t.points {
		if !yield(p) {
			return false
		}
	}

	if t.quads != nil {
		for i := range t.quads {
			if !t.quads[i].walk(yield, prune) {
				return false
			}
		}
	}
	return true
}
