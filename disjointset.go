package disjointset

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an element that was
// never added. Use errors.Is to test for it.
var ErrNotFound = errors.New("disjointset: element not found")

// DisjointSet partitions elements into disjoint subsets, each identified by
// a canonical representative (its root), and supports merging subsets
// incrementally. It implements union by size and path halving, so a long
// sequence of operations costs near-constant amortized time per operation.
//
// The zero value is not usable; create instances with New.
type DisjointSet[E comparable] struct {
	// parent holds every tracked element. A root satisfies parent[e] == e.
	parent map[E]E
	// size is meaningful only for roots: the number of elements whose root
	// it is. Entries for non-roots are stale and are deleted on merge.
	size map[E]int
	sets int
}

// New creates an empty DisjointSet.
func New[E comparable]() *DisjointSet[E] {
	return &DisjointSet[E]{
		parent: make(map[E]E),
		size:   make(map[E]int),
	}
}

// Add inserts x as a new singleton subset and returns its representative.
// Adding an element that is already tracked is a no-op that returns the
// element's current representative.
func (d *DisjointSet[E]) Add(x E) E {
	if _, ok := d.parent[x]; ok {
		root, _ := d.Find(x)
		return root
	}
	d.parent[x] = x
	d.size[x] = 1
	d.sets++
	return x
}

// Find returns the root of the subset containing x, or ErrNotFound if x was
// never added.
//
// Find halves the traversed path as it walks: each visited element is
// re-pointed at its grandparent before advancing. This shortens future
// traversals without changing which subset any element belongs to.
func (d *DisjointSet[E]) Find(x E) (E, error) {
	if _, ok := d.parent[x]; !ok {
		var zero E
		return zero, fmt.Errorf("%w: %v", ErrNotFound, x)
	}
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x, nil
}

// Merge unites the subsets containing x and y and returns the root of the
// combined subset. Merging elements already in the same subset is a no-op.
// If either element was never added, Merge returns ErrNotFound and leaves
// the structure unmodified.
//
// The root of the strictly larger subset becomes the root of the result;
// when both subsets have equal size, y's root wins.
func (d *DisjointSet[E]) Merge(x, y E) (E, error) {
	var zero E
	// Validate both arguments before Find compresses anything.
	if _, ok := d.parent[x]; !ok {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, x)
	}
	if _, ok := d.parent[y]; !ok {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, y)
	}
	rootX, _ := d.Find(x)
	rootY, _ := d.Find(y)
	if rootX == rootY {
		return rootX, nil
	}
	if d.size[rootX] > d.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	// rootY survives; rootX's size entry is now meaningless.
	d.parent[rootX] = rootY
	d.size[rootY] += d.size[rootX]
	delete(d.size, rootX)
	d.sets--
	return rootY, nil
}

// Connected reports whether x and y are in the same subset. It returns
// ErrNotFound if either element was never added.
func (d *DisjointSet[E]) Connected(x, y E) (bool, error) {
	if _, ok := d.parent[x]; !ok {
		return false, fmt.Errorf("%w: %v", ErrNotFound, x)
	}
	if _, ok := d.parent[y]; !ok {
		return false, fmt.Errorf("%w: %v", ErrNotFound, y)
	}
	rootX, _ := d.Find(x)
	rootY, _ := d.Find(y)
	return rootX == rootY, nil
}

// Contains reports whether x has been added.
func (d *DisjointSet[E]) Contains(x E) bool {
	_, ok := d.parent[x]
	return ok
}

// Subset returns the members of the subset containing x, in unspecified
// order, or ErrNotFound if x was never added.
//
// Subset scans every tracked element, so it costs O(n) per call; no reverse
// index is maintained. Use Size when only the cardinality is needed.
func (d *DisjointSet[E]) Subset(x E) ([]E, error) {
	root, err := d.Find(x)
	if err != nil {
		return nil, err
	}
	members := make([]E, 0, d.size[root])
	// Find only rewrites values of existing keys, so compressing paths
	// while ranging over parent is safe.
	for e := range d.parent {
		r, _ := d.Find(e)
		if r == root {
			members = append(members, e)
		}
	}
	return members, nil
}

// Size returns the number of elements in the subset containing x, or
// ErrNotFound if x was never added.
func (d *DisjointSet[E]) Size(x E) (int, error) {
	root, err := d.Find(x)
	if err != nil {
		return 0, err
	}
	return d.size[root], nil
}

// Subsets returns every current subset keyed by its root. Each tracked
// element appears in exactly one member slice; member order is unspecified.
func (d *DisjointSet[E]) Subsets() map[E][]E {
	groups := make(map[E][]E, d.sets)
	for e := range d.parent {
		r, _ := d.Find(e)
		groups[r] = append(groups[r], e)
	}
	return groups
}

// Len returns the number of tracked elements.
func (d *DisjointSet[E]) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint subsets.
func (d *DisjointSet[E]) Count() int {
	return d.sets
}
