package disjointset

// Dense is a disjoint set over the integers 0..n-1, backed by slices rather
// than maps. It applies the same union-by-size and path-halving heuristics
// as DisjointSet but skips per-element tracking checks: every index in
// [0, n) exists from construction, and out-of-range indexes panic like any
// slice access.
type Dense struct {
	parent []int
	size   []int
	sets   int
}

// NewDense creates a Dense set of n elements, each in its own subset.
func NewDense(n int) *Dense {
	d := &Dense{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Find returns the root of the subset containing x, halving the path as it
// walks.
func (d *Dense) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the subsets containing x and y and returns the root of the
// combined subset. The strictly larger subset's root survives; ties go to
// y's root.
func (d *Dense) Union(x, y int) int {
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		return rootX
	}
	if d.size[rootX] > d.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	d.parent[rootX] = rootY
	d.size[rootY] += d.size[rootX]
	d.sets--
	return rootY
}

// Connected reports whether x and y are in the same subset.
func (d *Dense) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Size returns the number of elements in the subset containing x.
func (d *Dense) Size(x int) int {
	return d.size[d.Find(x)]
}

// Len returns the number of elements.
func (d *Dense) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint subsets.
func (d *Dense) Count() int {
	return d.sets
}
