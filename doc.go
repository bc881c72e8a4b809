// Package disjointset implements a disjoint-set (union-find) data structure
// with union by size and path halving, giving near-constant amortized cost
// per operation.
//
// DisjointSet tracks caller-supplied elements of any comparable type and
// partitions them into disjoint subsets that can be merged incrementally:
//
//	d := disjointset.New[string]()
//	d.Add("a")
//	d.Add("b")
//	d.Add("c")
//	d.Merge("a", "b")
//	ok, _ := d.Connected("a", "b") // true
//	groups := d.Subsets()          // two subsets: {a, b} and {c}
//
// Elements must be added explicitly: Find, Merge, Connected, Subset and Size
// return ErrNotFound for elements that were never added rather than adding
// them implicitly. Once added, an element is never removed, and merging only
// ever reduces the number of subsets.
//
// For elements that are already dense integer IDs, Dense provides the same
// operations over slice storage, with index validity guaranteed by
// construction instead of per-call checks.
//
// # Concurrency
//
// No operation is safe for concurrent use. Find rewrites parent pointers as
// it walks (path compression), so even read-style queries mutate internal
// state; callers sharing a set across goroutines must hold an exclusive
// lock around every operation.
package disjointset
