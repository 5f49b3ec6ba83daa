// SPDX-License-Identifier: MIT

package forest

// UnionFind is a disjoint-set structure over 0..n-1 with path halving and
// union by rank. Find is amortized O(α(n)).
type UnionFind struct {
	parent []int
	rank   []uint8
	count  int
}

// NewUnionFind returns n singleton sets.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Find returns the representative of x's set.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		// Path halving: make x point to its grandparent.
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets of a and b and reports whether they were distinct.
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.count--

	return true
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }
