package fm

import (
	"math"
	"sort"
)

// dendroNode is one node of the single-linkage merge tree: a leaf holds a
// single feature index; an internal node holds its two merged children
// and the sorted union of their leaves.
type dendroNode struct {
	left, right *dendroNode
	leaves      []int
}

// Cluster derives a partition of {0,...,n-1} into clusters of size at most
// maxClust (clamped into [1,n]) via single-linkage agglomerative
// clustering over CorrDist's condensed upper-triangular distances,
// descending the resulting dendrogram in left-then-right pre-order and
// emitting a cluster wherever a node's leaf count first drops to
// maxClust or below.
func (a *Accumulator) Cluster(maxClust int) [][]int {
	n := a.n
	if maxClust < 1 {
		maxClust = 1
	}
	if maxClust > n {
		maxClust = n
	}
	if n == 1 {
		return [][]int{{0}}
	}

	dist := a.CorrDist()
	root := singleLinkage(dist)

	var clusters [][]int
	var descend func(nd *dendroNode)
	descend = func(nd *dendroNode) {
		if len(nd.leaves) <= maxClust || nd.left == nil {
			leaves := append([]int(nil), nd.leaves...)
			sort.Ints(leaves)
			clusters = append(clusters, leaves)
			return
		}
		descend(nd.left)
		descend(nd.right)
	}
	descend(root)

	return clusters
}

// singleLinkage runs single-linkage agglomerative clustering on a full
// n×n symmetric distance matrix and returns the root of the resulting
// binary merge tree. Ties are broken by input order: the first minimal
// pair encountered in ascending (row,col) scan order is merged.
func singleLinkage(dist [][]float64) *dendroNode {
	n := len(dist)

	active := make([]*dendroNode, n)
	for i := 0; i < n; i++ {
		active[i] = &dendroNode{leaves: []int{i}}
	}

	d := make([][]float64, n)
	for i := range d {
		d[i] = append([]float64(nil), dist[i]...)
	}

	for len(active) > 1 {
		bestP, bestQ := 0, 1
		bestD := math.Inf(1)
		for p := 0; p < len(active); p++ {
			for q := p + 1; q < len(active); q++ {
				if d[p][q] < bestD {
					bestD = d[p][q]
					bestP, bestQ = p, q
				}
			}
		}

		merged := &dendroNode{
			left:   active[bestP],
			right:  active[bestQ],
			leaves: mergeSortedInts(active[bestP].leaves, active[bestQ].leaves),
		}

		size := len(active) - 1
		newActive := make([]*dendroNode, 0, size)
		newD := make([][]float64, size)
		for i := range newD {
			newD[i] = make([]float64, size)
		}

		keep := make([]int, 0, size-1)
		for k := range active {
			if k != bestP && k != bestQ {
				keep = append(keep, k)
			}
		}
		for i, ki := range keep {
			newActive = append(newActive, active[ki])
			for j, kj := range keep {
				newD[i][j] = d[ki][kj]
			}
		}
		mergedIdx := len(keep)
		newActive = append(newActive, merged)
		for i, ki := range keep {
			v := math.Min(d[bestP][ki], d[bestQ][ki])
			newD[i][mergedIdx] = v
			newD[mergedIdx][i] = v
		}
		newD[mergedIdx][mergedIdx] = 0

		active = newActive
		d = newD
	}

	return active[0]
}

func mergeSortedInts(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
