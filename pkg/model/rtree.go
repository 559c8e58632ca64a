package model

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Node is a single node in a regression tree. Fields are exported so
// the tree survives gob encoding.
type Node struct {
	Feature   int
	Threshold float64
	Left      *Node
	Right     *Node
	Leaf      []float64 // mean label vector, nil on internal nodes
	N         int
}

// Tree is a CART-style regression tree predicting a fixed-length
// output vector. Leaves hold the mean of the training labels that
// reached them; splits minimize the summed per-output variance.
type Tree struct {
	MaxDepth        int // 0 means no depth limit
	MinSamplesSplit int
	MinSamplesLeaf  int
	Root            *Node
}

// NewTree returns a tree with the defaults used by the forest.
func NewTree() *Tree {
	return &Tree{
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
	}
}

// Fit trains the tree on the rows of X and Y selected by idx. Rows may
// repeat in idx (bootstrap sampling).
func (t *Tree) Fit(x, y [][]float64, idx []int) error {
	if len(x) == 0 {
		return errors.New("rtree: empty feature matrix")
	}
	if len(y) != len(x) {
		return errors.New("rtree: feature and label row count mismatch")
	}
	if len(idx) == 0 {
		return errors.New("rtree: no sample indices")
	}
	t.Root = t.build(x, y, idx, 0)
	return nil
}

// Predict returns the leaf vector for a single feature row. The caller
// must not mutate the result.
func (t *Tree) Predict(row []float64) []float64 {
	n := t.Root
	for n.Leaf == nil {
		if row[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Leaf
}

func (t *Tree) build(x, y [][]float64, idx []int, depth int) *Node {
	mean, sse := meanAndSSE(y, idx)
	node := &Node{N: len(idx)}

	if len(idx) < t.MinSamplesSplit || sse <= 1e-12 {
		node.Leaf = mean
		return node
	}
	if t.MaxDepth > 0 && depth >= t.MaxDepth {
		node.Leaf = mean
		return node
	}

	feature, threshold, gain := t.bestSplit(x, y, idx, sse)
	if feature < 0 || gain <= 0 {
		node.Leaf = mean
		return node
	}

	left := make([]int, 0, len(idx))
	right := make([]int, 0, len(idx))
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < t.MinSamplesLeaf || len(right) < t.MinSamplesLeaf {
		node.Leaf = mean
		return node
	}

	node.Feature = feature
	node.Threshold = threshold
	node.Left = t.build(x, y, left, depth+1)
	node.Right = t.build(x, y, right, depth+1)
	return node
}

// bestSplit scans every feature for the threshold with the largest
// variance reduction. Per-output sums and squared sums are kept
// incrementally so each feature costs one sort plus one linear pass.
func (t *Tree) bestSplit(x, y [][]float64, idx []int, parentSSE float64) (int, float64, float64) {
	n := len(idx)
	k := len(y[idx[0]])

	totalSum := make([]float64, k)
	totalSq := make([]float64, k)
	for _, i := range idx {
		for j, v := range y[i] {
			totalSum[j] += v
			totalSq[j] += v * v
		}
	}

	bestFeature := -1
	bestThreshold := 0.0
	bestGain := 0.0

	ord := make([]int, n)
	leftSum := make([]float64, k)
	leftSq := make([]float64, k)

	for f := 0; f < len(x[idx[0]]); f++ {
		copy(ord, idx)
		sortByFeature(ord, x, f)

		for j := 0; j < k; j++ {
			leftSum[j] = 0
			leftSq[j] = 0
		}

		for s := 1; s < n; s++ {
			prev := ord[s-1]
			for j, v := range y[prev] {
				leftSum[j] += v
				leftSq[j] += v * v
			}
			if x[ord[s]][f] == x[prev][f] {
				continue
			}
			if s < t.MinSamplesLeaf || n-s < t.MinSamplesLeaf {
				continue
			}

			var sseL, sseR float64
			nl, nr := float64(s), float64(n-s)
			for j := 0; j < k; j++ {
				rs := totalSum[j] - leftSum[j]
				rq := totalSq[j] - leftSq[j]
				sseL += leftSq[j] - leftSum[j]*leftSum[j]/nl
				sseR += rq - rs*rs/nr
			}

			gain := parentSSE - sseL - sseR
			if gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = (x[prev][f] + x[ord[s]][f]) / 2
			}
		}
	}
	return bestFeature, bestThreshold, bestGain
}

func meanAndSSE(y [][]float64, idx []int) ([]float64, float64) {
	k := len(y[idx[0]])
	mean := make([]float64, k)
	for _, i := range idx {
		for j, v := range y[i] {
			mean[j] += v
		}
	}
	n := float64(len(idx))
	for j := range mean {
		mean[j] /= n
	}
	var sse float64
	for _, i := range idx {
		for j, v := range y[i] {
			d := v - mean[j]
			sse += d * d
		}
	}
	if math.IsNaN(sse) {
		sse = 0
	}
	return mean, sse
}

func sortByFeature(idx []int, x [][]float64, f int) {
	sort.Slice(idx, func(a, b int) bool { return x[idx[a]][f] < x[idx[b]][f] })
}
