// Package classify implements the baseline stress-level classifier: a
// random forest of CART trees over the psychometric feature columns, with
// a seeded train/test split and standard evaluation metrics.
package classify

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// TreeConfig holds the hyperparameters of a single CART tree.
type TreeConfig struct {
	MaxDepth        int   // 0 means no depth limit
	MinSamplesSplit int   // minimum samples to attempt a split
	MaxFeatures     int   // 0 means consider all features
	Seed            int64 // seed for feature subsampling
}

// Tree is a CART classifier using the Gini criterion and numeric
// threshold splits.
type Tree struct {
	cfg     TreeConfig
	classes []int64
	root    *node
}

type node struct {
	leaf      bool
	feature   int
	threshold float64
	left      *node
	right     *node
	class     int64
	n         int
}

// NewTree returns a tree with the given config, applying defaults.
func NewTree(cfg TreeConfig) *Tree {
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}
	return &Tree{cfg: cfg}
}

// Fit trains the tree on X (n rows × p features) and labels y.
func (t *Tree) Fit(X [][]float64, y []int64) error {
	if len(X) == 0 {
		return errors.New("classify: empty training set")
	}
	if len(y) != len(X) {
		return fmt.Errorf("classify: %d rows but %d labels", len(X), len(y))
	}
	p := len(X[0])
	for i := range X {
		if len(X[i]) != p {
			return fmt.Errorf("classify: row %d has %d features, want %d", i, len(X[i]), p)
		}
	}

	t.classes = distinctClasses(y)

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	rnd := rand.New(rand.NewSource(t.cfg.Seed))
	t.root = t.build(X, y, idx, 0, p, rnd)
	return nil
}

// Predict returns the predicted class label for each row of X.
func (t *Tree) Predict(X [][]float64) []int64 {
	out := make([]int64, len(X))
	for i := range X {
		out[i] = t.predictOne(X[i])
	}
	return out
}

func (t *Tree) predictOne(x []float64) int64 {
	n := t.root
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.class
}

func (t *Tree) build(X [][]float64, y []int64, idx []int, depth, p int, rnd *rand.Rand) *node {
	counts := t.classCounts(y, idx)

	if isPure(counts) ||
		len(idx) < t.cfg.MinSamplesSplit ||
		(t.cfg.MaxDepth > 0 && depth >= t.cfg.MaxDepth) {
		return t.makeLeaf(counts, len(idx))
	}

	features := featureSubset(p, t.cfg.MaxFeatures, rnd)
	best := bestSplit(X, y, idx, features, t.classes, counts)
	if best.feature < 0 {
		return t.makeLeaf(counts, len(idx))
	}

	return &node{
		feature:   best.feature,
		threshold: best.threshold,
		left:      t.build(X, y, best.left, depth+1, p, rnd),
		right:     t.build(X, y, best.right, depth+1, p, rnd),
		n:         len(idx),
	}
}

func (t *Tree) makeLeaf(counts []int, n int) *node {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return &node{leaf: true, class: t.classes[best], n: n}
}

func (t *Tree) classCounts(y []int64, idx []int) []int {
	counts := make([]int, len(t.classes))
	for _, i := range idx {
		counts[classIndex(y[i], t.classes)]++
	}
	return counts
}

type split struct {
	feature   int
	threshold float64
	left      []int
	right     []int
}

// bestSplit scans every candidate feature for the numeric threshold with
// the largest Gini gain. Counts are maintained incrementally while
// sweeping the sorted values.
func bestSplit(X [][]float64, y []int64, idx, features []int, classes []int64, parentCounts []int) split {
	best := split{feature: -1}
	parentImpurity := gini(parentCounts)
	bestGain := 0.0
	total := len(idx)

	type pair struct {
		v float64
		i int
	}

	for _, f := range features {
		pairs := make([]pair, len(idx))
		for k, i := range idx {
			pairs[k] = pair{v: X[i][f], i: i}
		}
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].v < pairs[b].v })

		leftCounts := make([]int, len(classes))
		rightCounts := make([]int, len(classes))
		copy(rightCounts, parentCounts)

		for s := 1; s < len(pairs); s++ {
			ci := classIndex(y[pairs[s-1].i], classes)
			leftCounts[ci]++
			rightCounts[ci]--
			if pairs[s].v == pairs[s-1].v {
				continue
			}

			weighted := (float64(s)*gini(leftCounts) + float64(total-s)*gini(rightCounts)) / float64(total)
			gain := parentImpurity - weighted
			if gain > bestGain {
				bestGain = gain
				left := make([]int, s)
				right := make([]int, len(pairs)-s)
				for k := 0; k < s; k++ {
					left[k] = pairs[k].i
				}
				for k := s; k < len(pairs); k++ {
					right[k-s] = pairs[k].i
				}
				best = split{
					feature:   f,
					threshold: (pairs[s-1].v + pairs[s].v) / 2,
					left:      left,
					right:     right,
				}
			}
		}
	}
	return best
}

func featureSubset(p, maxFeatures int, rnd *rand.Rand) []int {
	features := make([]int, p)
	for i := range features {
		features[i] = i
	}
	if maxFeatures <= 0 || maxFeatures >= p {
		return features
	}
	rnd.Shuffle(p, func(i, j int) {
		features[i], features[j] = features[j], features[i]
	})
	return features[:maxFeatures]
}

func gini(counts []int) float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	if n == 0 {
		return 0
	}
	res := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		res -= p * p
	}
	return res
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func distinctClasses(y []int64) []int64 {
	seen := make(map[int64]struct{})
	var classes []int64
	for _, v := range y {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			classes = append(classes, v)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}

func classIndex(label int64, classes []int64) int {
	for i, v := range classes {
		if v == label {
			return i
		}
	}
	return 0
}
