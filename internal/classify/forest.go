package classify

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
)

// ForestConfig holds the hyperparameters of the random forest.
type ForestConfig struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int // 0 means sqrt(p), rounded down
	Seed            int64
}

// Forest is a bagged ensemble of CART trees with majority voting.
type Forest struct {
	cfg     ForestConfig
	trees   []*Tree
	classes []int64
}

// NewForest returns a forest with the given config, applying defaults.
func NewForest(cfg ForestConfig) *Forest {
	if cfg.Trees <= 0 {
		cfg.Trees = 100
	}
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}
	return &Forest{cfg: cfg}
}

// Fit trains every tree on a bootstrap sample. Trees train concurrently,
// each with a deterministic per-tree seed derived from the forest seed.
func (f *Forest) Fit(X [][]float64, y []int64) error {
	if len(X) == 0 {
		return errors.New("classify: empty training set")
	}
	if len(y) != len(X) {
		return fmt.Errorf("classify: %d rows but %d labels", len(X), len(y))
	}
	n := len(X)
	p := len(X[0])

	maxFeatures := f.cfg.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = int(math.Sqrt(float64(p)))
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}

	f.classes = distinctClasses(y)
	f.trees = make([]*Tree, f.cfg.Trees)

	var wg sync.WaitGroup
	errCh := make(chan error, f.cfg.Trees)

	for i := 0; i < f.cfg.Trees; i++ {
		wg.Add(1)
		go func(treeNum int) {
			defer wg.Done()

			seed := f.cfg.Seed + int64(treeNum)
			rnd := rand.New(rand.NewSource(seed))

			Xb := make([][]float64, n)
			yb := make([]int64, n)
			for j := 0; j < n; j++ {
				k := rnd.Intn(n)
				Xb[j] = X[k]
				yb[j] = y[k]
			}

			tree := NewTree(TreeConfig{
				MaxDepth:        f.cfg.MaxDepth,
				MinSamplesSplit: f.cfg.MinSamplesSplit,
				MaxFeatures:     maxFeatures,
				Seed:            seed,
			})
			if err := tree.Fit(Xb, yb); err != nil {
				errCh <- err
				return
			}
			f.trees[treeNum] = tree
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// Predict returns the majority vote of all trees for each row of X.
func (f *Forest) Predict(X [][]float64) []int64 {
	votes := make([]map[int64]int, len(X))
	for i := range votes {
		votes[i] = make(map[int64]int)
	}
	for _, tree := range f.trees {
		for i, label := range tree.Predict(X) {
			votes[i][label]++
		}
	}

	out := make([]int64, len(X))
	for i, v := range votes {
		best, bestCount := int64(0), -1
		// iterate classes in order so ties resolve deterministically
		for _, c := range f.classes {
			if v[c] > bestCount {
				best, bestCount = c, v[c]
			}
		}
		out[i] = best
	}
	return out
}

// Classes returns the distinct labels seen during training, ascending.
func (f *Forest) Classes() []int64 { return f.classes }
