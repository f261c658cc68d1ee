// mksample generates a pair of synthetic student-stress CSV fixtures with
// the same headers and row alignment as the real sources. Responses are
// seeded and weakly correlated with a latent stress level so that the
// report and train commands produce sensible output on generated data.
// Usage: go run ./cmd/mksample --out-dir testdata --rows 200 --seed 1
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"stressload/internal/dataset"
	"stressload/internal/model"
)

var stressTypes = []string{"Eustress", "Distress", "No Stress"}

func main() {
	outDir := flag.String("out-dir", "testdata", "output directory")
	rows := flag.Int("rows", 200, "number of individuals")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create out dir: %v\n", err)
		os.Exit(1)
	}

	rnd := rand.New(rand.NewSource(*seed))

	// Latent stress level per individual drives both files.
	levels := make([]int, *rows)
	for i := range levels {
		levels[i] = rnd.Intn(3)
	}

	stressPath := filepath.Join(*outDir, "Stress_Dataset.csv")
	if err := writeStressCSV(stressPath, levels, rnd); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", stressPath, err)
		os.Exit(1)
	}

	levelsPath := filepath.Join(*outDir, "StressLevelDataset.csv")
	if err := writeLevelsCSV(levelsPath, levels, rnd); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", levelsPath, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s and %s\n", *rows, stressPath, levelsPath)
}

// likert samples a 1..5 response biased upward by the latent level.
func likert(level int, rnd *rand.Rand) int {
	v := 1 + rnd.Intn(3) + level
	if v > 5 {
		v = 5
	}
	return v
}

func writeStressCSV(path string, levels []int, rnd *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	headers := dataset.RawStressColumns()
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, level := range levels {
		rec := make([]string, len(headers))
		rec[0] = strconv.Itoa(rnd.Intn(2))      // Gender
		rec[1] = strconv.Itoa(18 + rnd.Intn(8)) // Age
		for i := 2; i < len(headers)-1; i++ {
			rec[i] = strconv.Itoa(likert(level, rnd))
		}
		rec[len(headers)-1] = stressTypes[rnd.Intn(len(stressTypes))]
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeLevelsCSV(path string, levels []int, rnd *rand.Rand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	headers := append(model.FeatureColumns(), model.LabelColumn)
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, level := range levels {
		rec := make([]string, len(headers))
		for i := 0; i < len(headers)-1; i++ {
			// self_esteem and sleep_quality run opposite to stress
			switch headers[i] {
			case "self_esteem", "sleep_quality":
				rec[i] = strconv.Itoa(6 - likert(level, rnd))
			default:
				rec[i] = strconv.Itoa(likert(level, rnd))
			}
		}
		rec[len(headers)-1] = strconv.Itoa(level)
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
