package classify

// Accuracy returns the fraction of matching predictions.
func Accuracy(yTrue, yPred []int64) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// ConfusionMatrix returns counts[trueClass][predictedClass], with both
// axes ordered by the classes slice.
func ConfusionMatrix(yTrue, yPred []int64, classes []int64) [][]int {
	m := make([][]int, len(classes))
	for i := range m {
		m[i] = make([]int, len(classes))
	}
	for i := range yTrue {
		m[classIndex(yTrue[i], classes)][classIndex(yPred[i], classes)]++
	}
	return m
}

// ClassReport holds per-class evaluation metrics.
type ClassReport struct {
	Class     int64
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// PerClassReport computes one-vs-rest precision, recall, and F1 for every
// class.
func PerClassReport(yTrue, yPred []int64, classes []int64) []ClassReport {
	out := make([]ClassReport, len(classes))
	for ci, c := range classes {
		tp, fp, fn := 0, 0, 0
		for i := range yTrue {
			switch {
			case yPred[i] == c && yTrue[i] == c:
				tp++
			case yPred[i] == c && yTrue[i] != c:
				fp++
			case yPred[i] != c && yTrue[i] == c:
				fn++
			}
		}
		r := ClassReport{Class: c, Support: tp + fn}
		if tp+fp > 0 {
			r.Precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			r.Recall = float64(tp) / float64(tp+fn)
		}
		if r.Precision+r.Recall > 0 {
			r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
		}
		out[ci] = r
	}
	return out
}
