package classify

import "math/rand"

// TrainTestSplit shuffles rows with the given seed and splits them into
// train and test sets by ratio. The same seed always yields the same split.
func TrainTestSplit(X [][]float64, y []int64, testRatio float64, seed int64) (XTrain, XTest [][]float64, yTrain, yTest []int64) {
	n := len(X)
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testRatio)
	for i, k := range perm {
		if i < nTest {
			XTest = append(XTest, X[k])
			yTest = append(yTest, y[k])
		} else {
			XTrain = append(XTrain, X[k])
			yTrain = append(yTrain, y[k])
		}
	}
	return
}
