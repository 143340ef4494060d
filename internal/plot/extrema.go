package plot

import "math"

// ArgMin returns the index of the smallest value in y. Ties resolve to the
// first index; NaN and infinite values are skipped. ok is false when y has
// no finite numbers.
func ArgMin(y []float64) (idx int, ok bool) {
	return argBest(y, func(v, best float64) bool { return v < best })
}

// ArgMax returns the index of the largest value in y, with the same tie and
// skip rules as ArgMin.
func ArgMax(y []float64) (idx int, ok bool) {
	return argBest(y, func(v, best float64) bool { return v > best })
}

func argBest(y []float64, better func(v, best float64) bool) (int, bool) {
	idx := -1
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if idx < 0 || better(v, y[idx]) {
			idx = i
		}
	}
	return idx, idx >= 0
}
