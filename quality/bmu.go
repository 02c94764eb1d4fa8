package quality

import "gonum.org/v1/gonum/mat"

// BestMatchingUnits returns, for each row of the sample-prototype distance
// matrix d, the column index of the smallest entry: the sample's
// best-matching unit. Ties resolve to the lowest index.
//
// Complexity: O(nSamples·nUnits).
func BestMatchingUnits(d mat.Matrix) []int {
	r, c := d.Dims()
	bmus := make([]int, r)
	var i, j, best int
	for i = 0; i < r; i++ {
		best = 0
		for j = 1; j < c; j++ {
			if d.At(i, j) < d.At(i, best) { // strict: equal keeps the lower index
				best = j
			}
		}
		bmus[i] = best
	}

	return bmus
}

// TwoBestMatchingUnits returns, for each row of d, the column indices of the
// two smallest entries, best first. Ties resolve to the lowest index at both
// positions. Requires at least two columns.
//
// Complexity: O(nSamples·nUnits).
func TwoBestMatchingUnits(d mat.Matrix) [][2]int {
	r, c := d.Dims()
	pairs := make([][2]int, r)
	var i, j, first, second int
	var v float64
	for i = 0; i < r; i++ {
		first, second = -1, -1
		for j = 0; j < c; j++ {
			v = d.At(i, j)
			switch {
			case first < 0 || v < d.At(i, first):
				first, second = j, first
			case second < 0 || v < d.At(i, second):
				second = j
			}
		}
		pairs[i] = [2]int{first, second}
	}

	return pairs
}
