package mahc

// contains checks if a slice contains a specific comparable value.
func contains[T comparable](slice []T, val T) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

// roundUpTo rounds n up to the next multiple of step. Exact multiples are unchanged.
func roundUpTo(n, step int) int {
	return (n + step - 1) / step * step
}

// countWhere counts the groups matching pred.
func countWhere(groups []TileGroup, pred func(TileGroup) bool) int {
	n := 0
	for _, g := range groups {
		if pred(g) {
			n++
		}
	}
	return n
}

// all reports whether every group matches pred.
func all(groups []TileGroup, pred func(TileGroup) bool) bool {
	for _, g := range groups {
		if !pred(g) {
			return false
		}
	}
	return true
}
