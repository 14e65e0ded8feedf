package convert

import "cmp"

// Within reports whether lo <= v <= hi. A NaN value is outside any numeric range.
func Within[T cmp.Ordered](v, lo, hi T) bool {
	return cmp.Compare(v, lo) >= 0 && cmp.Compare(v, hi) <= 0
}
