package suggest

import "unicode/utf8"

// Distance is the Levenshtein edit distance between a and b, counted in
// runes: the fewest insertions, deletions and substitutions turning one
// into the other.
func Distance(a, b string) int {
	long, short := []rune(a), []rune(b)
	if len(long) < len(short) {
		long, short = short, long
	}

	// row[j] is the distance between the prefix of long seen so far and
	// short[:j].
	row := make([]int, len(short)+1)
	for j := range row {
		row[j] = j
	}

	for i, lr := range long {
		diag := row[0]
		row[0] = i + 1

		for j, sr := range short {
			above := row[j+1]
			if lr == sr {
				row[j+1] = diag
			} else {
				row[j+1] = 1 + min(diag, above, row[j])
			}

			diag = above
		}
	}

	return row[len(short)]
}

// Similarity scores the normalized forms of a and b from 0 (nothing in
// common) to 1 (identical), relative to the longer of the two.
func Similarity(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)

	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(a, b))/float64(longest)
}
