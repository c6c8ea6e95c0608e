package utils

// SortPair returns the two user IDs in canonical order (lower first)
func SortPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// PairID derives the canonical identifier for an unordered pair of users.
// Match IDs and conversation IDs are both built this way, so both sides of
// a pair always converge on the same record key.
func PairID(a, b string) string {
	lo, hi := SortPair(a, b)
	return lo + "-" + hi
}
