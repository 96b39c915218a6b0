package reports

// denseRanks assigns dense ranks to n items already sorted by their metric in
// descending order. sameAsPrev reports whether item i has the same metric as
// item i-1; tied items share a rank and the next distinct metric gets the
// previous rank plus one.
func denseRanks(n int, sameAsPrev func(i int) bool) []int {
	ranks := make([]int, n)
	rank := 0
	for i := 0; i < n; i++ {
		if i == 0 || !sameAsPrev(i) {
			rank++
		}
		ranks[i] = rank
	}
	return ranks
}
