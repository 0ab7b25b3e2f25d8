package scenario

// Distribute splits total aircraft across numBases with a near-even,
// left-heavy distribution: every base gets total/numBases and the first
// total%numBases bases get one extra. When total < numBases the first
// total bases get exactly one aircraft each.
//
//	Distribute(5, 2) -> [3, 2]
//	Distribute(1, 3) -> [1, 0, 0]
func Distribute(total, numBases int) []int {
	if numBases < 1 {
		return nil
	}
	counts := make([]int, numBases)
	if total >= numBases {
		base := total / numBases
		remainder := total % numBases
		for i := range counts {
			counts[i] = base
		}
		for i := 0; i < remainder; i++ {
			counts[i]++
		}
		return counts
	}
	for i := 0; i < total; i++ {
		counts[i] = 1
	}
	return counts
}
