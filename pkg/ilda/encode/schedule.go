// ABOUTME: Fair remainder distribution primitive
// ABOUTME: Splits an integer total across ordered groups within 1 unit
package encode

// groupSize returns how much of total the index-th of groups receives.
// Every group gets total/groups; the remainder is spread so that sizes
// sum exactly to total, differ by at most 1, and the extra units land
// evenly across the range instead of clustering at either end.
//
// The scheduler applies this at three nested levels: points per frame
// within one second, points per location within a frame, and samples
// per point within one second.
func groupSize(total, groups, index int) int {
	base := total / groups
	rest := total % groups
	if index*rest%groups > (index+1)*rest%groups {
		return base + 1
	}
	return base
}
