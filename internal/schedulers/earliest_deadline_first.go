package schedulers

import "cmp"

// earliestDeadlineFirst breaks deadline ties by arrival only; remaining
// burst plays no part.
func earliestDeadlineFirst(a, b *job) int {
	if c := cmp.Compare(a.Deadline, b.Deadline); c != 0 {
		return c
	}
	return firstComeFirstServe(a, b)
}
