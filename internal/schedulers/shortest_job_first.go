package schedulers

import "cmp"

func shortestJobFirst(a, b *job) int {
	if c := cmp.Compare(a.Burst, b.Burst); c != 0 {
		return c
	}
	return firstComeFirstServe(a, b)
}
