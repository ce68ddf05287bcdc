package schedulers

import "cmp"

func priorityComparator(order PriorityOrder) comparator {
	return func(a, b *job) int {
		c := cmp.Compare(a.Priority, b.Priority)
		if order == HigherIsHigher {
			c = -c
		}
		if c != 0 {
			return c
		}
		return firstComeFirstServe(a, b)
	}
}
