package schedulers

import (
	"cmp"

	"os-scheduler/internal/core"
)

const (
	foregroundQueue = 1 // FCFS
	backgroundQueue = 2 // SJF
)

// multilevelQueue always prefers queue 1. There is no aging, so a steady
// stream of queue 1 arrivals can starve queue 2.
func multilevelQueue(a, b *job) int {
	if c := cmp.Compare(a.level, b.level); c != 0 {
		return c
	}
	if a.level == foregroundQueue {
		return firstComeFirstServe(a, b)
	}
	return shortestJobFirst(a, b)
}

// queueLevel resolves the MLQ queue of p and clamps it into {1, 2}.
func queueLevel(p core.Process, params MlqParams) int {
	level := p.Priority
	if q, ok := params.QueueOf[p.ID]; ok {
		level = q
	}
	if level <= foregroundQueue {
		return foregroundQueue
	}
	return backgroundQueue
}
