package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/emirpasic/gods/trees/binaryheap"

	"os-scheduler/internal/core"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnknownPolicy = errors.New("unknown policy")
)

// Policy selects the dispatch discipline of a run.
type Policy int

const (
	FirstComeFirstServe Policy = iota + 1
	ShortestJobFirst
	PriorityScheduling
	EarliestDeadline
	MultilevelQueue
)

// Policies lists every known policy in display order.
var Policies = []Policy{
	FirstComeFirstServe,
	ShortestJobFirst,
	PriorityScheduling,
	EarliestDeadline,
	MultilevelQueue,
}

func (p Policy) String() string {
	switch p {
	case FirstComeFirstServe:
		return "FCFS"
	case ShortestJobFirst:
		return "SJF"
	case PriorityScheduling:
		return "Priority"
	case EarliestDeadline:
		return "Deadline"
	case MultilevelQueue:
		return "MLQ"
	default:
		return "Unknown"
	}
}

// ParsePolicy accepts a policy name in any case, e.g. "fcfs" or "Deadline".
func ParsePolicy(name string) (Policy, error) {
	for _, p := range Policies {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// PriorityOrder tells which end of the priority scale is most urgent.
// The zero value treats 1 as the most urgent level.
type PriorityOrder int

const (
	LowerIsHigher PriorityOrder = iota
	HigherIsHigher
)

type PriorityParams struct {
	Order PriorityOrder
}

// MlqParams maps process ids to queue 1 (FCFS) or 2 (SJF). Processes missing
// from QueueOf fall back to their Priority field.
type MlqParams struct {
	QueueOf map[string]int
}

// Params carries the policy specific knobs; only the block matching the
// selected policy is read.
type Params struct {
	Priority PriorityParams
	MLQ      MlqParams
}

// job is the engine's private copy of a process.
type job struct {
	core.Process
	index int // position in the caller's input, last tie-break
	level int // MLQ queue
}

// comparator orders two available jobs, negative when a goes first.
type comparator func(a, b *job) int

// Run simulates processes under policy and returns them in dispatch order.
// The input slice is never modified.
func Run(processes []core.Process, policy Policy, params Params) ([]core.ScheduledProcess, error) {
	var compare comparator
	switch policy {
	case FirstComeFirstServe:
	case ShortestJobFirst:
		compare = shortestJobFirst
	case PriorityScheduling:
		compare = priorityComparator(params.Priority.Order)
	case EarliestDeadline:
		compare = earliestDeadlineFirst
	case MultilevelQueue:
		compare = multilevelQueue
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(policy))
	}

	jobs := make([]*job, 0, len(processes))
	for i, p := range processes {
		if p.Burst < 1 {
			return nil, fmt.Errorf("%w: process %s has burst %d, want at least 1", ErrInvalidInput, p.ID, p.Burst)
		}
		jobs = append(jobs, &job{Process: p, index: i, level: queueLevel(p, params.MLQ)})
	}

	slog.Debug("running scheduler", "policy", policy.String(), "processes", len(jobs))
	if policy == FirstComeFirstServe {
		return scheduleFirstComeFirstServe(jobs), nil
	}

	schedule := dispatch(jobs, compare)
	for i := range schedule {
		switch policy {
		case EarliestDeadline:
			schedule[i] = schedule[i].WithDeadline()
		case MultilevelQueue:
			schedule[i].Queue = queueLevel(schedule[i].Process, params.MLQ)
		}
	}
	return schedule, nil
}

// dispatch is the ready-queue loop shared by every non-FCFS policy: admit
// arrived jobs, run the best one to completion, or jump to the next arrival
// when nothing is ready.
func dispatch(jobs []*job, compare comparator) []core.ScheduledProcess {
	pending := byArrival(jobs)
	ready := binaryheap.NewWith(func(a, b interface{}) int {
		x, y := a.(*job), b.(*job)
		if c := compare(x, y); c != 0 {
			return c
		}
		return x.index - y.index
	})

	schedule := make([]core.ScheduledProcess, 0, len(jobs))
	currentTime, next := 0, 0
	for len(schedule) < len(jobs) {
		for next < len(pending) && pending[next].Arrival <= currentTime {
			ready.Push(pending[next])
			next++
		}

		value, ok := ready.Pop()
		if !ok {
			slog.Debug("cpu idle", "from", currentTime, "to", pending[next].Arrival)
			currentTime = pending[next].Arrival
			continue
		}

		j := value.(*job)
		scheduled := core.NewScheduledProcess(j.Process, currentTime)
		slog.Debug("dispatch", "pid", j.ID, "start", scheduled.Start, "completion", scheduled.Completion)
		schedule = append(schedule, scheduled)
		currentTime = scheduled.Completion
	}
	return schedule
}

// byArrival returns jobs sorted by arrival, ties kept in input order.
func byArrival(jobs []*job) []*job {
	sorted := make([]*job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Arrival < sorted[j].Arrival
	})
	return sorted
}
