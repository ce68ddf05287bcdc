package requests

import (
	"errors"
	"fmt"

	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

var (
	ErrTooFewProcesses  = errors.New("too few processes")
	ErrTooManyProcesses = errors.New("too many processes")
	ErrDuplicateId      = errors.New("duplicate process id")
)

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
	Deadline    int    `json:"deadline"`
	Queue       int    `json:"queue,omitempty"` // MLQ queue id, overrides Priority under MLQ
}

type ScheduleRequests struct {
	Jobs                  []Job `json:"jobs"`
	LowerIsHigherPriority *bool `json:"lower_is_higher_priority,omitempty"`
}

// Validate enforces the process count limits and unique ids, generated
// P<n> ids included. A max of 0 means no upper bound.
func (r ScheduleRequests) Validate(minCount, maxCount int) error {
	if len(r.Jobs) < minCount {
		return fmt.Errorf("%w: got %d, need at least %d", ErrTooFewProcesses, len(r.Jobs), minCount)
	}
	if maxCount > 0 && len(r.Jobs) > maxCount {
		return fmt.Errorf("%w: got %d, limit is %d", ErrTooManyProcesses, len(r.Jobs), maxCount)
	}
	seen := make(map[string]int, len(r.Jobs))
	for i, job := range r.Jobs {
		id := jobId(i, job)
		if first, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s used by jobs %d and %d", ErrDuplicateId, id, first+1, i+1)
		}
		seen[id] = i
	}
	return nil
}

// Processes converts jobs into engine descriptors. A blank id becomes
// P<position> and a missing priority becomes 1.
func (r ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		processes = append(processes, core.Process{
			ID:       jobId(i, job),
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: orDefault(job.Priority, 1),
			Deadline: job.Deadline,
		})
	}
	return processes
}

// Params builds the engine parameters. lowerIsHigher applies when the
// request does not choose a priority order itself.
func (r ScheduleRequests) Params(lowerIsHigher bool) schedulers.Params {
	if r.LowerIsHigherPriority != nil {
		lowerIsHigher = *r.LowerIsHigherPriority
	}
	var params schedulers.Params
	if !lowerIsHigher {
		params.Priority.Order = schedulers.HigherIsHigher
	}
	for i, job := range r.Jobs {
		if job.Queue == 0 {
			continue
		}
		if params.MLQ.QueueOf == nil {
			params.MLQ.QueueOf = make(map[string]int)
		}
		params.MLQ.QueueOf[jobId(i, job)] = job.Queue
	}
	return params
}

func jobId(i int, job Job) string {
	if job.ProcessId != "" {
		return job.ProcessId
	}
	return fmt.Sprintf("P%d", i+1)
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
