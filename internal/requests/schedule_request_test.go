package requests

import (
	"errors"
	"testing"

	"os-scheduler/internal/schedulers"
)

func TestValidate(t *testing.T) {
	one := ScheduleRequests{Jobs: []Job{{BurstTime: 1}}}
	if err := one.Validate(2, 9); !errors.Is(err, ErrTooFewProcesses) {
		t.Errorf("expected ErrTooFewProcesses, got %v", err)
	}

	ten := ScheduleRequests{Jobs: make([]Job, 10)}
	if err := ten.Validate(2, 9); !errors.Is(err, ErrTooManyProcesses) {
		t.Errorf("expected ErrTooManyProcesses, got %v", err)
	}
	if err := ten.Validate(2, 0); err != nil {
		t.Errorf("expected no upper bound with max 0, got %v", err)
	}
}

func TestValidate_DuplicateIds(t *testing.T) {
	tests := []struct {
		name string
		jobs []Job
	}{
		{"explicit ids", []Job{{ProcessId: "A", BurstTime: 1}, {ProcessId: "A", BurstTime: 2}}},
		{"generated id collides with explicit", []Job{
			{ProcessId: "P2", BurstTime: 5, Queue: 2},
			{BurstTime: 1, Queue: 1},
			{ProcessId: "X", BurstTime: 3, Queue: 2},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ScheduleRequests{Jobs: tt.jobs}.Validate(2, 9)
			if !errors.Is(err, ErrDuplicateId) {
				t.Errorf("expected ErrDuplicateId, got %v", err)
			}
		})
	}

	unique := ScheduleRequests{Jobs: []Job{{ProcessId: "P3", BurstTime: 1}, {BurstTime: 1}}}
	if err := unique.Validate(2, 9); err != nil {
		t.Errorf("expected P3 and generated P2 to be accepted, got %v", err)
	}
}

func TestProcesses_Defaults(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ArrivalTime: 2, BurstTime: 3},
		{ProcessId: "io", BurstTime: 1, Priority: 4, Deadline: 9},
	}}
	processes := request.Processes()

	if processes[0].ID != "P1" || processes[0].Priority != 1 || processes[0].Arrival != 2 {
		t.Errorf("unexpected defaults %+v", processes[0])
	}
	if processes[1].ID != "io" || processes[1].Priority != 4 || processes[1].Deadline != 9 {
		t.Errorf("unexpected conversion %+v", processes[1])
	}
}

func TestParams(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ProcessId: "a", BurstTime: 1, Queue: 2},
		{BurstTime: 1, Queue: 1},
		{BurstTime: 1},
	}}

	params := request.Params(true)
	if params.Priority.Order != schedulers.LowerIsHigher {
		t.Errorf("expected lower-is-higher default")
	}
	if len(params.MLQ.QueueOf) != 2 || params.MLQ.QueueOf["a"] != 2 || params.MLQ.QueueOf["P2"] != 1 {
		t.Errorf("unexpected queue map %v", params.MLQ.QueueOf)
	}

	if request.Params(false).Priority.Order != schedulers.HigherIsHigher {
		t.Errorf("expected configured default to apply")
	}

	lower := true
	request.LowerIsHigherPriority = &lower
	if request.Params(false).Priority.Order != schedulers.LowerIsHigher {
		t.Errorf("expected request to override the configured order")
	}
}
