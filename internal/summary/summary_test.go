package summary

import (
	"errors"
	"reflect"
	"testing"

	"os-scheduler/internal/core"
)

func scheduled(id string, arrival, burst, start int) core.ScheduledProcess {
	return core.NewScheduledProcess(core.Process{ID: id, Arrival: arrival, Burst: burst}, start)
}

func TestAverage(t *testing.T) {
	averages := Average([]core.ScheduledProcess{
		scheduled("P1", 0, 5, 0),
		scheduled("P2", 1, 3, 5),
	})
	if averages.Turnaround != 6 {
		t.Errorf("expected average turnaround 6.00, got %.2f", averages.Turnaround)
	}
	if averages.Waiting != 2 || averages.Response != 2 {
		t.Errorf("unexpected averages %+v", averages)
	}
	if averages.Lateness != nil || averages.Tardiness != nil {
		t.Errorf("expected no deadline averages without deadline metrics")
	}
}

func TestAverage_RoundsToTwoDecimals(t *testing.T) {
	averages := Average([]core.ScheduledProcess{
		scheduled("P1", 0, 1, 0),
		scheduled("P2", 0, 1, 1),
		scheduled("P3", 0, 1, 2),
	})
	if averages.Turnaround != 2 || averages.Waiting != 1 {
		t.Errorf("unexpected averages %+v", averages)
	}

	averages = Average([]core.ScheduledProcess{
		scheduled("P1", 0, 1, 0),
		scheduled("P2", 0, 1, 1),
		scheduled("P3", 0, 2, 2),
	})
	if averages.Turnaround != 2.33 {
		t.Errorf("expected 2.33, got %v", averages.Turnaround)
	}
}

func TestAverage_DeadlineMetrics(t *testing.T) {
	averages := Average([]core.ScheduledProcess{
		core.NewScheduledProcess(core.Process{ID: "P1", Burst: 6, Deadline: 4}, 0).WithDeadline(),
		core.NewScheduledProcess(core.Process{ID: "P2", Burst: 2, Deadline: 10}, 6).WithDeadline(),
	})
	if averages.Lateness == nil || averages.Tardiness == nil {
		t.Fatalf("expected deadline averages")
	}
	if *averages.Lateness != 0 || *averages.Tardiness != 1 {
		t.Errorf("expected lateness 0.00 tardiness 1.00, got %.2f %.2f", *averages.Lateness, *averages.Tardiness)
	}
}

func TestAverage_Empty(t *testing.T) {
	if got := Average(nil); got != (Averages{}) {
		t.Errorf("expected zero averages, got %+v", got)
	}
}

func TestTimeline(t *testing.T) {
	tests := []struct {
		name     string
		schedule []core.ScheduledProcess
		want     []core.Segment
	}{
		{
			name:     "empty",
			schedule: nil,
			want:     nil,
		},
		{
			name:     "leading idle",
			schedule: []core.ScheduledProcess{scheduled("P1", 5, 2, 5)},
			want: []core.Segment{
				{Start: 0, End: 5, Idle: true},
				{ProcessID: "P1", Start: 5, End: 7},
			},
		},
		{
			name: "adjacent runs have no idle gap",
			schedule: []core.ScheduledProcess{
				scheduled("P1", 0, 5, 0),
				scheduled("P2", 1, 3, 5),
			},
			want: []core.Segment{
				{ProcessID: "P1", Start: 0, End: 5},
				{ProcessID: "P2", Start: 5, End: 8},
			},
		},
		{
			name: "gap between runs, input out of order",
			schedule: []core.ScheduledProcess{
				scheduled("P2", 9, 1, 9),
				scheduled("P1", 0, 2, 0),
			},
			want: []core.Segment{
				{ProcessID: "P1", Start: 0, End: 2},
				{Start: 2, End: 9, Idle: true},
				{ProcessID: "P2", Start: 9, End: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Timeline(tt.schedule)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestTimeline_DoesNotReorderInput(t *testing.T) {
	schedule := []core.ScheduledProcess{scheduled("P2", 9, 1, 9), scheduled("P1", 0, 2, 0)}
	Timeline(schedule)
	if schedule[0].ID != "P2" {
		t.Errorf("expected input order untouched, got %s first", schedule[0].ID)
	}
}

func TestVerify(t *testing.T) {
	good := []core.ScheduledProcess{scheduled("P1", 0, 2, 1), scheduled("P2", 0, 2, 3)}
	if err := Verify(good); err != nil {
		t.Errorf("expected valid schedule, got %v", err)
	}
	if err := Verify(nil); err != nil {
		t.Errorf("expected empty schedule to verify, got %v", err)
	}

	overlap := []core.ScheduledProcess{scheduled("P1", 0, 4, 0), scheduled("P2", 0, 4, 3)}
	if err := Verify(overlap); !errors.Is(err, ErrInternalInvariant) {
		t.Errorf("expected overlap to be reported, got %v", err)
	}

	early := []core.ScheduledProcess{scheduled("P1", 5, 1, 2)}
	if err := Verify(early); !errors.Is(err, ErrInternalInvariant) {
		t.Errorf("expected start before arrival to be reported, got %v", err)
	}

	stretched := scheduled("P1", 0, 2, 0)
	stretched.Completion = 5
	if err := Verify([]core.ScheduledProcess{stretched}); !errors.Is(err, ErrInternalInvariant) {
		t.Errorf("expected wrong run length to be reported, got %v", err)
	}
}
