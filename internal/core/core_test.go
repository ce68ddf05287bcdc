package core

import "testing"

func TestNewScheduledProcess(t *testing.T) {
	p := NewScheduledProcess(Process{ID: "P2", Arrival: 1, Burst: 3}, 5)
	if p.Completion != 8 || p.Turnaround != 7 || p.Waiting != 4 || p.Response != 4 {
		t.Errorf("unexpected metrics %+v", p)
	}
	if p.HasDeadlineMetrics() {
		t.Errorf("expected no deadline metrics before WithDeadline")
	}
}

func TestWithDeadline(t *testing.T) {
	tests := []struct {
		burst, deadline     int
		lateness, tardiness int
	}{
		{burst: 6, deadline: 4, lateness: 2, tardiness: 2},
		{burst: 2, deadline: 10, lateness: -8, tardiness: 0},
		{burst: 3, deadline: 3, lateness: 0, tardiness: 0},
	}
	for _, tt := range tests {
		p := NewScheduledProcess(Process{ID: "P", Burst: tt.burst, Deadline: tt.deadline}, 0).WithDeadline()
		if *p.Lateness != tt.lateness || *p.Tardiness != tt.tardiness {
			t.Errorf("burst %d deadline %d: expected %d/%d, got %d/%d",
				tt.burst, tt.deadline, tt.lateness, tt.tardiness, *p.Lateness, *p.Tardiness)
		}
	}
}

func TestMeasureCpu(t *testing.T) {
	metric := MeasureCpu([]Segment{
		{Start: 0, End: 2, Idle: true},
		{ProcessID: "P1", Start: 2, End: 5},
		{ProcessID: "P2", Start: 5, End: 6},
		{Start: 6, End: 8, Idle: true},
		{ProcessID: "P3", Start: 8, End: 10},
	})
	if metric.TotalTime != 10 || metric.UtilizationTime != 6 || metric.IdleTime != 4 {
		t.Fatalf("unexpected metric %+v", metric)
	}
	if metric.Utilization() != 0.6 {
		t.Errorf("expected utilization 0.6, got %v", metric.Utilization())
	}
	if metric.Throughput(3) != 0.3 {
		t.Errorf("expected throughput 0.3, got %v", metric.Throughput(3))
	}

	empty := MeasureCpu(nil)
	if empty.Utilization() != 0 || empty.Throughput(0) != 0 {
		t.Errorf("expected zero metrics for an empty timeline, got %+v", empty)
	}
}
