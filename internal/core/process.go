package core

// Process is one input descriptor of a simulation run.
// Priority is the priority level under Priority scheduling and the queue id
// under MLQ; Deadline is only read by the deadline policy.
type Process struct {
	ID       string
	Arrival  int
	Burst    int
	Priority int
	Deadline int
}

// ScheduledProcess is a Process annotated with the timing it received.
// Lateness and Tardiness are set only by the deadline policy, Queue only
// by MLQ.
type ScheduledProcess struct {
	Process
	Queue      int
	Start      int
	Completion int
	Turnaround int
	Waiting    int
	Response   int
	Lateness   *int
	Tardiness  *int
}

// NewScheduledProcess derives every metric of p dispatched at start.
func NewScheduledProcess(p Process, start int) ScheduledProcess {
	completion := start + p.Burst
	turnaround := completion - p.Arrival
	return ScheduledProcess{
		Process:    p,
		Start:      start,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - p.Burst,
		Response:   start - p.Arrival,
	}
}

// WithDeadline fills lateness and tardiness against the process deadline.
func (s ScheduledProcess) WithDeadline() ScheduledProcess {
	lateness := s.Completion - s.Deadline
	tardiness := 0
	if lateness > 0 {
		tardiness = lateness
	}
	s.Lateness = &lateness
	s.Tardiness = &tardiness
	return s
}

// HasDeadlineMetrics reports whether lateness and tardiness were computed.
func (s ScheduledProcess) HasDeadlineMetrics() bool {
	return s.Lateness != nil && s.Tardiness != nil
}

// Segment is one entry of a timeline: either a process run or an idle gap.
// ProcessID is empty for idle segments.
type Segment struct {
	ProcessID string
	Start     int
	End       int
	Idle      bool
}

func (s Segment) Duration() int {
	return s.End - s.Start
}
