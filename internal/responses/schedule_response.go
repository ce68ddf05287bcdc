package responses

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/summary"
)

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	Deadline       int    `json:"deadline"`
	Queue          int    `json:"queue,omitempty"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
	Lateness       *int   `json:"lateness,omitempty"`
	Tardiness      *int   `json:"tardiness,omitempty"`
}

type SegmentResponse struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Idle  bool   `json:"idle"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	AverageLateness       *float64          `json:"average_lateness,omitempty"`
	AverageTardiness      *float64          `json:"average_tardiness,omitempty"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SegmentResponse `json:"timeline"`
}

const IdleLabel = "Idle"

func NewProcessResponse(p core.ScheduledProcess) ProcessResponse {
	return ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.Arrival,
		BurstTime:      p.Burst,
		Priority:       p.Priority,
		Deadline:       p.Deadline,
		Queue:          p.Queue,
		StartTime:      p.Start,
		CompletionTime: p.Completion,
		TurnAroundTime: p.Turnaround,
		WaitingTime:    p.Waiting,
		ResponseTime:   p.Response,
		Lateness:       p.Lateness,
		Tardiness:      p.Tardiness,
	}
}

func NewSegmentResponse(s core.Segment) SegmentResponse {
	label := s.ProcessID
	if s.Idle {
		label = IdleLabel
	}
	return SegmentResponse{Label: label, Start: s.Start, End: s.End, Idle: s.Idle}
}

// Fill copies the averages and cpu metrics into the response.
func (r *ScheduleResponse) Fill(averages summary.Averages, metric core.CpuMetric) {
	r.TotalTime = metric.TotalTime
	r.IdleTime = metric.IdleTime
	r.CpuUtilization = metric.Utilization()
	r.CpuThroughput = metric.Throughput(len(r.Details))
	r.AverageTurnAroundTime = averages.Turnaround
	r.AverageWaitingTime = averages.Waiting
	r.AverageResponseTime = averages.Response
	r.AverageLateness = averages.Lateness
	r.AverageTardiness = averages.Tardiness
}
