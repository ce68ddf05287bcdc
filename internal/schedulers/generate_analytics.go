package schedulers

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/summary"
)

// GenerateResponse assembles the full result of one run: details, averages,
// timeline and cpu metrics. A schedule that fails the tiling check is
// returned with the error.
func GenerateResponse(policy Policy, schedule []core.ScheduledProcess) (responses.ScheduleResponse, error) {
	timeline := summary.Timeline(schedule)
	response := responses.ScheduleResponse{
		RunId:     uuid.NewString(),
		Algorithm: policy.String(),
		Details:   make([]responses.ProcessResponse, 0, len(schedule)),
		Timeline:  make([]responses.SegmentResponse, 0, len(timeline)),
	}
	for _, p := range schedule {
		response.Details = append(response.Details, responses.NewProcessResponse(p))
	}
	for _, s := range timeline {
		response.Timeline = append(response.Timeline, responses.NewSegmentResponse(s))
	}
	response.Fill(summary.Average(schedule), core.MeasureCpu(timeline))

	if err := summary.Verify(schedule); err != nil {
		slog.Error("schedule failed tiling check", "run_id", response.RunId, "policy", policy.String(), "error", err)
		return response, err
	}
	return response, nil
}

// Simulate runs one policy and assembles its response.
func Simulate(processes []core.Process, policy Policy, params Params) (responses.ScheduleResponse, error) {
	schedule, err := Run(processes, policy, params)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateResponse(policy, schedule)
}

// SimulateAll runs every policy over the same processes, one goroutine per
// policy, and keys the responses by policy name. The first error wins.
func SimulateAll(processes []core.Process, params Params) (map[string]responses.ScheduleResponse, error) {
	results := make([]responses.ScheduleResponse, len(Policies))
	errs := make([]error, len(Policies))

	var wg sync.WaitGroup
	wg.Add(len(Policies))
	for i, policy := range Policies {
		go func(i int, policy Policy) {
			defer wg.Done()
			results[i], errs[i] = Simulate(processes, policy, params)
		}(i, policy)
	}
	wg.Wait()

	all := make(map[string]responses.ScheduleResponse, len(Policies))
	for i, policy := range Policies {
		if errs[i] != nil {
			return nil, errs[i]
		}
		all[policy.String()] = results[i]
	}
	return all, nil
}
