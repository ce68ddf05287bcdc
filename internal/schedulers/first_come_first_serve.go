package schedulers

import (
	"cmp"
	"log/slog"

	"os-scheduler/internal/core"
)

// scheduleFirstComeFirstServe needs no ready queue: arrival order fixes the
// dispatch order, and each job starts at max(currentTime, arrival).
func scheduleFirstComeFirstServe(jobs []*job) []core.ScheduledProcess {
	schedule := make([]core.ScheduledProcess, 0, len(jobs))
	currentTime := 0
	for _, j := range byArrival(jobs) {
		start := max(currentTime, j.Arrival)
		scheduled := core.NewScheduledProcess(j.Process, start)
		slog.Debug("dispatch", "pid", j.ID, "start", scheduled.Start, "completion", scheduled.Completion)
		schedule = append(schedule, scheduled)
		currentTime = scheduled.Completion
	}
	return schedule
}

func firstComeFirstServe(a, b *job) int {
	return cmp.Compare(a.Arrival, b.Arrival)
}
