package summary

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/util"
)

// Averages holds per-schedule means rounded to 2 decimals. Lateness and
// Tardiness are nil unless every entry carries deadline metrics.
type Averages struct {
	Turnaround float64
	Waiting    float64
	Response   float64
	Lateness   *float64
	Tardiness  *float64
}

// Average computes the arithmetic means over schedule.
func Average(schedule []core.ScheduledProcess) Averages {
	var turnaround, waiting, response, lateness, tardiness []int
	withDeadline := len(schedule) > 0
	for _, p := range schedule {
		turnaround = append(turnaround, p.Turnaround)
		waiting = append(waiting, p.Waiting)
		response = append(response, p.Response)
		if !p.HasDeadlineMetrics() {
			withDeadline = false
			continue
		}
		lateness = append(lateness, *p.Lateness)
		tardiness = append(tardiness, *p.Tardiness)
	}

	averages := Averages{
		Turnaround: util.Round2(util.Mean(turnaround)),
		Waiting:    util.Round2(util.Mean(waiting)),
		Response:   util.Round2(util.Mean(response)),
	}
	if withDeadline {
		avgLateness := util.Round2(util.Mean(lateness))
		avgTardiness := util.Round2(util.Mean(tardiness))
		averages.Lateness = &avgLateness
		averages.Tardiness = &avgTardiness
	}
	return averages
}
