// Package render prints simulation results as text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
)

const blockWidth = 8

// Title prints a banner naming the algorithm.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Table prints one row per process with an averages footer. Under MLQ the
// queue column shows the resolved level; lateness and tardiness only appear
// for the deadline policy.
func Table(w io.Writer, response responses.ScheduleResponse) {
	withDeadline := response.AverageLateness != nil
	header := []string{"ID", "Arrival", "Burst"}
	switch response.Algorithm {
	case "Priority":
		header = append(header, "Priority")
	case "MLQ":
		header = append(header, "Queue")
	case "Deadline":
		header = append(header, "Deadline")
	}
	header = append(header, "Start", "Completion", "Turnaround", "Waiting", "Response")
	if withDeadline {
		header = append(header, "Lateness", "Tardiness")
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	for _, p := range response.Details {
		row := []string{p.ProcessId, strconv.Itoa(p.ArrivalTime), strconv.Itoa(p.BurstTime)}
		switch response.Algorithm {
		case "Priority":
			row = append(row, strconv.Itoa(p.Priority))
		case "MLQ":
			row = append(row, strconv.Itoa(p.Queue))
		case "Deadline":
			row = append(row, strconv.Itoa(p.Deadline))
		}
		row = append(row,
			strconv.Itoa(p.StartTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.TurnAroundTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.ResponseTime),
		)
		if withDeadline && p.Lateness != nil && p.Tardiness != nil {
			row = append(row, strconv.Itoa(*p.Lateness), strconv.Itoa(*p.Tardiness))
		}
		table.Append(row)
	}

	footer := make([]string, len(header))
	averages := []float64{response.AverageTurnAroundTime, response.AverageWaitingTime, response.AverageResponseTime}
	if withDeadline {
		averages = append(averages, *response.AverageLateness, *response.AverageTardiness)
	}
	offset := len(header) - len(averages)
	footer[offset-1] = "Average"
	for i, avg := range averages {
		footer[offset+i] = fmt.Sprintf("%.2f", avg)
	}
	table.SetFooter(footer)
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, throughput %.2f/t, idle %d of %d\n",
		response.CpuUtilization*100, response.CpuThroughput, response.IdleTime, response.TotalTime)
}

// Gantt prints the timeline as labelled blocks over their boundary times.
func Gantt(w io.Writer, timeline []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w)
		return
	}

	var blocks, times strings.Builder
	blocks.WriteString("|")
	for _, segment := range timeline {
		label := segment.Label
		if len(label) > blockWidth {
			label = label[:blockWidth]
		}
		left := (blockWidth - len(label)) / 2
		blocks.WriteString(strings.Repeat(" ", left) + label + strings.Repeat(" ", blockWidth-len(label)-left) + "|")

		start := strconv.Itoa(segment.Start)
		times.WriteString(start + strings.Repeat(" ", max(1, blockWidth+1-len(start))))
	}
	times.WriteString(strconv.Itoa(timeline[len(timeline)-1].End))

	_, _ = fmt.Fprintln(w, blocks.String())
	_, _ = fmt.Fprintln(w, times.String())
	_, _ = fmt.Fprintln(w)
}
