package summary

import (
	"errors"
	"fmt"
	"sort"

	"os-scheduler/internal/core"
)

// ErrInternalInvariant means a schedule does not tile [0, last completion).
// It points at an engine defect, never at bad user input.
var ErrInternalInvariant = errors.New("internal invariant violated")

// Timeline orders schedule by start time and fills the gaps with idle
// segments. Adjacent runs get no idle segment between them.
func Timeline(schedule []core.ScheduledProcess) []core.Segment {
	if len(schedule) == 0 {
		return nil
	}

	segments := make([]core.Segment, 0, 2*len(schedule))
	lastCompletion := 0
	for _, p := range byStart(schedule) {
		if p.Start > lastCompletion {
			segments = append(segments, core.Segment{Start: lastCompletion, End: p.Start, Idle: true})
		}
		segments = append(segments, core.Segment{ProcessID: p.ID, Start: p.Start, End: p.Completion})
		lastCompletion = p.Completion
	}
	return segments
}

// Verify checks that runs are disjoint, that each run lasts exactly its
// burst and that runs plus idle gaps cover [0, last completion).
func Verify(schedule []core.ScheduledProcess) error {
	lastCompletion, burstSum := 0, 0
	for _, p := range byStart(schedule) {
		if p.Completion-p.Start != p.Burst {
			return fmt.Errorf("%w: process %s ran %d units, burst is %d", ErrInternalInvariant, p.ID, p.Completion-p.Start, p.Burst)
		}
		if p.Start < p.Arrival {
			return fmt.Errorf("%w: process %s starts at %d before its arrival %d", ErrInternalInvariant, p.ID, p.Start, p.Arrival)
		}
		if p.Start < lastCompletion {
			return fmt.Errorf("%w: process %s starts at %d, cpu busy until %d", ErrInternalInvariant, p.ID, p.Start, lastCompletion)
		}
		lastCompletion = p.Completion
		burstSum += p.Burst
	}

	covered := 0
	for _, segment := range Timeline(schedule) {
		if segment.Duration() <= 0 {
			return fmt.Errorf("%w: empty segment at %d", ErrInternalInvariant, segment.Start)
		}
		covered += segment.Duration()
	}
	if covered != lastCompletion {
		return fmt.Errorf("%w: timeline covers %d units of %d", ErrInternalInvariant, covered, lastCompletion)
	}
	if busy := core.MeasureCpu(Timeline(schedule)).UtilizationTime; busy != burstSum {
		return fmt.Errorf("%w: cpu busy for %d units, bursts sum to %d", ErrInternalInvariant, busy, burstSum)
	}
	return nil
}

func byStart(schedule []core.ScheduledProcess) []core.ScheduledProcess {
	sorted := make([]core.ScheduledProcess, len(schedule))
	copy(sorted, schedule)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}
