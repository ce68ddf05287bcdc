package core

// CpuMetric summarizes how the single simulated CPU spent the run.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is busy time over total time, 0 when nothing ran.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// MeasureCpu walks a timeline and accounts busy and idle time on the CPU.
func MeasureCpu(timeline []Segment) CpuMetric {
	var metric CpuMetric
	for _, segment := range timeline {
		if segment.Idle {
			metric.IdleTime += segment.Duration()
		} else {
			metric.UtilizationTime += segment.Duration()
		}
		if segment.End > metric.TotalTime {
			metric.TotalTime = segment.End
		}
	}
	return metric
}
