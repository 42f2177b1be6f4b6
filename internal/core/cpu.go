package core

// CpuMetric accumulates CPU time in simulation ticks.
type CpuMetric struct {
	TotalTime       int `json:"total_time"`
	UtilizationTime int `json:"utilization_time"`
	IdleTime        int `json:"idle_time"`
	ContextSwitches int `json:"context_switches"`
}

// CPU is the single simulated core. It owns the run clock.
type CPU struct {
	clock  int
	last   string
	metric CpuMetric
}

func (c *CPU) Clock() int {
	return c.clock
}

func (c *CPU) Metric() CpuMetric {
	return c.metric
}

// Execute runs p for at most quantum ticks and returns the slice it produced.
// The first slice of a process sets its response time. A process whose
// remaining time reaches zero gets its completion metrics filled in.
func (c *CPU) Execute(p *RuntimeProcess, quantum int) ExecutionSlice {
	exec := quantum
	if p.RemainingTime < exec {
		exec = p.RemainingTime
	}
	slice := ExecutionSlice{Process: p.Name, Start: c.clock, End: c.clock + exec}

	if p.RemainingTime == p.BurstTime {
		// first dispatch; arrival is always 0
		p.ResponseTime = c.clock
	}
	if c.last != "" && c.last != p.Name {
		c.metric.ContextSwitches++
	}
	c.last = p.Name
	c.clock += exec
	c.metric.UtilizationTime += exec
	c.metric.TotalTime = c.clock
	c.metric.IdleTime = c.metric.TotalTime - c.metric.UtilizationTime

	p.RemainingTime -= exec
	if p.RemainingTime == 0 {
		// every process arrives at 0, so turnaround equals completion
		p.CompletionTime = c.clock
		p.TurnaroundTime = c.clock
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
	}
	return slice
}
