package core

// Process is one entry of the input workload. It is never mutated by a run.
type Process struct {
	Name      string `json:"name"`
	BurstTime int    `json:"burst_time"`
}

// RuntimeProcess is the working copy of a Process owned by a single run.
type RuntimeProcess struct {
	Process
	RemainingTime  int
	ResponseTime   int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
}

func newRuntimeProcess(p Process) *RuntimeProcess {
	return &RuntimeProcess{Process: p, RemainingTime: p.BurstTime}
}

// Result returns the metrics record of a finished process.
func (p *RuntimeProcess) Result() ProcessResult {
	return ProcessResult{
		Name:           p.Name,
		BurstTime:      p.BurstTime,
		WaitingTime:    p.WaitingTime,
		ResponseTime:   p.ResponseTime,
		TurnaroundTime: p.TurnaroundTime,
		CompletionTime: p.CompletionTime,
	}
}

// ExecutionSlice is one contiguous stretch of CPU time given to a process.
type ExecutionSlice struct {
	Process string `json:"process"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

func (s ExecutionSlice) Duration() int {
	return s.End - s.Start
}

// ProcessResult is what the results table shows for a completed process.
type ProcessResult struct {
	Name           string `json:"name"`
	BurstTime      int    `json:"burst_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
	TurnaroundTime int    `json:"turnaround_time"`
	CompletionTime int    `json:"completion_time"`
}

// QueueEntry is a read-only view of one ready queue position.
type QueueEntry struct {
	Name          string `json:"name"`
	RemainingTime int    `json:"remaining_time"`
}

// ExampleProcesses is the demo workload: P1=7, P2=4, P3=3, P4=5.
func ExampleProcesses() []Process {
	return []Process{
		{Name: "P1", BurstTime: 7},
		{Name: "P2", BurstTime: 4},
		{Name: "P3", BurstTime: 3},
		{Name: "P4", BurstTime: 5},
	}
}

// MaxBurstTime returns the largest burst time in processes, or 0 when empty.
func MaxBurstTime(processes []Process) int {
	longest := 0
	for _, p := range processes {
		if p.BurstTime > longest {
			longest = p.BurstTime
		}
	}
	return longest
}
