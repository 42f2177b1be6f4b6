package responses

import "rr-simulator/internal/core"

type ProcessResponse struct {
	Name           string `json:"name"`
	BurstTime      int    `json:"burst_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	CompletionTime int    `json:"completion_time"`
}

type SliceResponse struct {
	Process  string `json:"process"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Duration int    `json:"duration"`
	Color    string `json:"color,omitempty"`
}

type ScheduleResponse struct {
	RunID                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	ContextSwitches       int               `json:"context_switches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Gantt                 []SliceResponse   `json:"gantt"`
	Details               []ProcessResponse `json:"details"`
	Colors                map[string]string `json:"colors"`
}

type StepResponse struct {
	SessionID   string            `json:"session_id"`
	TimeQuantum int               `json:"time_quantum"`
	Step        int               `json:"step"`
	Time        int               `json:"time"`
	Slice       *SliceResponse    `json:"slice,omitempty"`
	Queue       []core.QueueEntry `json:"queue"`
	Colors      map[string]string `json:"colors,omitempty"`
	Done        bool              `json:"done"`
	Result      *ScheduleResponse `json:"result,omitempty"`
}

type RunResponse struct {
	ID          string           `json:"id"`
	Algorithm   string           `json:"algorithm"`
	TimeQuantum int              `json:"time_quantum"`
	Processes   []core.Process   `json:"processes"`
	CreatedAt   string           `json:"created_at"`
	Result      ScheduleResponse `json:"result"`
}
