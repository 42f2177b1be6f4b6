package schedulers

import (
	"rr-simulator/internal/core"
	"rr-simulator/internal/responses"
	"rr-simulator/internal/util"
)

// GenerateResponse builds the API view of a finished run.
func GenerateResponse(algorithm string, outcome Outcome) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(outcome.Results)
	colors := util.ProcessColors(outcome.Slices)

	metric := outcome.Metric
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(outcome.Results)) / float64(metric.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		TimeQuantum:           outcome.TimeQuantum,
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		ContextSwitches:       metric.ContextSwitches,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Gantt:                 generateGantt(outcome.Slices, colors),
		Details:               generateProcessDetails(outcome.Results),
		Colors:                colors,
	}
}

func generateGantt(slices []core.ExecutionSlice, colors map[string]string) []responses.SliceResponse {
	gantt := make([]responses.SliceResponse, 0, len(slices))
	for _, s := range slices {
		gantt = append(gantt, SliceResponse(s, colors))
	}
	return gantt
}

// SliceResponse converts a slice for the timeline consumer.
func SliceResponse(s core.ExecutionSlice, colors map[string]string) responses.SliceResponse {
	return responses.SliceResponse{
		Process:  s.Process,
		Start:    s.Start,
		End:      s.End,
		Duration: s.Duration(),
		Color:    colors[s.Process],
	}
}

func generateProcessDetails(results []core.ProcessResult) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(results))
	for _, r := range results {
		details = append(details, responses.ProcessResponse{
			Name:           r.Name,
			BurstTime:      r.BurstTime,
			WaitingTime:    r.WaitingTime,
			ResponseTime:   r.ResponseTime,
			TurnAroundTime: r.TurnaroundTime,
			CompletionTime: r.CompletionTime,
		})
	}
	return details
}
