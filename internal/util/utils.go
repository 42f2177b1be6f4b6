package util

import (
	"rr-simulator/internal/core"
)

func CalculateAverage(results []core.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(results) == 0 {
		return 0, 0, 0
	}
	var waitingTimeSum int
	var responseTimeSum int
	var turnAroundTimeSum int

	for _, r := range results {
		waitingTimeSum += r.WaitingTime
		responseTimeSum += r.ResponseTime
		turnAroundTimeSum += r.TurnaroundTime
	}

	count := float64(len(results))
	averageWaitingTime = float64(waitingTimeSum) / count
	averageResponseTime = float64(responseTimeSum) / count
	averageTurnAroundTime = float64(turnAroundTimeSum) / count
	return
}
