package schedulers

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"rr-simulator/internal/core"
	"rr-simulator/internal/requests"
	"rr-simulator/internal/responses"
)

// ScheduleFirstComeFirstServe runs round robin with a quantum no smaller than
// the longest burst, so every process runs once, in input order.
func ScheduleFirstComeFirstServe(ctx context.Context, request *requests.ScheduleRequest, maxSlices int) (responses.ScheduleResponse, error) {
	log := zerolog.Ctx(ctx).With().
		Str("algorithm", AlgorithmFirstComeFirstServe).
		Int("processes", len(request.Processes)).
		Logger()
	log.Debug().Msg("running first come first serve")

	quantum := core.MaxBurstTime(request.Processes)
	if quantum < 1 {
		// let Simulate report the real problem (empty input or bad burst)
		quantum = 1
	}
	outcome, err := SimulateWithLimit(request.Processes, quantum, maxSlices)
	if err != nil {
		return responses.ScheduleResponse{}, fmt.Errorf("first come first serve: %w", err)
	}
	return GenerateResponse(AlgorithmFirstComeFirstServe, outcome), nil
}
