package schedulers

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"rr-simulator/internal/core"
	"rr-simulator/internal/requests"
	"rr-simulator/internal/responses"
)

const (
	AlgorithmRoundRobin          = "rr"
	AlgorithmFirstComeFirstServe = "fcfs"
)

var errRunInProgress = errors.New("simulation still in progress")

// Simulate runs round robin over processes to completion. It is pure: the
// same input always yields the same Outcome, and on error nothing is returned.
func Simulate(processes []core.Process, quantum int) (Outcome, error) {
	return SimulateWithLimit(processes, quantum, 0)
}

// SimulateWithLimit is Simulate with a slice cap, see NewStepperWithLimit.
func SimulateWithLimit(processes []core.Process, quantum int, maxSlices int) (Outcome, error) {
	s := NewStepperWithLimit(maxSlices)
	if err := s.Init(processes, quantum); err != nil {
		return Outcome{}, err
	}
	for {
		res, err := s.Step()
		if err != nil {
			return Outcome{}, err
		}
		if res.Done {
			return s.Outcome()
		}
	}
}

// ScheduleRoundRobin answers a schedule request with the given quantum.
// maxSlices bounds the run as in SimulateWithLimit.
func ScheduleRoundRobin(ctx context.Context, request *requests.ScheduleRequest, timeQuantum, maxSlices int) (responses.ScheduleResponse, error) {
	log := zerolog.Ctx(ctx).With().
		Str("algorithm", AlgorithmRoundRobin).
		Int("quantum", timeQuantum).
		Int("processes", len(request.Processes)).
		Logger()
	log.Debug().Msg("running round robin")

	outcome, err := SimulateWithLimit(request.Processes, timeQuantum, maxSlices)
	if err != nil {
		log.Debug().Err(err).Msg("round robin rejected input")
		return responses.ScheduleResponse{}, fmt.Errorf("round robin: %w", err)
	}

	response := GenerateResponse(AlgorithmRoundRobin, outcome)
	log.Debug().
		Int("slices", len(outcome.Slices)).
		Int("total_time", outcome.Metric.TotalTime).
		Msg("round robin finished")
	return response, nil
}
