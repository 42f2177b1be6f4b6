package schedulers

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rr-simulator/internal/core"
	"rr-simulator/internal/requests"
)

func TestSimulate_Scenarios(t *testing.T) {
	var testCases = []struct {
		description string
		processes   []core.Process
		quantum     int
		slices      []core.ExecutionSlice
		results     []core.ProcessResult
	}{
		{
			description: "example workload, quantum 2",
			processes:   core.ExampleProcesses(),
			quantum:     2,
			slices: []core.ExecutionSlice{
				{Process: "P1", Start: 0, End: 2},
				{Process: "P2", Start: 2, End: 4},
				{Process: "P3", Start: 4, End: 6},
				{Process: "P4", Start: 6, End: 8},
				{Process: "P1", Start: 8, End: 10},
				{Process: "P2", Start: 10, End: 12},
				{Process: "P3", Start: 12, End: 13},
				{Process: "P4", Start: 13, End: 15},
				{Process: "P1", Start: 15, End: 17},
				{Process: "P4", Start: 17, End: 18},
				{Process: "P1", Start: 18, End: 19},
			},
			results: []core.ProcessResult{
				{Name: "P2", BurstTime: 4, WaitingTime: 8, ResponseTime: 2, TurnaroundTime: 12, CompletionTime: 12},
				{Name: "P3", BurstTime: 3, WaitingTime: 10, ResponseTime: 4, TurnaroundTime: 13, CompletionTime: 13},
				{Name: "P4", BurstTime: 5, WaitingTime: 13, ResponseTime: 6, TurnaroundTime: 18, CompletionTime: 18},
				{Name: "P1", BurstTime: 7, WaitingTime: 12, ResponseTime: 0, TurnaroundTime: 19, CompletionTime: 19},
			},
		},
		{
			description: "single process",
			processes:   []core.Process{{Name: "A", BurstTime: 5}},
			quantum:     3,
			slices: []core.ExecutionSlice{
				{Process: "A", Start: 0, End: 3},
				{Process: "A", Start: 3, End: 5},
			},
			results: []core.ProcessResult{
				{Name: "A", BurstTime: 5, WaitingTime: 0, ResponseTime: 0, TurnaroundTime: 5, CompletionTime: 5},
			},
		},
		{
			description: "quantum covers every burst",
			processes:   core.ExampleProcesses(),
			quantum:     7,
			slices: []core.ExecutionSlice{
				{Process: "P1", Start: 0, End: 7},
				{Process: "P2", Start: 7, End: 11},
				{Process: "P3", Start: 11, End: 14},
				{Process: "P4", Start: 14, End: 19},
			},
			results: []core.ProcessResult{
				{Name: "P1", BurstTime: 7, WaitingTime: 0, ResponseTime: 0, TurnaroundTime: 7, CompletionTime: 7},
				{Name: "P2", BurstTime: 4, WaitingTime: 7, ResponseTime: 7, TurnaroundTime: 11, CompletionTime: 11},
				{Name: "P3", BurstTime: 3, WaitingTime: 11, ResponseTime: 11, TurnaroundTime: 14, CompletionTime: 14},
				{Name: "P4", BurstTime: 5, WaitingTime: 14, ResponseTime: 14, TurnaroundTime: 19, CompletionTime: 19},
			},
		},
	}

	for _, testCase := range testCases {
		outcome, err := Simulate(testCase.processes, testCase.quantum)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.slices, outcome.Slices, testCase.description)
		assert.Equal(t, testCase.results, outcome.Results, testCase.description)
		assert.Equal(t, testCase.quantum, outcome.TimeQuantum, testCase.description)
	}
}

func TestSimulate_Errors(t *testing.T) {
	var testCases = []struct {
		description string
		processes   []core.Process
		quantum     int
		expect      error
	}{
		{description: "empty", quantum: 2, expect: core.ErrEmptyInput},
		{description: "bad quantum", processes: core.ExampleProcesses(), quantum: 0, expect: core.ErrInvalidQuantum},
		{description: "bad burst", processes: []core.Process{{Name: "A", BurstTime: 0}}, quantum: 2, expect: core.ErrInvalidBurstTime},
		{
			description: "clock would overflow",
			processes:   []core.Process{{Name: "A", BurstTime: math.MaxInt/2 + 1}, {Name: "B", BurstTime: math.MaxInt/2 + 1}},
			quantum:     math.MaxInt,
			expect:      core.ErrInvalidBurstTime,
		},
		{
			description: "too many slices",
			processes:   []core.Process{{Name: "A", BurstTime: 1_000_000_000_000_000}},
			quantum:     1,
			expect:      core.ErrTooManySlices,
		},
	}
	for _, testCase := range testCases {
		outcome, err := Simulate(testCase.processes, testCase.quantum)
		assert.True(t, errors.Is(err, testCase.expect), testCase.description)
		assert.Nil(t, outcome.Slices, testCase.description)
		assert.Nil(t, outcome.Results, testCase.description)
	}
}

func TestSimulate_Invariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		n := rnd.Intn(8) + 1
		processes := make([]core.Process, n)
		for j := range processes {
			processes[j] = core.Process{Name: string(rune('A' + j)), BurstTime: rnd.Intn(12) + 1}
		}
		quantum := rnd.Intn(6) + 1
		input := append([]core.Process{}, processes...)

		outcome, err := Simulate(processes, quantum)
		require.NoError(t, err)
		assert.Equal(t, input, processes, "input must not be mutated")

		burstSum := 0
		bound := 0
		for _, p := range processes {
			burstSum += p.BurstTime
			bound += (p.BurstTime + quantum - 1) / quantum
		}
		assert.Len(t, outcome.Slices, bound)

		perProcess := map[string]int{}
		firstStart := map[string]int{}
		sliceSum := 0
		for k, s := range outcome.Slices {
			assert.Greater(t, s.End, s.Start)
			assert.LessOrEqual(t, s.Duration(), quantum)
			if k > 0 {
				assert.Equal(t, outcome.Slices[k-1].End, s.Start)
			} else {
				assert.Equal(t, 0, s.Start)
			}
			if _, ok := firstStart[s.Process]; !ok {
				firstStart[s.Process] = s.Start
			}
			perProcess[s.Process] += s.Duration()
			sliceSum += s.Duration()
		}
		assert.Equal(t, burstSum, sliceSum)

		require.Len(t, outcome.Results, n)
		names := map[string]bool{}
		for _, r := range outcome.Results {
			names[r.Name] = true
			assert.Equal(t, r.BurstTime, perProcess[r.Name])
			assert.Equal(t, r.CompletionTime, r.TurnaroundTime)
			assert.Equal(t, r.TurnaroundTime-r.BurstTime, r.WaitingTime)
			assert.GreaterOrEqual(t, r.WaitingTime, 0)
			assert.Equal(t, firstStart[r.Name], r.ResponseTime)
			assert.LessOrEqual(t, r.ResponseTime, r.WaitingTime)
		}
		assert.Len(t, names, n)
		assert.Equal(t, burstSum, outcome.Metric.TotalTime)
		assert.Zero(t, outcome.Metric.IdleTime)

		again, err := Simulate(processes, quantum)
		require.NoError(t, err)
		assert.Equal(t, outcome, again)
	}
}

func TestSimulateWithLimit(t *testing.T) {
	processes := []core.Process{{Name: "A", BurstTime: 5}, {Name: "B", BurstTime: 4}}

	_, err := SimulateWithLimit(processes, 2, 4)
	assert.True(t, errors.Is(err, core.ErrTooManySlices))

	outcome, err := SimulateWithLimit(processes, 2, 5)
	require.NoError(t, err)
	assert.Len(t, outcome.Slices, 5)

	// huge bursts are fine when the quantum keeps the slice count small
	big := math.MaxInt / 4
	outcome, err = SimulateWithLimit([]core.Process{{Name: "A", BurstTime: big}, {Name: "B", BurstTime: big}}, big, 0)
	require.NoError(t, err)
	require.Len(t, outcome.Slices, 2)
	assert.Greater(t, outcome.Slices[1].End, outcome.Slices[1].Start)
	assert.Equal(t, 2*big, outcome.Results[1].CompletionTime)
	assert.Equal(t, big, outcome.Results[1].WaitingTime)

	_, err = ScheduleRoundRobin(context.Background(), &requests.ScheduleRequest{Processes: processes}, 2, 4)
	assert.True(t, errors.Is(err, core.ErrTooManySlices))
	_, err = ScheduleFirstComeFirstServe(context.Background(), &requests.ScheduleRequest{Processes: processes}, 1)
	assert.True(t, errors.Is(err, core.ErrTooManySlices))
}

func TestScheduleRoundRobin(t *testing.T) {
	request := &requests.ScheduleRequest{Processes: core.ExampleProcesses()}
	response, err := ScheduleRoundRobin(context.Background(), request, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, AlgorithmRoundRobin, response.Algorithm)
	assert.Equal(t, 2, response.TimeQuantum)
	assert.Equal(t, 19, response.TotalTime)
	assert.Equal(t, 0, response.IdleTime)
	assert.Equal(t, 10, response.ContextSwitches)
	assert.InDelta(t, 1.0, response.CpuUtilization, 1e-9)
	assert.InDelta(t, 4.0/19.0, response.CpuThroughput, 1e-9)
	assert.InDelta(t, 43.0/4.0, response.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 62.0/4.0, response.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 3.0, response.AverageResponseTime, 1e-9)
	require.Len(t, response.Gantt, 11)
	assert.Equal(t, "hsl(0, 100%, 50%)", response.Gantt[0].Color)
	assert.Equal(t, "hsl(180, 100%, 50%)", response.Colors["P4"])
	require.Len(t, response.Details, 4)
	assert.Equal(t, "P2", response.Details[0].Name)

	_, err = ScheduleRoundRobin(context.Background(), &requests.ScheduleRequest{}, 2, 0)
	assert.True(t, errors.Is(err, core.ErrEmptyInput))
}

func TestScheduleFirstComeFirstServe(t *testing.T) {
	request := &requests.ScheduleRequest{Processes: core.ExampleProcesses()}
	response, err := ScheduleFirstComeFirstServe(context.Background(), request, 0)
	require.NoError(t, err)

	assert.Equal(t, AlgorithmFirstComeFirstServe, response.Algorithm)
	assert.Equal(t, 7, response.TimeQuantum)
	require.Len(t, response.Gantt, 4)
	for i, p := range core.ExampleProcesses() {
		assert.Equal(t, p.Name, response.Gantt[i].Process)
		assert.Equal(t, p.BurstTime, response.Gantt[i].Duration)
	}

	_, err = ScheduleFirstComeFirstServe(context.Background(), &requests.ScheduleRequest{
		Processes: []core.Process{{Name: "A", BurstTime: -2}},
	}, 0)
	assert.True(t, errors.Is(err, core.ErrInvalidBurstTime))
}
