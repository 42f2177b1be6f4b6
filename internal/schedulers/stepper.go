package schedulers

import (
	"rr-simulator/internal/core"
)

// StepResult is what one Stepper.Step call produced. When Done is set the
// ready queue was already empty: no slice was executed and Results holds the
// final per-process metrics.
type StepResult struct {
	Step    int                  `json:"step"`
	Slice   core.ExecutionSlice  `json:"slice"`
	Queue   []core.QueueEntry    `json:"queue"`
	Time    int                  `json:"time"`
	Done    bool                 `json:"done"`
	Results []core.ProcessResult `json:"results,omitempty"`
}

// Outcome is the full result of a finished round robin run.
type Outcome struct {
	TimeQuantum int                   `json:"time_quantum"`
	Slices      []core.ExecutionSlice `json:"slices"`
	Results     []core.ProcessResult  `json:"results"`
	Metric      core.CpuMetric        `json:"metric"`
}

// Stepper runs round robin one dispatch at a time. It is the only
// implementation of the algorithm: Simulate drives a Stepper to completion.
//
// A Stepper is not safe for concurrent use.
type Stepper struct {
	quantum     int
	queue       *core.ReadyQueue
	cpu         *core.CPU
	slices      []core.ExecutionSlice
	completed   []core.ProcessResult
	steps       int
	initialized bool
	done        bool
	maxSlices   int
}

// NewStepper returns a Stepper capped at core.DefaultMaxSlices.
func NewStepper() *Stepper {
	return &Stepper{}
}

// NewStepperWithLimit returns a Stepper whose Init rejects workloads needing
// more than maxSlices slices. Zero means core.DefaultMaxSlices, negative means
// no cap.
func NewStepperWithLimit(maxSlices int) *Stepper {
	return &Stepper{maxSlices: maxSlices}
}

func (s *Stepper) limit() int {
	if s.maxSlices == 0 {
		return core.DefaultMaxSlices
	}
	return s.maxSlices
}

// Init discards any run in progress and starts a new one. The input slice is
// copied; nothing in processes is modified. On validation failure the current
// state is left untouched.
func (s *Stepper) Init(processes []core.Process, quantum int) error {
	if err := core.ValidateWithLimit(processes, quantum, s.limit()); err != nil {
		return err
	}
	*s = Stepper{
		maxSlices:   s.maxSlices,
		quantum:     quantum,
		queue:       core.NewReadyQueue(processes),
		cpu:         &core.CPU{},
		slices:      make([]core.ExecutionSlice, 0, len(processes)),
		completed:   make([]core.ProcessResult, 0, len(processes)),
		initialized: true,
	}
	return nil
}

// Step dispatches the head of the ready queue for one quantum, or reports
// Done once the queue is empty.
func (s *Stepper) Step() (StepResult, error) {
	if !s.initialized {
		return StepResult{}, core.ErrNotInitialized
	}
	if s.done {
		return StepResult{}, core.ErrAlreadyCompleted
	}

	p, ok := s.queue.RemoveFromTop()
	if !ok {
		s.done = true
		return StepResult{
			Step:    s.steps,
			Queue:   []core.QueueEntry{},
			Time:    s.cpu.Clock(),
			Done:    true,
			Results: s.Results(),
		}, nil
	}

	slice := s.cpu.Execute(p, s.quantum)
	s.slices = append(s.slices, slice)
	if p.RemainingTime > 0 {
		s.queue.AddToEnd(p)
	} else {
		s.completed = append(s.completed, p.Result())
	}
	s.steps++

	return StepResult{
		Step:  s.steps,
		Slice: slice,
		Queue: s.queue.Snapshot(),
		Time:  s.cpu.Clock(),
	}, nil
}

// Finished reports whether Step has returned Done.
func (s *Stepper) Finished() bool { return s.done }

func (s *Stepper) TimeQuantum() int { return s.quantum }

func (s *Stepper) Time() int {
	if s.cpu == nil {
		return 0
	}
	return s.cpu.Clock()
}

func (s *Stepper) Queue() []core.QueueEntry {
	if s.queue == nil {
		return []core.QueueEntry{}
	}
	return s.queue.Snapshot()
}

func (s *Stepper) Slices() []core.ExecutionSlice {
	return append([]core.ExecutionSlice{}, s.slices...)
}

// Results returns the processes completed so far, in completion order.
func (s *Stepper) Results() []core.ProcessResult {
	return append([]core.ProcessResult{}, s.completed...)
}

// Outcome returns the finished run. It fails until Step has reported Done.
func (s *Stepper) Outcome() (Outcome, error) {
	if !s.initialized {
		return Outcome{}, core.ErrNotInitialized
	}
	if !s.done {
		return Outcome{}, errRunInProgress
	}
	return Outcome{
		TimeQuantum: s.quantum,
		Slices:      s.Slices(),
		Results:     s.Results(),
		Metric:      s.cpu.Metric(),
	}, nil
}
