package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"rr-simulator/config"
	"rr-simulator/internal/core"
	"rr-simulator/internal/requests"
	"rr-simulator/internal/responses"
	"rr-simulator/internal/schedulers"
	"rr-simulator/internal/sessions"
	"rr-simulator/internal/storage"
	"rr-simulator/internal/util"
)

type SchedulerHandler interface {
	RoundRobin(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	Example(ctx *fiber.Ctx) error
	InitStep(ctx *fiber.Ctx) error
	NextStep(ctx *fiber.Ctx) error
	ResetStep(ctx *fiber.Ctx) error
	DeleteStep(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	sessions *sessions.Manager
	store    storage.RunStore
	logger   zerolog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, sessions *sessions.Manager, store storage.RunStore, logger zerolog.Logger) *SchedulerHandlerImpl {
	if store == nil {
		store = storage.NopStore{}
	}
	return &SchedulerHandlerImpl{
		config:   config,
		sessions: sessions,
		store:    store,
		logger:   logger.With().Str("component", "api").Logger(),
	}
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	quantum := request.Quantum(s.config.RoundRobinTimeQuantum)
	response, err := schedulers.ScheduleRoundRobin(s.logger.WithContext(ctx.UserContext()), request, quantum, s.config.MaxSlices)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.saveRun(ctx, request, &response)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(s.logger.WithContext(ctx.UserContext()), request, s.config.MaxSlices)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.saveRun(ctx, request, &response)
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Example(ctx *fiber.Ctx) error {
	quantum := s.config.RoundRobinTimeQuantum
	return ctx.JSON(requests.ScheduleRequest{
		Processes:   core.ExampleProcesses(),
		TimeQuantum: &quantum,
	})
}

func (s *SchedulerHandlerImpl) InitStep(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	state, err := s.sessions.Create(request.Processes, request.Quantum(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(stateResponse(state))
}

func (s *SchedulerHandlerImpl) NextStep(ctx *fiber.Ctx) error {
	reply, err := s.sessions.Step(ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, err)
	}
	response := responses.StepResponse{
		SessionID:   reply.SessionID,
		TimeQuantum: reply.TimeQuantum,
		Step:        reply.Step,
		Time:        reply.Time,
		Queue:       reply.Queue,
		Done:        reply.Done,
	}
	if reply.Outcome != nil {
		result := schedulers.GenerateResponse(schedulers.AlgorithmRoundRobin, *reply.Outcome)
		response.Result = &result
	} else {
		slice := schedulers.SliceResponse(reply.Slice, nil)
		response.Slice = &slice
	}
	return ctx.JSON(response)
}

// ResetStep re-initializes a session. Fields missing from the body keep the
// session's current workload and quantum.
func (s *SchedulerHandlerImpl) ResetStep(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	current, err := s.sessions.Get(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	request := new(requests.ScheduleRequest)
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(request); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request format")
		}
	}
	processes := request.Processes
	if len(processes) == 0 {
		processes = current.Processes
	}
	state, err := s.sessions.Reset(id, processes, request.Quantum(current.TimeQuantum))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(stateResponse(state))
}

func (s *SchedulerHandlerImpl) DeleteStep(ctx *fiber.Ctx) error {
	if err := s.sessions.Delete(ctx.Params("id")); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	limit, err := strconv.Atoi(ctx.Query("limit", "0"))
	if err != nil || limit < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid limit")
	}
	runs, err := s.store.ListRuns(ctx.UserContext(), limit)
	if err != nil {
		return s.fail(ctx, err)
	}
	out := make([]responses.RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, runResponse(run))
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(runResponse(run))
}

func (s *SchedulerHandlerImpl) saveRun(ctx *fiber.Ctx, request *requests.ScheduleRequest, response *responses.ScheduleResponse) {
	run := &storage.Run{
		Algorithm:   response.Algorithm,
		TimeQuantum: response.TimeQuantum,
		Processes:   request.Processes,
		Result:      *response,
	}
	if err := s.store.SaveRun(ctx.UserContext(), run); err != nil {
		// history is best effort; the simulation itself succeeded
		s.logger.Warn().Err(err).Msg("save run failed")
		return
	}
	response.RunID = run.ID
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", ctx.Path()).Msg("request failed")
	}
	return fiber.NewError(status, err.Error())
}

func statusFor(err error) int {
	switch {
	case core.IsInputError(err):
		return fiber.StatusBadRequest
	case errors.Is(err, sessions.ErrSessionNotFound),
		errors.Is(err, storage.ErrRunNotFound),
		errors.Is(err, storage.ErrDisabled):
		return fiber.StatusNotFound
	case errors.Is(err, core.ErrAlreadyCompleted),
		errors.Is(err, core.ErrNotInitialized):
		return fiber.StatusConflict
	case errors.Is(err, sessions.ErrTooManySessions):
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	request := new(requests.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return request, nil
}

func stateResponse(state sessions.State) responses.StepResponse {
	names := make([]string, 0, len(state.Processes))
	for _, p := range state.Processes {
		names = append(names, p.Name)
	}
	return responses.StepResponse{
		SessionID:   state.SessionID,
		TimeQuantum: state.TimeQuantum,
		Time:        state.Time,
		Queue:       state.Queue,
		Colors:      util.ColorsFor(names),
		Done:        state.Finished,
	}
}

func runResponse(run *storage.Run) responses.RunResponse {
	return responses.RunResponse{
		ID:          run.ID,
		Algorithm:   run.Algorithm,
		TimeQuantum: run.TimeQuantum,
		Processes:   run.Processes,
		CreatedAt:   run.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		Result:      run.Result,
	}
}
