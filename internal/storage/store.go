package storage

import (
	"context"
	"errors"
	"time"

	"rr-simulator/internal/core"
	"rr-simulator/internal/responses"
)

var (
	ErrRunNotFound = errors.New("run not found")
	ErrDisabled    = errors.New("run history is disabled")
)

// Run is one finished batch simulation.
type Run struct {
	ID          string
	Algorithm   string
	TimeQuantum int
	Processes   []core.Process
	Result      responses.ScheduleResponse
	CreatedAt   time.Time
}

// RunStore keeps the history of batch runs.
type RunStore interface {
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
	Close() error
}

// NopStore is used when history is turned off.
type NopStore struct{}

func (NopStore) SaveRun(context.Context, *Run) error           { return nil }
func (NopStore) GetRun(context.Context, string) (*Run, error)  { return nil, ErrDisabled }
func (NopStore) ListRuns(context.Context, int) ([]*Run, error) { return nil, ErrDisabled }
func (NopStore) Close() error                                  { return nil }
