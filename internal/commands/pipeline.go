// Package commands implements the validate-then-dispatch pipeline for
// every state-changing request. A command is validated by all of its
// registered validators; any violation short-circuits dispatch and the
// full violation list goes back to the caller. Validators never mutate
// state.
package commands

import (
	"context"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/results"
)

// Validator checks one command. It returns the rule violations it
// found; the error return is reserved for infrastructure failures
// (e.g. an existence check that could not reach the store).
type Validator[C any] interface {
	Validate(ctx context.Context, cmd C) ([]results.FieldError, error)
}

// Handler executes exactly one command type. Expected domain outcomes
// (not found, invalid) are returned as typed results, never as errors.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, cmd C) results.Result[R]
}

type Pipeline[C any, R any] struct {
	validators []Validator[C]
	handler    Handler[C, R]
	log        *logger.Logger
}

func NewPipeline[C any, R any](baseLog *logger.Logger, handler Handler[C, R], validators ...Validator[C]) *Pipeline[C, R] {
	return &Pipeline[C, R]{
		validators: validators,
		handler:    handler,
		log:        baseLog.With("pipeline", "commands"),
	}
}

// Send runs every validator, collecting all violations so the caller
// can fix everything in one round trip. The handler runs only when the
// command is clean; its result passes through unchanged.
func (p *Pipeline[C, R]) Send(ctx context.Context, cmd C) results.Result[R] {
	var violations []results.FieldError
	for _, v := range p.validators {
		found, err := v.Validate(ctx, cmd)
		if err != nil {
			p.log.Error("validator aborted", "error", err)
			return results.Unexpected[R]("validation could not be completed")
		}
		violations = append(violations, found...)
	}
	if len(violations) > 0 {
		return results.Invalid[R](violations)
	}
	return p.handler.Handle(ctx, cmd)
}
