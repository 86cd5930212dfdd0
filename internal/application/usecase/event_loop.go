package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/fruitwm/internal/application/port"
	"github.com/bnema/fruitwm/internal/domain/entity"
	"github.com/bnema/fruitwm/internal/logging"
)

// EventLoopUseCase pulls events one at a time and handles each to completion.
type EventLoopUseCase struct {
	source  port.EventSource
	handler *HandleEventUseCase
}

// NewEventLoopUseCase creates a new EventLoopUseCase.
func NewEventLoopUseCase(source port.EventSource, handler *HandleEventUseCase) *EventLoopUseCase {
	return &EventLoopUseCase{source: source, handler: handler}
}

// Run processes events until ctx is cancelled or the event stream closes,
// both of which end the loop without error. Failures of a single event are
// logged and the loop continues. A broken layout invariant is logged at
// fatal level and the panic is propagated.
func (uc *EventLoopUseCase) Run(ctx context.Context, state *entity.State) error {
	if uc == nil || uc.source == nil || uc.handler == nil {
		return fmt.Errorf("event loop use case is nil")
	}
	if state == nil {
		return fmt.Errorf("state is required")
	}
	log := logging.FromContext(ctx)
	defer reportInvariantFault(log)

	log.Info().Msg("event loop started")
	for {
		if ctx.Err() != nil {
			log.Info().Msg("event loop stopped")
			return nil
		}

		ev, err := uc.source.NextEvent(ctx)
		if err != nil {
			switch {
			case errors.Is(err, port.ErrEventStreamClosed):
				log.Info().Msg("event stream closed")
				return nil
			case ctx.Err() != nil || errors.Is(err, context.Canceled):
				log.Info().Msg("event loop stopped")
				return nil
			default:
				log.Warn().Err(err).Msg("display error")
				continue
			}
		}

		if err := uc.handler.Handle(ctx, state, ev); err != nil {
			log.Error().Err(err).Str("event", fmt.Sprintf("%T", ev)).Msg("failed to handle event")
		}
	}
}

func reportInvariantFault(log *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		var invErr *entity.InvariantError
		if errors.As(err, &invErr) {
			log.WithLevel(zerolog.FatalLevel).Err(invErr).Msg("layout state corrupted")
		}
	}
	panic(r)
}
