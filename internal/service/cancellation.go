package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/outbound/internal/observability"
	"github.com/ib-77/outbound/pkg/outbound"
	"github.com/ib-77/outbound/pkg/rop"
	"github.com/ib-77/outbound/pkg/rop/solo"
)

// Canceller is the pipeline the service observes.
type Canceller interface {
	Cancel(ctx context.Context, id int64) rop.Result[[]outbound.Event]
}

// Outcome is the result of one cancellation request.
type Outcome struct {
	CorrelationID uuid.UUID
	ShipmentID    int64
	Result        rop.Result[[]outbound.Event]
}

// Service logs and counts cancellations after the pipeline has finished; the
// pipeline itself stays free of side effects.
type Service struct {
	canceller Canceller
	log       zerolog.Logger
	metrics   *observability.Metrics
	newID     func() uuid.UUID
}

func New(canceller Canceller, log zerolog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		canceller: canceller,
		log:       log,
		metrics:   metrics,
		newID:     uuid.New,
	}
}

func (s *Service) Cancel(ctx context.Context, id int64) Outcome {
	return s.observe(ctx, id, s.log.With().Int64("shipment_id", id), s.canceller.Cancel(ctx, id))
}

// CancelRaw is Cancel for an id that has not been parsed yet. A malformed id
// is logged and counted as an invalid identifier like any other rejection.
func (s *Service) CancelRaw(ctx context.Context, raw string) Outcome {
	parsed := outbound.ParseIdentifier(ctx, raw)
	fields := s.log.With().Str("raw_id", raw)
	if parsed.IsSuccess() {
		fields = fields.Int64("shipment_id", parsed.Result())
	}
	return s.observe(ctx, parsed.Result(), fields, solo.Switch(ctx, parsed, s.canceller.Cancel))
}

func (s *Service) observe(ctx context.Context, id int64, fields zerolog.Context, res rop.Result[[]outbound.Event]) Outcome {
	correlationID := s.newID()
	log := fields.Str("correlation_id", correlationID.String()).Logger()

	res = solo.DoubleTee(ctx, res,
		func(_ context.Context, events []outbound.Event) {
			s.metrics.RecordCancelled(events)
			log.Info().Int("events", len(events)).Msg("shipment cancelled")
		},
		func(_ context.Context, err error) {
			kind := outbound.KindOf(err)
			s.metrics.RecordRejected(kind)
			log.Warn().Err(err).Str("kind", kind.String()).Msg("cancellation rejected")
		})

	return Outcome{
		CorrelationID: correlationID,
		ShipmentID:    id,
		Result:        res,
	}
}
