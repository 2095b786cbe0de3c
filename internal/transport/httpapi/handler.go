package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ib-77/outbound/internal/service"
	"github.com/ib-77/outbound/pkg/outbound"
	"github.com/ib-77/outbound/pkg/rop/solo"
)

// Canceller is implemented by *service.Service.
type Canceller interface {
	CancelRaw(ctx context.Context, raw string) service.Outcome
}

type Handler struct {
	svc Canceller
	log zerolog.Logger
}

func NewHandler(svc Canceller, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type eventDTO struct {
	Type       outbound.EventType  `json:"type"`
	ShipmentID int64               `json:"shipment_id"`
	Items      []outbound.LineItem `json:"items,omitempty"`
}

type cancelResponse struct {
	CorrelationID string     `json:"correlation_id"`
	ShipmentID    int64      `json:"shipment_id"`
	Events        []eventDTO `json:"events"`
}

type errorResponse struct {
	CorrelationID string `json:"correlation_id,omitempty"`
	Error         string `json:"error"`
	Kind          string `json:"kind"`
}

type reply struct {
	status int
	body   any
}

// NewRouter mounts the cancellation routes, /healthz and /metrics.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	h.Register(r)
	return r
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/shipments/:id/cancel", h.cancel)
}

func (h *Handler) cancel(c *gin.Context) {
	out := h.svc.CancelRaw(c.Request.Context(), c.Param("id"))
	cid := out.CorrelationID.String()

	rep := solo.Finally(c.Request.Context(), out.Result,
		func(_ context.Context, events []outbound.Event) reply {
			return reply{http.StatusOK, cancelResponse{
				CorrelationID: cid,
				ShipmentID:    out.ShipmentID,
				Events:        toDTOs(events),
			}}
		},
		func(_ context.Context, err error) reply {
			kind := outbound.KindOf(err)
			return reply{statusFor(kind), errorResponse{
				CorrelationID: cid,
				Error:         err.Error(),
				Kind:          kind.String(),
			}}
		})

	h.log.Debug().Str("correlation_id", cid).Int("status", rep.status).Msg("cancel request served")
	c.JSON(rep.status, rep.body)
}

func statusFor(kind outbound.Kind) int {
	switch kind {
	case outbound.KindInvalidIdentifier:
		return http.StatusBadRequest
	case outbound.KindNotFound:
		return http.StatusNotFound
	case outbound.KindAlreadyShipped:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toDTOs(events []outbound.Event) []eventDTO {
	out := make([]eventDTO, 0, len(events))
	for _, e := range events {
		dto := eventDTO{Type: e.Type(), ShipmentID: e.ForShipment()}
		if restore, ok := e.(outbound.RestoreInstructionCreated); ok {
			dto.Items = restore.Items
		}
		out = append(out, dto)
	}
	return out
}
