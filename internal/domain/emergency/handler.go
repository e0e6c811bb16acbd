package emergency

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carebook/carebook/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(panel *echo.Group) {
	panel.GET("/emergency/queue", h.ListQueue)
	panel.PATCH("/emergency/:id/approve", h.Approve)
	panel.PATCH("/emergency/:id/reject", h.Reject)
}

func (h *Handler) ListQueue(c echo.Context) error {
	pg := pagination.FromContext(c)

	status := QueueStatus(c.QueryParam("status"))
	if status == "" {
		status = QueuePending
	}
	switch status {
	case QueuePending, QueueApproved, QueueRejected:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid queue status")
	}

	items, total, err := h.svc.Queue(c.Request().Context(), status, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []*QueueEntry{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Approve(c echo.Context) error {
	return h.review(c, h.svc.Approve)
}

func (h *Handler) Reject(c echo.Context) error {
	return h.review(c, h.svc.Reject)
}

func (h *Handler) review(c echo.Context, fn func(ctx context.Context, id uuid.UUID) error) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err = fn(c.Request().Context(), id)
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	case errors.Is(err, ErrNotInQueue):
		return echo.NewHTTPError(http.StatusBadRequest, "appointment is not in the emergency queue")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	entry, err := h.svc.EntryFor(c.Request().Context(), id)
	if err != nil || entry == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, entry)
}
