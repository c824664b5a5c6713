package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhive/booking-api/internal/core/ports"
)

type EventTagHandler struct {
	eventTags ports.EventTagService
}

func NewEventTagHandler(eventTags ports.EventTagService) *EventTagHandler {
	return &EventTagHandler{eventTags: eventTags}
}

type eventTagRequest struct {
	EventID int64 `json:"event_id" validate:"required,gt=0"`
	TagID   int64 `json:"tag_id" validate:"required,gt=0"`
}

// Create handles POST /api/event-tags.
func (h *EventTagHandler) Create(c echo.Context) error {
	var req eventTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.eventTags.Create(c.Request().Context(), req.EventID, req.TagID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, req)
}

// GetAll handles GET /api/event-tags.
func (h *EventTagHandler) GetAll(c echo.Context) error {
	links, err := h.eventTags.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, links)
}

// ListByEventID handles GET /api/event-tags/event/:eventId.
func (h *EventTagHandler) ListByEventID(c echo.Context) error {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}
	links, err := h.eventTags.ListByEventID(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, links)
}

// ListByTagID handles GET /api/event-tags/tag/:tagId.
func (h *EventTagHandler) ListByTagID(c echo.Context) error {
	tagID, err := pathID(c, "tagId")
	if err != nil {
		return err
	}
	links, err := h.eventTags.ListByTagID(c.Request().Context(), tagID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, links)
}

// Delete handles DELETE /api/event-tags/:eventId/:tagId.
func (h *EventTagHandler) Delete(c echo.Context) error {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}
	tagID, err := pathID(c, "tagId")
	if err != nil {
		return err
	}
	if err := h.eventTags.Delete(c.Request().Context(), eventID, tagID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
