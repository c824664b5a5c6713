package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type eventRequest struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Venue       string    `json:"venue"`
	Date        time.Time `json:"date" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
}

// Create handles POST /api/events. The creator is always the
// authenticated user, never a body field.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.events.Create(c.Request().Context(), domain.Event{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Venue:       req.Venue,
		Date:        req.Date,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		CreatedBy:   ctxUserID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// List handles GET /api/events?page=&size=.
func (h *EventHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	events, err := h.events.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Count handles GET /api/events/count.
func (h *EventHandler) Count(c echo.Context) error {
	n, err := h.events.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// GetByID handles GET /api/events/:id.
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.events.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// ListByActive handles GET /api/events/active/:active.
func (h *EventHandler) ListByActive(c echo.Context) error {
	active, err := strconv.ParseBool(c.Param("active"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "active must be true or false")
	}
	events, err := h.events.ListByActive(c.Request().Context(), active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListByCreator handles GET /api/events/creator/:userId.
func (h *EventHandler) ListByCreator(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	events, err := h.events.ListByCreator(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// SearchByName handles GET /api/events/name/:name.
func (h *EventHandler) SearchByName(c echo.Context) error {
	events, err := h.events.SearchByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// SearchByDescription handles GET /api/events/description/:term.
func (h *EventHandler) SearchByDescription(c echo.Context) error {
	events, err := h.events.SearchByDescription(c.Request().Context(), c.Param("term"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// SearchByCategory handles GET /api/events/category/:category.
func (h *EventHandler) SearchByCategory(c echo.Context) error {
	events, err := h.events.SearchByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// SearchByVenue handles GET /api/events/venue/:venue.
func (h *EventHandler) SearchByVenue(c echo.Context) error {
	events, err := h.events.SearchByVenue(c.Request().Context(), c.Param("venue"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListByDate handles GET /api/events/date/:date with date as YYYY-MM-DD.
func (h *EventHandler) ListByDate(c echo.Context) error {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	events, err := h.events.ListByDate(c.Request().Context(), date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// ListByPrice handles GET /api/events/price/:price.
func (h *EventHandler) ListByPrice(c echo.Context) error {
	price, err := strconv.ParseFloat(c.Param("price"), 64)
	if err != nil || price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be a positive number")
	}
	events, err := h.events.ListByPrice(c.Request().Context(), price)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Update handles PUT /api/events/:id. Only the creator or an admin may
// edit an event.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID != 0 && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "body id does not match route id")
	}

	existing, err := h.events.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if ctxRoleID(c) != domain.RoleAdmin && existing.CreatedBy != ctxUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "only the creator can edit this event")
	}

	updated := domain.Event{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Venue:       req.Venue,
		Date:        req.Date,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		CreatedBy:   existing.CreatedBy,
	}
	if err := h.events.Update(c.Request().Context(), updated); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/events/:id. Only the creator or an admin
// may delete an event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	existing, err := h.events.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if ctxRoleID(c) != domain.RoleAdmin && existing.CreatedBy != ctxUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "only the creator can delete this event")
	}
	if err := h.events.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
