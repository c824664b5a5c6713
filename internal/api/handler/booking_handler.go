package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhive/booking-api/internal/api/metrics"
	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type bookingRequest struct {
	EventID int64 `json:"event_id" validate:"required,gt=0"`
}

// Create handles POST /api/bookings. The booking always belongs to the
// authenticated user; the body only names the event.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.Create(c.Request().Context(), ctxUserID(c), req.EventID)
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /api/bookings?page=&size=. Admin only.
func (h *BookingHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	bookings, err := h.bookings.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Count handles GET /api/bookings/count. Admin only.
func (h *BookingHandler) Count(c echo.Context) error {
	n, err := h.bookings.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// GetByID handles GET /api/bookings/:id. Non-admins only see their own.
func (h *BookingHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if ctxRoleID(c) != domain.RoleAdmin && booking.UserID != ctxUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not your booking")
	}
	return c.JSON(http.StatusOK, booking)
}

// ListByUserID handles GET /api/bookings/user/:userId. Non-admins may
// only list their own bookings.
func (h *BookingHandler) ListByUserID(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	if ctxRoleID(c) != domain.RoleAdmin && userID != ctxUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "cannot list another user's bookings")
	}
	bookings, err := h.bookings.ListByUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListByEventID handles GET /api/bookings/event/:eventId. Admin only.
func (h *BookingHandler) ListByEventID(c echo.Context) error {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		return err
	}
	bookings, err := h.bookings.ListByEventID(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Delete handles DELETE /api/bookings/:id. Non-admins may only cancel
// their own bookings.
func (h *BookingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if ctxRoleID(c) != domain.RoleAdmin && booking.UserID != ctxUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "not your booking")
	}
	if err := h.bookings.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
