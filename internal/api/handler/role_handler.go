package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhive/booking-api/internal/core/ports"
)

type RoleHandler struct {
	roles ports.RoleService
}

func NewRoleHandler(roles ports.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

type roleRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=20"`
}

// Create handles POST /api/roles.
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roles.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, role)
}

// GetAll handles GET /api/roles.
func (h *RoleHandler) GetAll(c echo.Context) error {
	roles, err := h.roles.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// GetByID handles GET /api/roles/:id.
func (h *RoleHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	role, err := h.roles.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// GetByName handles GET /api/roles/name/:name.
func (h *RoleHandler) GetByName(c echo.Context) error {
	role, err := h.roles.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Update handles PUT /api/roles/:id. A body id that disagrees with the
// route id is rejected before touching the store.
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID != 0 && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "body id does not match route id")
	}

	role, err := h.roles.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Delete handles DELETE /api/roles/:id.
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.roles.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
