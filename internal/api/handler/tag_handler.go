package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhive/booking-api/internal/core/ports"
)

type TagHandler struct {
	tags ports.TagService
}

func NewTagHandler(tags ports.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

type tagRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=30"`
}

// Create handles POST /api/tags.
func (h *TagHandler) Create(c echo.Context) error {
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tag, err := h.tags.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tag)
}

// GetAll handles GET /api/tags.
func (h *TagHandler) GetAll(c echo.Context) error {
	tags, err := h.tags.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tags)
}

// GetByID handles GET /api/tags/:id.
func (h *TagHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tag, err := h.tags.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// GetByName handles GET /api/tags/name/:name.
func (h *TagHandler) GetByName(c echo.Context) error {
	tag, err := h.tags.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// Update handles PUT /api/tags/:id.
func (h *TagHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req tagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID != 0 && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "body id does not match route id")
	}

	tag, err := h.tags.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tag)
}

// Delete handles DELETE /api/tags/:id.
func (h *TagHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.tags.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
