package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateUserRequest struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required,max=50"`
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	RoleID   int64  `json:"role_id" validate:"required,gt=0"`
}

type changeRoleRequest struct {
	RoleID int64 `json:"role_id" validate:"required,gt=0"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

// List handles GET /api/users?page=&size=. Admin only.
func (h *UserHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	users, err := h.users.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Count handles GET /api/users/count. Admin only.
func (h *UserHandler) Count(c echo.Context) error {
	n, err := h.users.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Count: n})
}

// GetByID handles GET /api/users/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByUsername handles GET /api/users/username/:username.
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.users.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByEmail handles GET /api/users/email/:email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.users.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/users/:id. Users may edit themselves; admins
// may edit anyone.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if ctxRoleID(c) != domain.RoleAdmin && ctxUserID(c) != id {
		return echo.NewHTTPError(http.StatusForbidden, "cannot edit another user")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID != 0 && req.ID != id {
		return echo.NewHTTPError(http.StatusBadRequest, "body id does not match route id")
	}
	// Only admins assign roles. A non-admin caller always targets their
	// own record here, so the token's role_id is the record's current role.
	if ctxRoleID(c) != domain.RoleAdmin && req.RoleID != ctxRoleID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "cannot change own role")
	}

	user, err := h.users.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       id,
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangeRole handles PUT /api/users/:id/role. Admin only.
func (h *UserHandler) ChangeRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.users.ChangeRole(c.Request().Context(), id, req.RoleID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/users/:id. Users may delete themselves;
// admins may delete anyone.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if ctxRoleID(c) != domain.RoleAdmin && ctxUserID(c) != id {
		return echo.NewHTTPError(http.StatusForbidden, "cannot delete another user")
	}
	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
