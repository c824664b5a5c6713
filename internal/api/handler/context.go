package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer route parameter. A non-numeric or
// non-positive value is a client error, rejected before any service call.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// ctxUserID returns the authenticated user's id injected by the Auth
// middleware. Zero means the middleware did not run.
func ctxUserID(c echo.Context) int64 {
	id, _ := c.Get("user_id").(int64)
	return id
}

// ctxRoleID returns the authenticated user's role id.
func ctxRoleID(c echo.Context) int64 {
	id, _ := c.Get("role_id").(int64)
	return id
}

// pageParams reads page/size query parameters, defaulting to the first
// page of 20. Out-of-range values are left for the service to reject.
func pageParams(c echo.Context) (page, size int) {
	page, size = 1, 20
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			size = n
		}
	}
	return page, size
}
