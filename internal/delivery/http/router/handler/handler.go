// Package handler contains the echo handlers for the library site.
package handler

import (
	"net/http"
	"strconv"

	"library/internal/delivery/http/response"
	"library/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindFields decodes a JSON object body without mixing in path or query parameters
func bindFields(c echo.Context) (entity.Fields, error) {
	var fields entity.Fields
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// confirmed reads the ?confirm=true flag required by destructive operations
func confirmed(c echo.Context) bool {
	ok, err := strconv.ParseBool(c.QueryParam("confirm"))

	return err == nil && ok
}
