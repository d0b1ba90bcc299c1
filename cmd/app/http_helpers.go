package main

import (
	"github.com/labstack/echo/v4"

	"github.com/pynappo/Clark/internal/apperrors"
)

// jsonError maps a service error onto its fixed status and stable kind.
func jsonError(c echo.Context, err error) error {
	e := apperrors.From(err)
	return c.JSON(e.Status, echo.Map{"error": e.Error(), "kind": e.Kind})
}
