package main

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pynappo/Clark/internal/middleware"
	"github.com/pynappo/Clark/internal/model"
	"github.com/pynappo/Clark/internal/services"
)

func registerDessertRoutes(g *echo.Group, ds *services.DessertService, gate *middleware.AccessGate) {
	// PUBLIC — the dessert board is visible without an account
	g.GET("/desserts", func(c echo.Context) error {
		list, err := ds.List(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(200, list)
	})

	// OFFICERS — write operations
	admin := g.Group("/desserts", gate.Require(model.LevelOfficer))

	admin.POST("", func(c echo.Context) error {
		d := new(model.Dessert)
		if err := c.Bind(d); err != nil {
			return c.JSON(400, echo.Map{"error": "invalid request"})
		}
		id, err := ds.Create(c.Request().Context(), d)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(201, echo.Map{"dessertid": id})
	})

	admin.POST("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(400, echo.Map{"error": "invalid id"})
		}
		d := new(model.Dessert)
		if err := c.Bind(d); err != nil {
			return c.JSON(400, echo.Map{"error": "invalid request"})
		}
		d.DessertID = id
		if err := ds.Update(c.Request().Context(), d); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(200, echo.Map{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(400, echo.Map{"error": "invalid id"})
		}
		if err := ds.Delete(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(200, echo.Map{"message": "deleted"})
	})
}
