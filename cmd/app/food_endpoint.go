package main

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pynappo/Clark/internal/middleware"
	"github.com/pynappo/Clark/internal/model"
	"github.com/pynappo/Clark/internal/services"
)

func registerFoodRoutes(g *echo.Group, fs *services.FoodService, gate *middleware.AccessGate) {
	// MEMBERS — browse the inventory
	food := g.Group("/food", gate.Require(model.LevelMember))

	food.GET("", func(c echo.Context) error {
		list, err := fs.List(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(200, list)
	})

	// OFFICERS — write operations
	admin := g.Group("/food", gate.Require(model.LevelOfficer))

	admin.POST("", func(c echo.Context) error {
		item := new(model.FoodItem)
		if err := c.Bind(item); err != nil {
			return c.JSON(400, echo.Map{"error": "invalid request"})
		}
		id, err := fs.Create(c.Request().Context(), item)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(201, echo.Map{"foodid": id})
	})

	admin.POST("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(400, echo.Map{"error": "invalid id"})
		}
		item := new(model.FoodItem)
		if err := c.Bind(item); err != nil {
			return c.JSON(400, echo.Map{"error": "invalid request"})
		}
		item.FoodID = id
		if err := fs.Update(c.Request().Context(), item); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(200, echo.Map{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(400, echo.Map{"error": "invalid id"})
		}
		if err := fs.Delete(c.Request().Context(), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(200, echo.Map{"message": "deleted"})
	})
}
