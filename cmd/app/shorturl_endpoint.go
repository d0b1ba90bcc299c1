package main

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pynappo/Clark/external/cleezy"
	"github.com/pynappo/Clark/internal/middleware"
	"github.com/pynappo/Clark/internal/model"
)

type createURLRequest struct {
	URL        string `json:"url"`
	Alias      string `json:"alias"`
	ExpireDate string `json:"expireDate"`
}

// registerShortURLRoutes proxies to the cleezy shortener service. When
// the service is not configured every route answers {disabled:true}.
func registerShortURLRoutes(g *echo.Group, client *cleezy.Client, gate *middleware.AccessGate) {
	group := g.Group("/shorturl", gate.Require(model.LevelOfficer))

	disabled := func(c echo.Context) (bool, error) {
		if client.Enabled() {
			return false, nil
		}
		return true, c.JSON(http.StatusOK, echo.Map{"disabled": true})
	}

	group.GET("/list", func(c echo.Context) error {
		if off, err := disabled(c); off {
			return err
		}
		page, _ := strconv.Atoi(c.QueryParam("page"))
		sortBy := c.QueryParam("sort")
		if sortBy == "" {
			sortBy = "created_at"
		}
		order := c.QueryParam("order")
		if order == "" {
			order = "DESC"
		}
		result, err := client.List(c.Request().Context(), page, c.QueryParam("search"), sortBy, order)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list URLs"})
		}
		return c.JSON(http.StatusOK, result)
	})

	group.POST("", func(c echo.Context) error {
		if off, err := disabled(c); off {
			return err
		}
		req := new(createURLRequest)
		if err := c.Bind(req); err != nil || req.URL == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "url is required"})
		}
		created, err := client.Create(c.Request().Context(), req.URL, req.Alias, req.ExpireDate)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create URL"})
		}
		return c.JSON(http.StatusOK, created)
	})

	group.DELETE("/:alias", func(c echo.Context) error {
		if off, err := disabled(c); off {
			return err
		}
		if err := client.Delete(c.Request().Context(), c.Param("alias")); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete URL"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
	})
}
