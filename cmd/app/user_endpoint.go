package main

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pynappo/Clark/internal/middleware"
	"github.com/pynappo/Clark/internal/model"
	"github.com/pynappo/Clark/internal/services"
)

type editUserRequest struct {
	Updates map[string]any `json:"updates"`
}

func actorFrom(c echo.Context) services.Actor {
	claims := middleware.GetClaims(c)
	return services.Actor{ID: claims.UserID, AccessLevel: claims.AccessLevel}
}

func registerUserRoutes(g *echo.Group, us *services.UserService, gate *middleware.AccessGate) {
	// Any valid session passes the gate; self-vs-other scoping happens
	// in the service after the claims are decoded.
	user := g.Group("/user", gate.Require(model.LevelNonMember))

	user.POST("/:id/edit", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		req := new(editUserRequest)
		if err := c.Bind(req); err != nil || req.Updates == nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := us.Edit(c.Request().Context(), actorFrom(c), id, req.Updates); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
	})

	user.GET("/:id", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		u, err := us.Get(c.Request().Context(), actorFrom(c), id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, u)
	})

	user.DELETE("/:id", func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := us.Delete(c.Request().Context(), actorFrom(c), id); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
	})

	// Listing and counting the whole membership is officer business.
	officers := g.Group("/users", gate.Require(model.LevelOfficer))

	officers.GET("", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		list, err := us.List(c.Request().Context(),
			c.QueryParam("search"), page,
			c.QueryParam("sort"), c.QueryParam("order"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	officers.GET("/count", func(c echo.Context) error {
		n, err := us.Count(c.Request().Context(), c.QueryParam("search"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"count": n})
	})
}
