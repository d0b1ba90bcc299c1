package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pynappo/Clark/external/speaker"
	"github.com/pynappo/Clark/internal/middleware"
	"github.com/pynappo/Clark/internal/model"
)

type streamRequest struct {
	URL string `json:"url"`
}

func registerSpeakerRoutes(g *echo.Group, client *speaker.Client, gate *middleware.AccessGate) {
	group := g.Group("/speaker", gate.Require(model.LevelMember))

	disabled := func(c echo.Context) (bool, error) {
		if client.Enabled() {
			return false, nil
		}
		return true, c.JSON(http.StatusOK, echo.Map{"disabled": true})
	}

	action := func(do func(context.Context) error) echo.HandlerFunc {
		return func(c echo.Context) error {
			if off, err := disabled(c); off {
				return err
			}
			if err := do(c.Request().Context()); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "speaker request failed"})
			}
			return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
		}
	}

	group.GET("/queued", func(c echo.Context) error {
		if off, err := disabled(c); off {
			return err
		}
		queue, err := client.Queued(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to get queued songs"})
		}
		return c.JSONBlob(http.StatusOK, queue)
	})

	group.POST("/stream", func(c echo.Context) error {
		if off, err := disabled(c); off {
			return err
		}
		req := new(streamRequest)
		if err := c.Bind(req); err != nil || req.URL == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "url is required"})
		}
		if err := client.Stream(c.Request().Context(), req.URL); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to queue stream"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "queued"})
	})

	group.POST("/pause", action(client.Pause))
	group.POST("/resume", action(client.Resume))
	group.POST("/skip", action(client.Skip))
}
