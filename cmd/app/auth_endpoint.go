package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pynappo/Clark/internal/middleware"
	"github.com/pynappo/Clark/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authenticateHandler validates credentials and returns a session token.
func authenticateHandler(authSvc *services.AuthService, sessions *middleware.SessionCodec) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		user, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return jsonError(c, err)
		}

		token, err := sessions.Generate(user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create token"})
		}

		return c.JSON(http.StatusOK, echo.Map{"token": token})
	}
}

// registerHandler starts the two-phase signup: nothing is persisted,
// the caller just gets a verification email.
func registerHandler(regSvc *services.RegistrationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(services.SignupRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		if err := regSvc.Signup(c.Request().Context(), *req); err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"message": "registration started, please check your email",
		})
	}
}

// verifyHandler is the emailed link target; following it creates the
// account.
func verifyHandler(regSvc *services.RegistrationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.QueryParam("token")
		if token == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
		}

		if err := regSvc.Verify(c.Request().Context(), token); err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, regSvc *services.RegistrationService, sessions *middleware.SessionCodec) {
	g.POST("/authenticate", authenticateHandler(authSvc, sessions))
	g.POST("/register", registerHandler(regSvc))
	g.GET("/register/verify", verifyHandler(regSvc))
}
