package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pynappo/Clark/internal/model"
)

const claimsContextKey = "auth_claims"

// AccessGate is the authorization boundary in front of every protected
// route: bearer extraction, token validation, then a single ordinal
// tier comparison. Finer checks (self-vs-other) stay in the services.
type AccessGate struct {
	Codec *SessionCodec
}

func NewAccessGate(codec *SessionCodec) *AccessGate {
	return &AccessGate{Codec: codec}
}

// Require returns an Echo middleware enforcing the minimum tier.
// A request with no credential at all is 403; a credential that fails
// to decode is 401; a valid credential below the tier is 403.
func (g *AccessGate) Require(min model.AccessLevel) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "missing authorization header"})
			}
			claims, err := g.Codec.Parse(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}
			if !claims.AccessLevel.AtLeast(min) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "insufficient privileges"})
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return "", false
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// GetClaims extracts the decoded session claims set by Require.
func GetClaims(c echo.Context) *Claims {
	v := c.Get(claimsContextKey)
	if v == nil {
		return nil
	}
	if cl, ok := v.(*Claims); ok {
		return cl
	}
	return nil
}
