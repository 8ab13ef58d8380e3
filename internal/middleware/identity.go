package middleware

// identity.go defines helper functions shared across middleware files and
// handlers.  CurrentClaims pulls the decoded JWT claims stored by JWTAuth
// from the Echo context; userID renders the subject claim for cache and
// rate-limit key building.  When no token is present "guest" is returned.

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CurrentClaims returns the decoded token claims for the request, or nil
// when the request did not pass through JWTAuth.
func CurrentClaims(c echo.Context) jwt.MapClaims {
	if cl, ok := c.Get(ClaimsKey).(jwt.MapClaims); ok {
		return cl
	}
	return nil
}

// userID extracts a user identifier from the JWT claims stored in
// context.  It returns "guest" when no user is authenticated.
func userID(c echo.Context) string {
	cl := CurrentClaims(c)
	if cl == nil {
		return "guest"
	}
	if v, ok := cl["sub"]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return "guest"
}
