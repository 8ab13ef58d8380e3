package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers

	"github.com/plugueplus/plugueplus-api/internal/response"
)

// ClaimsKey is the fixed context key under which the decoded token
// claims (sub, email, user_type, iat, exp) are stored for handlers.
const ClaimsKey = "user"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's claims into the request context.  The provided
// secret must match the one used when issuing tokens.  Verification is
// stateless: every request is checked independently and no session state
// exists server-side.
//
// Failure modes follow the wire contract: a missing or non-Bearer
// Authorization header is a 401 before any handler logic runs; an empty
// secret is a configuration error and fails closed with a 500; a bad
// signature, expired or malformed token is a 401 with the underlying
// reason surfaced under errors.token.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return response.Error(c, http.StatusUnauthorized, "Missing bearer token.", nil)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			if secret == "" {
				return response.Error(c, http.StatusInternalServerError, "JWT secret is not configured.", nil)
			}

			// Parse the token, accepting only the HMAC family the issuer
			// uses.  The callback supplies the signing key and rejects any
			// other algorithm outright.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				reason := "token is invalid"
				if err != nil {
					reason = err.Error()
				}
				return response.Error(c, http.StatusUnauthorized, "Invalid or expired token.",
					map[string][]string{"token": {reason}})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return response.Error(c, http.StatusUnauthorized, "Invalid or expired token.",
					map[string][]string{"token": {"unexpected claims format"}})
			}

			// Store the decoded claims under the fixed key so handlers can
			// read the authenticated identity.
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
