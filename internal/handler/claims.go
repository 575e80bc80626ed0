package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthUser is the authenticated caller, as recovered from the JWT
// middleware. The middleware parses tokens with jwt/v5 map claims, so
// extraction happens here rather than reusing the signing-side type.
type AuthUser struct {
	UserID uint
	Name   string
}

// currentClaims extracts the authenticated user from the context set by
// the JWT middleware.
func currentClaims(c echo.Context) (*AuthUser, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	name, _ := claims["name"].(string)

	return &AuthUser{UserID: uint(rawID), Name: name}, nil
}
