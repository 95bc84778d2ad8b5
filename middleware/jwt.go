package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"estatecrm/utils"
)

const authCookieName = "auth_token"

// JWTAuth accepts the token from the auth cookie or a bearer header, cookie
// taking precedence. Every verification failure answers the same 401; the
// reason is never surfaced to the client.
func JWTAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := ""

			if cookie, err := c.Cookie(authCookieName); err == nil && cookie.Value != "" {
				tokenString = cookie.Value
			} else if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenString = parts[1]
				}
			}

			if tokenString == "" {
				return utils.NewUnauthorized()
			}

			claims, err := utils.ValidateJWT(tokenString)
			if err != nil {
				return utils.NewUnauthorized()
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}

// RequireRoles is a static allow-list check; it assumes JWTAuth ran first.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("user_role").(string)
			if !ok {
				return utils.NewUnauthorized()
			}
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return utils.NewForbidden()
		}
	}
}
