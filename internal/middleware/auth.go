package middleware

import (
	"errors"
	"net/http"
	"strings"

	"nativeblog/internal/domain/models"
	"nativeblog/internal/lib/jwt"
	"nativeblog/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	principalKey = "principal"

	SessionName     = "session"
	SessionAdminID  = "admin_id"
	SessionUsername = "admin_username"
)

// Principal returns the caller set by one of the auth middlewares.
func Principal(c echo.Context) (models.Principal, bool) {
	p, ok := c.Get(principalKey).(models.Principal)
	return p, ok
}

func setPrincipal(c echo.Context, p models.Principal) {
	c.Set(principalKey, p)
}

// JWTAuth requires a valid reader access token in the Authorization header.
// Admin tokens get 403: reader and admin ids are separate keyspaces.
func JWTAuth(secret string) echo.MiddlewareFunc {
	parse := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := jwt.Parse(auth, jwt.KindAccess, secret)
			if err != nil {
				return nil, err
			}
			setPrincipal(c, claims.Principal())
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
			}
			return c.JSON(http.StatusUnauthorized, response.ErrFailedToAuthToken)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return parse(func(c echo.Context) error {
			p, ok := Principal(c)
			if !ok || p.Role != models.RoleUser {
				return c.JSON(http.StatusForbidden, response.ErrUserRequired)
			}
			return next(c)
		})
	}
}

// AdminOnly accepts an admin access token or an admin cookie session.
func AdminOnly(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
				token, found := strings.CutPrefix(header, "Bearer ")
				if !found || token == "" {
					return c.JSON(http.StatusUnauthorized, response.ErrFailedToAuthToken)
				}

				claims, err := jwt.Parse(token, jwt.KindAccess, secret)
				if err != nil {
					return c.JSON(http.StatusUnauthorized, response.ErrFailedToAuthToken)
				}
				if claims.Role != models.RoleAdmin {
					return c.JSON(http.StatusForbidden, response.ErrAdminRequired)
				}

				setPrincipal(c, claims.Principal())
				return next(c)
			}

			sess, err := session.Get(SessionName, c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
			}

			adminID, ok := sess.Values[SessionAdminID].(int64)
			if !ok || adminID == 0 {
				return c.JSON(http.StatusUnauthorized, response.ErrNoTokenProvided)
			}
			username, _ := sess.Values[SessionUsername].(string)

			setPrincipal(c, models.Principal{ID: adminID, Username: username, Role: models.RoleAdmin})
			return next(c)
		}
	}
}
