package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"portfolio/internal/domain/models"
	"portfolio/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// CookieName is the gorilla session holding the signed token.
	CookieName = "session"
	// TokenKey is the session value the token is stored under.
	TokenKey = "token"

	contextKey = "session"
)

type TokenParser interface {
	ParseToken(token string) (*models.Session, error)
}

// Session resolves the caller from a Bearer header or the cookie session and
// stores the claims on the context. Requests without a valid token pass
// through anonymously.
func Session(log *slog.Logger, tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" {
				token = cookieToken(c)
			}

			if token != "" {
				s, err := tokens.ParseToken(token)
				if err != nil {
					log.Debug("ignoring invalid session token", slog.String("path", c.Request().URL.Path))
				} else {
					c.Set(contextKey, s)
				}
			}

			return next(c)
		}
	}
}

// CurrentSession returns the claims set by Session, or nil for anonymous callers.
func CurrentSession(c echo.Context) *models.Session {
	s, _ := c.Get(contextKey).(*models.Session)
	return s
}

// AdminPage guards the admin pages. Anonymous callers are sent to the sign-in
// page with a callback to where they were going.
func AdminPage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := CurrentSession(c)
		if s == nil {
			target := "/sign-in?callbackUrl=" + url.QueryEscape(c.Request().URL.RequestURI())
			return c.Redirect(http.StatusFound, target)
		}

		if !s.IsAdmin() {
			return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
		}

		return next(c)
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func cookieToken(c echo.Context) string {
	sess, err := session.Get(CookieName, c)
	if err != nil {
		return ""
	}

	token, _ := sess.Values[TokenKey].(string)
	return token
}
