package http

import (
	"log/slog"
	"net/http"
	"strings"

	"portfolio/internal/authz"
	"portfolio/internal/middleware"
	"portfolio/internal/services/auth"
	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/request"
	"portfolio/internal/transport/http/dto/response"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SignUp godoc
// @Summary Register a user
// @Description Creates an account with role user. No session is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Account"
// @Success 201 {object} response.SignUpResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/sign-up [post]
func (r *Routers) SignUp(c echo.Context) error {
	const op = "http.routers.SignUp"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Users, authz.Create); err != nil {
		return r.fail(c, log, userResource, err)
	}

	var req dto.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return r.fail(c, log, userResource, err)
	}

	userID, err := r.AuthService.SignUp(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return r.fail(c, log, userResource, err)
	}

	log.Info("user registered successfully", slog.String("user_id", userID.String()))

	return c.JSON(http.StatusCreated, response.SignUpResponse{
		Success: true,
		Message: "User registered successfully.",
	})
}

// SignIn godoc
// @Summary Sign in
// @Description Accepts a username or an email. The token is stored in the cookie session and returned in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.SignInRequest true "Credentials"
// @Success 200 {object} models.SignInResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse "Invalid credentials, missing ones included"
// @Failure 429 {object} response.ErrorResponse
// @Router /api/auth/sign-in [post]
func (r *Routers) SignIn(c echo.Context) error {
	const op = "http.routers.SignIn"
	log := r.log.With(slog.String("op", op))

	var req request.SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		log.Info("sign-in without credentials")
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	result, err := r.AuthService.SignIn(c.Request().Context(), req.Identifier, req.Password, c.RealIP())
	if err != nil {
		return r.fail(c, log, noResource, err)
	}

	if err := r.saveToken(c, result.Token); err != nil {
		return r.fail(c, log, noResource, err)
	}

	if safeCallback(req.CallbackURL) {
		result.Redirect = req.CallbackURL
	} else {
		result.Redirect = auth.DefaultRedirect
	}

	return c.JSON(http.StatusOK, result)
}

// SignOut godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /api/auth/sign-out [post]
func (r *Routers) SignOut(c echo.Context) error {
	const op = "http.routers.SignOut"
	log := r.log.With(slog.String("op", op))

	if err := r.clearToken(c); err != nil {
		return r.fail(c, log, noResource, err)
	}

	return c.JSON(http.StatusOK, response.Message("Signed out"))
}

// CurrentSession godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} response.SessionResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/auth/session [get]
func (r *Routers) CurrentSession(c echo.Context) error {
	s := middleware.CurrentSession(c)
	if s == nil {
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	}

	return c.JSON(http.StatusOK, response.SessionResponse{User: *s})
}

// GetUser godoc
// @Summary Get a user
// @Description Signed-in users may read their own account; admins may read any.
// @Tags users
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Success 200 {object} models.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/users/{id} [get]
func (r *Routers) GetUser(c echo.Context) error {
	const op = "http.routers.GetUser"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Users, authz.Get); err != nil {
		return r.fail(c, log, userResource, err)
	}

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	s := middleware.CurrentSession(c)
	if !s.IsAdmin() && s.UserID != id {
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	}

	user, err := r.UserService.GetUserById(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, userResource, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (r *Routers) saveToken(c echo.Context, token string) error {
	sess, err := session.Get(middleware.CookieName, c)
	if err != nil {
		return err
	}

	sess.Options = r.cookieOptions(int(r.sessionTTL.Seconds()))
	sess.Values[middleware.TokenKey] = token

	return sess.Save(c.Request(), c.Response())
}

func (r *Routers) clearToken(c echo.Context) error {
	sess, err := session.Get(middleware.CookieName, c)
	if err != nil {
		return err
	}

	sess.Options = r.cookieOptions(-1)
	delete(sess.Values, middleware.TokenKey)

	return sess.Save(c.Request(), c.Response())
}

func (r *Routers) cookieOptions(maxAge int) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// safeCallback accepts only same-site relative paths.
func safeCallback(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") && !strings.HasPrefix(u, "/\\")
}

