package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"portfolio/internal/admin"
	"portfolio/internal/middleware"
	"portfolio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// AdminDashboard godoc
// @Summary Admin dashboard
// @Description Tab list and per-panel counts. Anonymous callers are redirected to sign-in.
// @Tags admin
// @Produce json
// @Success 200 {object} admin.Overview
// @Failure 302 "Redirect to /sign-in"
// @Failure 401 {object} response.ErrorResponse
// @Router /admin/dashboard [get]
func (r *Routers) AdminDashboard(c echo.Context) error {
	const op = "http.routers.AdminDashboard"
	log := r.log.With(slog.String("op", op))

	overview, err := r.Dashboard.Overview(c.Request().Context(), *middleware.CurrentSession(c))
	if err != nil {
		return r.fail(c, log, noResource, err)
	}

	return c.JSON(http.StatusOK, overview)
}

// AdminPanel godoc
// @Summary Admin panel listing
// @Description One panel filtered by a case-insensitive search term and paginated.
// @Tags admin
// @Produce json
// @Param panel path string true "Panel" Enums(contact, projects, gallery, blog)
// @Param q query string false "Search term"
// @Param page query integer false "Page, 1-based"
// @Success 200 {object} admin.PanelView
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/panels/{panel} [get]
func (r *Routers) AdminPanel(c echo.Context) error {
	const op = "http.routers.AdminPanel"
	log := r.log.With(slog.String("op", op))

	panel, ok := admin.ParsePanel(c.Param("panel"))
	if !ok {
		return c.JSON(http.StatusNotFound, response.Error("Panel not found"))
	}

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}

	view, err := r.Dashboard.Panel(c.Request().Context(), panel, c.QueryParam("q"), page)
	if err != nil {
		if errors.Is(err, admin.ErrUnknownPanel) {
			return c.JSON(http.StatusNotFound, response.Error("Panel not found"))
		}
		return r.fail(c, log, noResource, err)
	}

	return c.JSON(http.StatusOK, view)
}

// AdminLogout godoc
// @Summary Sign out of the dashboard
// @Tags admin
// @Success 302 "Redirect to /"
// @Router /admin/logout [post]
func (r *Routers) AdminLogout(c echo.Context) error {
	const op = "http.routers.AdminLogout"
	log := r.log.With(slog.String("op", op))

	if err := r.clearToken(c); err != nil {
		return r.fail(c, log, noResource, err)
	}

	return c.Redirect(http.StatusFound, "/")
}
