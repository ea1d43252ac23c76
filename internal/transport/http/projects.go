package http

import (
	"log/slog"
	"net/http"

	"portfolio/internal/authz"
	"portfolio/internal/domain/models"
	"portfolio/internal/transport/http/dto"
	"portfolio/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param featured query boolean false "Featured"
// @Param limit query integer false "Max results"
// @Success 200 {array} models.Project
// @Failure 500 {object} response.ErrorResponse
// @Router /api/projects [get]
func (r *Routers) ListProjects(c echo.Context) error {
	const op = "http.routers.ListProjects"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Projects, authz.List); err != nil {
		return r.fail(c, log, projectResource, err)
	}

	filter := models.ProjectFilter{
		Featured: queryBool(c, "featured"),
		Limit:    queryLimit(c),
	}

	projects, err := r.ProjectService.ListProjects(c.Request().Context(), filter)
	if err != nil {
		return r.fail(c, log, projectResource, err)
	}

	return c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} models.Project
// @Failure 404 {object} response.ErrorResponse
// @Router /api/projects/{slug} [get]
func (r *Routers) GetProject(c echo.Context) error {
	const op = "http.routers.GetProject"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Projects, authz.Get); err != nil {
		return r.fail(c, log, projectResource, err)
	}

	project, err := r.ProjectService.GetProject(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return r.fail(c, log, projectResource, err)
	}

	return c.JSON(http.StatusOK, project)
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/projects [post]
func (r *Routers) CreateProject(c echo.Context) error {
	const op = "http.routers.CreateProject"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Projects, authz.Create); err != nil {
		return r.fail(c, log, projectResource, err)
	}

	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	project, err := r.ProjectService.CreateProject(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, projectResource, err)
	}

	return c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary Update a project
// @Description Fields present in the body replace the stored ones. The slug cannot change.
// @Tags projects
// @Accept json
// @Produce json
// @Param slug path string true "Project slug"
// @Param request body dto.UpdateProjectRequest true "Changed fields"
// @Success 200 {object} models.Project
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/projects/{slug} [put]
func (r *Routers) UpdateProject(c echo.Context) error {
	const op = "http.routers.UpdateProject"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Projects, authz.Update); err != nil {
		return r.fail(c, log, projectResource, err)
	}

	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	project, err := r.ProjectService.UpdateProject(c.Request().Context(), c.Param("slug"), req)
	if err != nil {
		return r.fail(c, log, projectResource, err)
	}

	return c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/projects/{slug} [delete]
func (r *Routers) DeleteProject(c echo.Context) error {
	const op = "http.routers.DeleteProject"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Projects, authz.Delete); err != nil {
		return r.fail(c, log, projectResource, err)
	}

	if err := r.ProjectService.DeleteProject(c.Request().Context(), c.Param("slug")); err != nil {
		return r.fail(c, log, projectResource, err)
	}

	return c.JSON(http.StatusOK, response.Message(projectResource.deleted))
}
