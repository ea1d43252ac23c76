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

// ListGalleryItems godoc
// @Summary List gallery items
// @Tags gallery
// @Produce json
// @Param category query string false "Category"
// @Param featured query boolean false "Featured"
// @Param limit query integer false "Max results"
// @Success 200 {array} models.GalleryItem
// @Failure 500 {object} response.ErrorResponse
// @Router /api/gallery [get]
func (r *Routers) ListGalleryItems(c echo.Context) error {
	const op = "http.routers.ListGalleryItems"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Gallery, authz.List); err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	filter := models.GalleryFilter{
		Category: c.QueryParam("category"),
		Featured: queryBool(c, "featured"),
		Limit:    queryLimit(c),
	}

	items, err := r.GalleryService.ListGalleryItems(c.Request().Context(), filter)
	if err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	return c.JSON(http.StatusOK, items)
}

// GetGalleryItem godoc
// @Summary Get a gallery item
// @Tags gallery
// @Produce json
// @Param id path string true "Item ID" format(uuid)
// @Success 200 {object} models.GalleryItem
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/gallery/{id} [get]
func (r *Routers) GetGalleryItem(c echo.Context) error {
	const op = "http.routers.GetGalleryItem"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Gallery, authz.Get); err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	item, err := r.GalleryService.GetGalleryItem(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	return c.JSON(http.StatusOK, item)
}

// CreateGalleryItem godoc
// @Summary Create a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryItemRequest true "Item"
// @Success 201 {object} models.GalleryItem
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/gallery [post]
func (r *Routers) CreateGalleryItem(c echo.Context) error {
	const op = "http.routers.CreateGalleryItem"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Gallery, authz.Create); err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	var req dto.CreateGalleryItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	item, err := r.GalleryService.CreateGalleryItem(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// UpdateGalleryItem godoc
// @Summary Update a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path string true "Item ID" format(uuid)
// @Param request body dto.UpdateGalleryItemRequest true "Changed fields"
// @Success 200 {object} models.GalleryItem
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/gallery/{id} [put]
func (r *Routers) UpdateGalleryItem(c echo.Context) error {
	const op = "http.routers.UpdateGalleryItem"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Gallery, authz.Update); err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.UpdateGalleryItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	item, err := r.GalleryService.UpdateGalleryItem(c.Request().Context(), id, req)
	if err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	return c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem godoc
// @Summary Delete a gallery item
// @Tags gallery
// @Produce json
// @Param id path string true "Item ID" format(uuid)
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/gallery/{id} [delete]
func (r *Routers) DeleteGalleryItem(c echo.Context) error {
	const op = "http.routers.DeleteGalleryItem"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Gallery, authz.Delete); err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.GalleryService.DeleteGalleryItem(c.Request().Context(), id); err != nil {
		return r.fail(c, log, galleryResource, err)
	}

	return c.JSON(http.StatusOK, response.Message(galleryResource.deleted))
}
