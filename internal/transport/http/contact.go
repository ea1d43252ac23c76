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

// SubmitContact godoc
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Message"
// @Success 201 {object} models.Contact
// @Failure 400 {object} response.ErrorResponse
// @Router /api/contact [post]
func (r *Routers) SubmitContact(c echo.Context) error {
	const op = "http.routers.SubmitContact"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Contact, authz.Create); err != nil {
		return r.fail(c, log, contactResource, err)
	}

	var req dto.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	contact, err := r.ContactService.Submit(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, contactResource, err)
	}

	return c.JSON(http.StatusCreated, contact)
}

// ListContacts godoc
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Param read query boolean false "Read flag"
// @Param limit query integer false "Max results"
// @Success 200 {array} models.Contact
// @Failure 401 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/contact [get]
func (r *Routers) ListContacts(c echo.Context) error {
	const op = "http.routers.ListContacts"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Contact, authz.List); err != nil {
		return r.fail(c, log, contactResource, err)
	}

	filter := models.ContactFilter{
		Read:  queryBool(c, "read"),
		Limit: queryLimit(c),
	}

	contacts, err := r.ContactService.ListContacts(c.Request().Context(), filter)
	if err != nil {
		return r.fail(c, log, contactResource, err)
	}

	return c.JSON(http.StatusOK, contacts)
}

// GetContact godoc
// @Summary Get a contact message
// @Tags contact
// @Produce json
// @Param id path string true "Contact ID" format(uuid)
// @Success 200 {object} models.Contact
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/contact/{id} [get]
func (r *Routers) GetContact(c echo.Context) error {
	const op = "http.routers.GetContact"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Contact, authz.Get); err != nil {
		return r.fail(c, log, contactResource, err)
	}

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	contact, err := r.ContactService.GetContact(c.Request().Context(), id)
	if err != nil {
		return r.fail(c, log, contactResource, err)
	}

	return c.JSON(http.StatusOK, contact)
}

// MarkContact godoc
// @Summary Mark a contact message read or unread
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID" format(uuid)
// @Param request body dto.MarkContactRequest true "Read flag"
// @Success 200 {object} models.Contact
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/contact/{id} [patch]
func (r *Routers) MarkContact(c echo.Context) error {
	const op = "http.routers.MarkContact"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Contact, authz.Toggle); err != nil {
		return r.fail(c, log, contactResource, err)
	}

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	var req dto.MarkContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return r.fail(c, log, contactResource, err)
	}

	contact, err := r.ContactService.MarkRead(c.Request().Context(), id, *req.Read)
	if err != nil {
		return r.fail(c, log, contactResource, err)
	}

	return c.JSON(http.StatusOK, contact)
}

// DeleteContact godoc
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Param id path string true "Contact ID" format(uuid)
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/contact/{id} [delete]
func (r *Routers) DeleteContact(c echo.Context) error {
	const op = "http.routers.DeleteContact"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Contact, authz.Delete); err != nil {
		return r.fail(c, log, contactResource, err)
	}

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidID)
	}

	if err := r.ContactService.DeleteContact(c.Request().Context(), id); err != nil {
		return r.fail(c, log, contactResource, err)
	}

	return c.JSON(http.StatusOK, response.Message(contactResource.deleted))
}
