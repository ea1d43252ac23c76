package http

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio/internal/authz"
	"portfolio/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// Upload godoc
// @Summary Upload an image
// @Description Stores the file under the directory of its type and returns the public URL. The content is not inspected.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Param type formData string false "Category" Enums(project, blog, gallery)
// @Success 200 {object} models.Upload
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/upload [post]
func (r *Routers) Upload(c echo.Context) error {
	const op = "http.routers.Upload"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Upload, authz.Create); err != nil {
		return r.fail(c, log, noResource, err)
	}

	input := dto.UploadInput{Type: c.FormValue("type")}

	file, err := c.FormFile("file")
	switch {
	case err == nil:
		input.File = file
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		log.Warn("no file in request")
	default:
		log.Warn("failed to read multipart form", slog.String("error", err.Error()))
	}

	upload, err := r.MediaService.Upload(c.Request().Context(), input)
	if err != nil {
		return r.fail(c, log, noResource, err)
	}

	return c.JSON(http.StatusOK, upload)
}
