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

// ListBlogPosts godoc
// @Summary List blog posts
// @Description Newest first. Drafts are only listed for admins; the published filter is ignored otherwise.
// @Tags blog
// @Produce json
// @Param category query string false "Category"
// @Param tag query string false "Tag"
// @Param published query boolean false "Published (admin only)"
// @Param featured query boolean false "Featured"
// @Param limit query integer false "Max results"
// @Success 200 {array} models.BlogPost
// @Failure 500 {object} response.ErrorResponse
// @Router /api/blog [get]
func (r *Routers) ListBlogPosts(c echo.Context) error {
	const op = "http.routers.ListBlogPosts"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Blog, authz.List); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	filter := models.BlogPostFilter{
		Category:  c.QueryParam("category"),
		Tag:       c.QueryParam("tag"),
		Published: queryBool(c, "published"),
		Featured:  queryBool(c, "featured"),
		Limit:     queryLimit(c),
	}

	posts, err := r.BlogService.ListPosts(c.Request().Context(), filter, isAdmin(c))
	if err != nil {
		return r.fail(c, log, blogResource, err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetBlogPost godoc
// @Summary Get a blog post
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} response.ErrorResponse
// @Router /api/blog/{slug} [get]
func (r *Routers) GetBlogPost(c echo.Context) error {
	const op = "http.routers.GetBlogPost"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Blog, authz.Get); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	post, err := r.BlogService.GetPost(c.Request().Context(), c.Param("slug"), isAdmin(c))
	if err != nil {
		return r.fail(c, log, blogResource, err)
	}

	return c.JSON(http.StatusOK, post)
}

// CreateBlogPost godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogPostRequest true "Post"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/blog [post]
func (r *Routers) CreateBlogPost(c echo.Context) error {
	const op = "http.routers.CreateBlogPost"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Blog, authz.Create); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	var req dto.CreateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	post, err := r.BlogService.CreatePost(c.Request().Context(), req)
	if err != nil {
		return r.fail(c, log, blogResource, err)
	}

	return c.JSON(http.StatusCreated, post)
}

// UpdateBlogPost godoc
// @Summary Update a blog post
// @Description Fields present in the body replace the stored ones. The slug cannot change.
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param request body dto.UpdateBlogPostRequest true "Changed fields"
// @Success 200 {object} models.BlogPost
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/blog/{slug} [put]
func (r *Routers) UpdateBlogPost(c echo.Context) error {
	const op = "http.routers.UpdateBlogPost"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Blog, authz.Update); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	var req dto.UpdateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	post, err := r.BlogService.UpdatePost(c.Request().Context(), c.Param("slug"), req)
	if err != nil {
		return r.fail(c, log, blogResource, err)
	}

	return c.JSON(http.StatusOK, post)
}

// PublishBlogPost godoc
// @Summary Publish or unpublish a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug"
// @Param request body dto.PublishBlogPostRequest true "Published flag"
// @Success 200 {object} models.BlogPost
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/blog/{slug} [patch]
func (r *Routers) PublishBlogPost(c echo.Context) error {
	const op = "http.routers.PublishBlogPost"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Blog, authz.Toggle); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	var req dto.PublishBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	post, err := r.BlogService.SetPublished(c.Request().Context(), c.Param("slug"), *req.Published)
	if err != nil {
		return r.fail(c, log, blogResource, err)
	}

	return c.JSON(http.StatusOK, post)
}

// DeleteBlogPost godoc
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/blog/{slug} [delete]
func (r *Routers) DeleteBlogPost(c echo.Context) error {
	const op = "http.routers.DeleteBlogPost"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Blog, authz.Delete); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	if err := r.BlogService.DeletePost(c.Request().Context(), c.Param("slug")); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	return c.JSON(http.StatusOK, response.Message(blogResource.deleted))
}
