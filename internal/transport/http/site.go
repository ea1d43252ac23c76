package http

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio/internal/authz"
	"portfolio/internal/domain/models"
	"portfolio/internal/storage"

	"github.com/labstack/echo/v4"
)

const (
	homeLatestPosts   = 3
	homeLatestGallery = 6
)

// HomeView is what the landing page renders.
type HomeView struct {
	FeaturedProjects []models.Project     `json:"featuredProjects"`
	LatestPosts      []models.BlogPost    `json:"latestPosts"`
	Gallery          []models.GalleryItem `json:"gallery"`
}

// NotFoundView is rendered in place of a missing page.
type NotFoundView struct {
	Error   string `json:"error"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Back    string `json:"back"`
}

// Home godoc
// @Summary Landing page data
// @Tags site
// @Produce json
// @Success 200 {object} HomeView
// @Failure 500 {object} response.ErrorResponse
// @Router / [get]
func (r *Routers) Home(c echo.Context) error {
	const op = "http.routers.Home"
	log := r.log.With(slog.String("op", op))
	ctx := c.Request().Context()

	for _, res := range []authz.Resource{authz.Projects, authz.Blog, authz.Gallery} {
		if err := r.authorize(c, res, authz.List); err != nil {
			return r.fail(c, log, noResource, err)
		}
	}

	featured := true

	projects, err := r.ProjectService.ListProjects(ctx, models.ProjectFilter{Featured: &featured})
	if err != nil {
		return r.fail(c, log, noResource, err)
	}

	posts, err := r.BlogService.ListPosts(ctx, models.BlogPostFilter{Limit: homeLatestPosts}, false)
	if err != nil {
		return r.fail(c, log, noResource, err)
	}

	items, err := r.GalleryService.ListGalleryItems(ctx, models.GalleryFilter{Limit: homeLatestGallery})
	if err != nil {
		return r.fail(c, log, noResource, err)
	}

	return c.JSON(http.StatusOK, HomeView{
		FeaturedProjects: projects,
		LatestPosts:      posts,
		Gallery:          items,
	})
}

// BlogPostPage godoc
// @Summary Blog post page data
// @Description Drafts are only visible to admins; everyone else gets the not-found page.
// @Tags site
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} NotFoundView
// @Router /blog/{slug} [get]
func (r *Routers) BlogPostPage(c echo.Context) error {
	const op = "http.routers.BlogPostPage"
	log := r.log.With(slog.String("op", op))

	if err := r.authorize(c, authz.Blog, authz.Get); err != nil {
		return r.fail(c, log, blogResource, err)
	}

	post, err := r.BlogService.GetPost(c.Request().Context(), c.Param("slug"), isAdmin(c))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NotFoundView{
				Error:   blogResource.notFound,
				Title:   "Post not found",
				Message: "The post you are looking for does not exist or has been removed.",
				Back:    "/blog",
			})
		}
		return r.fail(c, log, blogResource, err)
	}

	return c.JSON(http.StatusOK, post)
}
