package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
	"portfolio/internal/transport/http/dto"
)

type Validator interface {
	Struct(i interface{}) error
}

type BlogService struct {
	log       *slog.Logger
	repo      repository.BlogRepository
	validator Validator
}

func NewBlogService(log *slog.Logger, repo repository.BlogRepository, validator Validator) *BlogService {
	return &BlogService{log: log, repo: repo, validator: validator}
}

// ListPosts returns posts newest first. Callers that may not see drafts get
// the published filter forced on regardless of what they asked for.
func (s *BlogService) ListPosts(ctx context.Context, filter models.BlogPostFilter, includeUnpublished bool) ([]models.BlogPost, error) {
	const op = "blog_service.ListPosts"
	log := s.log.With(slog.String("op", op))

	if !includeUnpublished {
		published := true
		filter.Published = &published
	}

	posts, err := s.repo.GetBlogPosts(ctx, filter)
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

// GetPost returns the post with slug. A draft is reported as not found unless includeUnpublished.
func (s *BlogService) GetPost(ctx context.Context, slug string, includeUnpublished bool) (*models.BlogPost, error) {
	const op = "blog_service.GetPost"
	log := s.log.With(slog.String("op", op), slog.String("slug", slug))

	post, err := s.repo.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		log.Debug("failed to get post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !post.Published && !includeUnpublished {
		log.Debug("draft hidden from caller")
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return post, nil
}

func (s *BlogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	const op = "blog_service.CreatePost"
	log := s.log.With(slog.String("op", op), slog.String("slug", req.Slug))

	log.Info("creating new blog post")

	if req.Slug != "" {
		exists, err := s.repo.SlugExists(ctx, req.Slug)
		if err != nil {
			log.Error("failed to check slug", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if exists {
			log.Warn("slug already taken")
			return nil, fmt.Errorf("%s: %w", op, models.ErrDuplicateSlug)
		}
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	now := time.Now().UTC()
	post := models.BlogPost{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Tags:       req.Tags,
		Featured:   req.Featured,
		Published:  published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := s.validator.Struct(post); err != nil {
		log.Info("post validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveBlogPost(ctx, post)
	if err != nil {
		if _, ok := repository.ConflictField(err); ok {
			log.Warn("slug taken concurrently")
			return nil, fmt.Errorf("%s: %w", op, models.ErrDuplicateSlug)
		}
		log.Error("failed to create post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post.ID = id

	log.Info("post created successfully", slog.String("post_id", id.String()))
	return &post, nil
}

// UpdatePost merges the non-nil request fields into the stored post and
// re-validates the result. The slug can never change.
func (s *BlogService) UpdatePost(ctx context.Context, slug string, req dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	const op = "blog_service.UpdatePost"
	log := s.log.With(slog.String("op", op), slog.String("slug", slug))

	log.Info("updating blog post")

	post, err := s.repo.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		log.Debug("failed to get post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Slug != nil && *req.Slug != post.Slug {
		log.Warn("attempt to change slug", slog.String("new_slug", *req.Slug))
		return nil, fmt.Errorf("%s: %w", op, models.ErrSlugImmutable)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CoverImage != nil {
		post.CoverImage = *req.CoverImage
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.Featured != nil {
		post.Featured = *req.Featured
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := s.validator.Struct(post); err != nil {
		log.Info("post validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateBlogPost(ctx, *post); err != nil {
		log.Error("failed to update post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post updated successfully")
	return post, nil
}

// SetPublished flips the published flag only.
func (s *BlogService) SetPublished(ctx context.Context, slug string, published bool) (*models.BlogPost, error) {
	const op = "blog_service.SetPublished"
	log := s.log.With(slog.String("op", op), slog.String("slug", slug), slog.Bool("published", published))

	if err := s.repo.UpdateBlogPostFields(ctx, slug, map[string]interface{}{"published": published}); err != nil {
		log.Debug("failed to toggle post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post, err := s.repo.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		log.Error("failed to reload post", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post publish state changed")
	return post, nil
}

func (s *BlogService) DeletePost(ctx context.Context, slug string) error {
	const op = "blog_service.DeletePost"
	log := s.log.With(slog.String("op", op), slog.String("slug", slug))

	if err := s.repo.DeleteBlogPost(ctx, slug); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("post not found")
		} else {
			log.Error("failed to delete post", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post deleted")
	return nil
}
