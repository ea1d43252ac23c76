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

type ProjectService struct {
	log       *slog.Logger
	repo      repository.ProjectRepository
	validator Validator
}

func NewProjectService(log *slog.Logger, repo repository.ProjectRepository, validator Validator) *ProjectService {
	return &ProjectService{log: log, repo: repo, validator: validator}
}

func (s *ProjectService) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	const op = "project_service.ListProjects"

	projects, err := s.repo.GetProjects(ctx, filter)
	if err != nil {
		s.log.Error("failed to list projects", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	const op = "project_service.GetProject"

	project, err := s.repo.GetProjectBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*models.Project, error) {
	const op = "project_service.CreateProject"
	log := s.log.With(slog.String("op", op), slog.String("slug", req.Slug))

	log.Info("creating project")

	now := time.Now().UTC()
	project := models.Project{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Content:      req.Content,
		Technologies: req.Technologies,
		Image:        req.Image,
		DemoURL:      blankToNil(req.DemoURL),
		GithubURL:    blankToNil(req.GithubURL),
		Featured:     req.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	if err := s.validator.Struct(project); err != nil {
		log.Info("project validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveProject(ctx, project)
	if err != nil {
		if field, ok := repository.ConflictField(err); ok {
			log.Warn("unique field taken", slog.String("field", field))
			return nil, fmt.Errorf("%s: %w", op, models.NewValidationError(field, field+" already exists"))
		}
		log.Error("failed to save project", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	project.ID = id

	log.Info("project created", slog.String("project_id", id.String()))
	return &project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, slug string, req dto.UpdateProjectRequest) (*models.Project, error) {
	const op = "project_service.UpdateProject"
	log := s.log.With(slog.String("op", op), slog.String("slug", slug))

	project, err := s.repo.GetProjectBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Slug != nil && *req.Slug != project.Slug {
		log.Warn("attempt to change slug", slog.String("new_slug", *req.Slug))
		return nil, fmt.Errorf("%s: %w", op, models.ErrSlugImmutable)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Content != nil {
		project.Content = *req.Content
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.DemoURL != nil {
		project.DemoURL = blankToNil(req.DemoURL)
	}
	if req.GithubURL != nil {
		project.GithubURL = blankToNil(req.GithubURL)
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	if err := s.validator.Struct(project); err != nil {
		log.Info("project validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProject(ctx, *project); err != nil {
		log.Error("failed to update project", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("project updated")
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, slug string) error {
	const op = "project_service.DeleteProject"
	log := s.log.With(slog.String("op", op), slog.String("slug", slug))

	if err := s.repo.DeleteProject(ctx, slug); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to delete project", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("project deleted")
	return nil
}

// blankToNil treats an empty optional URL as absent.
func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
