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

	"github.com/google/uuid"
)

type Validator interface {
	Struct(i interface{}) error
}

type GalleryService struct {
	log       *slog.Logger
	repo      repository.GalleryRepository
	validator Validator
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, validator Validator) *GalleryService {
	return &GalleryService{
		log:       log,
		repo:      repo,
		validator: validator,
	}
}

func (s *GalleryService) CreateGalleryItem(ctx context.Context, req dto.CreateGalleryItemRequest) (*models.GalleryItem, error) {
	const op = "service.GalleryService.CreateGalleryItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating gallery item")

	now := time.Now().UTC()
	item := models.GalleryItem{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		Category:  req.Category,
		Featured:  req.Featured,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.validator.Struct(item); err != nil {
		log.Info("gallery item validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateGalleryItem(ctx, item)
	if err != nil {
		log.Error("failed to create gallery item", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item.ID = id

	log.Info("gallery item created", slog.String("id", id.String()))
	return &item, nil
}

func (s *GalleryService) UpdateGalleryItem(ctx context.Context, id uuid.UUID, req dto.UpdateGalleryItemRequest) (*models.GalleryItem, error) {
	const op = "service.GalleryService.UpdateGalleryItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	item, err := s.repo.GetGalleryItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.Caption != nil {
		item.Caption = *req.Caption
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}

	if err := s.validator.Struct(item); err != nil {
		log.Info("gallery item validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateGalleryItem(ctx, *item); err != nil {
		log.Error("failed to update gallery item", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery item updated")
	return item, nil
}

func (s *GalleryService) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	const op = "service.GalleryService.DeleteGalleryItem"
	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id.String()),
	)

	if err := s.repo.DeleteGalleryItem(ctx, id); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to delete gallery item", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gallery item deleted")
	return nil
}

func (s *GalleryService) GetGalleryItem(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	const op = "service.GalleryService.GetGalleryItem"

	item, err := s.repo.GetGalleryItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (s *GalleryService) ListGalleryItems(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryItem, error) {
	const op = "service.GalleryService.ListGalleryItems"

	items, err := s.repo.GetGalleryItems(ctx, filter)
	if err != nil {
		s.log.Error("failed to list gallery items", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}
