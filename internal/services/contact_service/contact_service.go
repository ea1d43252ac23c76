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

type ContactService struct {
	log       *slog.Logger
	repo      repository.ContactRepository
	validator Validator
}

func NewContactService(log *slog.Logger, repo repository.ContactRepository, validator Validator) *ContactService {
	return &ContactService{log: log, repo: repo, validator: validator}
}

// Submit stores a message from the public contact form. New messages are unread.
func (s *ContactService) Submit(ctx context.Context, req dto.CreateContactRequest) (*models.Contact, error) {
	const op = "contact_service.Submit"
	log := s.log.With(slog.String("op", op))

	contact := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.validator.Struct(contact); err != nil {
		log.Info("contact validation failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveContact(ctx, contact)
	if err != nil {
		log.Error("failed to save contact", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contact.ID = id

	log.Info("contact message received", slog.String("id", id.String()))
	return &contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	const op = "contact_service.ListContacts"

	contacts, err := s.repo.GetContacts(ctx, filter)
	if err != nil {
		s.log.Error("failed to list contacts", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contacts, nil
}

func (s *ContactService) GetContact(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	const op = "contact_service.GetContact"

	contact, err := s.repo.GetContactByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return contact, nil
}

// MarkRead sets only the read flag and returns the updated message.
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID, read bool) (*models.Contact, error) {
	const op = "contact_service.MarkRead"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if err := s.repo.SetRead(ctx, id, read); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to update contact", sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contact, err := s.repo.GetContactByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact read state changed", slog.Bool("read", read))
	return contact, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	const op = "contact_service.DeleteContact"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if err := s.repo.DeleteContact(ctx, id); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Error("failed to delete contact", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact deleted")
	return nil
}
