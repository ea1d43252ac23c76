package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
	"portfolio/internal/metrics"
	storage "portfolio/internal/storage/filestorage"
	"portfolio/internal/transport/http/dto"
)

type MediaService struct {
	log         *slog.Logger
	fileStorage storage.FileStorage
	now         func() time.Time
}

func NewMediaService(log *slog.Logger, fileStorage storage.FileStorage) *MediaService {
	return &MediaService{
		log:         log,
		fileStorage: fileStorage,
		now:         time.Now,
	}
}

// Upload stores the file under the directory of its category and returns the
// public URL. The file content is not inspected.
func (s *MediaService) Upload(ctx context.Context, input dto.UploadInput) (*models.Upload, error) {
	const op = "media_service.Upload"

	if input.File == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrNoFile)
	}

	category := models.ParseUploadCategory(input.Type)
	filename := StoredFilename(s.now(), input.File.Filename)

	log := s.log.With(
		slog.String("op", op),
		slog.String("type", string(category)),
		slog.String("filename", filename),
	)

	log.Info("upload media")

	relPath, size, err := s.fileStorage.Save(ctx, input.File, category.Dir(), filename)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("media uploaded", slog.Int64("size", size))
	metrics.UploadedBytes.WithLabelValues(string(category)).Add(float64(size))

	return &models.Upload{
		URL:      s.fileStorage.URL(relPath),
		Category: category,
		Filename: filename,
		Size:     size,
		Message:  "File uploaded successfully",
	}, nil
}

// StoredFilename prefixes the base name with the upload time in Unix
// milliseconds and replaces spaces with underscores.
func StoredFilename(at time.Time, original string) string {
	name := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("%d-%s", at.UnixMilli(), name)
}
