package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/validator"
	"portfolio/internal/storage"
	"portfolio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) CreateGalleryItem(ctx context.Context, item models.GalleryItem) (uuid.UUID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGalleryRepository) GetGalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) GetGalleryItems(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockGalleryRepository) UpdateGalleryItem(ctx context.Context, item models.GalleryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockGalleryRepository) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGalleryService_CreateGalleryItem(t *testing.T) {
	ctx := context.Background()
	testID := uuid.New()

	tests := []struct {
		name      string
		req       dto.CreateGalleryItemRequest
		mockSetup func(repo *MockGalleryRepository)
		wantError bool
		wantField string
	}{
		{
			name: "successful creation",
			req: dto.CreateGalleryItemRequest{
				Title:    "Sunset",
				ImageURL: "/images/gallery/1-sunset.jpg",
				Category: "nature",
			},
			mockSetup: func(repo *MockGalleryRepository) {
				repo.On("CreateGalleryItem", ctx, mock.MatchedBy(func(i models.GalleryItem) bool {
					return i.Title == "Sunset" && !i.CreatedAt.IsZero()
				})).Return(testID, nil).Once()
			},
		},
		{
			name:      "missing image url",
			req:       dto.CreateGalleryItemRequest{Title: "Sunset"},
			mockSetup: func(repo *MockGalleryRepository) {},
			wantError: true,
			wantField: "imageUrl",
		},
		{
			name: "repository error",
			req:  dto.CreateGalleryItemRequest{Title: "Sunset", ImageURL: "x"},
			mockSetup: func(repo *MockGalleryRepository) {
				repo.On("CreateGalleryItem", ctx, mock.Anything).Return(uuid.Nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockGalleryRepository)
			tt.mockSetup(repo)
			svc := NewGalleryService(testLogger(), repo, validator.New())

			item, err := svc.CreateGalleryItem(ctx, tt.req)

			if tt.wantError {
				require.Error(t, err)
				if tt.wantField != "" {
					var ve *models.ValidationError
					require.True(t, errors.As(err, &ve))
					assert.Contains(t, ve.Fields, tt.wantField)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testID, item.ID)
			repo.AssertExpectations(t)
		})
	}
}

func TestGalleryService_UpdateGalleryItem(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	caption := "golden hour"
	blank := ""

	stored := func() *models.GalleryItem {
		created := time.Now().UTC().Add(-time.Hour)
		return &models.GalleryItem{ID: id, Title: "Sunset", ImageURL: "x", CreatedAt: created, UpdatedAt: created}
	}

	t.Run("merge", func(t *testing.T) {
		repo := new(MockGalleryRepository)
		repo.On("GetGalleryItemByID", ctx, id).Return(stored(), nil).Once()
		repo.On("UpdateGalleryItem", ctx, mock.MatchedBy(func(i models.GalleryItem) bool {
			return i.Caption == caption && i.Title == "Sunset"
		})).Return(nil).Once()

		item, err := NewGalleryService(testLogger(), repo, validator.New()).
			UpdateGalleryItem(ctx, id, dto.UpdateGalleryItemRequest{Caption: &caption})
		require.NoError(t, err)
		assert.Equal(t, caption, item.Caption)
		repo.AssertExpectations(t)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		repo := new(MockGalleryRepository)
		repo.On("GetGalleryItemByID", ctx, id).Return(stored(), nil).Once()

		_, err := NewGalleryService(testLogger(), repo, validator.New()).
			UpdateGalleryItem(ctx, id, dto.UpdateGalleryItemRequest{Title: &blank})
		assert.True(t, models.IsValidationError(err))
		repo.AssertNotCalled(t, "UpdateGalleryItem", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockGalleryRepository)
		repo.On("GetGalleryItemByID", ctx, id).Return(nil, storage.ErrNotFound).Once()

		_, err := NewGalleryService(testLogger(), repo, validator.New()).
			UpdateGalleryItem(ctx, id, dto.UpdateGalleryItemRequest{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGalleryService_GetListDelete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	featured := true

	repo := new(MockGalleryRepository)
	repo.On("GetGalleryItemByID", ctx, id).Return(&models.GalleryItem{ID: id}, nil).Once()
	repo.On("GetGalleryItems", ctx, models.GalleryFilter{Featured: &featured, Limit: 6}).
		Return([]models.GalleryItem{{ID: id}}, nil).Once()
	repo.On("DeleteGalleryItem", ctx, id).Return(storage.ErrNotFound).Once()

	svc := NewGalleryService(testLogger(), repo, validator.New())

	item, err := svc.GetGalleryItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, item.ID)

	items, err := svc.ListGalleryItems(ctx, models.GalleryFilter{Featured: &featured, Limit: 6})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	assert.ErrorIs(t, svc.DeleteGalleryItem(ctx, id), storage.ErrNotFound)
	repo.AssertExpectations(t)
}
