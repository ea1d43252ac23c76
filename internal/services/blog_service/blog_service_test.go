package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/handlers/slogdiscard"
	"portfolio/internal/lib/validator"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
	"portfolio/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) SaveBlogPost(ctx context.Context, post models.BlogPost) (uuid.UUID, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepository) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBlogPosts(ctx context.Context, filter models.BlogPostFilter) ([]models.BlogPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) UpdateBlogPost(ctx context.Context, post models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockBlogRepository) UpdateBlogPostFields(ctx context.Context, slug string, updates map[string]interface{}) error {
	args := m.Called(ctx, slug, updates)
	return args.Error(0)
}

func (m *MockBlogRepository) DeleteBlogPost(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func storedPost(published bool) *models.BlogPost {
	created := time.Now().UTC().Add(-time.Hour)
	return &models.BlogPost{
		ID:         uuid.MustParse("b3c87987-ba25-4c7b-8070-f74ef402fe7c"),
		Title:      "Test Post",
		Slug:       "test-post",
		Excerpt:    "excerpt",
		Content:    "content",
		CoverImage: "/images/blog/1-cover.jpg",
		Category:   "dev",
		Tags:       []string{"go"},
		Published:  published,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func newService(repo *MockBlogRepository) *BlogService {
	return NewBlogService(slogdiscard.NewDiscardLogger(), repo, validator.New())
}

func TestBlogService_ListPosts(t *testing.T) {
	ctx := context.Background()
	published := true
	draft := false

	tests := []struct {
		name               string
		filter             models.BlogPostFilter
		includeUnpublished bool
		wantFilter         models.BlogPostFilter
	}{
		{
			name:       "anonymous forced to published",
			filter:     models.BlogPostFilter{Category: "dev"},
			wantFilter: models.BlogPostFilter{Category: "dev", Published: &published},
		},
		{
			name:       "anonymous asking for drafts still gets published",
			filter:     models.BlogPostFilter{Published: &draft},
			wantFilter: models.BlogPostFilter{Published: &published},
		},
		{
			name:               "admin asking for drafts",
			filter:             models.BlogPostFilter{Published: &draft},
			includeUnpublished: true,
			wantFilter:         models.BlogPostFilter{Published: &draft},
		},
		{
			name:               "admin without filter sees all",
			filter:             models.BlogPostFilter{Limit: 3},
			includeUnpublished: true,
			wantFilter:         models.BlogPostFilter{Limit: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBlogRepository)
			repo.On("GetBlogPosts", ctx, tt.wantFilter).Return([]models.BlogPost{*storedPost(true)}, nil).Once()

			posts, err := newService(repo).ListPosts(ctx, tt.filter, tt.includeUnpublished)
			require.NoError(t, err)
			assert.Len(t, posts, 1)
			repo.AssertExpectations(t)
		})
	}
}

func TestBlogService_GetPost(t *testing.T) {
	ctx := context.Background()

	t.Run("draft hidden from public", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBlogPostBySlug", ctx, "test-post").Return(storedPost(false), nil)

		_, err := newService(repo).GetPost(ctx, "test-post", false)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("draft visible to admin", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBlogPostBySlug", ctx, "test-post").Return(storedPost(false), nil)

		post, err := newService(repo).GetPost(ctx, "test-post", true)
		require.NoError(t, err)
		assert.Equal(t, "test-post", post.Slug)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBlogPostBySlug", ctx, "nope").Return(nil, storage.ErrNotFound)

		_, err := newService(repo).GetPost(ctx, "nope", true)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestBlogService_CreatePost(t *testing.T) {
	ctx := context.Background()
	newID := uuid.New()

	valid := dto.CreateBlogPostRequest{
		Title:      "Hello",
		Slug:       "hello",
		Excerpt:    "short",
		Content:    "long",
		CoverImage: "/images/blog/1-c.jpg",
		Category:   "dev",
	}

	tests := []struct {
		name      string
		req       dto.CreateBlogPostRequest
		mockSetup func(repo *MockBlogRepository)
		wantErr   error
		wantField string
		check     func(t *testing.T, post *models.BlogPost)
	}{
		{
			name: "defaults applied",
			req:  valid,
			mockSetup: func(repo *MockBlogRepository) {
				repo.On("SlugExists", ctx, "hello").Return(false, nil).Once()
				repo.On("SaveBlogPost", ctx, mock.MatchedBy(func(p models.BlogPost) bool {
					return p.Published && p.Tags != nil && len(p.Tags) == 0 && !p.CreatedAt.IsZero()
				})).Return(newID, nil).Once()
			},
			check: func(t *testing.T, post *models.BlogPost) {
				assert.Equal(t, newID, post.ID)
				assert.True(t, post.Published)
				assert.False(t, post.CreatedAt.After(time.Now().UTC()))
			},
		},
		{
			name: "duplicate slug checked first",
			req:  dto.CreateBlogPostRequest{Slug: "hello"},
			mockSetup: func(repo *MockBlogRepository) {
				repo.On("SlugExists", ctx, "hello").Return(true, nil).Once()
			},
			wantErr: models.ErrDuplicateSlug,
		},
		{
			name: "missing fields",
			req:  dto.CreateBlogPostRequest{Slug: "x", Title: "t"},
			mockSetup: func(repo *MockBlogRepository) {
				repo.On("SlugExists", ctx, "x").Return(false, nil).Once()
			},
			wantField: "content",
		},
		{
			name:      "empty slug skips lookup and fails validation",
			req:       dto.CreateBlogPostRequest{Title: "t"},
			mockSetup: func(repo *MockBlogRepository) {},
			wantField: "slug",
		},
		{
			name: "unique violation on insert",
			req:  valid,
			mockSetup: func(repo *MockBlogRepository) {
				repo.On("SlugExists", ctx, "hello").Return(false, nil).Once()
				repo.On("SaveBlogPost", ctx, mock.AnythingOfType("models.BlogPost")).
					Return(uuid.Nil, &repository.ConflictError{Field: "slug", Err: storage.ErrAlreadyExists}).Once()
			},
			wantErr: models.ErrDuplicateSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBlogRepository)
			tt.mockSetup(repo)

			post, err := newService(repo).CreatePost(ctx, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantField != "":
				var ve *models.ValidationError
				require.True(t, errors.As(err, &ve), "got %v", err)
				assert.Contains(t, ve.Fields, tt.wantField)
			default:
				require.NoError(t, err)
				tt.check(t, post)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestBlogService_UpdatePost(t *testing.T) {
	ctx := context.Background()
	title := "New title"
	otherSlug := "other"
	sameSlug := "test-post"
	empty := ""

	t.Run("merge and write", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBlogPostBySlug", ctx, "test-post").Return(storedPost(true), nil).Once()
		repo.On("UpdateBlogPost", ctx, mock.MatchedBy(func(p models.BlogPost) bool {
			return p.Title == title && p.Content == "content" && p.UpdatedAt.After(p.CreatedAt)
		})).Return(nil).Once()

		post, err := newService(repo).UpdatePost(ctx, "test-post", dto.UpdateBlogPostRequest{Title: &title, Slug: &sameSlug})
		require.NoError(t, err)
		assert.Equal(t, title, post.Title)
		assert.Equal(t, "test-post", post.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("slug change rejected", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBlogPostBySlug", ctx, "test-post").Return(storedPost(true), nil).Once()

		_, err := newService(repo).UpdatePost(ctx, "test-post", dto.UpdateBlogPostRequest{Slug: &otherSlug})
		assert.ErrorIs(t, err, models.ErrSlugImmutable)
		repo.AssertNotCalled(t, "UpdateBlogPost", mock.Anything, mock.Anything)
	})

	t.Run("merged record revalidated", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBlogPostBySlug", ctx, "test-post").Return(storedPost(true), nil).Once()

		_, err := newService(repo).UpdatePost(ctx, "test-post", dto.UpdateBlogPostRequest{Title: &empty})
		var ve *models.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "title")
	})

	t.Run("missing post", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("GetBlogPostBySlug", ctx, "nope").Return(nil, storage.ErrNotFound).Once()

		_, err := newService(repo).UpdatePost(ctx, "nope", dto.UpdateBlogPostRequest{Slug: &otherSlug})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestBlogService_SetPublishedAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("UpdateBlogPostFields", ctx, "test-post", map[string]interface{}{"published": false}).Return(nil).Once()
		repo.On("GetBlogPostBySlug", ctx, "test-post").Return(storedPost(false), nil).Once()

		post, err := newService(repo).SetPublished(ctx, "test-post", false)
		require.NoError(t, err)
		assert.False(t, post.Published)
	})

	t.Run("delete missing", func(t *testing.T) {
		repo := new(MockBlogRepository)
		repo.On("DeleteBlogPost", ctx, "nope").Return(storage.ErrNotFound).Once()

		err := newService(repo).DeletePost(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
