package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBlogLister struct{ mock.Mock }

func (m *MockBlogLister) ListPosts(ctx context.Context, filter models.BlogPostFilter, includeUnpublished bool) ([]models.BlogPost, error) {
	args := m.Called(ctx, filter, includeUnpublished)
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

type MockProjectLister struct{ mock.Mock }

func (m *MockProjectLister) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Project), args.Error(1)
}

type MockGalleryLister struct{ mock.Mock }

func (m *MockGalleryLister) ListGalleryItems(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

type MockContactLister struct{ mock.Mock }

func (m *MockContactLister) ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Contact), args.Error(1)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 17)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name           string
		items          []int
		page           int
		perPage        int
		wantPage       int
		wantTotalPages int
		wantItems      []int
	}{
		{name: "first page", items: items, page: 1, perPage: 8, wantPage: 1, wantTotalPages: 3, wantItems: items[0:8]},
		{name: "last partial page", items: items, page: 3, perPage: 8, wantPage: 3, wantTotalPages: 3, wantItems: items[16:17]},
		{name: "past the end is clamped", items: items, page: 9, perPage: 8, wantPage: 3, wantTotalPages: 3, wantItems: items[16:17]},
		{name: "zero is clamped", items: items, page: 0, perPage: 10, wantPage: 1, wantTotalPages: 2, wantItems: items[0:10]},
		{name: "exact multiple", items: items[:12], page: 1, perPage: 12, wantPage: 1, wantTotalPages: 1, wantItems: items[0:12]},
		{name: "empty", items: []int{}, page: 2, perPage: 8, wantPage: 1, wantTotalPages: 0, wantItems: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.items, tt.page, tt.perPage)

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantTotalPages, got.TotalPages)
			assert.Equal(t, len(tt.items), got.Total)
			assert.Equal(t, tt.wantItems, got.Items)
		})
	}
}

func TestSearch(t *testing.T) {
	posts := []models.BlogPost{
		{Title: "Go generics", Excerpt: "types", Category: "Programming"},
		{Title: "Trip", Excerpt: "mountains", Category: "Travel", Tags: []string{"Alps"}},
		{Title: "Cooking", Excerpt: "pasta", Category: "Food"},
	}

	assert.Len(t, Search(posts, "", blogFields), 3)
	assert.Len(t, Search(posts, "  ", blogFields), 3)

	got := Search(posts, "GENERICS", blogFields)
	require.Len(t, got, 1)
	assert.Equal(t, "Go generics", got[0].Title)

	got = Search(posts, "alps", blogFields)
	require.Len(t, got, 1)
	assert.Equal(t, "Trip", got[0].Title)

	assert.Empty(t, Search(posts, "content only", blogFields))

	contacts := []models.Contact{
		{Name: "Ann", Email: "ann@example.com", Subject: "Hello", Message: "needle"},
	}
	assert.Empty(t, Search(contacts, "needle", contactFields), "message is not a contact search field")
	assert.Len(t, Search(contacts, "EXAMPLE", contactFields), 1)

	projects := []models.Project{{Title: "CLI", Description: "tool", Technologies: []string{"Go", "Redis"}}}
	assert.Len(t, Search(projects, "redis", projectFields), 1)

	items := []models.GalleryItem{{Title: "Sunset", Caption: "Over the sea", Category: "nature"}}
	assert.Len(t, Search(items, "sea", galleryFields), 1)
	assert.Empty(t, Search(items, "nature", galleryFields))
}

func TestPanelPerPage(t *testing.T) {
	assert.Equal(t, 8, PanelBlog.PerPage())
	assert.Equal(t, 8, PanelProjects.PerPage())
	assert.Equal(t, 10, PanelContact.PerPage())
	assert.Equal(t, 12, PanelGallery.PerPage())

	p, ok := ParsePanel("gallery")
	assert.True(t, ok)
	assert.Equal(t, PanelGallery, p)

	_, ok = ParsePanel("users")
	assert.False(t, ok)
}

func newDashboard() (*Dashboard, *MockBlogLister, *MockProjectLister, *MockGalleryLister, *MockContactLister) {
	blog := new(MockBlogLister)
	projects := new(MockProjectLister)
	gallery := new(MockGalleryLister)
	contacts := new(MockContactLister)

	return NewDashboard(slogdiscard.NewDiscardLogger(), blog, projects, gallery, contacts), blog, projects, gallery, contacts
}

func TestDashboard_Overview(t *testing.T) {
	ctx := context.Background()
	d, blog, projects, gallery, contacts := newDashboard()

	blog.On("ListPosts", ctx, models.BlogPostFilter{}, true).Return([]models.BlogPost{
		{Published: true}, {Published: false}, {Published: true},
	}, nil).Once()
	projects.On("ListProjects", ctx, models.ProjectFilter{}).Return([]models.Project{
		{Featured: true}, {Featured: false},
	}, nil).Once()
	gallery.On("ListGalleryItems", ctx, models.GalleryFilter{}).Return([]models.GalleryItem{{}, {}, {}, {}}, nil).Once()
	contacts.On("ListContacts", ctx, models.ContactFilter{}).Return([]models.Contact{
		{Read: false}, {Read: true}, {Read: false},
	}, nil).Once()

	session := models.Session{Username: "admin", Role: models.RoleAdmin}

	got, err := d.Overview(ctx, session)
	require.NoError(t, err)

	assert.Equal(t, []Panel{PanelContact, PanelProjects, PanelGallery, PanelBlog}, got.Tabs)
	assert.Equal(t, session, got.User)
	assert.Equal(t, Counts{
		Posts:            3,
		PublishedPosts:   2,
		Projects:         2,
		FeaturedProjects: 1,
		GalleryItems:     4,
		Contacts:         3,
		UnreadContacts:   2,
	}, got.Counts)
}

func TestDashboard_OverviewError(t *testing.T) {
	ctx := context.Background()
	d, blog, _, _, _ := newDashboard()

	blog.On("ListPosts", ctx, models.BlogPostFilter{}, true).Return([]models.BlogPost(nil), errors.New("db down")).Once()

	_, err := d.Overview(ctx, models.Session{})
	assert.Error(t, err)
}

func TestDashboard_Panel(t *testing.T) {
	ctx := context.Background()

	items := make([]models.GalleryItem, 30)
	for i := range items {
		items[i] = models.GalleryItem{Title: fmt.Sprintf("Photo %d", i)}
	}
	items[29].Caption = "Beach"

	tests := []struct {
		name      string
		panel     Panel
		q         string
		page      int
		mockSetup func(b *MockBlogLister, p *MockProjectLister, g *MockGalleryLister, c *MockContactLister)
		check     func(t *testing.T, v *PanelView)
		wantErr   error
	}{
		{
			name:  "gallery pages by twelve",
			panel: PanelGallery,
			page:  3,
			mockSetup: func(b *MockBlogLister, p *MockProjectLister, g *MockGalleryLister, c *MockContactLister) {
				g.On("ListGalleryItems", ctx, models.GalleryFilter{}).Return(items, nil).Once()
			},
			check: func(t *testing.T, v *PanelView) {
				page := v.Page.(Page[models.GalleryItem])
				assert.Equal(t, 3, page.TotalPages)
				assert.Equal(t, 30, page.Total)
				assert.Len(t, page.Items, 6)
			},
		},
		{
			name:  "search narrows before paging",
			panel: PanelGallery,
			q:     "beach",
			page:  2,
			mockSetup: func(b *MockBlogLister, p *MockProjectLister, g *MockGalleryLister, c *MockContactLister) {
				g.On("ListGalleryItems", ctx, models.GalleryFilter{}).Return(items, nil).Once()
			},
			check: func(t *testing.T, v *PanelView) {
				page := v.Page.(Page[models.GalleryItem])
				assert.Equal(t, "beach", v.Query)
				assert.Equal(t, 1, page.Page)
				assert.Equal(t, 1, page.TotalPages)
				require.Len(t, page.Items, 1)
				assert.Equal(t, "Photo 29", page.Items[0].Title)
			},
		},
		{
			name:  "blog includes drafts",
			panel: PanelBlog,
			page:  1,
			mockSetup: func(b *MockBlogLister, p *MockProjectLister, g *MockGalleryLister, c *MockContactLister) {
				b.On("ListPosts", ctx, models.BlogPostFilter{}, true).Return([]models.BlogPost{{Title: "Draft"}}, nil).Once()
			},
			check: func(t *testing.T, v *PanelView) {
				page := v.Page.(Page[models.BlogPost])
				assert.Equal(t, 8, page.PerPage)
				assert.Len(t, page.Items, 1)
			},
		},
		{
			name:  "contacts",
			panel: PanelContact,
			q:     "ann",
			page:  1,
			mockSetup: func(b *MockBlogLister, p *MockProjectLister, g *MockGalleryLister, c *MockContactLister) {
				c.On("ListContacts", ctx, models.ContactFilter{}).Return([]models.Contact{{Name: "Ann"}, {Name: "Bob"}}, nil).Once()
			},
			check: func(t *testing.T, v *PanelView) {
				page := v.Page.(Page[models.Contact])
				assert.Equal(t, 10, page.PerPage)
				assert.Len(t, page.Items, 1)
			},
		},
		{
			name:  "projects error",
			panel: PanelProjects,
			page:  1,
			mockSetup: func(b *MockBlogLister, p *MockProjectLister, g *MockGalleryLister, c *MockContactLister) {
				p.On("ListProjects", ctx, models.ProjectFilter{}).Return([]models.Project(nil), errors.New("db down")).Once()
			},
			wantErr: errors.New("db down"),
		},
		{
			name:      "unknown panel",
			panel:     Panel("users"),
			mockSetup: func(b *MockBlogLister, p *MockProjectLister, g *MockGalleryLister, c *MockContactLister) {},
			wantErr:   ErrUnknownPanel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, b, p, g, c := newDashboard()
			tt.mockSetup(b, p, g, c)

			got, err := d.Panel(ctx, tt.panel, tt.q, tt.page)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrUnknownPanel) {
					assert.ErrorIs(t, err, ErrUnknownPanel)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.panel, got.Panel)
			tt.check(t, got)
		})
	}
}
