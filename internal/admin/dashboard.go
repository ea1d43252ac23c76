package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"portfolio/internal/domain/models"
	"portfolio/internal/lib/logger/sl"
)

var ErrUnknownPanel = errors.New("unknown panel")

type BlogLister interface {
	ListPosts(ctx context.Context, filter models.BlogPostFilter, includeUnpublished bool) ([]models.BlogPost, error)
}

type ProjectLister interface {
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
}

type GalleryLister interface {
	ListGalleryItems(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryItem, error)
}

type ContactLister interface {
	ListContacts(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
}

type Dashboard struct {
	log      *slog.Logger
	blog     BlogLister
	projects ProjectLister
	gallery  GalleryLister
	contacts ContactLister
}

func NewDashboard(log *slog.Logger, blog BlogLister, projects ProjectLister, gallery GalleryLister, contacts ContactLister) *Dashboard {
	return &Dashboard{
		log:      log,
		blog:     blog,
		projects: projects,
		gallery:  gallery,
		contacts: contacts,
	}
}

type Counts struct {
	Posts            int `json:"posts"`
	PublishedPosts   int `json:"publishedPosts"`
	Projects         int `json:"projects"`
	FeaturedProjects int `json:"featuredProjects"`
	GalleryItems     int `json:"galleryItems"`
	Contacts         int `json:"contacts"`
	UnreadContacts   int `json:"unreadContacts"`
}

type Overview struct {
	User   models.Session `json:"user"`
	Tabs   []Panel        `json:"tabs"`
	Counts Counts         `json:"counts"`
}

// PanelView is a page of one panel's listing after search.
type PanelView struct {
	Panel Panel  `json:"panel"`
	Query string `json:"query"`
	Page  any    `json:"page"`
}

func (d *Dashboard) Overview(ctx context.Context, session models.Session) (*Overview, error) {
	const op = "admin.Dashboard.Overview"
	log := d.log.With(slog.String("op", op))

	posts, err := d.blog.ListPosts(ctx, models.BlogPostFilter{}, true)
	if err != nil {
		log.Error("failed to load posts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	projects, err := d.projects.ListProjects(ctx, models.ProjectFilter{})
	if err != nil {
		log.Error("failed to load projects", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := d.gallery.ListGalleryItems(ctx, models.GalleryFilter{})
	if err != nil {
		log.Error("failed to load gallery", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	contacts, err := d.contacts.ListContacts(ctx, models.ContactFilter{})
	if err != nil {
		log.Error("failed to load contacts", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	counts := Counts{
		Posts:        len(posts),
		Projects:     len(projects),
		GalleryItems: len(items),
		Contacts:     len(contacts),
	}
	for _, p := range posts {
		if p.Published {
			counts.PublishedPosts++
		}
	}
	for _, p := range projects {
		if p.Featured {
			counts.FeaturedProjects++
		}
	}
	for _, c := range contacts {
		if !c.Read {
			counts.UnreadContacts++
		}
	}

	return &Overview{User: session, Tabs: Tabs, Counts: counts}, nil
}

// Panel lists one panel filtered by q and cut to page. Panels share no state.
func (d *Dashboard) Panel(ctx context.Context, panel Panel, q string, page int) (*PanelView, error) {
	const op = "admin.Dashboard.Panel"
	log := d.log.With(slog.String("op", op), slog.String("panel", string(panel)))

	view := &PanelView{Panel: panel, Query: q}
	perPage := panel.PerPage()

	switch panel {
	case PanelBlog:
		posts, err := d.blog.ListPosts(ctx, models.BlogPostFilter{}, true)
		if err != nil {
			log.Error("failed to load posts", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		view.Page = Paginate(Search(posts, q, blogFields), page, perPage)

	case PanelProjects:
		projects, err := d.projects.ListProjects(ctx, models.ProjectFilter{})
		if err != nil {
			log.Error("failed to load projects", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		view.Page = Paginate(Search(projects, q, projectFields), page, perPage)

	case PanelGallery:
		items, err := d.gallery.ListGalleryItems(ctx, models.GalleryFilter{})
		if err != nil {
			log.Error("failed to load gallery", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		view.Page = Paginate(Search(items, q, galleryFields), page, perPage)

	case PanelContact:
		contacts, err := d.contacts.ListContacts(ctx, models.ContactFilter{})
		if err != nil {
			log.Error("failed to load contacts", sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		view.Page = Paginate(Search(contacts, q, contactFields), page, perPage)

	default:
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownPanel)
	}

	return view, nil
}
