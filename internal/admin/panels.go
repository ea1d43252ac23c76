// Package admin builds the admin dashboard: the tab list, per-panel counts and
// the searchable, paginated panel listings.
package admin

import (
	"strings"

	"portfolio/internal/domain/models"
)

type Panel string

const (
	PanelContact  Panel = "contact"
	PanelProjects Panel = "projects"
	PanelGallery  Panel = "gallery"
	PanelBlog     Panel = "blog"
)

// Tabs is the dashboard tab order.
var Tabs = []Panel{PanelContact, PanelProjects, PanelGallery, PanelBlog}

func ParsePanel(s string) (Panel, bool) {
	for _, p := range Tabs {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

func (p Panel) PerPage() int {
	switch p {
	case PanelContact:
		return 10
	case PanelGallery:
		return 12
	default:
		return 8
	}
}

// Page is one page of a filtered panel listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

// Paginate slices items for the 1-based page. Out of range pages are clamped.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = len(items)
		if perPage == 0 {
			perPage = 1
		}
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
	}
}

// Search keeps the items where any field contains q, case-insensitively.
// An empty q keeps everything.
func Search[T any](items []T, q string, fields func(T) []string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

func blogFields(p models.BlogPost) []string {
	return append([]string{p.Title, p.Excerpt, p.Category}, p.Tags...)
}

func projectFields(p models.Project) []string {
	return append([]string{p.Title, p.Description}, p.Technologies...)
}

func galleryFields(g models.GalleryItem) []string {
	return []string{g.Title, g.Caption}
}

func contactFields(c models.Contact) []string {
	return []string{c.Name, c.Email, c.Subject}
}
