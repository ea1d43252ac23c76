package dto

type CreateBlogPostRequest struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage string   `json:"coverImage"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	Featured   bool     `json:"featured"`
	// Published defaults to true when omitted.
	Published *bool `json:"published,omitempty"`
}

// UpdateBlogPostRequest is merged field by field into the stored post; nil means unchanged.
type UpdateBlogPostRequest struct {
	Title      *string   `json:"title,omitempty"`
	Slug       *string   `json:"slug,omitempty"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Content    *string   `json:"content,omitempty"`
	CoverImage *string   `json:"coverImage,omitempty"`
	Category   *string   `json:"category,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Featured   *bool     `json:"featured,omitempty"`
	Published  *bool     `json:"published,omitempty"`
}

type PublishBlogPostRequest struct {
	Published *bool `json:"published" validate:"required"`
}
