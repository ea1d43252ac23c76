package dto

type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Content      string   `json:"content"`
	Technologies []string `json:"technologies,omitempty"`
	Image        string   `json:"image"`
	DemoURL      *string  `json:"demoUrl,omitempty"`
	GithubURL    *string  `json:"githubUrl,omitempty"`
	Featured     bool     `json:"featured"`
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title,omitempty"`
	Slug         *string   `json:"slug,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Content      *string   `json:"content,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Image        *string   `json:"image,omitempty"`
	DemoURL      *string   `json:"demoUrl,omitempty"`
	GithubURL    *string   `json:"githubUrl,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}
