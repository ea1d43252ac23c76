package models

// UploadCategory selects the public image directory an upload lands in.
type UploadCategory string

const (
	UploadProject UploadCategory = "project"
	UploadBlog    UploadCategory = "blog"
	UploadGallery UploadCategory = "gallery"
)

// ParseUploadCategory maps the form value to a category; anything unknown is gallery.
func ParseUploadCategory(v string) UploadCategory {
	switch UploadCategory(v) {
	case UploadProject:
		return UploadProject
	case UploadBlog:
		return UploadBlog
	default:
		return UploadGallery
	}
}

// Dir is the directory under the images root.
func (c UploadCategory) Dir() string {
	switch c {
	case UploadProject:
		return "projects"
	case UploadBlog:
		return "blog"
	default:
		return "gallery"
	}
}

type Upload struct {
	URL      string         `json:"url"`
	Category UploadCategory `json:"type"`
	Filename string         `json:"filename"`
	Size     int64          `json:"size"`
	Message  string         `json:"message"`
}
