package dto

type CreateGalleryItemRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

type UpdateGalleryItemRequest struct {
	Title    *string `json:"title,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Caption  *string `json:"caption,omitempty"`
	Category *string `json:"category,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
}
