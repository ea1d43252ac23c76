package dto

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type MarkContactRequest struct {
	Read *bool `json:"read" validate:"required"`
}
