package response

import (
	"portfolio/internal/domain/models"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error            string            `json:"error"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

type SignUpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SessionResponse struct {
	User models.Session `json:"user"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func Validation(msg string, fields map[string]string) ErrorResponse {
	return ErrorResponse{Error: msg, ValidationErrors: fields}
}

func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
