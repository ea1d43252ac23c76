package dto

import "mime/multipart"

type UploadInput struct {
	File *multipart.FileHeader `form:"file"`
	Type string                `form:"type"`
}
