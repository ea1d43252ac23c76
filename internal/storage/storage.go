package storage

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrNoSuchKey     = errors.New("no such key")
)

var (
	ErrEmptyFilename = errors.New("empty filename")
	ErrFileNotFound  = errors.New("file not found")
)
