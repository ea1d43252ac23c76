package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	fserrors "portfolio/internal/storage"
)

// FileStorage stores uploaded files under a public asset root.
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, subPath, filename string) (relPath string, fileSize int64, err error)
	Delete(ctx context.Context, relPath string) error
	GetFullPath(relPath string) string
	URL(relPath string) string
	GetBaseDir() string
}

// LocalFileStorage writes files to the local disk.
type LocalFileStorage struct {
	baseDir string // e.g. "./public/images"
	baseURL string // e.g. "/images"
}

func NewLocalFileStorage(baseDir, baseURL string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: baseURL,
	}, nil
}

// Save writes the file as-is to baseDir/subPath/filename. Content is not inspected.
func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, subPath, filename string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if filename == "" {
		return "", 0, fserrors.ErrEmptyFilename
	}

	filePath := filepath.Join(s.baseDir, subPath, filename)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create directories: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(filePath)
			return "", 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
	case <-ctx.Done():
		<-done
		_ = os.Remove(filePath)
		return "", 0, ctx.Err()
	}

	return path.Join(filepath.ToSlash(subPath), filename), size, nil
}

func (s *LocalFileStorage) Delete(ctx context.Context, relPath string) error {
	if err := os.Remove(s.GetFullPath(relPath)); err != nil {
		if os.IsNotExist(err) {
			return fserrors.ErrFileNotFound
		}
		return err
	}

	return nil
}

func (s *LocalFileStorage) GetFullPath(relPath string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(relPath))
}

// URL returns the public URL path for a stored file.
func (s *LocalFileStorage) URL(relPath string) string {
	return path.Join(s.baseURL, relPath)
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}
