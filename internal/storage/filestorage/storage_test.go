package storage_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	fserrors "portfolio/internal/storage"
	storage "portfolio/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T) *storage.LocalFileStorage {
	t.Helper()

	fs, err := storage.NewLocalFileStorage(t.TempDir(), "/images")
	require.NoError(t, err)

	return fs
}

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful save", func(t *testing.T) {
		testFile := createTestFile(t, "test.txt", "test content")

		relPath, size, err := fs.Save(ctx, testFile, "blog", "123-test.txt")
		require.NoError(t, err)

		assert.Equal(t, "blog/123-test.txt", relPath)
		assert.Equal(t, int64(12), size)

		data, err := os.ReadFile(fs.GetFullPath(relPath))
		require.NoError(t, err)
		assert.Equal(t, "test content", string(data))
	})

	t.Run("save with empty subpath", func(t *testing.T) {
		testFile := createTestFile(t, "test.txt", "test content")

		relPath, _, err := fs.Save(ctx, testFile, "", "test.txt")
		require.NoError(t, err)
		assert.Equal(t, "test.txt", relPath)
	})

	t.Run("empty filename", func(t *testing.T) {
		testFile := createTestFile(t, "test.txt", "test content")

		_, _, err := fs.Save(ctx, testFile, "blog", "")
		assert.ErrorIs(t, err, fserrors.ErrEmptyFilename)
	})

	t.Run("save with context cancellation", func(t *testing.T) {
		testFile := createTestFile(t, "test.txt", "test content")

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := fs.Save(ctx, testFile, "blog", "cancelled.txt")
		assert.ErrorIs(t, err, context.Canceled)

		_, err = os.Stat(filepath.Join(fs.GetBaseDir(), "blog", "cancelled.txt"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("bytes are written unchanged", func(t *testing.T) {
		payload := string([]byte{0x00, 0xff, 0x10, 'x'})
		testFile := createTestFile(t, "raw.bin", payload)

		relPath, _, err := fs.Save(ctx, testFile, "gallery", "raw.bin")
		require.NoError(t, err)

		data, err := os.ReadFile(fs.GetFullPath(relPath))
		require.NoError(t, err)
		assert.Equal(t, payload, string(data))
	})
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		testFile := createTestFile(t, "to_delete.txt", "content")

		relPath, _, err := fs.Save(ctx, testFile, "", "to_delete.txt")
		require.NoError(t, err)

		require.NoError(t, fs.Delete(ctx, relPath))

		_, err = os.Stat(fs.GetFullPath(relPath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete non-existent file", func(t *testing.T) {
		err := fs.Delete(ctx, "nonexistent.txt")
		assert.ErrorIs(t, err, fserrors.ErrFileNotFound)
	})
}

func TestLocalFileStorage_Paths(t *testing.T) {
	fs := setupFileStorage(t)

	assert.Equal(t, filepath.Join(fs.GetBaseDir(), "test", "file.txt"), fs.GetFullPath("test/file.txt"))
	assert.Equal(t, "/images/projects/1-a.png", fs.URL("projects/1-a.png"))
}

func TestSaveErrorCases(t *testing.T) {
	fs := setupFileStorage(t)

	invalidFile := &multipart.FileHeader{Filename: "bad.txt"}

	_, _, err := fs.Save(context.Background(), invalidFile, "", "bad.txt")
	assert.Error(t, err)
}

func TestConcurrentSaves(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()
	testFile := createTestFile(t, "concurrent.txt", "data")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := fs.Save(ctx, testFile, "concurrent", fmt.Sprintf("%d-concurrent.txt", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	entries, err := os.ReadDir(filepath.Join(fs.GetBaseDir(), "concurrent"))
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}
