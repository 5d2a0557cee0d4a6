package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildFileHeader builds a *multipart.FileHeader the way echo hands it to
// handlers, by round-tripping through an actual multipart request.
func buildFileHeader(t *testing.T, fileName string, content []byte) *multipart.FileHeader {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", fileName)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestLocalStorageRoundTrip(t *testing.T) {
	storage := NewLocalStorage(t.TempDir())
	assert.True(t, storage.IsConfigured())

	ctx := context.Background()
	file := buildFileHeader(t, "exhibit.txt", []byte("exhibit A contents"))

	result, err := storage.Upload(ctx, file, "cases/case-1/exhibit.txt")
	assert.NoError(t, err)
	assert.Equal(t, "cases/case-1/exhibit.txt", result.Key)
	assert.Equal(t, "exhibit.txt", result.FileName)
	assert.Equal(t, int64(len("exhibit A contents")), result.FileSize)

	reader, contentType, err := storage.Get(ctx, result.Key)
	assert.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Equal(t, "exhibit A contents", string(content))
	assert.Equal(t, "text/plain", contentType)

	assert.NoError(t, storage.Delete(ctx, result.Key))

	_, _, err = storage.Get(ctx, result.Key)
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	storage := NewLocalStorage(t.TempDir())
	assert.NoError(t, storage.Delete(context.Background(), "cases/none/missing.txt"))
}
