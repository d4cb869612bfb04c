package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader substitutes the media host: it records filenames and fails on
// command.
type fakeUploader struct {
	uploaded []string
	failAt   int // 1-based index of the upload that fails; 0 = never
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	if f.failAt > 0 && len(f.uploaded)+1 == f.failAt {
		return "", errors.New("rejected")
	}
	f.uploaded = append(f.uploaded, filename)
	return "https://res.cloudinary.com/demo/" + filename, nil
}

func uploadRouter(h *UploadHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/upload", h.UploadMedia)
	r.GET("/api/upload/config", h.Configured)
	return r
}

func multipartBody(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		fmt.Fprint(fw, "file-content")
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadNotConfigured(t *testing.T) {
	r := uploadRouter(&UploadHandler{})

	body, contentType := multipartBody(t, "a.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	requireStatus(t, w, http.StatusServiceUnavailable)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/upload/config", nil))
	assert.JSONEq(t, `{"configured": false}`, w.Body.String())
}

func TestUploadBatch(t *testing.T) {
	fake := &fakeUploader{}
	r := uploadRouter(&UploadHandler{Uploader: fake})

	body, contentType := multipartBody(t, "a.jpg", "b.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	requireStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"urls": ["https://res.cloudinary.com/demo/a.jpg", "https://res.cloudinary.com/demo/b.jpg"]}`, w.Body.String())
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, fake.uploaded)
}

func TestUploadFailureAbortsRemainingBatch(t *testing.T) {
	fake := &fakeUploader{failAt: 2}
	r := uploadRouter(&UploadHandler{Uploader: fake})

	body, contentType := multipartBody(t, "a.jpg", "b.jpg", "c.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	requireStatus(t, w, http.StatusBadGateway)
	// The first file stays uploaded; the failure stops everything after it.
	assert.Equal(t, []string{"a.jpg"}, fake.uploaded)
}

func TestUploadNoFiles(t *testing.T) {
	fake := &fakeUploader{}
	r := uploadRouter(&UploadHandler{Uploader: fake})

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	requireStatus(t, w, http.StatusBadRequest)
	assert.Empty(t, fake.uploaded)
}
