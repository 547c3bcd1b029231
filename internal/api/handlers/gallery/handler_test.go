package gallery

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	galleryService "github.com/m04kA/TurfBookingService/internal/service/gallery"
	"github.com/m04kA/TurfBookingService/internal/service/gallery/models"
)

type fakeService struct {
	GalleryService
	added     *models.AddImageRequest
	payload   []byte
	addErr    error
	deleteErr error
}

func (f *fakeService) AddImage(_ context.Context, req *models.AddImageRequest) (*models.ImageResponse, error) {
	f.added = req
	if req.File != nil {
		f.payload, _ = io.ReadAll(req.File)
	}
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &models.ImageResponse{ID: 9, Category: req.CategoryName, URL: "https://cdn.example.com/9.jpg"}, nil
}

func (f *fakeService) DeleteImage(context.Context, int64) error {
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func multipartRequest(t *testing.T, category string, file []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField(formFieldCategory, category))
	if file != nil {
		part, err := mw.CreateFormFile(formFieldImage, "pitch.jpg")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAddImage_Multipart(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.AddImage(rec, multipartRequest(t, "Night Matches", []byte("jpeg-bytes")))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, svc.added)
	assert.Equal(t, "Night Matches", svc.added.CategoryName)
	assert.Equal(t, "pitch.jpg", svc.added.Filename)
	assert.Equal(t, []byte("jpeg-bytes"), svc.payload)
}

func TestAddImage_JSONLink(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/gallery",
		strings.NewReader(`{"categoryName":"Events","url":"https://img.example.com/a.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.AddImage(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, svc.added.File)
	assert.Equal(t, "https://img.example.com/a.jpg", svc.added.URL)
}

func TestAddImage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing fields", galleryService.ErrInvalidInput, http.StatusBadRequest},
		{"storage disabled", galleryService.ErrUploadUnavailable, http.StatusBadGateway},
		{"internal", galleryService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{addErr: tt.err}, nopLogger{})
			rec := httptest.NewRecorder()
			h.AddImage(rec, multipartRequest(t, "Events", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteImage(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/gallery/4", nil), map[string]string{"id": "4"})

	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).DeleteImage(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{deleteErr: galleryService.ErrImageNotFound}, nopLogger{}).DeleteImage(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	bad := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/gallery/x", nil), map[string]string{"id": "x"})
	rec = httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).DeleteImage(rec, bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
