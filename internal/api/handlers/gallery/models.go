package gallery

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/service/gallery/models"
)

const (
	// maxUploadBytes ограничение размера загружаемого изображения
	maxUploadBytes = 10 << 20

	formFieldImage    = "image"
	formFieldCategory = "categoryName"
	formFieldURL      = "url"
)

// AddImageJSONRequest добавление изображения по готовой ссылке
type AddImageJSONRequest struct {
	CategoryName string `json:"categoryName"`
	URL          string `json:"url"`
}

// parseAddImage читает multipart форму с файлом либо JSON со ссылкой.
// Загруженный файл возвращается отдельно, его закрывает вызывающий (может быть nil)
func parseAddImage(w http.ResponseWriter, r *http.Request) (*models.AddImageRequest, multipart.File, error) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var body AddImageJSONRequest
		if err := handlers.DecodeJSON(r, &body); err != nil {
			return nil, nil, err
		}
		return &models.AddImageRequest{CategoryName: body.CategoryName, URL: body.URL}, nil, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, err
	}

	req := &models.AddImageRequest{
		CategoryName: r.FormValue(formFieldCategory),
		URL:          r.FormValue(formFieldURL),
	}

	file, header, err := r.FormFile(formFieldImage)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, nil, nil
	case err != nil:
		return nil, nil, err
	}

	req.File = file
	req.Filename = header.Filename
	return req, file, nil
}
