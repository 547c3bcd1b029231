package mediastore

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

var (
	// ErrUpload возвращается, если хранилище не приняло файл
	ErrUpload = fmt.Errorf("%w: mediastore: upload failed", domain.ErrExternalService)

	// ErrDestroy возвращается, если файл не удалось удалить
	ErrDestroy = fmt.Errorf("%w: mediastore: destroy failed", domain.ErrExternalService)
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// Asset загруженный файл
type Asset struct {
	URL      string
	PublicID string
}

// Store хранилище изображений галереи в Cloudinary
type Store struct {
	api    uploadAPI
	folder string
	log    Logger
}

// New создает хранилище по учетным данным Cloudinary
func New(cloudName, apiKey, apiSecret, folder string, log Logger) (*Store, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("mediastore: init cloudinary: %w", err)
	}
	return newStore(&cld.Upload, folder, log), nil
}

func newStore(api uploadAPI, folder string, log Logger) *Store {
	return &Store{api: api, folder: folder, log: log}
}

// Upload загружает изображение в папку галереи
func (s *Store) Upload(ctx context.Context, file io.Reader, filename string) (*Asset, error) {
	resp, err := s.api.Upload(ctx, file, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUpload, filename, err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("%w: %s: %s", ErrUpload, filename, resp.Error.Message)
	}

	s.log.Info("Uploaded %s: public_id=%s", filename, resp.PublicID)
	return &Asset{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// Destroy удаляет изображение
func (s *Store) Destroy(ctx context.Context, publicID string) error {
	resp, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDestroy, publicID, err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("%w: %s: %s", ErrDestroy, publicID, resp.Error.Message)
	}

	s.log.Info("Destroyed %s: result=%s", publicID, resp.Result)
	return nil
}
