package reviews

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/reviews/models"
)

type fakeReviews struct {
	saved []*domain.Review
	limit int
}

func (f *fakeReviews) Create(_ context.Context, rv *domain.Review) (*domain.Review, error) {
	rv.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, rv)
	return rv, nil
}

func (f *fakeReviews) List(_ context.Context, limit int) ([]*domain.Review, error) {
	f.limit = limit
	return f.saved, nil
}

type fakeUsers struct{}

func (fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return &domain.User{ID: id, Name: "Ravi"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate(t *testing.T) {
	repo := &fakeReviews{}
	svc := NewService(repo, fakeUsers{}, nopLogger{})

	resp, err := svc.Create(context.Background(), 7, &models.CreateReviewRequest{Rating: 5, Comment: "  Great turf  "})
	require.NoError(t, err)
	assert.Equal(t, "Great turf", resp.Comment)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "Ravi", resp.User.Name)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 100, repo.limit)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateReviewRequest
	}{
		{name: "rating below range", req: models.CreateReviewRequest{Rating: 0, Comment: "ok"}},
		{name: "rating above range", req: models.CreateReviewRequest{Rating: 6, Comment: "ok"}},
		{name: "blank comment", req: models.CreateReviewRequest{Rating: 4, Comment: "   "}},
		{name: "comment too long", req: models.CreateReviewRequest{Rating: 4, Comment: strings.Repeat("a", 1001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeReviews{}, fakeUsers{}, nopLogger{})
			_, err := svc.Create(context.Background(), 1, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
