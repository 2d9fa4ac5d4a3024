package notificationsvc

import (
	"context"
	"errors"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
)

// ErrNotFound covers both a missing row and one owned by someone else;
// callers get a 404 either way.
var ErrNotFound = errors.New("notification not found")

type Repo interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (bool, error)
}

type Service interface {
	List(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.r.ListByUser(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, id int64) error {
	ok, err := s.r.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
