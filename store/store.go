// Package store persists user accounts and travel posts in MongoDB. Every
// post operation that touches an existing record takes the owner's id; a
// record owned by someone else is reported as not found.
package store

import (
	"context"
	"errors"
	"time"

	"traveljournal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type PostStore interface {
	Create(ctx context.Context, post *models.TravelPost) (*models.TravelPost, error)
	FindOwned(ctx context.Context, id, ownerID string) (*models.TravelPost, error)
	Update(ctx context.Context, post *models.TravelPost) error
	Delete(ctx context.Context, id, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.TravelPost, error)
	Search(ctx context.Context, ownerID, query string) ([]models.TravelPost, error)
	FilterByDateRange(ctx context.Context, ownerID string, start, end time.Time) ([]models.TravelPost, error)
}
