package repository

import (
	"context"
	"errors"

	"github.com/communitywatch/backend/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	// FindByIdentity matches username OR email OR phone in a single lookup.
	FindByIdentity(ctx context.Context, username, email, phone string) (models.User, error)
}

type Reports interface {
	Create(ctx context.Context, r models.Report) (models.Report, error)
	// List returns reports newest first; typeFilter == "" means all.
	List(ctx context.Context, typeFilter string) ([]models.Report, error)
}
