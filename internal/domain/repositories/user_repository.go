package repositories

import (
	"context"

	"task-service/internal/domain/entities"
)

// UserRepository is the credential store. Find methods return
// (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
