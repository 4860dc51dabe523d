package repositories

import (
	"context"

	"task-service/internal/domain/entities"
)

// TaskRepository is the task store. ListByUser returns tasks in
// insertion order.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) (*entities.Task, error)
	ListByUser(ctx context.Context, userID uint) ([]entities.Task, error)
}
