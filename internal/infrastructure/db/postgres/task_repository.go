package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	taskModel := TaskModel{
		Name:   task.Name,
		UserID: task.UserID,
	}

	if err := r.db.WithContext(ctx).Create(&taskModel).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]entities.Task, error) {
	var taskModels []TaskModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&taskModels).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, *r.mapToEntity(&taskModels[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) mapToEntity(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		ID:        taskModel.ID,
		CreatedAt: taskModel.CreatedAt,
		UpdatedAt: taskModel.UpdatedAt,
		Name:      taskModel.Name,
		UserID:    taskModel.UserID,
	}
}
