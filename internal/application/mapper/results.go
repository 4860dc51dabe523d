package mapper

import (
	"task-service/internal/application/common"
	"task-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user == nil {
		return nil
	}
	return &common.UserResult{
		ID:    user.ID,
		Email: user.Email,
	}
}

func NewTaskResultFromEntity(task *entities.Task) *common.TaskResult {
	if task == nil {
		return nil
	}
	return &common.TaskResult{
		ID:     task.ID,
		Name:   task.Name,
		UserID: task.UserID,
	}
}
