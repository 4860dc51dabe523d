package interfaces

import (
	"context"

	"task-service/internal/application/command"
	"task-service/internal/application/query"
)

type TaskService interface {
	CreateTask(ctx context.Context, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	ListTasks(ctx context.Context, userID uint) (*query.ListTasksQueryResult, error)
}
