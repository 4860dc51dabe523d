package services

import (
	"context"
	"strings"

	"task-service/internal/application/command"
	"task-service/internal/application/common"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/application/query"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type TaskService struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) interfaces.TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	task := entities.NewTask(strings.TrimSpace(cmd.Name), cmd.UserID)

	createdTask, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	return &command.CreateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(createdTask),
	}, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint) (*query.ListTasksQueryResult, error) {
	tasks, err := s.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]*common.TaskResult, 0, len(tasks))
	for i := range tasks {
		results = append(results, mapper.NewTaskResultFromEntity(&tasks[i]))
	}

	return &query.ListTasksQueryResult{Result: results}, nil
}
