package command

import "task-service/internal/application/common"

type CreateTaskCommand struct {
	Name   string
	UserID uint
}

type CreateTaskCommandResult struct {
	Result *common.TaskResult
}
