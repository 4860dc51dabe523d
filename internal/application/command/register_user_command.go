package command

import "task-service/internal/application/common"

type RegisterUserCommand struct {
	Email    string
	Password string
}

type RegisterUserCommandResult struct {
	Result *common.UserResult
}
