package interfaces

import (
	"context"

	"task-service/internal/application/command"
	"task-service/internal/application/query"
)

type UserService interface {
	RegisterUser(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	LoginUser(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	GetProfile(ctx context.Context, userID uint) (*query.GetUserQueryResult, error)
}
