package services

import (
	"context"
	"log"

	"task-service/internal/apperrors"
	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/application/query"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
)

type UserService struct {
	userRepo   repositories.UserRepository
	jwtService *infrastructure.JWTService
	tokenCache *infrastructure.TokenCache
}

func NewUserService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	tokenCache *infrastructure.TokenCache,
) interfaces.UserService {
	return &UserService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenCache: tokenCache,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	newUser := entities.NewUser(cmd.Email, cmd.Password)
	if err := newUser.HashPassword(); err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) LoginUser(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	// Record the session off the request path; failures never block a
	// successful login.
	go func(userID uint) {
		jti := infrastructure.TokenID(token)
		if err := s.tokenCache.RecordToken(context.Background(), jti, userID, infrastructure.TokenLifetime); err != nil {
			log.Printf("failed to record token in cache: %v", err)
		}
	}(user.ID)

	return &command.LoginUserCommandResult{Token: token}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*query.GetUserQueryResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return &query.GetUserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
