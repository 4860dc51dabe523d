package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-service/internal/config"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/db/postgres"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_%s?mode=memory&cache=shared", t.Name())
	db, err := postgres.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = postgres.Close(db)
	})
	return db
}

func newTestUserService(t *testing.T, db *gorm.DB) (*UserService, *infrastructure.JWTService) {
	t.Helper()

	jwtService := infrastructure.NewJWTService("service-test-secret")
	tokenCache := infrastructure.NewTokenCache(&config.Config{})

	svc := NewUserService(postgres.NewUserRepository(db), jwtService, tokenCache)
	return svc.(*UserService), jwtService
}
