package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-service/internal/apperrors"
	"task-service/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := Open(sqlite.Open(dsn))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = Close(db)
	})
	return db
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	created, err := repo.Create(ctx, entities.NewUser("a@x.com", "hashed-password"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "a@x.com", created.Email)

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserRepositoryFindMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user, err := repo.FindByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Create(ctx, entities.NewUser("a@x.com", "hash-one"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, entities.NewUser("a@x.com", "hash-two"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestTaskRepositoryCreateAndList(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	taskRepo := NewTaskRepository(db)

	owner, err := userRepo.Create(ctx, entities.NewUser("owner@x.com", "hash"))
	require.NoError(t, err)

	first, err := taskRepo.Create(ctx, entities.NewTask("buy milk", owner.ID))
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := taskRepo.Create(ctx, entities.NewTask("walk dog", owner.ID))
	require.NoError(t, err)

	tasks, err := taskRepo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// Insertion order.
	assert.Equal(t, first.ID, tasks[0].ID)
	assert.Equal(t, "buy milk", tasks[0].Name)
	assert.Equal(t, second.ID, tasks[1].ID)
	assert.Equal(t, "walk dog", tasks[1].Name)
}

func TestTaskRepositoryOwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	taskRepo := NewTaskRepository(db)

	alice, err := userRepo.Create(ctx, entities.NewUser("alice@x.com", "hash"))
	require.NoError(t, err)
	bob, err := userRepo.Create(ctx, entities.NewUser("bob@x.com", "hash"))
	require.NoError(t, err)

	_, err = taskRepo.Create(ctx, entities.NewTask("alice task", alice.ID))
	require.NoError(t, err)

	bobTasks, err := taskRepo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobTasks)
}
