package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"annapurna/internal/models/db_models"
	"annapurna/internal/models/request_models"
	"annapurna/internal/repositories"
	"annapurna/pkg/utils"
)

func newAdminFixture() (AdminServiceInterface, *repositories.InMemoryUserRepository, *repositories.InMemoryFoodRepository, *repositories.InMemoryHealthLogRepository) {
	users := repositories.NewInMemoryUserRepository()
	foods := repositories.NewInMemoryFoodRepository()
	logs := repositories.NewInMemoryHealthLogRepository()
	return NewAdminService(users, foods, logs), users, foods, logs
}

func TestAdminService_ListUsersSanitized(t *testing.T) {
	t.Parallel()

	svc, users, _, _ := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, users.Insert(ctx, &db_models.User{
		Name: "A", Email: "a@example.com", PasswordHash: "$2a$10$hash",
	}))

	out, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a@example.com", out[0].Email)
	assert.True(t, out[0].IsAdmin) // first fallback account
}

func TestAdminService_UpdateFoodPartial(t *testing.T) {
	t.Parallel()

	svc, _, foods, _ := newAdminFixture()
	ctx := context.Background()

	food := &db_models.Food{Name: "Ghee", Category: "fat", Calories: 120}
	require.NoError(t, foods.Insert(ctx, food))

	newName := "Cow Ghee"
	updated, err := svc.UpdateFood(ctx, food.ID, request_models.UpdateFoodRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Cow Ghee", updated.Name)
	assert.Equal(t, "fat", updated.Category)
	assert.Equal(t, 120, updated.Calories)

	_, err = svc.UpdateFood(ctx, "missing-id", request_models.UpdateFoodRequest{Name: &newName})
	assert.True(t, errors.Is(err, utils.ErrFoodNotFound))
}

func TestAdminService_DeleteFood(t *testing.T) {
	t.Parallel()

	svc, _, foods, _ := newAdminFixture()
	ctx := context.Background()

	food := &db_models.Food{Name: "Turmeric"}
	require.NoError(t, foods.Insert(ctx, food))

	require.NoError(t, svc.DeleteFood(ctx, food.ID))
	assert.True(t, errors.Is(svc.DeleteFood(ctx, food.ID), utils.ErrFoodNotFound))
}

func TestAdminService_Stats(t *testing.T) {
	t.Parallel()

	svc, users, foods, logs := newAdminFixture()
	ctx := context.Background()

	require.NoError(t, users.Insert(ctx, &db_models.User{Email: "s1@example.com"}))
	require.NoError(t, users.Insert(ctx, &db_models.User{Email: "s2@example.com"}))
	require.NoError(t, foods.Insert(ctx, &db_models.Food{Name: "Amla"}))
	require.NoError(t, logs.Insert(ctx, &db_models.HealthLog{UserID: "u", Date: "2025-01-01"}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Users)
	assert.Equal(t, int64(1), stats.Foods)
	assert.Equal(t, int64(1), stats.HealthLogs)
}
