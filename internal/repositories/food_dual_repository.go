package repositories

import (
	"context"

	"annapurna/internal/infra"
	"annapurna/internal/models/db_models"
)

// Same per-call routing as the user store; the catalog follows the
// database wherever it currently is.
type dualFoodRepository struct {
	persistent FoodRepository
	fallback   FoodRepository
	probe      infra.Prober
}

func NewDualFoodRepository(persistent, fallback FoodRepository, probe infra.Prober) FoodRepository {
	return &dualFoodRepository{
		persistent: persistent,
		fallback:   fallback,
		probe:      probe,
	}
}

func (d *dualFoodRepository) active(ctx context.Context) FoodRepository {
	if d.persistent != nil && d.probe.Connected(ctx) {
		return d.persistent
	}
	return d.fallback
}

func (d *dualFoodRepository) FindByID(ctx context.Context, id string) (*db_models.Food, error) {
	return d.active(ctx).FindByID(ctx, id)
}

func (d *dualFoodRepository) ListAll(ctx context.Context) ([]db_models.Food, error) {
	return d.active(ctx).ListAll(ctx)
}

func (d *dualFoodRepository) Insert(ctx context.Context, food *db_models.Food) error {
	return d.active(ctx).Insert(ctx, food)
}

func (d *dualFoodRepository) Update(ctx context.Context, food *db_models.Food) error {
	return d.active(ctx).Update(ctx, food)
}

func (d *dualFoodRepository) Delete(ctx context.Context, id string) error {
	return d.active(ctx).Delete(ctx, id)
}

func (d *dualFoodRepository) Count(ctx context.Context) (int64, error) {
	return d.active(ctx).Count(ctx)
}
