package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"annapurna/internal/models/db_models"
	"annapurna/pkg/utils"
)

type FoodRepository interface {
	FindByID(ctx context.Context, id string) (*db_models.Food, error)
	ListAll(ctx context.Context) ([]db_models.Food, error)
	Insert(ctx context.Context, food *db_models.Food) error
	Update(ctx context.Context, food *db_models.Food) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) FindByID(ctx context.Context, id string) (*db_models.Food, error) {
	var food db_models.Food
	err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) ListAll(ctx context.Context) ([]db_models.Food, error) {
	var foods []db_models.Food
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&foods).Error
	return foods, err
}

func (r *foodRepository) Insert(ctx context.Context, food *db_models.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) Update(ctx context.Context, food *db_models.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Food{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrFoodNotFound
	}
	return nil
}

func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Food{}).Count(&n).Error
	return n, err
}
