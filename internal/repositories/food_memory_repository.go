package repositories

import (
	"context"
	"strconv"
	"sync"
	"time"

	"annapurna/internal/models/db_models"
	"annapurna/pkg/utils"
)

type InMemoryFoodRepository struct {
	mu     sync.RWMutex
	byID   map[string]*db_models.Food
	order  []string
	nextID int64
}

func NewInMemoryFoodRepository() *InMemoryFoodRepository {
	return &InMemoryFoodRepository{
		byID:   make(map[string]*db_models.Food),
		nextID: time.Now().UnixMilli(),
	}
}

func (r *InMemoryFoodRepository) FindByID(ctx context.Context, id string) (*db_models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	food, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *food
	return &cp, nil
}

func (r *InMemoryFoodRepository) ListAll(ctx context.Context) ([]db_models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	foods := make([]db_models.Food, 0, len(r.order))
	for _, id := range r.order {
		foods = append(foods, *r.byID[id])
	}
	return foods, nil
}

func (r *InMemoryFoodRepository) Insert(ctx context.Context, food *db_models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if food.ID == "" {
		food.ID = strconv.FormatInt(r.nextID, 10)
		r.nextID++
	}
	now := time.Now().Unix()
	food.CreatedAt = now
	food.UpdatedAt = now

	cp := *food
	r.byID[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *InMemoryFoodRepository) Update(ctx context.Context, food *db_models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[food.ID]; !ok {
		return utils.ErrFoodNotFound
	}
	food.UpdatedAt = time.Now().Unix()
	cp := *food
	r.byID[cp.ID] = &cp
	return nil
}

func (r *InMemoryFoodRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return utils.ErrFoodNotFound
	}
	delete(r.byID, id)
	for i, fid := range r.order {
		if fid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryFoodRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}
