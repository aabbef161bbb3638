package repositories

import (
	"context"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"annapurna/internal/infra"
	"annapurna/internal/models/db_models"
)

type HealthLogRepository interface {
	Insert(ctx context.Context, entry *db_models.HealthLog) error
	ListByUser(ctx context.Context, userID string) ([]db_models.HealthLog, error)
	Count(ctx context.Context) (int64, error)
}

type healthLogRepository struct {
	db *gorm.DB
}

func NewHealthLogRepository(db *gorm.DB) HealthLogRepository {
	return &healthLogRepository{db: db}
}

func (r *healthLogRepository) Insert(ctx context.Context, entry *db_models.HealthLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *healthLogRepository) ListByUser(ctx context.Context, userID string) ([]db_models.HealthLog, error) {
	var logs []db_models.HealthLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *healthLogRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.HealthLog{}).Count(&n).Error
	return n, err
}

type InMemoryHealthLogRepository struct {
	mu     sync.RWMutex
	logs   []db_models.HealthLog
	nextID int64
}

func NewInMemoryHealthLogRepository() *InMemoryHealthLogRepository {
	return &InMemoryHealthLogRepository{nextID: time.Now().UnixMilli()}
}

func (r *InMemoryHealthLogRepository) Insert(ctx context.Context, entry *db_models.HealthLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = strconv.FormatInt(r.nextID, 10)
		r.nextID++
	}
	now := time.Now().Unix()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.logs = append(r.logs, *entry)
	return nil
}

func (r *InMemoryHealthLogRepository) ListByUser(ctx context.Context, userID string) ([]db_models.HealthLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []db_models.HealthLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].UserID == userID {
			out = append(out, r.logs[i])
		}
	}
	return out, nil
}

func (r *InMemoryHealthLogRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.logs)), nil
}

type dualHealthLogRepository struct {
	persistent HealthLogRepository
	fallback   HealthLogRepository
	probe      infra.Prober
}

func NewDualHealthLogRepository(persistent, fallback HealthLogRepository, probe infra.Prober) HealthLogRepository {
	return &dualHealthLogRepository{
		persistent: persistent,
		fallback:   fallback,
		probe:      probe,
	}
}

func (d *dualHealthLogRepository) active(ctx context.Context) HealthLogRepository {
	if d.persistent != nil && d.probe.Connected(ctx) {
		return d.persistent
	}
	return d.fallback
}

func (d *dualHealthLogRepository) Insert(ctx context.Context, entry *db_models.HealthLog) error {
	return d.active(ctx).Insert(ctx, entry)
}

func (d *dualHealthLogRepository) ListByUser(ctx context.Context, userID string) ([]db_models.HealthLog, error) {
	return d.active(ctx).ListByUser(ctx, userID)
}

func (d *dualHealthLogRepository) Count(ctx context.Context) (int64, error) {
	return d.active(ctx).Count(ctx)
}
