package repositories

import (
	"context"

	"annapurna/internal/infra"
	"annapurna/internal/models/db_models"
)

// dualUserRepository routes each call to the persistent backend when
// the prober reports connectivity, otherwise to the in-memory
// fallback. The probe runs per call, never cached, so a database that
// comes back mid-session is used on the very next operation. Which
// accounts are visible can change when the route flips; that is the
// documented trade of this design.
type dualUserRepository struct {
	persistent UserRepository
	fallback   UserRepository
	probe      infra.Prober
}

func NewDualUserRepository(persistent, fallback UserRepository, probe infra.Prober) UserRepository {
	return &dualUserRepository{
		persistent: persistent,
		fallback:   fallback,
		probe:      probe,
	}
}

func (d *dualUserRepository) active(ctx context.Context) UserRepository {
	if d.persistent != nil && d.probe.Connected(ctx) {
		return d.persistent
	}
	return d.fallback
}

func (d *dualUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return d.active(ctx).FindByEmail(ctx, email)
}

func (d *dualUserRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return d.active(ctx).FindByID(ctx, id)
}

func (d *dualUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	return d.active(ctx).Insert(ctx, user)
}

func (d *dualUserRepository) Update(ctx context.Context, user *db_models.User) error {
	return d.active(ctx).Update(ctx, user)
}

func (d *dualUserRepository) Count(ctx context.Context) (int64, error) {
	return d.active(ctx).Count(ctx)
}

func (d *dualUserRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	return d.active(ctx).ListAll(ctx)
}
