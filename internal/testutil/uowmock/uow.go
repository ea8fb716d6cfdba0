package uowmock

import (
	"context"

	domain "flexipay-backend/internal/domain/advance"
	"flexipay-backend/internal/domain/uow"

	"gorm.io/gorm"
)

// UoW runs the callback against the configured repos without a real
// transaction. WithinAdvanceTx hands back Advance, or LockErr if set,
// mimicking the lock-first behavior of the gorm implementation.
type UoW struct {
	Repos   uow.Repos
	Advance *domain.Advance
	LockErr error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return fn(m.Repos)
}

func (m *UoW) WithinAdvanceTx(ctx context.Context, advanceID string, fn func(r uow.Repos, a *domain.Advance) error) error {
	if m.LockErr != nil {
		return m.LockErr
	}
	if m.Advance == nil || m.Advance.AdvanceID != advanceID {
		return gorm.ErrRecordNotFound
	}
	return fn(m.Repos, m.Advance)
}
