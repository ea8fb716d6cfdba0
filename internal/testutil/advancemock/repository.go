package advancemock

import (
	"context"
	"errors"

	domain "flexipay-backend/internal/domain/advance"
)

// Repo is a function-backed mock that satisfies advance.Repository.
// Only the methods a test cares about need to be set.
type Repo struct {
	CreateFn                  func(ctx context.Context, a *domain.Advance, schedule []domain.Installment) error
	GetByAdvanceIDFn          func(ctx context.Context, advanceID string) (*domain.Advance, error)
	GetByAdvanceIDForUpdateFn func(ctx context.Context, advanceID string) (*domain.Advance, error)
	GetActiveByBorrowerIDFn   func(ctx context.Context, borrowerID string) (*domain.Advance, error)
	ListInstallmentsFn        func(ctx context.Context, advanceID uint64) ([]domain.Installment, error)
	GetInstallmentForUpdateFn func(ctx context.Context, advanceID uint64, seq int) (*domain.Installment, error)
	CountPendingFn            func(ctx context.Context, advanceID uint64) (int64, error)
	SaveFn                    func(ctx context.Context, a *domain.Advance) error
	SaveInstallmentFn         func(ctx context.Context, i *domain.Installment) error
}

var errNotImplemented = errors.New("not implemented")

func (m *Repo) Create(ctx context.Context, a *domain.Advance, schedule []domain.Installment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a, schedule)
	}
	return nil
}

func (m *Repo) GetByAdvanceID(ctx context.Context, advanceID string) (*domain.Advance, error) {
	if m.GetByAdvanceIDFn != nil {
		return m.GetByAdvanceIDFn(ctx, advanceID)
	}
	return nil, errNotImplemented
}

func (m *Repo) GetByAdvanceIDForUpdate(ctx context.Context, advanceID string) (*domain.Advance, error) {
	if m.GetByAdvanceIDForUpdateFn != nil {
		return m.GetByAdvanceIDForUpdateFn(ctx, advanceID)
	}
	return nil, errNotImplemented
}

func (m *Repo) GetActiveByBorrowerID(ctx context.Context, borrowerID string) (*domain.Advance, error) {
	if m.GetActiveByBorrowerIDFn != nil {
		return m.GetActiveByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, errNotImplemented
}

func (m *Repo) ListInstallments(ctx context.Context, advanceID uint64) ([]domain.Installment, error) {
	if m.ListInstallmentsFn != nil {
		return m.ListInstallmentsFn(ctx, advanceID)
	}
	return nil, errNotImplemented
}

func (m *Repo) GetInstallmentForUpdate(ctx context.Context, advanceID uint64, seq int) (*domain.Installment, error) {
	if m.GetInstallmentForUpdateFn != nil {
		return m.GetInstallmentForUpdateFn(ctx, advanceID, seq)
	}
	return nil, errNotImplemented
}

func (m *Repo) CountPendingInstallments(ctx context.Context, advanceID uint64) (int64, error) {
	if m.CountPendingFn != nil {
		return m.CountPendingFn(ctx, advanceID)
	}
	return 0, errNotImplemented
}

func (m *Repo) Save(ctx context.Context, a *domain.Advance) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) SaveInstallment(ctx context.Context, i *domain.Installment) error {
	if m.SaveInstallmentFn != nil {
		return m.SaveInstallmentFn(ctx, i)
	}
	return nil
}
