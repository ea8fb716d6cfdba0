package purchasemock

import (
	"context"
	"errors"

	domain "flexipay-backend/internal/domain/purchase"
)

// Repo is a function-backed mock that satisfies purchase.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, p *domain.Purchase, items []domain.LineItem) error
	GetByPurchaseIDFn func(ctx context.Context, purchaseID string) (*domain.Purchase, error)
	ListItemsFn       func(ctx context.Context, purchaseID uint64) ([]domain.LineItem, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *Repo) Create(ctx context.Context, p *domain.Purchase, items []domain.LineItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p, items)
	}
	return nil
}

func (m *Repo) GetByPurchaseID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	if m.GetByPurchaseIDFn != nil {
		return m.GetByPurchaseIDFn(ctx, purchaseID)
	}
	return nil, errNotImplemented
}

func (m *Repo) ListItems(ctx context.Context, purchaseID uint64) ([]domain.LineItem, error) {
	if m.ListItemsFn != nil {
		return m.ListItemsFn(ctx, purchaseID)
	}
	return nil, errNotImplemented
}
