package purchase

import "context"

type Repository interface {
	// Create inserts the purchase and its schedule rows together.
	Create(ctx context.Context, p *Purchase, items []LineItem) error
	GetByPurchaseID(ctx context.Context, purchaseID string) (*Purchase, error)
	ListItems(ctx context.Context, purchaseID uint64) ([]LineItem, error)
}
