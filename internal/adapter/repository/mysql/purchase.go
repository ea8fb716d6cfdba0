package mysql

import (
	"context"

	"gorm.io/gorm"

	purchaseDomain "flexipay-backend/internal/domain/purchase"
)

type PurchaseRepository struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository { return &PurchaseRepository{db: db} }

func (r *PurchaseRepository) Create(ctx context.Context, p *purchaseDomain.Purchase, items []purchaseDomain.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PurchaseID = p.ID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *PurchaseRepository) GetByPurchaseID(ctx context.Context, purchaseID string) (*purchaseDomain.Purchase, error) {
	var out purchaseDomain.Purchase
	res := r.db.WithContext(ctx).Where("purchase_id = ?", purchaseID).First(&out)
	return &out, res.Error
}

func (r *PurchaseRepository) ListItems(ctx context.Context, purchaseID uint64) ([]purchaseDomain.LineItem, error) {
	var out []purchaseDomain.LineItem
	res := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("seq ASC").
		Find(&out)
	return out, res.Error
}
