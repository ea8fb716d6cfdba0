package mysql

import (
	"context"

	"gorm.io/gorm"

	"flexipay-backend/internal/domain/advance"
	"flexipay-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinAdvanceTx(ctx context.Context, advanceID string, fn func(r uow.Repos, a *advance.Advance) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the advance row up-front to prevent races
		a, err := r.Advances.GetByAdvanceIDForUpdate(ctx, advanceID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Advances:  &AdvanceRepository{db: tx},
		Purchases: &PurchaseRepository{db: tx},
	}
}
