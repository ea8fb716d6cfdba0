package uow

import (
	"context"

	"flexipay-backend/internal/domain/advance"
	"flexipay-backend/internal/domain/purchase"
)

type Repos struct {
	Advances  advance.Repository
	Purchases purchase.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the advance row first, then pass it in
	WithinAdvanceTx(ctx context.Context, advanceID string, fn func(r Repos, a *advance.Advance) error) error
}
