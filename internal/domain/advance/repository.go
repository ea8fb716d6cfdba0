package advance

import "context"

type Repository interface {
	// Create inserts the advance and its installments together.
	Create(ctx context.Context, a *Advance, schedule []Installment) error
	GetByAdvanceID(ctx context.Context, advanceID string) (*Advance, error)
	GetByAdvanceIDForUpdate(ctx context.Context, advanceID string) (*Advance, error)
	GetActiveByBorrowerID(ctx context.Context, borrowerID string) (*Advance, error)
	ListInstallments(ctx context.Context, advanceID uint64) ([]Installment, error)
	GetInstallmentForUpdate(ctx context.Context, advanceID uint64, seq int) (*Installment, error)
	CountPendingInstallments(ctx context.Context, advanceID uint64) (int64, error)
	Save(ctx context.Context, a *Advance) error
	SaveInstallment(ctx context.Context, i *Installment) error
}
