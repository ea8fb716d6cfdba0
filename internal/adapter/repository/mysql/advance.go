package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	advanceDomain "flexipay-backend/internal/domain/advance"
)

type AdvanceRepository struct{ db *gorm.DB }

func NewAdvanceRepository(db *gorm.DB) *AdvanceRepository { return &AdvanceRepository{db: db} }

// Create inserts the advance and its schedule in one transaction so a
// half-written schedule can never be observed.
func (r *AdvanceRepository) Create(ctx context.Context, a *advanceDomain.Advance, schedule []advanceDomain.Installment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		for i := range schedule {
			schedule[i].AdvanceID = a.ID
		}
		if len(schedule) == 0 {
			return nil
		}
		return tx.Create(&schedule).Error
	})
}

func (r *AdvanceRepository) Save(ctx context.Context, a *advanceDomain.Advance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AdvanceRepository) GetByAdvanceID(ctx context.Context, advanceID string) (*advanceDomain.Advance, error) {
	var out advanceDomain.Advance
	res := r.db.WithContext(ctx).Where("advance_id = ?", advanceID).First(&out)
	return &out, res.Error
}

func (r *AdvanceRepository) GetByAdvanceIDForUpdate(ctx context.Context, advanceID string) (*advanceDomain.Advance, error) {
	var out advanceDomain.Advance
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("advance_id = ?", advanceID).
		First(&out)
	return &out, res.Error
}

func (r *AdvanceRepository) GetActiveByBorrowerID(ctx context.Context, borrowerID string) (*advanceDomain.Advance, error) {
	var out advanceDomain.Advance
	res := r.db.WithContext(ctx).
		Where("borrower_id = ? AND state = ?", borrowerID, advanceDomain.StateActive).
		Order("state_updated_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *AdvanceRepository) ListInstallments(ctx context.Context, advanceID uint64) ([]advanceDomain.Installment, error) {
	var out []advanceDomain.Installment
	res := r.db.WithContext(ctx).
		Where("advance_id = ?", advanceID).
		Order("seq ASC").
		Find(&out)
	return out, res.Error
}

func (r *AdvanceRepository) GetInstallmentForUpdate(ctx context.Context, advanceID uint64, seq int) (*advanceDomain.Installment, error) {
	var out advanceDomain.Installment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("advance_id = ? AND seq = ?", advanceID, seq).
		First(&out)
	return &out, res.Error
}

func (r *AdvanceRepository) CountPendingInstallments(ctx context.Context, advanceID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&advanceDomain.Installment{}).
		Where("advance_id = ? AND status = ?", advanceID, advanceDomain.InstallmentPending).
		Count(&n)
	return n, res.Error
}

func (r *AdvanceRepository) SaveInstallment(ctx context.Context, i *advanceDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}
