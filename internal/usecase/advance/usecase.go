package advance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "flexipay-backend/internal/domain/advance"
	"flexipay-backend/internal/domain/plan"
	"flexipay-backend/internal/domain/uow"
	"flexipay-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	rate decimal.Decimal
	// now is swappable in tests; schedules are projected from it
	now func() time.Time
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork, rate decimal.Decimal) *Usecase {
	return &Usecase{repo: r, uow: tx, rate: rate, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) Create(ctx context.Context, in CreateAdvanceInput) (*AdvanceDTO, error) {
	if in.BorrowerID == "" || len(in.BorrowerID) != 32 {
		return nil, errors.New("invalid borrower id")
	}

	// Block if the borrower already has an active advance.
	active, err := u.repo.GetActiveByBorrowerID(ctx, in.BorrowerID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("borrower %s already has an active advance: %s: %w",
			in.BorrowerID, active.AdvanceID, domain.ErrActiveExists)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	start := u.now()
	res, err := plan.Compute(plan.Request{
		Principal:        decimal.NewFromFloat(in.Principal),
		Rate:             u.rate,
		InstallmentCount: in.InstallmentCount,
		StartDate:        start,
		InterestBase:     plan.InterestOnPrincipal,
	})
	if err != nil {
		return nil, err
	}

	a := &domain.Advance{
		AdvanceID:        id.NewID32(),
		BorrowerID:       in.BorrowerID,
		Principal:        in.Principal,
		Rate:             u.rate.InexactFloat64(),
		InterestAmount:   res.InterestAmount.InexactFloat64(),
		TotalPayable:     res.TotalPayable.InexactFloat64(),
		InstallmentCount: in.InstallmentCount,
		State:            domain.StateActive,
		StateUpdatedAt:   start,
	}
	schedule := make([]domain.Installment, 0, len(res.LineItems))
	for _, it := range res.LineItems {
		schedule = append(schedule, domain.Installment{
			Seq:     it.Seq,
			Amount:  it.Amount.InexactFloat64(),
			DueDate: it.DueDate,
			Status:  domain.InstallmentPending,
		})
	}

	if err := u.repo.Create(ctx, a, schedule); err != nil {
		return nil, err
	}

	dto := toDTO(a)
	dto.FinalDueDate = res.FinalDueDate
	dto.Schedule = toInstallmentDTOs(schedule)
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, advanceID string) (*AdvanceDTO, error) {
	a, err := u.repo.GetByAdvanceID(ctx, advanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) GetSchedule(ctx context.Context, advanceID string) ([]InstallmentDTO, error) {
	a, err := u.repo.GetByAdvanceID(ctx, advanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	list, err := u.repo.ListInstallments(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return toInstallmentDTOs(list), nil
}

// PayInstallment marks one installment paid. The advance row is locked
// for the whole transaction so concurrent payments of the same advance
// serialize; paying the last pending installment settles the advance.
func (u *Usecase) PayInstallment(ctx context.Context, in PayInstallmentInput) (*InstallmentDTO, error) {
	if u.uow == nil {
		return nil, errors.New("unit of work not configured")
	}
	var dto *InstallmentDTO

	err := u.uow.WithinAdvanceTx(ctx, in.AdvanceID, func(r uow.Repos, a *domain.Advance) error {
		inst, err := r.Advances.GetInstallmentForUpdate(ctx, a.ID, in.Seq)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrInstallmentNotFound
			}
			return err
		}
		if inst.Status == domain.InstallmentPaid {
			return domain.ErrAlreadyPaid
		}
		// exact-amount repayment only; amounts are 2dp so cent
		// comparison is safe
		if math.Abs(in.Amount-inst.Amount) > 0.005 {
			return domain.ErrAmountMismatch
		}

		now := u.now()
		inst.Status = domain.InstallmentPaid
		inst.PaidAt = &now
		if err := r.Advances.SaveInstallment(ctx, inst); err != nil {
			return err
		}

		pending, err := r.Advances.CountPendingInstallments(ctx, a.ID)
		if err != nil {
			return err
		}
		if pending == 0 {
			a.State = domain.StateSettled
			a.StateUpdatedAt = now
			if err := r.Advances.Save(ctx, a); err != nil {
				return err
			}
		}

		d := toInstallmentDTO(inst)
		dto = &d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func toDTO(a *domain.Advance) *AdvanceDTO {
	return &AdvanceDTO{
		AdvanceID:        a.AdvanceID,
		BorrowerID:       a.BorrowerID,
		Principal:        a.Principal,
		Rate:             a.Rate,
		InterestAmount:   a.InterestAmount,
		TotalPayable:     a.TotalPayable,
		InstallmentCount: a.InstallmentCount,
		State:            string(a.State),
		CreatedAt:        a.CreatedAt,
	}
}

func toInstallmentDTO(i *domain.Installment) InstallmentDTO {
	return InstallmentDTO{
		Seq:     i.Seq,
		Amount:  i.Amount,
		DueDate: i.DueDate,
		Status:  string(i.Status),
		PaidAt:  i.PaidAt,
	}
}

func toInstallmentDTOs(list []domain.Installment) []InstallmentDTO {
	out := make([]InstallmentDTO, 0, len(list))
	for i := range list {
		out = append(out, toInstallmentDTO(&list[i]))
	}
	return out
}
