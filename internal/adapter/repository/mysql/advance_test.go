package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "flexipay-backend/internal/domain/advance"
	"flexipay-backend/pkg/id"
)

func makeAdvance(advanceID, borrowerID string) *domain.Advance {
	return &domain.Advance{
		AdvanceID:        advanceID,
		BorrowerID:       borrowerID,
		Principal:        100.00,
		Rate:             0.0400,
		InterestAmount:   4.00,
		TotalPayable:     104.00,
		InstallmentCount: 3,
		State:            domain.StateActive,
		StateUpdatedAt:   time.Now().UTC(),
	}
}

func makeSchedule(start time.Time) []domain.Installment {
	return []domain.Installment{
		{Seq: 1, Amount: 34.67, DueDate: start.AddDate(0, 0, 15), Status: domain.InstallmentPending},
		{Seq: 2, Amount: 34.67, DueDate: start.AddDate(0, 0, 30), Status: domain.InstallmentPending},
		{Seq: 3, Amount: 34.66, DueDate: start.AddDate(0, 0, 45), Status: domain.InstallmentPending},
	}
}

func TestAdvanceCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewAdvanceRepository(db)
	ctx := context.Background()

	advanceID := id.NewID32()
	a := makeAdvance(advanceID, id.NewID32())
	schedule := makeSchedule(time.Now().UTC())

	if err := repo.Create(ctx, a, schedule); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}
	for i, inst := range schedule {
		if inst.AdvanceID != a.ID {
			t.Fatalf("installment %d not bound to advance: %d", i, inst.AdvanceID)
		}
	}

	got, err := repo.GetByAdvanceID(ctx, advanceID)
	if err != nil {
		t.Fatalf("GetByAdvanceID: %v", err)
	}
	if got.AdvanceID != advanceID || got.State != domain.StateActive {
		t.Fatalf("got %+v", got)
	}
}

func TestAdvanceGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewAdvanceRepository(db)

	_, err := repo.GetByAdvanceID(context.Background(), id.NewID32())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestGetActiveByBorrowerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewAdvanceRepository(db)
	ctx := context.Background()

	borrower := id.NewID32()

	settled := makeAdvance(id.NewID32(), borrower)
	settled.State = domain.StateSettled
	if err := repo.Create(ctx, settled, nil); err != nil {
		t.Fatalf("Create settled: %v", err)
	}

	// no active advance yet
	if _, err := repo.GetActiveByBorrowerID(ctx, borrower); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}

	active := makeAdvance(id.NewID32(), borrower)
	if err := repo.Create(ctx, active, nil); err != nil {
		t.Fatalf("Create active: %v", err)
	}

	got, err := repo.GetActiveByBorrowerID(ctx, borrower)
	if err != nil {
		t.Fatalf("GetActiveByBorrowerID: %v", err)
	}
	if got.AdvanceID != active.AdvanceID {
		t.Fatalf("got %s, want %s", got.AdvanceID, active.AdvanceID)
	}
}

func TestListInstallments_OrderedBySeq(t *testing.T) {
	db := openTestDB(t)
	repo := NewAdvanceRepository(db)
	ctx := context.Background()

	a := makeAdvance(id.NewID32(), id.NewID32())
	// insert out of order on purpose
	schedule := makeSchedule(time.Now().UTC())
	schedule[0], schedule[2] = schedule[2], schedule[0]
	if err := repo.Create(ctx, a, schedule); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := repo.ListInstallments(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListInstallments: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	for i, inst := range list {
		if inst.Seq != i+1 {
			t.Fatalf("position %d has seq %d", i, inst.Seq)
		}
	}
}

func TestCountPendingAndSaveInstallment(t *testing.T) {
	db := openTestDB(t)
	repo := NewAdvanceRepository(db)
	ctx := context.Background()

	a := makeAdvance(id.NewID32(), id.NewID32())
	if err := repo.Create(ctx, a, makeSchedule(time.Now().UTC())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := repo.CountPendingInstallments(ctx, a.ID)
	if err != nil {
		t.Fatalf("CountPendingInstallments: %v", err)
	}
	if n != 3 {
		t.Fatalf("pending = %d, want 3", n)
	}

	list, err := repo.ListInstallments(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListInstallments: %v", err)
	}
	now := time.Now().UTC()
	list[0].Status = domain.InstallmentPaid
	list[0].PaidAt = &now
	if err := repo.SaveInstallment(ctx, &list[0]); err != nil {
		t.Fatalf("SaveInstallment: %v", err)
	}

	n, err = repo.CountPendingInstallments(ctx, a.ID)
	if err != nil {
		t.Fatalf("CountPendingInstallments: %v", err)
	}
	if n != 2 {
		t.Fatalf("pending = %d, want 2", n)
	}
}
