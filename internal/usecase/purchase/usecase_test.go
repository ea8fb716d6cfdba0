package purchase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"flexipay-backend/internal/domain/plan"
	domain "flexipay-backend/internal/domain/purchase"
	"flexipay-backend/internal/testutil/purchasemock"
)

func newTestUsecase(repo domain.Repository) *Usecase {
	uc := NewUsecase(repo, decimal.NewFromFloat(0.04))
	uc.now = func() time.Time { return time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC) }
	return uc
}

func approx(a, b float64) bool { return math.Abs(a-b) < 0.005 }

func TestCreate_Success_WithDownPayment(t *testing.T) {
	var gotItems []domain.LineItem
	repo := &purchasemock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Purchase, items []domain.LineItem) error {
			gotItems = items
			return nil
		},
	}
	uc := newTestUsecase(repo)

	dto, err := uc.Create(context.Background(), CreatePurchaseInput{
		BuyerID:             strings.Repeat("c", 32),
		MerchantName:        "Tienda Uno",
		Subtotal:            500,
		InstallmentCount:    6,
		DownPaymentFraction: 0.20,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(dto.PurchaseID) != 32 {
		t.Fatalf("PurchaseID length: %d", len(dto.PurchaseID))
	}
	if !approx(dto.DownPayment, 100.00) || !approx(dto.InterestAmount, 20.00) || !approx(dto.TotalPayable, 520.00) {
		t.Fatalf("down=%v interest=%v total=%v", dto.DownPayment, dto.InterestAmount, dto.TotalPayable)
	}

	// initial + 6 monthly installments of 70
	if len(gotItems) != 7 {
		t.Fatalf("items = %d", len(gotItems))
	}
	if gotItems[0].Kind != domain.ItemInitial || gotItems[0].Seq != 0 || !approx(gotItems[0].Amount, 100.00) {
		t.Fatalf("initial item = %+v", gotItems[0])
	}
	for _, it := range gotItems[1:] {
		if it.Kind != domain.ItemInstallment || !approx(it.Amount, 70.00) {
			t.Fatalf("installment = %+v", it)
		}
	}
	if want := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC); !gotItems[6].DueDate.Equal(want) {
		t.Fatalf("last due = %s, want %s", gotItems[6].DueDate, want)
	}
}

func TestCreate_InvalidBuyer(t *testing.T) {
	uc := newTestUsecase(&purchasemock.Repo{})
	if _, err := uc.Create(context.Background(), CreatePurchaseInput{
		BuyerID: "nope", MerchantName: "m", Subtotal: 100, InstallmentCount: 3,
	}); err == nil {
		t.Fatal("want error for invalid buyer id")
	}
}

func TestCreate_InvalidPlan(t *testing.T) {
	uc := newTestUsecase(&purchasemock.Repo{})
	_, err := uc.Create(context.Background(), CreatePurchaseInput{
		BuyerID: strings.Repeat("c", 32), MerchantName: "m", Subtotal: 100, InstallmentCount: 0,
	})
	var ipe *plan.InvalidPlanError
	if !errors.As(err, &ipe) {
		t.Fatalf("err = %v, want InvalidPlanError", err)
	}
}

func TestGet_ReturnsSchedule(t *testing.T) {
	purchaseID := strings.Repeat("d", 32)
	repo := &purchasemock.Repo{
		GetByPurchaseIDFn: func(ctx context.Context, pid string) (*domain.Purchase, error) {
			return &domain.Purchase{ID: 9, PurchaseID: pid, State: domain.StateConfirmed}, nil
		},
		ListItemsFn: func(ctx context.Context, id uint64) ([]domain.LineItem, error) {
			if id != 9 {
				t.Fatalf("ListItems called with %d", id)
			}
			return []domain.LineItem{
				{Kind: domain.ItemInitial, Seq: 0, Amount: 100},
				{Kind: domain.ItemInstallment, Seq: 1, Amount: 70},
			}, nil
		},
	}
	uc := newTestUsecase(repo)
	dto, err := uc.Get(context.Background(), purchaseID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(dto.Schedule) != 2 {
		t.Fatalf("schedule = %d items", len(dto.Schedule))
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &purchasemock.Repo{
		GetByPurchaseIDFn: func(ctx context.Context, pid string) (*domain.Purchase, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := newTestUsecase(repo)
	if _, err := uc.Get(context.Background(), strings.Repeat("d", 32)); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
