package purchase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"flexipay-backend/internal/domain/plan"
	domain "flexipay-backend/internal/domain/purchase"
	"flexipay-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	rate decimal.Decimal
	now  func() time.Time
}

func NewUsecase(r domain.Repository, rate decimal.Decimal) *Usecase {
	return &Usecase{repo: r, rate: rate, now: func() time.Time { return time.Now().UTC() }}
}

// Create confirms a purchase: it computes the payment plan for the cart
// subtotal and persists the purchase with its schedule. Interest is
// charged on the full subtotal, before the down payment is subtracted;
// that is the convention the checkout flow has always shown buyers.
func (u *Usecase) Create(ctx context.Context, in CreatePurchaseInput) (*PurchaseDTO, error) {
	if in.BuyerID == "" || len(in.BuyerID) != 32 {
		return nil, errors.New("invalid buyer id")
	}
	if in.MerchantName == "" {
		return nil, errors.New("merchant name is required")
	}

	start := u.now()
	res, err := plan.Compute(plan.Request{
		Principal:           decimal.NewFromFloat(in.Subtotal),
		Rate:                u.rate,
		InstallmentCount:    in.InstallmentCount,
		DownPaymentFraction: decimal.NewFromFloat(in.DownPaymentFraction),
		StartDate:           start,
		InterestBase:        plan.InterestOnPrincipal,
	})
	if err != nil {
		return nil, err
	}

	p := &domain.Purchase{
		PurchaseID:       id.NewID32(),
		BuyerID:          in.BuyerID,
		MerchantName:     in.MerchantName,
		Subtotal:         in.Subtotal,
		Rate:             u.rate.InexactFloat64(),
		DownPayment:      res.DownPayment.InexactFloat64(),
		InterestAmount:   res.InterestAmount.InexactFloat64(),
		TotalPayable:     res.TotalPayable.InexactFloat64(),
		InstallmentCount: in.InstallmentCount,
		State:            domain.StateConfirmed,
	}
	items := make([]domain.LineItem, 0, len(res.LineItems))
	for _, it := range res.LineItems {
		kind := domain.ItemInstallment
		if it.Kind == plan.KindInitial {
			kind = domain.ItemInitial
		}
		items = append(items, domain.LineItem{
			Kind:    kind,
			Seq:     it.Seq,
			Amount:  it.Amount.InexactFloat64(),
			DueDate: it.DueDate,
		})
	}

	if err := u.repo.Create(ctx, p, items); err != nil {
		return nil, err
	}

	dto := toDTO(p)
	dto.Schedule = toItemDTOs(items)
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, purchaseID string) (*PurchaseDTO, error) {
	p, err := u.repo.GetByPurchaseID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	items, err := u.repo.ListItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(p)
	dto.Schedule = toItemDTOs(items)
	return dto, nil
}

func toDTO(p *domain.Purchase) *PurchaseDTO {
	return &PurchaseDTO{
		PurchaseID:       p.PurchaseID,
		BuyerID:          p.BuyerID,
		MerchantName:     p.MerchantName,
		Subtotal:         p.Subtotal,
		Rate:             p.Rate,
		DownPayment:      p.DownPayment,
		InterestAmount:   p.InterestAmount,
		TotalPayable:     p.TotalPayable,
		InstallmentCount: p.InstallmentCount,
		State:            string(p.State),
		CreatedAt:        p.CreatedAt,
	}
}

func toItemDTOs(items []domain.LineItem) []LineItemDTO {
	out := make([]LineItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemDTO{
			Kind:    string(it.Kind),
			Seq:     it.Seq,
			Amount:  it.Amount,
			DueDate: it.DueDate,
		})
	}
	return out
}
