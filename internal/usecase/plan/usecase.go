package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	domain "flexipay-backend/internal/domain/plan"
)

// Usecase answers quote requests from the product screens. Quotes are
// pure computation, so identical requests within a short window are
// served from Redis instead of being recomputed.
type Usecase struct {
	rdb  *redis.Client // nil disables caching
	rate decimal.Decimal
	ttl  time.Duration
	now  func() time.Time
}

func NewUsecase(rdb *redis.Client, defaultRate decimal.Decimal, ttl time.Duration) *Usecase {
	return &Usecase{rdb: rdb, rate: defaultRate, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) Quote(ctx context.Context, in QuoteInput) (*QuoteDTO, error) {
	rate := u.rate
	if in.Rate != nil {
		rate = decimal.NewFromFloat(*in.Rate)
	}
	start := u.now().Truncate(24 * time.Hour)
	if in.StartDate != nil {
		start = in.StartDate.UTC()
	}

	key := cacheKey(in, rate, start)
	if u.rdb != nil {
		if b, err := u.rdb.Get(ctx, key).Bytes(); err == nil {
			var dto QuoteDTO
			if json.Unmarshal(b, &dto) == nil {
				return &dto, nil
			}
		}
	}

	res, err := domain.Compute(domain.Request{
		Principal:           decimal.NewFromFloat(in.Principal),
		Rate:                rate,
		InstallmentCount:    in.InstallmentCount,
		DownPaymentFraction: decimal.NewFromFloat(in.DownPaymentFraction),
		StartDate:           start,
		Cadence:             domain.Cadence(in.Cadence),
		InterestBase:        interestBase(in.InterestBase),
	})
	if err != nil {
		return nil, err
	}

	dto := &QuoteDTO{
		Principal:         in.Principal,
		Rate:              rate.InexactFloat64(),
		InterestAmount:    res.InterestAmount.InexactFloat64(),
		DownPayment:       res.DownPayment.InexactFloat64(),
		FinancedAmount:    res.FinancedAmount.InexactFloat64(),
		TotalPayable:      res.TotalPayable.InexactFloat64(),
		InstallmentAmount: res.InstallmentAmount.InexactFloat64(),
		InstallmentCount:  in.InstallmentCount,
		FinalDueDate:      res.FinalDueDate,
		StartDate:         start,
	}
	for _, it := range res.LineItems {
		dto.LineItems = append(dto.LineItems, QuoteLineItem{
			Kind:    string(it.Kind),
			Seq:     it.Seq,
			Amount:  it.Amount.InexactFloat64(),
			DueDate: it.DueDate,
		})
	}

	if u.rdb != nil {
		if b, err := json.Marshal(dto); err == nil {
			// cache is best-effort; a write failure only costs a recompute
			_ = u.rdb.Set(ctx, key, b, u.ttl).Err()
		}
	}
	return dto, nil
}

func interestBase(s string) domain.InterestBase {
	if s == string(domain.InterestOnFinanced) {
		return domain.InterestOnFinanced
	}
	return domain.InterestOnPrincipal
}

// The key carries every input Compute sees, rendered exactly. Formatting
// floats with a fixed precision here would fold distinct fractions onto
// one key and replay the wrong quote.
func cacheKey(in QuoteInput, rate decimal.Decimal, start time.Time) string {
	return fmt.Sprintf("quote:%s:%d:%s:%s:%s:%s:%s",
		decimal.NewFromFloat(in.Principal).String(), in.InstallmentCount, rate.String(),
		decimal.NewFromFloat(in.DownPaymentFraction).String(),
		in.Cadence, in.InterestBase, start.Format("2006-01-02"))
}
