package plan

import (
	"github.com/shopspring/decimal"
)

// All currency amounts are rounded half-up to 2 decimal places. Rounding
// happens once per derived amount; the last installment absorbs whatever
// remainder division left over, so line items always sum to the total.

var one = decimal.NewFromInt(1)

func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// Interest returns the flat interest charged on principal. Interest is
// computed once, not compounded per period. A non-positive principal
// yields zero; validation of inputs belongs to Compute and its callers.
func Interest(principal, rate decimal.Decimal) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return round2(principal.Mul(rate))
}

// TotalPayable is the principal plus flat interest.
func TotalPayable(principal, interest decimal.Decimal) decimal.Decimal {
	return round2(principal.Add(interest))
}

// Compute turns a Request into a full payment schedule. It is pure:
// same request (including StartDate) in, same result out.
func Compute(req Request) (*Result, error) {
	if req.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, &InvalidPlanError{Reason: ReasonPrincipal}
	}
	if req.InstallmentCount < 1 {
		return nil, &InvalidPlanError{Reason: ReasonCount}
	}
	if req.Rate.IsNegative() {
		return nil, &InvalidPlanError{Reason: ReasonRate}
	}
	if req.DownPaymentFraction.IsNegative() || req.DownPaymentFraction.GreaterThanOrEqual(one) {
		return nil, &InvalidPlanError{Reason: ReasonDownPayment}
	}

	downPayment := round2(req.Principal.Mul(req.DownPaymentFraction))
	financed := req.Principal.Sub(downPayment)

	base := req.Principal
	if req.InterestBase == InterestOnFinanced {
		base = financed
	}
	interest := Interest(base, req.Rate)
	total := TotalPayable(req.Principal, interest)

	// Everything not covered by the down payment is split across the
	// installments.
	remaining := total.Sub(downPayment)
	count := decimal.NewFromInt(int64(req.InstallmentCount))
	per := remaining.DivRound(count, 2)
	last := remaining.Sub(per.Mul(count.Sub(one)))
	// Sub-cent splits (say 0.10 over 12 installments) round each
	// installment up to 0.01 and drive the closing one negative. Such a
	// plan cannot be scheduled.
	if last.IsNegative() {
		return nil, &InvalidPlanError{Reason: ReasonTooSmall}
	}

	cadence := req.Cadence
	if cadence == CadenceDefault {
		cadence = cadenceFor(req.InstallmentCount)
	}

	items := make([]LineItem, 0, req.InstallmentCount+1)
	if downPayment.IsPositive() {
		items = append(items, LineItem{
			Kind:    KindInitial,
			Seq:     0,
			Amount:  downPayment,
			DueDate: req.StartDate,
		})
	}
	for i := 0; i < req.InstallmentCount; i++ {
		amount := per
		if i == req.InstallmentCount-1 {
			amount = last
		}
		items = append(items, LineItem{
			Kind:    KindInstallment,
			Seq:     i + 1,
			Amount:  amount,
			DueDate: dueDate(req.StartDate, cadence, i),
		})
	}

	return &Result{
		InterestAmount:    interest,
		DownPayment:       downPayment,
		FinancedAmount:    financed,
		TotalPayable:      total,
		InstallmentAmount: per,
		LineItems:         items,
		FinalDueDate:      items[len(items)-1].DueDate,
	}, nil
}

// cadenceFor is the product's observed default: 3-installment plans pay
// every 15 days, everything else pays monthly.
func cadenceFor(count int) Cadence {
	if count == 3 {
		return CadenceBiweekly
	}
	return CadenceMonthly
}
