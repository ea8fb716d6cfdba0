package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cadence is the spacing rule between installment due dates.
type Cadence string

const (
	// CadenceDefault derives the cadence from the installment count
	// (3 installments → biweekly, anything else → monthly).
	CadenceDefault  Cadence = ""
	CadenceBiweekly Cadence = "biweekly"
	CadenceMonthly  Cadence = "monthly"
)

// InterestBase selects the amount interest is charged on when a down
// payment is involved. The two product flows historically disagreed on
// this, so the choice is explicit rather than implied by the caller.
type InterestBase string

const (
	// InterestOnPrincipal charges interest on the full principal,
	// before any down payment is subtracted.
	InterestOnPrincipal InterestBase = "principal"
	// InterestOnFinanced charges interest only on the financed
	// remainder after the down payment.
	InterestOnFinanced InterestBase = "financed"
)

type LineItemKind string

const (
	KindInitial     LineItemKind = "initial"
	KindInstallment LineItemKind = "installment"
)

// Request carries everything the calculator needs. StartDate is an
// explicit input (callers pass "now") so results are reproducible.
type Request struct {
	Principal           decimal.Decimal
	Rate                decimal.Decimal
	InstallmentCount    int
	DownPaymentFraction decimal.Decimal
	StartDate           time.Time
	Cadence             Cadence
	InterestBase        InterestBase
}

// LineItem is one payment in the schedule. The initial (down payment)
// item has Seq 0; installments are numbered from 1.
type LineItem struct {
	Kind    LineItemKind
	Seq     int
	Amount  decimal.Decimal
	DueDate time.Time
}

type Result struct {
	InterestAmount    decimal.Decimal
	DownPayment       decimal.Decimal
	FinancedAmount    decimal.Decimal
	TotalPayable      decimal.Decimal
	InstallmentAmount decimal.Decimal
	LineItems         []LineItem
	FinalDueDate      time.Time
}
