package plan

const (
	ReasonPrincipal   = "principal must be greater than zero"
	ReasonCount       = "installment count must be at least 1"
	ReasonRate        = "rate must not be negative"
	ReasonDownPayment = "down payment fraction must be in [0,1)"
	ReasonTooSmall    = "amount too small to split across installments"
)

// InvalidPlanError reports which input constraint failed. The calculator
// never fails for any other reason.
type InvalidPlanError struct {
	Reason string
}

func (e *InvalidPlanError) Error() string { return "invalid plan: " + e.Reason }
