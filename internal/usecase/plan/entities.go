package plan

import "time"

type QuoteInput struct {
	Principal           float64
	InstallmentCount    int
	Rate                *float64 // nil → service default
	DownPaymentFraction float64
	Cadence             string     // "", "biweekly", "monthly"
	InterestBase        string     // "", "principal", "financed"
	StartDate           *time.Time // nil → now
}

type QuoteLineItem struct {
	Kind    string    `json:"kind"`
	Seq     int       `json:"seq"`
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"due_date"`
}

type QuoteDTO struct {
	Principal         float64         `json:"principal"`
	Rate              float64         `json:"rate"`
	InterestAmount    float64         `json:"interest_amount"`
	DownPayment       float64         `json:"down_payment"`
	FinancedAmount    float64         `json:"financed_amount"`
	TotalPayable      float64         `json:"total_payable"`
	InstallmentAmount float64         `json:"installment_amount"`
	InstallmentCount  int             `json:"installment_count"`
	LineItems         []QuoteLineItem `json:"line_items"`
	FinalDueDate      time.Time       `json:"final_due_date"`
	StartDate         time.Time       `json:"start_date"`
}
