package advance

import "time"

type CreateAdvanceInput struct {
	BorrowerID       string  `json:"borrower_id"`
	Principal        float64 `json:"principal"`
	InstallmentCount int     `json:"installment_count"`
}

type PayInstallmentInput struct {
	AdvanceID string
	Seq       int
	Amount    float64
}

type InstallmentDTO struct {
	Seq     int        `json:"seq"`
	Amount  float64    `json:"amount"`
	DueDate time.Time  `json:"due_date"`
	Status  string     `json:"status"`
	PaidAt  *time.Time `json:"paid_at,omitempty"`
}

type AdvanceDTO struct {
	AdvanceID        string           `json:"advance_id"`
	BorrowerID       string           `json:"borrower_id"`
	Principal        float64          `json:"principal"`
	Rate             float64          `json:"rate"`
	InterestAmount   float64          `json:"interest_amount"`
	TotalPayable     float64          `json:"total_payable"`
	InstallmentCount int              `json:"installment_count"`
	State            string           `json:"state"`
	FinalDueDate     time.Time        `json:"final_due_date"`
	Schedule         []InstallmentDTO `json:"schedule,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}
