package purchase

import "time"

type CreatePurchaseInput struct {
	BuyerID             string  `json:"buyer_id"`
	MerchantName        string  `json:"merchant_name"`
	Subtotal            float64 `json:"subtotal"`
	InstallmentCount    int     `json:"installment_count"`
	DownPaymentFraction float64 `json:"down_payment_fraction"`
}

type LineItemDTO struct {
	Kind    string    `json:"kind"`
	Seq     int       `json:"seq"`
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"due_date"`
}

type PurchaseDTO struct {
	PurchaseID       string        `json:"purchase_id"`
	BuyerID          string        `json:"buyer_id"`
	MerchantName     string        `json:"merchant_name"`
	Subtotal         float64       `json:"subtotal"`
	Rate             float64       `json:"rate"`
	DownPayment      float64       `json:"down_payment"`
	InterestAmount   float64       `json:"interest_amount"`
	TotalPayable     float64       `json:"total_payable"`
	InstallmentCount int           `json:"installment_count"`
	State            string        `json:"state"`
	Schedule         []LineItemDTO `json:"schedule,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}
