package purchase

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("purchase not found")

type State string

const StateConfirmed State = "confirmed"

type ItemKind string

const (
	ItemInitial     ItemKind = "initial"
	ItemInstallment ItemKind = "installment"
)

// Purchase is a confirmed installment purchase. Subtotal is the price of
// the goods before interest; DownPayment is the portion paid at checkout.
type Purchase struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	PurchaseID       string         `gorm:"size:32;uniqueIndex:ux_purchases_purchase_id_active" json:"purchase_id"`
	BuyerID          string         `gorm:"size:32;index:idx_purchases_buyer_active" json:"buyer_id"`
	MerchantName     string         `gorm:"size:128" json:"merchant_name"`
	Subtotal         float64        `gorm:"type:decimal(18,2)" json:"subtotal"`
	Rate             float64        `gorm:"type:decimal(6,4)" json:"rate"`
	DownPayment      float64        `gorm:"type:decimal(18,2)" json:"down_payment"`
	InterestAmount   float64        `gorm:"type:decimal(18,2)" json:"interest_amount"`
	TotalPayable     float64        `gorm:"type:decimal(18,2)" json:"total_payable"`
	InstallmentCount int            `gorm:"column:installment_count" json:"installment_count"`
	State            State          `gorm:"type:enum('confirmed');default:'confirmed'" json:"state"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Purchase) TableName() string { return "purchases" }

// LineItem is one persisted row of a purchase's payment schedule. Kind
// "initial" is the down payment (seq 0); installments count from 1.
type LineItem struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	PurchaseID uint64    `gorm:"column:purchase_id;not null;index;uniqueIndex:ux_purchase_items_purchase_seq" json:"-"`
	Kind       ItemKind  `gorm:"type:enum('initial','installment')" json:"kind"`
	Seq        int       `gorm:"column:seq;not null;uniqueIndex:ux_purchase_items_purchase_seq" json:"seq"`
	Amount     float64   `gorm:"type:decimal(18,2)" json:"amount"`
	DueDate    time.Time `gorm:"column:due_date;type:date;not null" json:"due_date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"-"`
}

func (LineItem) TableName() string { return "purchase_items" }
