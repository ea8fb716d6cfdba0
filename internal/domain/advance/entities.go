package advance

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("advance not found")
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrAlreadyPaid         = errors.New("installment already paid")
	ErrAmountMismatch      = errors.New("payment amount does not match installment amount")
	ErrActiveExists        = errors.New("borrower already has an active advance")
)

type State string

const (
	StateActive  State = "active"
	StateSettled State = "settled"
)

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
)

// Advance is a cash-advance request together with its computed totals.
// The schedule itself lives in the installments table.
type Advance struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	AdvanceID        string         `gorm:"size:32;uniqueIndex:ux_advances_advance_id_active" json:"advance_id"`
	BorrowerID       string         `gorm:"size:32;index:idx_advances_borrower_active" json:"borrower_id"`
	Principal        float64        `gorm:"type:decimal(18,2)" json:"principal"`
	Rate             float64        `gorm:"type:decimal(6,4)" json:"rate"`
	InterestAmount   float64        `gorm:"type:decimal(18,2)" json:"interest_amount"`
	TotalPayable     float64        `gorm:"type:decimal(18,2)" json:"total_payable"`
	InstallmentCount int            `gorm:"column:installment_count" json:"installment_count"`
	State            State          `gorm:"type:enum('active','settled');default:'active'" json:"state"`
	StateUpdatedAt   time.Time      `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy        string         `gorm:"size:32" json:"-"`
}

func (Advance) TableName() string { return "advances" }

// Installment is one scheduled payment of an advance.
type Installment struct {
	ID        uint64            `gorm:"primaryKey;column:id" json:"-"`
	AdvanceID uint64            `gorm:"column:advance_id;not null;index;uniqueIndex:ux_installments_advance_seq" json:"-"`
	Seq       int               `gorm:"column:seq;not null;uniqueIndex:ux_installments_advance_seq" json:"seq"`
	Amount    float64           `gorm:"type:decimal(18,2)" json:"amount"`
	DueDate   time.Time         `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Status    InstallmentStatus `gorm:"type:enum('pending','paid');default:'pending'" json:"status"`
	PaidAt    *time.Time        `gorm:"column:paid_at" json:"paid_at,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"-"`
}

func (Installment) TableName() string { return "installments" }
