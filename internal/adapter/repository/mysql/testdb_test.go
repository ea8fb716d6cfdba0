package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type advanceSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	AdvanceID        string         `gorm:"size:32;column:advance_id"`
	BorrowerID       string         `gorm:"size:32;column:borrower_id"`
	Principal        float64        `gorm:"column:principal"`
	Rate             float64        `gorm:"column:rate"`
	InterestAmount   float64        `gorm:"column:interest_amount"`
	TotalPayable     float64        `gorm:"column:total_payable"`
	InstallmentCount int            `gorm:"column:installment_count"`
	State            string         `gorm:"type:text;column:state"` // ← no enum
	StateUpdatedAt   time.Time      `gorm:"column:state_updated_at"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy        string         `gorm:"column:deleted_by"`
}

func (advanceSQLite) TableName() string { return "advances" }

type installmentSQLite struct {
	ID        uint64     `gorm:"primaryKey;column:id"`
	AdvanceID uint64     `gorm:"column:advance_id"`
	Seq       int        `gorm:"column:seq"`
	Amount    float64    `gorm:"column:amount"`
	DueDate   time.Time  `gorm:"column:due_date"`
	Status    string     `gorm:"type:text;column:status"`
	PaidAt    *time.Time `gorm:"column:paid_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (installmentSQLite) TableName() string { return "installments" }

type purchaseSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	PurchaseID       string         `gorm:"size:32;column:purchase_id"`
	BuyerID          string         `gorm:"size:32;column:buyer_id"`
	MerchantName     string         `gorm:"column:merchant_name"`
	Subtotal         float64        `gorm:"column:subtotal"`
	Rate             float64        `gorm:"column:rate"`
	DownPayment      float64        `gorm:"column:down_payment"`
	InterestAmount   float64        `gorm:"column:interest_amount"`
	TotalPayable     float64        `gorm:"column:total_payable"`
	InstallmentCount int            `gorm:"column:installment_count"`
	State            string         `gorm:"type:text;column:state"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (purchaseSQLite) TableName() string { return "purchases" }

type purchaseItemSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	PurchaseID uint64    `gorm:"column:purchase_id"`
	Kind       string    `gorm:"type:text;column:kind"`
	Seq        int       `gorm:"column:seq"`
	Amount     float64   `gorm:"column:amount"`
	DueDate    time.Time `gorm:"column:due_date"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (purchaseItemSQLite) TableName() string { return "purchase_items" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&advanceSQLite{}, &installmentSQLite{}, &purchaseSQLite{}, &purchaseItemSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
