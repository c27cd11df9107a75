package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status values. Forward progression is linear (PENDING -> PREPARING ->
// READY -> COMPLETED). ARCHIVED is terminal and is reached only through
// payment or kitchen-initiated cleanup, never through a plain advance.
const (
	StatusPending   = "PENDING"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusCompleted = "COMPLETED"
	StatusArchived  = "ARCHIVED"
)

// Payment status values. Marking an order PAID archives it in the same write.
const (
	PaymentUnpaid = "UNPAID"
	PaymentPaid   = "PAID"
)

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TableID       uint            `gorm:"not null;index" json:"tableId"`
	Table         Table           `gorm:"foreignKey:TableID" json:"table"`
	Status        string          `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'UNPAID'" json:"paymentStatus"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updatedAt"`
}

var statusSuccessor = map[string]string{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusCompleted,
}

// NextStatus returns the immediate successor in the linear progression.
func NextStatus(s string) (string, bool) {
	next, ok := statusSuccessor[s]
	return next, ok
}

// PrevStatus returns the only status an order may advance to s from.
func PrevStatus(s string) (string, bool) {
	for from, to := range statusSuccessor {
		if to == s {
			return from, true
		}
	}
	return "", false
}

// ValidStatus reports whether s is one of the known order status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusArchived:
		return true
	}
	return false
}
