package models

import "time"

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
)

// Subscription records a settled checkout: which user subscribed to which
// plan, via which payment method, and a masked payment reference (card last-4
// or masked CPF). The raw form fields are never persisted.
type Subscription struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	PlanName      string    `gorm:"type:varchar(50);not null;index" json:"plan_name"`
	PlanPrice     string    `gorm:"type:varchar(50);not null" json:"plan_price"`
	PaymentMethod string    `gorm:"type:varchar(20);not null" json:"payment_method"`
	Reference     string    `gorm:"type:varchar(50)" json:"reference"`
	Status        string    `gorm:"type:varchar(32);not null;default:'active';index" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
