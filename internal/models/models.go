package models

import "time"

// Transaction statuses. Only "completed" is produced today; the others
// are reserved for a future payment-gateway flow.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
	StatusFailed    = "failed"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:100;not null;index"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone     string    `json:"phone" gorm:"size:15;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Transaction struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID           uint      `json:"user_id" gorm:"index;not null"`
	Amount           float64   `json:"amount" gorm:"not null"`
	GoldGrams        float64   `json:"gold_grams" gorm:"not null"`
	GoldPricePerGram float64   `json:"gold_price_per_gram" gorm:"not null"`
	TransactionID    string    `json:"transaction_id" gorm:"size:50;uniqueIndex;not null"`
	Status           string    `json:"status" gorm:"size:20;default:completed"`
	PaymentMethod    string    `json:"payment_method" gorm:"size:50;default:digital"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ChatSession is a durable snapshot of a conversation's counters. The
// in-memory session remains authoritative; rows here survive restarts
// for reporting.
type ChatSession struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID         string    `json:"session_id" gorm:"size:100;uniqueIndex;not null"`
	UserID            *uint     `json:"user_id" gorm:"index"`
	MessagesCount     int       `json:"messages_count" gorm:"default:0"`
	GoldInterestScore int       `json:"gold_interest_score" gorm:"default:0"`
	PurchaseNudged    bool      `json:"purchase_nudged" gorm:"default:false"`
	LastActivity      time.Time `json:"last_activity"`
	CreatedAt         time.Time `json:"created_at"`
}

type GoldPrice struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	PricePerGram float64   `json:"price_per_gram" gorm:"not null"`
	Currency     string    `json:"currency" gorm:"size:10;default:INR"`
	Source       string    `json:"source" gorm:"size:50;default:manual"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
}
