package purchase

import (
	"errors"
	"fmt"
	"math"

	"github.com/laasya2505/kuber-ai-assignment/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidPrice  = errors.New("gold price must be greater than zero")
)

type Buyer struct {
	Name  string
	Email string
	Phone string
}

type Receipt struct {
	TransactionID string
	GoldGrams     float64
	TotalAmount   float64
	Message       string
}

// Service records settled gold purchases against the ledger.
type Service struct {
	db            *gorm.DB
	fallbackPrice float64
}

func NewService(db *gorm.DB, fallbackPrice float64) *Service {
	return &Service{db: db, fallbackPrice: fallbackPrice}
}

// EnsureActivePrice seeds an active price row from config when the
// table has none, so every deployment has a priced market from boot.
func EnsureActivePrice(db *gorm.DB, pricePerGram float64) error {
	var count int64
	if err := db.Model(&models.GoldPrice{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.GoldPrice{
		PricePerGram: pricePerGram,
		Currency:     "INR",
		Source:       "config",
		IsActive:     true,
	}).Error
}

// ActivePrice returns the current price per gram: the newest active row
// in gold_prices, or the configured fallback when none exists.
func (s *Service) ActivePrice() float64 {
	var gp models.GoldPrice
	err := s.db.Where("is_active = ?", true).Order("created_at desc").First(&gp).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Warn("gold price lookup failed, using configured price")
		}
		return s.fallbackPrice
	}
	return gp.PricePerGram
}

// Purchase resolves the user by email (creating on first purchase),
// derives the gold quantity from the current price and commits the
// transaction. User creation and transaction insert share one
// transaction boundary; either both land or neither is visible.
func (s *Service) Purchase(buyer Buyer, amount float64) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, ErrInvalidAmount
	}
	price := s.ActivePrice()
	if price <= 0 {
		return Receipt{}, ErrInvalidPrice
	}

	grams := roundGrams(amount / price)
	txnID := newTransactionID()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := findOrCreateUser(tx, buyer)
		if err != nil {
			return err
		}
		return tx.Create(&models.Transaction{
			UserID:           user.ID,
			Amount:           amount,
			GoldGrams:        grams,
			GoldPricePerGram: price,
			TransactionID:    txnID,
			Status:           models.StatusCompleted,
			PaymentMethod:    "digital",
		}).Error
	})
	if err != nil {
		logrus.WithError(err).WithField("email", buyer.Email).Error("purchase failed")
		return Receipt{}, err
	}

	return Receipt{
		TransactionID: txnID,
		GoldGrams:     grams,
		TotalAmount:   amount,
		Message:       fmt.Sprintf("🎉 Congratulations! You've successfully purchased %v grams of digital gold for ₹%v", grams, amount),
	}, nil
}

// findOrCreateUser is the atomic find-or-create by the email natural
// key. A losing racer hits the unique constraint and re-reads the
// winner's row; first write wins for name and phone.
func findOrCreateUser(tx *gorm.DB, buyer Buyer) (models.User, error) {
	var user models.User
	err := tx.Where("email = ?", buyer.Email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	user = models.User{Name: buyer.Name, Email: buyer.Email, Phone: buyer.Phone}
	err = tx.Create(&user).Error
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = tx.Where("email = ?", buyer.Email).First(&user).Error
	}
	return user, err
}

func roundGrams(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func newTransactionID() string {
	id := uuid.New()
	return fmt.Sprintf("TXN%X", id[:4])
}
