package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	VendorMinLength = 1
	VendorMaxLength = 25
	NoteMinLength   = 1
	NoteMaxLength   = 50
)

var (
	ErrTransDateRequired = errors.New("trans_date is required")
	ErrVendorLength      = errors.New("vendor must be between 1 and 25 characters")
	ErrNoteLength        = errors.New("note must be between 1 and 50 characters")
)

// Transaction is a single dated financial record. The category reference is
// optional and is cleared, not cascaded, when the category is deleted.
// UpdatedAt stays null until the first update; the service layer owns both
// timestamps, so GORM's automatic tracking is disabled.
type Transaction struct {
	ID         int64           `gorm:"primaryKey" json:"id"`
	TransDate  time.Time       `gorm:"type:date;not null;index" json:"trans_date"`
	Amount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Vendor     string          `gorm:"type:varchar(25);not null" json:"vendor"`
	Note       *string         `gorm:"type:varchar(50)" json:"note"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt  *time.Time      `gorm:"autoUpdateTime:false" json:"updated_at"`
	CategoryID *int64          `gorm:"index" json:"category_id"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.TransDate.IsZero() {
		return ErrTransDateRequired
	}

	if err := ValidateMoney(t.Amount); err != nil {
		return err
	}

	vendorLen := utf8.RuneCountInString(t.Vendor)
	if vendorLen < VendorMinLength || vendorLen > VendorMaxLength {
		return ErrVendorLength
	}

	if t.Note != nil {
		noteLen := utf8.RuneCountInString(*t.Note)
		if noteLen < NoteMinLength || noteLen > NoteMaxLength {
			return ErrNoteLength
		}
	}

	return nil
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.Validate()
}
