package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a billed cost from a vendor, eligible for manual matching
// against an outgoing bank transaction.
type Expense struct {
	DefaultModel
	VendorID   uuid.UUID
	PropertyID uuid.UUID
	Property   Property `json:"-"`
	CategoryID uuid.UUID
	Category   Category `json:"-"` // An expense category
	DueDate    time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status     string          `gorm:"default:open"`
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Status == "" {
		e.Status = CandidateStatusOpen
	}

	if e.DueDate.IsZero() {
		e.DueDate = time.Now().In(time.UTC)
	} else {
		e.DueDate = e.DueDate.In(time.UTC)
	}

	return nil
}

// Reconcile returns the engine candidate for this record.
func (e Expense) Reconcile() reconcile.Candidate {
	return reconcile.Expense{
		ID:         e.ID,
		VendorID:   e.VendorID,
		PropertyID: e.PropertyID,
		CategoryID: e.CategoryID,
		DueDate:    e.DueDate,
		Amount:     e.Amount,
		Status:     e.Status,
	}
}

// Export returns all expenses for export
func (Expense) Export() (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Unscoped().Where(&Expense{}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
