package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Candidate record statuses. "open" records show up in the candidate
// search, "matched" ones are settled by a committed match result.
const (
	CandidateStatusOpen    = "open"
	CandidateStatusOverdue = "overdue"
	CandidateStatusMatched = "matched"
)

// RentPayment is an expected rent payment from a tenant, eligible for
// manual matching against an incoming bank transaction.
type RentPayment struct {
	DefaultModel
	TenantID   uuid.UUID
	UnitID     uuid.UUID
	PropertyID uuid.UUID
	Property   Property `json:"-"`
	CategoryID uuid.UUID
	Category   Category `json:"-"` // The payment category rent is booked under
	DueDate    time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status     string          `gorm:"default:open"`
}

func (p *RentPayment) BeforeSave(_ *gorm.DB) error {
	if p.Status == "" {
		p.Status = CandidateStatusOpen
	}

	if p.DueDate.IsZero() {
		p.DueDate = time.Now().In(time.UTC)
	} else {
		p.DueDate = p.DueDate.In(time.UTC)
	}

	return nil
}

// Reconcile returns the engine candidate for this record.
func (p RentPayment) Reconcile() reconcile.Candidate {
	return reconcile.RentPayment{
		ID:         p.ID,
		TenantID:   p.TenantID,
		UnitID:     p.UnitID,
		PropertyID: p.PropertyID,
		CategoryID: p.CategoryID,
		DueDate:    p.DueDate,
		Amount:     p.Amount,
		Status:     p.Status,
	}
}

// Export returns all rent payments for export
func (RentPayment) Export() (json.RawMessage, error) {
	var payments []RentPayment
	err := DB.Unscoped().Where(&RentPayment{}).Find(&payments).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&payments)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
