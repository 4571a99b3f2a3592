package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SecurityDeposit is a deposit held for a tenant, eligible for manual
// matching against an incoming bank transaction.
type SecurityDeposit struct {
	DefaultModel
	TenantID   uuid.UUID
	UnitID     uuid.UUID
	PropertyID uuid.UUID
	Property   Property `json:"-"`
	CategoryID uuid.UUID
	Category   Category `json:"-"` // The payment category deposits are booked under
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status     string          `gorm:"default:open"`
}

func (d *SecurityDeposit) BeforeSave(_ *gorm.DB) error {
	if d.Status == "" {
		d.Status = CandidateStatusOpen
	}

	if d.Date.IsZero() {
		d.Date = time.Now().In(time.UTC)
	} else {
		d.Date = d.Date.In(time.UTC)
	}

	return nil
}

// Reconcile returns the engine candidate for this record.
func (d SecurityDeposit) Reconcile() reconcile.Candidate {
	return reconcile.SecurityDeposit{
		ID:         d.ID,
		TenantID:   d.TenantID,
		UnitID:     d.UnitID,
		PropertyID: d.PropertyID,
		CategoryID: d.CategoryID,
		Date:       d.Date,
		Amount:     d.Amount,
		Status:     d.Status,
	}
}

// Export returns all security deposits for export
func (SecurityDeposit) Export() (json.RawMessage, error) {
	var deposits []SecurityDeposit
	err := DB.Unscoped().Where(&SecurityDeposit{}).Find(&deposits).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&deposits)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
