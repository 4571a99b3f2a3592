package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MatchResult is the committed outcome of matching one transaction.
// The unique index on TransactionID is the durable guarantee that a
// transaction is matched at most once.
type MatchResult struct {
	DefaultModel
	TransactionID uuid.UUID   `gorm:"uniqueIndex"`
	Transaction   Transaction `json:"-"`
	Mode          string      // "manual" or "automatic"
	MatchedAt     time.Time
	Allocations   []Allocation
}

func (r *MatchResult) BeforeSave(_ *gorm.DB) error {
	if r.Mode != string(reconcile.ModeManual) && r.Mode != string(reconcile.ModeAutomatic) {
		return ErrMatchModeInvalid
	}

	if r.MatchedAt.IsZero() {
		r.MatchedAt = time.Now().In(time.UTC)
	} else {
		r.MatchedAt = r.MatchedAt.In(time.UTC)
	}

	return nil
}

// Export returns all match results for export
func (MatchResult) Export() (json.RawMessage, error) {
	var results []MatchResult
	err := DB.Unscoped().Where(&MatchResult{}).Find(&results).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&results)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}

// Allocation is one resolved dollar amount of a match result, booked
// against a property and category.
type Allocation struct {
	DefaultModel
	MatchResultID uuid.UUID
	PropertyID    uuid.UUID
	Property      Property `json:"-"`
	CategoryID    uuid.UUID
	Category      Category `json:"-"`
	Kind          string          // "payment" or "expense"
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// Export returns all allocations for export
func (Allocation) Export() (json.RawMessage, error) {
	var allocations []Allocation
	err := DB.Unscoped().Where(&Allocation{}).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&allocations)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
