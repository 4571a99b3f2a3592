package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OtherIncome is income that is neither rent nor a deposit, e.g.
// laundry, parking or application fees.
type OtherIncome struct {
	DefaultModel
	Description string
	PropertyID  uuid.UUID
	Property    Property `json:"-"`
	CategoryID  uuid.UUID
	Category    Category `json:"-"` // A payment category
	Date        time.Time
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Matched     bool
}

func (i *OtherIncome) BeforeSave(_ *gorm.DB) error {
	i.Description = strings.TrimSpace(i.Description)

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	return nil
}

// Reconcile returns the engine candidate for this record.
func (i OtherIncome) Reconcile() reconcile.Candidate {
	return reconcile.OtherIncome{
		ID:          i.ID,
		Description: i.Description,
		PropertyID:  i.PropertyID,
		CategoryID:  i.CategoryID,
		Date:        i.Date,
		Amount:      i.Amount,
	}
}

// Export returns all other income records for export
func (OtherIncome) Export() (json.RawMessage, error) {
	var records []OtherIncome
	err := DB.Unscoped().Where(&OtherIncome{}).Find(&records).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&records)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
