package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/rentledger/backend/internal/reconcile"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a normalized bank ledger entry waiting to be
// reconciled. The ingestion layer creates it; after that only the
// Matched flag changes, and only when a match result is committed.
//
// A positive amount is an inflow, a negative amount an outflow.
type Transaction struct {
	DefaultModel
	Date        time.Time
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AccountID   string          // Identifier of the bank account at the institution
	AccountName string
	Category    string // Free-text category from the bank feed, may be empty
	Matched     bool
	ImportHash  string // The SHA256 hash of a unique combination of values to use in duplicate detection when importing transactions
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.AccountID = strings.TrimSpace(t.AccountID)
	t.AccountName = strings.TrimSpace(t.AccountName)
	t.Category = strings.TrimSpace(t.Category)
	t.ImportHash = strings.TrimSpace(t.ImportHash)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// Reconcile returns the engine value for this transaction.
func (t Transaction) Reconcile() reconcile.Transaction {
	return reconcile.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		AccountID:   t.AccountID,
		AccountName: t.AccountName,
		Category:    t.Category,
		Matched:     t.Matched,
	}
}

// Export returns all transactions for export
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Unscoped().Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transactions)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
