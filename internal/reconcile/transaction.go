package reconcile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a normalized bank ledger entry as the engine sees it.
//
// It is a snapshot of the stored transaction: the engine never changes
// anything but the Matched flag, and only does so through the Matcher.
// A positive amount is an inflow, a negative amount an outflow.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	AccountID   string
	AccountName string
	Category    string
	Matched     bool
}
