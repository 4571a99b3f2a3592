package reconcile

import (
	"github.com/google/uuid"
)

// EntryKind classifies a ledger entry as money coming in or going out.
type EntryKind string

const (
	KindPayment EntryKind = "payment"
	KindExpense EntryKind = "expense"
)

func (k EntryKind) Valid() bool {
	return k == KindPayment || k == KindExpense
}

// Action is an allocation instruction: when the rule set fires, the
// given percentage of the transaction amount is booked against the
// target property and category.
type Action struct {
	ID         uuid.UUID
	Kind       EntryKind
	PropertyID uuid.UUID
	CategoryID uuid.UUID
	Percentage int
}

// target identifies what an action books against. Two actions in the
// same pool must never share a target.
type target struct {
	PropertyID uuid.UUID
	CategoryID uuid.UUID
	Kind       EntryKind
}
