package reconcile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation is a resolved dollar amount booked against one property
// and category.
type Allocation struct {
	PropertyID uuid.UUID
	CategoryID uuid.UUID
	Kind       EntryKind
	Amount     decimal.Decimal
}

// MatchMode records how a transaction was matched.
type MatchMode string

const (
	ModeManual    MatchMode = "manual"
	ModeAutomatic MatchMode = "automatic"
)

// MatchResult is the committed outcome of matching one transaction.
// It is created exactly once per transaction and never changed after
// the audit sink has recorded it.
type MatchResult struct {
	TransactionID uuid.UUID
	Mode          MatchMode
	Allocations   []Allocation
	MatchedAt     time.Time
}

// ValidateActions checks an action pool independently of any
// transaction and returns every violation it finds. It backs the
// static rule-set validation that runs before rule edits are saved.
func ValidateActions(actions []Action) []error {
	var errs []error

	total := 0
	seen := make(map[target]bool, len(actions))

	for _, action := range actions {
		if action.Percentage < 0 || action.Percentage > 100 {
			errs = append(errs, fmt.Errorf("%w: action %s has %d%%", ErrInvalidPercentage, action.ID, action.Percentage))
			continue
		}

		total += action.Percentage

		key := target{action.PropertyID, action.CategoryID, action.Kind}
		if seen[key] {
			errs = append(errs, fmt.Errorf("%w: property %s, category %s, kind %s", ErrDuplicateTarget, action.PropertyID, action.CategoryID, action.Kind))
			continue
		}
		seen[key] = true
	}

	if total > 100 {
		errs = append(errs, fmt.Errorf("%w: the pool adds up to %d%%", ErrOverAllocated, total))
	}

	return errs
}

// Allocate validates the action pool against a transaction and
// resolves every action into a dollar allocation.
//
// Amounts are a percentage of the absolute transaction amount, rounded
// half-up to the cent. Rounding can push the sum a cent over the
// transaction amount, so the overflow is taken back from the trailing
// allocations, skipping over ones that cannot give a full cent: the
// sum of all returned allocations never exceeds abs(t.Amount) and no
// allocation goes negative. A pool that adds up to less than 100% is
// legal, the remainder simply stays unallocated.
func Allocate(t Transaction, actions []Action) ([]Allocation, error) {
	if errs := ValidateActions(actions); len(errs) > 0 {
		return nil, errs[0]
	}

	abs := t.Amount.Abs()

	allocations := make([]Allocation, 0, len(actions))
	sum := decimal.Zero

	for _, action := range actions {
		// percentage / 100 as an exact decimal, no division involved
		amount := abs.Mul(decimal.New(int64(action.Percentage), -2)).Round(2)
		sum = sum.Add(amount)

		allocations = append(allocations, Allocation{
			PropertyID: action.PropertyID,
			CategoryID: action.CategoryID,
			Kind:       action.Kind,
			Amount:     amount,
		})
	}

	overflow := sum.Sub(abs)
	for i := len(allocations) - 1; i >= 0 && overflow.IsPositive(); i-- {
		take := decimal.Min(overflow, allocations[i].Amount)
		allocations[i].Amount = allocations[i].Amount.Sub(take)
		overflow = overflow.Sub(take)
	}

	return allocations, nil
}
