package reconcile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CandidateKind names the four record shapes eligible for manual
// matching.
type CandidateKind string

const (
	CandidateRentPayment     CandidateKind = "rent_payment"
	CandidateExpense         CandidateKind = "expense"
	CandidateSecurityDeposit CandidateKind = "security_deposit"
	CandidateOtherIncome     CandidateKind = "other_income"
)

// CandidateKinds lists all valid candidate kinds.
var CandidateKinds = []CandidateKind{
	CandidateRentPayment,
	CandidateExpense,
	CandidateSecurityDeposit,
	CandidateOtherIncome,
}

func (k CandidateKind) Valid() bool {
	for _, kind := range CandidateKinds {
		if k == kind {
			return true
		}
	}

	return false
}

// Candidate is an existing financial record a transaction can be
// matched against manually. It is a sealed sum over the four variants
// below so the matcher's candidate handling stays exhaustive.
//
// Candidates are supplied by the registry and never created or changed
// by the engine; a successful manual match marks one as matched through
// the registry.
type Candidate interface {
	CandidateID() uuid.UUID
	Kind() CandidateKind
	Property() uuid.UUID
	Category() uuid.UUID
	// Entry returns the ledger entry kind a manual match against this
	// candidate produces.
	Entry() EntryKind

	candidate()
}

// RentPayment is an expected rent payment from a tenant.
//
// The category is not stored on the record itself, the registry
// resolves it to the payment-category vocabulary entry for rent.
type RentPayment struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	UnitID     uuid.UUID
	PropertyID uuid.UUID
	CategoryID uuid.UUID
	DueDate    time.Time
	Amount     decimal.Decimal
	Status     string
}

func (p RentPayment) CandidateID() uuid.UUID { return p.ID }
func (p RentPayment) Kind() CandidateKind    { return CandidateRentPayment }
func (p RentPayment) Property() uuid.UUID    { return p.PropertyID }
func (p RentPayment) Category() uuid.UUID    { return p.CategoryID }
func (p RentPayment) Entry() EntryKind       { return KindPayment }
func (RentPayment) candidate()               {}

// Expense is a billed cost from a vendor.
type Expense struct {
	ID         uuid.UUID
	VendorID   uuid.UUID
	PropertyID uuid.UUID
	CategoryID uuid.UUID
	DueDate    time.Time
	Amount     decimal.Decimal
	Status     string
}

func (e Expense) CandidateID() uuid.UUID { return e.ID }
func (e Expense) Kind() CandidateKind    { return CandidateExpense }
func (e Expense) Property() uuid.UUID    { return e.PropertyID }
func (e Expense) Category() uuid.UUID    { return e.CategoryID }
func (e Expense) Entry() EntryKind       { return KindExpense }
func (Expense) candidate()               {}

// SecurityDeposit is a deposit held for a tenant. Like rent payments,
// the category comes from the payment vocabulary via the registry.
type SecurityDeposit struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	UnitID     uuid.UUID
	PropertyID uuid.UUID
	CategoryID uuid.UUID
	Date       time.Time
	Amount     decimal.Decimal
	Status     string
}

func (d SecurityDeposit) CandidateID() uuid.UUID { return d.ID }
func (d SecurityDeposit) Kind() CandidateKind    { return CandidateSecurityDeposit }
func (d SecurityDeposit) Property() uuid.UUID    { return d.PropertyID }
func (d SecurityDeposit) Category() uuid.UUID    { return d.CategoryID }
func (d SecurityDeposit) Entry() EntryKind       { return KindPayment }
func (SecurityDeposit) candidate()               {}

// OtherIncome is any income that is neither rent nor a deposit, e.g.
// laundry or parking.
type OtherIncome struct {
	ID          uuid.UUID
	Description string
	PropertyID  uuid.UUID
	CategoryID  uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
}

func (i OtherIncome) CandidateID() uuid.UUID { return i.ID }
func (i OtherIncome) Kind() CandidateKind    { return CandidateOtherIncome }
func (i OtherIncome) Property() uuid.UUID    { return i.PropertyID }
func (i OtherIncome) Category() uuid.UUID    { return i.CategoryID }
func (i OtherIncome) Entry() EntryKind       { return KindPayment }
func (OtherIncome) candidate()               {}
