package reconcile

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Field identifies the transaction attribute a rule inspects.
type Field string

const (
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldDate        Field = "date"
	FieldCategory    Field = "category"
	FieldAccountName Field = "accountName"
)

// Fields lists all valid rule fields.
var Fields = []Field{FieldDescription, FieldAmount, FieldDate, FieldCategory, FieldAccountName}

func (f Field) Valid() bool {
	for _, field := range Fields {
		if f == field {
			return true
		}
	}

	return false
}

// Condition is the comparison a rule performs on its field.
type Condition string

const (
	ConditionContains    Condition = "contains"
	ConditionEquals      Condition = "equals"
	ConditionStartsWith  Condition = "starts_with"
	ConditionEndsWith    Condition = "ends_with"
	ConditionGreaterThan Condition = "greater_than"
	ConditionLessThan    Condition = "less_than"
)

// Conditions lists all valid rule conditions.
var Conditions = []Condition{
	ConditionContains,
	ConditionEquals,
	ConditionStartsWith,
	ConditionEndsWith,
	ConditionGreaterThan,
	ConditionLessThan,
}

func (c Condition) Valid() bool {
	for _, condition := range Conditions {
		if c == condition {
			return true
		}
	}

	return false
}

// Numeric reports whether the condition compares numbers instead of strings.
func (c Condition) Numeric() bool {
	return c == ConditionGreaterThan || c == ConditionLessThan
}

// Rule is a user-authored predicate over a single transaction field.
type Rule struct {
	ID        uuid.UUID
	Name      string
	Field     Field
	Condition Condition
	Value     string
	Enabled   bool
	Priority  uint
}

// fieldString maps every field to its string form. String conditions,
// including "equals", compare these forms. Numeric and date fields are
// not special-cased for "equals" on purpose: typed equality would
// silently change which transactions existing rule sets match.
var fieldString = map[Field]func(Transaction) string{
	FieldDescription: func(t Transaction) string { return t.Description },
	FieldAmount:      func(t Transaction) string { return t.Amount.String() },
	FieldDate:        func(t Transaction) string { return t.Date.Format("2006-01-02") },
	FieldCategory:    func(t Transaction) string { return t.Category },
	FieldAccountName: func(t Transaction) string { return t.AccountName },
}

// fieldNumber maps every field to its numeric form. The second return
// value is false when the field has no numeric representation for this
// transaction.
var fieldNumber = map[Field]func(Transaction) (decimal.Decimal, bool){
	FieldDescription: parseDecimal(fieldString[FieldDescription]),
	FieldAmount:      func(t Transaction) (decimal.Decimal, bool) { return t.Amount, true },
	FieldDate:        parseDecimal(fieldString[FieldDate]),
	FieldCategory:    parseDecimal(fieldString[FieldCategory]),
	FieldAccountName: parseDecimal(fieldString[FieldAccountName]),
}

func parseDecimal(get func(Transaction) string) func(Transaction) (decimal.Decimal, bool) {
	return func(t Transaction) (decimal.Decimal, bool) {
		parsed, err := decimal.NewFromString(strings.TrimSpace(get(t)))
		if err != nil {
			return decimal.Zero, false
		}

		return parsed, true
	}
}

// fold returns the Unicode case-folded form of s for case-insensitive
// comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Matches evaluates the rule against a transaction.
//
// It never fails: a disabled rule, an unknown field or condition, and
// any value that cannot be coerced for a numeric comparison all
// evaluate to false, so one misconfigured rule cannot abort evaluation
// of the rest of the rule set.
func (r Rule) Matches(t Transaction) bool {
	if !r.Enabled {
		return false
	}

	if r.Condition.Numeric() {
		get, ok := fieldNumber[r.Field]
		if !ok {
			return false
		}

		have, ok := get(t)
		if !ok {
			return false
		}

		want, err := decimal.NewFromString(strings.TrimSpace(r.Value))
		if err != nil {
			return false
		}

		switch r.Condition {
		case ConditionGreaterThan:
			return have.GreaterThan(want)
		case ConditionLessThan:
			return have.LessThan(want)
		}

		return false
	}

	get, ok := fieldString[r.Field]
	if !ok {
		return false
	}

	have := fold(get(t))
	want := fold(r.Value)

	switch r.Condition {
	case ConditionContains:
		return strings.Contains(have, want)
	case ConditionEquals:
		return have == want
	case ConditionStartsWith:
		return strings.HasPrefix(have, want)
	case ConditionEndsWith:
		return strings.HasSuffix(have, want)
	}

	return false
}
