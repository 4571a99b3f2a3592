package models

import (
	"encoding/json"
	"strings"

	"github.com/rentledger/backend/internal/reconcile"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Rule is a stored user-authored matching rule. Rules are loaded
// wholesale into a rule set snapshot at the start of every automatic
// matching run, so edits never affect an evaluation in flight.
type Rule struct {
	DefaultModel
	Name      string
	Field     string
	Condition string
	Value     string
	// No database default on purpose: gorm does not insert false for a
	// bool with a default, which would make disabled rules impossible
	// to create.
	Enabled  bool
	Priority uint
}

func (r *Rule) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Value = strings.TrimSpace(r.Value)

	if !reconcile.Field(r.Field).Valid() {
		return ErrRuleFieldInvalid
	}

	condition := reconcile.Condition(r.Condition)
	if !condition.Valid() {
		return ErrRuleConditionInvalid
	}

	// Numeric conditions need a value that parses as a number. String
	// conditions take any value.
	if condition.Numeric() {
		if _, err := decimal.NewFromString(r.Value); err != nil {
			return ErrRuleValueNotNumeric
		}
	}

	return nil
}

// Reconcile returns the engine value for this rule.
func (r Rule) Reconcile() reconcile.Rule {
	return reconcile.Rule{
		ID:        r.ID,
		Name:      r.Name,
		Field:     reconcile.Field(r.Field),
		Condition: reconcile.Condition(r.Condition),
		Value:     r.Value,
		Enabled:   r.Enabled,
		Priority:  r.Priority,
	}
}

// Export returns all rules for export
func (Rule) Export() (json.RawMessage, error) {
	var rules []Rule
	err := DB.Unscoped().Where(&Rule{}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&rules)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
