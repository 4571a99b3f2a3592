package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/reconcile"
	"gorm.io/gorm"
)

// Action is a stored allocation instruction. All actions together form
// the pool that is applied when any enabled rule fires.
type Action struct {
	DefaultModel
	Kind       string // "payment" or "expense"
	PropertyID uuid.UUID
	Property   Property `json:"-"`
	CategoryID uuid.UUID
	Category   Category `json:"-"`
	Percentage int
}

func (a *Action) BeforeSave(tx *gorm.DB) error {
	if !reconcile.EntryKind(a.Kind).Valid() {
		return ErrActionKindInvalid
	}

	if a.Percentage < 0 || a.Percentage > 100 {
		return ErrActionPercentageInvalid
	}

	// The category has to come from the vocabulary for the action's
	// kind: expense actions use expense categories, payment actions
	// payment categories.
	category := a.Category
	if category.ID == uuid.Nil {
		err := tx.First(&category, a.CategoryID).Error
		if err != nil {
			return err
		}
	}

	if category.Kind != a.Kind {
		return ErrActionCategoryKind
	}

	return nil
}

func (a *Action) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	return tx.First(&Property{}, a.PropertyID).Error
}

// Reconcile returns the engine value for this action.
func (a Action) Reconcile() reconcile.Action {
	return reconcile.Action{
		ID:         a.ID,
		Kind:       reconcile.EntryKind(a.Kind),
		PropertyID: a.PropertyID,
		CategoryID: a.CategoryID,
		Percentage: a.Percentage,
	}
}

// Export returns all actions for export
func (Action) Export() (json.RawMessage, error) {
	var actions []Action
	err := DB.Unscoped().Where(&Action{}).Find(&actions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&actions)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
