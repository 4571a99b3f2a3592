package models

import (
	"encoding/json"
	"strings"

	"github.com/rentledger/backend/internal/reconcile"
	"gorm.io/gorm"
)

// Category is a vocabulary entry for allocations. The payment and
// expense vocabularies are disjoint: a category always belongs to
// exactly one kind and names are unique per kind.
type Category struct {
	DefaultModel
	Name string `gorm:"uniqueIndex:category_kind_name"`
	Kind string `gorm:"uniqueIndex:category_kind_name"` // "payment" or "expense"
	Note string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if !reconcile.EntryKind(c.Kind).Valid() {
		return ErrActionKindInvalid
	}

	return nil
}

// Export returns all categories for export
func (Category) Export() (json.RawMessage, error) {
	var categories []Category
	err := DB.Unscoped().Where(&Category{}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&categories)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
