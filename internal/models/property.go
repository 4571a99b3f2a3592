package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Property is a managed property that allocations are booked against.
type Property struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Note string
}

func (p *Property) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	return nil
}

// Export returns all properties for export
func (Property) Export() (json.RawMessage, error) {
	var properties []Property
	err := DB.Unscoped().Where(&Property{}).Find(&properties).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&properties)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
