package models_test

import (
	"github.com/rentledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPropertyNameUnique() {
	_ = suite.createTestProperty(models.Property{Name: "Sunset Apartments"})

	err := models.DB.Create(&models.Property{Name: "Sunset Apartments"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrPropertyNameNotUnique)
}

func (suite *TestSuiteStandard) TestPropertyTrimWhitespace() {
	property := suite.createTestProperty(models.Property{Name: " Sunset Apartments ", Note: " 12 units "})

	assert.Equal(suite.T(), "Sunset Apartments", property.Name)
	assert.Equal(suite.T(), "12 units", property.Note)
}
