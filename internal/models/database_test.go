package models_test

import (
	"github.com/rentledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFound() {
	var property models.Property
	err := models.DB.First(&property, "name = ?", "does not exist").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "property", "error message must name the resource type")
}

func (suite *TestSuiteStandard) TestDatabaseClosedGeneralError() {
	suite.CloseDB()

	err := models.DB.Create(&models.Property{Name: "Test"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
