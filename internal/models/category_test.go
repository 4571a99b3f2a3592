package models_test

import (
	"github.com/rentledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryKindInvalid() {
	err := models.DB.Create(&models.Category{Name: "Utilities", Kind: "misc"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrActionKindInvalid)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerKind() {
	_ = suite.createTestCategory(models.Category{Name: "Deposits", Kind: "payment"})

	err := models.DB.Create(&models.Category{Name: "Deposits", Kind: "payment"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNotUnique)

	// The same name in the other vocabulary is fine
	err = models.DB.Create(&models.Category{Name: "Deposits", Kind: "expense"}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{Name: " Repairs ", Kind: "expense", Note: " note "})

	assert.Equal(suite.T(), "Repairs", category.Name)
	assert.Equal(suite.T(), "note", category.Note)
}
