package models_test

import (
	"github.com/rentledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchResultUniqueTransaction() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Test"})

	_ = suite.createTestMatchResult(models.MatchResult{
		TransactionID: transaction.ID,
		Mode:          "manual",
	})

	err := models.DB.Create(&models.MatchResult{
		TransactionID: transaction.ID,
		Mode:          "automatic",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionMatched, "second match result for the same transaction must be rejected")
}

func (suite *TestSuiteStandard) TestMatchResultModeInvalid() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Test"})

	err := models.DB.Create(&models.MatchResult{
		TransactionID: transaction.ID,
		Mode:          "guessing",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrMatchModeInvalid)
}

func (suite *TestSuiteStandard) TestMatchResultMatchedAtUTC() {
	transaction := suite.createTestTransaction(models.Transaction{Description: "Test"})

	result := suite.createTestMatchResult(models.MatchResult{
		TransactionID: transaction.ID,
		Mode:          "manual",
	})

	assert.False(suite.T(), result.MatchedAt.IsZero(), "MatchedAt must default to the commit time")
}

func (suite *TestSuiteStandard) TestMatchResultAllocations() {
	property := suite.createTestProperty(models.Property{})
	category := suite.createTestCategory(models.Category{Kind: "payment"})
	transaction := suite.createTestTransaction(models.Transaction{Description: "Test"})

	result := suite.createTestMatchResult(models.MatchResult{
		TransactionID: transaction.ID,
		Mode:          "automatic",
		Allocations: []models.Allocation{
			{
				PropertyID: property.ID,
				CategoryID: category.ID,
				Kind:       "payment",
				Amount:     decimal.NewFromFloat(1850),
			},
		},
	})

	var loaded models.MatchResult
	err := models.DB.Preload("Allocations").First(&loaded, result.ID).Error
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), loaded.Allocations, 1)
	assert.True(suite.T(), loaded.Allocations[0].Amount.Equal(decimal.NewFromFloat(1850)))
}
