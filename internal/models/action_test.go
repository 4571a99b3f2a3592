package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestActionBeforeSave() {
	property := suite.createTestProperty(models.Property{})
	payment := suite.createTestCategory(models.Category{Kind: "payment"})
	expense := suite.createTestCategory(models.Category{Kind: "expense"})

	tests := []struct {
		name   string
		action models.Action
		err    error
	}{
		{
			"valid payment action",
			models.Action{Kind: "payment", PropertyID: property.ID, CategoryID: payment.ID, Percentage: 100},
			nil,
		},
		{
			"valid expense action",
			models.Action{Kind: "expense", PropertyID: property.ID, CategoryID: expense.ID, Percentage: 40},
			nil,
		},
		{
			"invalid kind",
			models.Action{Kind: "transfer", PropertyID: property.ID, CategoryID: payment.ID, Percentage: 10},
			models.ErrActionKindInvalid,
		},
		{
			"percentage above 100",
			models.Action{Kind: "payment", PropertyID: property.ID, CategoryID: payment.ID, Percentage: 101},
			models.ErrActionPercentageInvalid,
		},
		{
			"negative percentage",
			models.Action{Kind: "payment", PropertyID: property.ID, CategoryID: payment.ID, Percentage: -1},
			models.ErrActionPercentageInvalid,
		},
		{
			"payment action with expense category",
			models.Action{Kind: "payment", PropertyID: property.ID, CategoryID: expense.ID, Percentage: 10},
			models.ErrActionCategoryKind,
		},
		{
			"expense action with payment category",
			models.Action{Kind: "expense", PropertyID: property.ID, CategoryID: payment.ID, Percentage: 10},
			models.ErrActionCategoryKind,
		},
		{
			"category does not exist",
			models.Action{Kind: "payment", PropertyID: property.ID, CategoryID: uuid.New(), Percentage: 10},
			models.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.action).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestActionBeforeCreate() {
	payment := suite.createTestCategory(models.Category{Kind: "payment"})

	err := models.DB.Create(&models.Action{
		Kind:       "payment",
		PropertyID: uuid.New(),
		CategoryID: payment.ID,
		Percentage: 10,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound, "actions must reference an existing property")
}

func (suite *TestSuiteStandard) TestActionReconcile() {
	property := suite.createTestProperty(models.Property{})
	category := suite.createTestCategory(models.Category{Kind: "expense"})

	action := suite.createTestAction(models.Action{
		Kind:       "expense",
		PropertyID: property.ID,
		CategoryID: category.ID,
		Percentage: 60,
	})

	value := action.Reconcile()
	assert.Equal(suite.T(), action.ID, value.ID)
	assert.Equal(suite.T(), property.ID, value.PropertyID)
	assert.Equal(suite.T(), category.ID, value.CategoryID)
	assert.Equal(suite.T(), 60, value.Percentage)
}
