package models_test

import (
	"encoding/json"
	"testing"

	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRuleBeforeSave() {
	tests := []struct {
		name string
		rule models.Rule
		err  error
	}{
		{
			"valid string rule",
			models.Rule{Field: "description", Condition: "contains", Value: "rent"},
			nil,
		},
		{
			"valid numeric rule",
			models.Rule{Field: "amount", Condition: "greater_than", Value: "1000"},
			nil,
		},
		{
			"invalid field",
			models.Rule{Field: "note", Condition: "contains", Value: "rent"},
			models.ErrRuleFieldInvalid,
		},
		{
			"invalid condition",
			models.Rule{Field: "description", Condition: "matches_regex", Value: "rent"},
			models.ErrRuleConditionInvalid,
		},
		{
			"numeric condition with non-numeric value",
			models.Rule{Field: "amount", Condition: "less_than", Value: "lots"},
			models.ErrRuleValueNotNumeric,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.rule).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRuleReconcile() {
	rule := suite.createTestRule(models.Rule{
		Name:      "Rent payments",
		Field:     "description",
		Condition: "contains",
		Value:     "rent",
		Enabled:   true,
		Priority:  2,
	})

	value := rule.Reconcile()
	assert.Equal(suite.T(), rule.ID, value.ID)
	assert.Equal(suite.T(), reconcile.FieldDescription, value.Field)
	assert.Equal(suite.T(), reconcile.ConditionContains, value.Condition)
	assert.Equal(suite.T(), "rent", value.Value)
	assert.True(suite.T(), value.Enabled)
	assert.Equal(suite.T(), uint(2), value.Priority)
}

func (suite *TestSuiteStandard) TestRuleExport() {
	t := suite.T()

	for range 2 {
		_ = suite.createTestRule(models.Rule{Field: "description", Condition: "contains", Value: "rent"})
	}

	raw, err := models.Rule{}.Export()
	if err != nil {
		require.Fail(t, "rule export failed", err)
	}

	var rules []models.Rule
	err = json.Unmarshal(raw, &rules)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, rules, 2, "number of rules in export is wrong")
}
