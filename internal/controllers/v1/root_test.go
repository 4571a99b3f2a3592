package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/rentledger/backend/internal/controllers/v1"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsRootV1() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetRootV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/properties", response.Links.Properties)
	assert.Equal(suite.T(), "http://example.com/v1/categories", response.Links.Categories)
	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal(suite.T(), "http://example.com/v1/rules", response.Links.Rules)
	assert.Equal(suite.T(), "http://example.com/v1/actions", response.Links.Actions)
	assert.Equal(suite.T(), "http://example.com/v1/candidates", response.Links.Candidates)
	assert.Equal(suite.T(), "http://example.com/v1/match-results", response.Links.MatchResults)
	assert.Equal(suite.T(), "http://example.com/v1/export", response.Links.Export)
}

func (suite *TestSuiteStandard) TestCleanup() {
	_ = suite.createTestRentPayment(models.RentPayment{Amount: decimal.NewFromFloat(1850)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Rent Payment - Unit 303"})
	_ = createTestRule(suite.T(), v1.RuleEditable{Name: "Rent payments"})
	_ = createTestAction(suite.T(), v1.ActionEditable{Percentage: 60})

	tests := []string{
		"http://example.com/v1/properties",
		"http://example.com/v1/categories",
		"http://example.com/v1/transactions",
		"http://example.com/v1/rules",
		"http://example.com/v1/actions",
	}

	// Delete
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify that all resources are gone
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"no confirmation", ""},
		{"wrong confirmation", "?confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, "http://example.com/v1"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
