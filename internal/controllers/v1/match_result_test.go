package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/rentledger/backend/internal/controllers/v1"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// matchTestTransaction commits a manual match and returns the match
// result for it.
func (suite *TestSuiteStandard) matchTestTransaction() v1.MatchResult {
	payment := suite.createTestRentPayment(models.RentPayment{Amount: decimal.NewFromFloat(1850)})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Rent Payment - Unit 303",
		Amount:      decimal.NewFromFloat(1850),
	})

	r := test.Request(suite.T(), http.MethodPost, transaction.Data.Links.Match, v1.MatchEditable{
		CandidateID:   payment.ID.String(),
		CandidateType: "rent_payment",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.MatchResultResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return *response.Data
}

// TestMatchResultOptions verifies that OPTIONS requests are handled
// correctly and that the audit trail stays read-only.
func (suite *TestSuiteStandard) TestMatchResultOptions() {
	result := suite.matchTestTransaction()

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/match-results", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, result.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))

	// The audit trail is not editable
	r = test.Request(suite.T(), http.MethodDelete, result.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestMatchResultsGet() {
	result := suite.matchTestTransaction()

	r := test.Request(suite.T(), http.MethodGet, result.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchResultResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), result.TransactionID, response.Data.TransactionID)
	assert.Equal(suite.T(), "manual", response.Data.Mode)
	assert.Len(suite.T(), response.Data.Allocations, 1)
}

func (suite *TestSuiteStandard) TestMatchResultsGetFilter() {
	result := suite.matchTestTransaction()

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 1},
		{"By transaction", fmt.Sprintf("transaction=%s", result.TransactionID), 1},
		{"By mode", "mode=manual", 1},
		{"No automatic results", "mode=automatic", 0},
		{"Other transaction", fmt.Sprintf("transaction=%s", uuid.New()), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-results?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MatchResultListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Wrong number of match results for query %s", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchResultsGetSingleErrors() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No match result with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-results/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
