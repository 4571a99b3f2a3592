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

// TestMatchOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestMatchOptions() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Rent Payment - Unit 303"})

	tests := []struct {
		name string
		path string
	}{
		{"Manual", transaction.Data.Links.Match},
		{"Automatic", transaction.Data.Links.MatchAutomatic},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestMatchManually() {
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

	assert.Equal(suite.T(), transaction.Data.ID, response.Data.TransactionID)
	assert.Equal(suite.T(), "manual", response.Data.Mode)
	suite.Require().Len(response.Data.Allocations, 1)
	assert.Equal(suite.T(), payment.PropertyID, response.Data.Allocations[0].PropertyID)
	assert.Equal(suite.T(), payment.CategoryID, response.Data.Allocations[0].CategoryID)
	assert.Equal(suite.T(), "payment", response.Data.Allocations[0].Kind)
	assert.True(suite.T(), response.Data.Allocations[0].Amount.Equal(decimal.NewFromFloat(1850)))

	// The transaction is settled
	var settled models.Transaction
	suite.Require().Nil(models.DB.First(&settled, transaction.Data.ID).Error)
	assert.True(suite.T(), settled.Matched)

	// The candidate record does not show up in searches anymore
	var record models.RentPayment
	suite.Require().Nil(models.DB.First(&record, payment.ID).Error)
	assert.Equal(suite.T(), models.CandidateStatusMatched, record.Status)

	// A second match for the same transaction is a conflict
	r = test.Request(suite.T(), http.MethodPost, transaction.Data.Links.Match, v1.MatchEditable{
		CandidateID:   payment.ID.String(),
		CandidateType: "rent_payment",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestMatchManuallyErrors() {
	payment := suite.createTestRentPayment(models.RentPayment{Amount: decimal.NewFromFloat(1850)})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Rent Payment - Unit 303"})

	tests := []struct {
		name   string
		path   string
		body   v1.MatchEditable
		status int
	}{
		{"Unknown transaction", fmt.Sprintf("http://example.com/v1/transactions/%s/match", uuid.New()), v1.MatchEditable{CandidateID: payment.ID.String(), CandidateType: "rent_payment"}, http.StatusNotFound},
		{"Invalid transaction ID", "http://example.com/v1/transactions/NotAUUID/match", v1.MatchEditable{CandidateID: payment.ID.String(), CandidateType: "rent_payment"}, http.StatusBadRequest},
		{"Invalid candidate type", transaction.Data.Links.Match, v1.MatchEditable{CandidateID: payment.ID.String(), CandidateType: "invoice"}, http.StatusBadRequest},
		{"Candidate ID not set", transaction.Data.Links.Match, v1.MatchEditable{CandidateType: "rent_payment"}, http.StatusBadRequest},
		{"Unknown candidate", transaction.Data.Links.Match, v1.MatchEditable{CandidateID: uuid.New().String(), CandidateType: "rent_payment"}, http.StatusNotFound},
		{"Candidate of wrong type", transaction.Data.Links.Match, v1.MatchEditable{CandidateID: payment.ID.String(), CandidateType: "expense"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchAutomatically() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments"})
	paymentCategory := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rental Income", Kind: "payment"})
	expenseCategory := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Management Fees", Kind: "expense"})

	_ = createTestRule(suite.T(), v1.RuleEditable{
		Name:      "Rent payments",
		Field:     "description",
		Condition: "contains",
		Value:     "rent",
		Enabled:   true,
	})
	_ = createTestAction(suite.T(), v1.ActionEditable{Kind: "payment", PropertyID: property.Data.ID, CategoryID: paymentCategory.Data.ID, Percentage: 60})
	_ = createTestAction(suite.T(), v1.ActionEditable{Kind: "expense", PropertyID: property.Data.ID, CategoryID: expenseCategory.Data.ID, Percentage: 10})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Rent Payment - Unit 303",
		Amount:      decimal.NewFromFloat(1850),
	})

	r := test.Request(suite.T(), http.MethodPost, transaction.Data.Links.MatchAutomatic, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.MatchResultResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "automatic", response.Data.Mode)
	suite.Require().Len(response.Data.Allocations, 2)

	total := decimal.Zero
	for _, allocation := range response.Data.Allocations {
		total = total.Add(allocation.Amount)
	}
	assert.True(suite.T(), total.Equal(decimal.NewFromFloat(1295)), "60%%+10%% of 1850 must be 1295, got %s", total)

	// A second automatic match is a conflict
	r = test.Request(suite.T(), http.MethodPost, transaction.Data.Links.MatchAutomatic, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

// TestMatchAutomaticallyNoMatch verifies that a transaction no rule
// fires for stays unmatched.
func (suite *TestSuiteStandard) TestMatchAutomaticallyNoMatch() {
	_ = createTestRule(suite.T(), v1.RuleEditable{
		Name:      "Rent payments",
		Field:     "description",
		Condition: "contains",
		Value:     "rent",
		Enabled:   true,
	})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Hardware store",
		Amount:      decimal.NewFromFloat(-120),
	})

	r := test.Request(suite.T(), http.MethodPost, transaction.Data.Links.MatchAutomatic, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var unchanged models.Transaction
	suite.Require().Nil(models.DB.First(&unchanged, transaction.Data.ID).Error)
	assert.False(suite.T(), unchanged.Matched)
}

// TestMatchAutomaticallyDisabledRule verifies that disabled rules do
// not fire.
func (suite *TestSuiteStandard) TestMatchAutomaticallyDisabledRule() {
	_ = createTestRule(suite.T(), v1.RuleEditable{
		Name:      "Rent payments",
		Field:     "description",
		Condition: "contains",
		Value:     "rent",
		Enabled:   false,
	})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Rent Payment - Unit 303",
		Amount:      decimal.NewFromFloat(1850),
	})

	r := test.Request(suite.T(), http.MethodPost, transaction.Data.Links.MatchAutomatic, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
