package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/rentledger/backend/internal/controllers/v1"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestCandidateOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCandidateOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/candidates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCandidatesGetFilter() {
	sunset := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments"})
	harbor := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Harbor View"})

	_ = suite.createTestRentPayment(models.RentPayment{PropertyID: sunset.Data.ID, Amount: decimal.NewFromFloat(1850)})
	_ = suite.createTestRentPayment(models.RentPayment{PropertyID: harbor.Data.ID, Amount: decimal.NewFromFloat(2200)})

	// Settled records are not candidates anymore
	_ = suite.createTestRentPayment(models.RentPayment{PropertyID: sunset.Data.ID, Amount: decimal.NewFromFloat(950), Status: models.CandidateStatusMatched})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All open rent payments", "type=rent_payment", 2},
		{"By property name", "type=rent_payment&filter=sunset", 1},
		{"By amount", "type=rent_payment&filter=1850", 1},
		{"Narrowed to one property", fmt.Sprintf("type=rent_payment&property=%s", harbor.Data.ID), 1},
		{"No matching text", "type=rent_payment&filter=lakeside", 0},
		{"No expenses", "type=expense", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/candidates?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CandidateListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Wrong number of candidates for query %s", tt.query)
		})
	}
}

// TestCandidatesGetDescription verifies that the free-text filter also
// searches the description of income records that have one.
func (suite *TestSuiteStandard) TestCandidatesGetDescription() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Fees", Kind: "payment"})

	income := models.OtherIncome{
		Description: "Parking fees March",
		PropertyID:  property.Data.ID,
		CategoryID:  category.Data.ID,
		Amount:      decimal.NewFromFloat(45),
	}
	suite.Require().Nil(models.DB.Create(&income).Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/candidates?type=other_income&filter=parking", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CandidateListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	assert.Equal(suite.T(), income.ID, response.Data[0].ID)
	assert.Equal(suite.T(), "other_income", response.Data[0].Type)
	assert.Equal(suite.T(), "payment", response.Data[0].EntryKind)
	assert.Equal(suite.T(), property.Data.ID, response.Data[0].PropertyID)
}

func (suite *TestSuiteStandard) TestCandidatesGetErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"Type missing", ""},
		{"Type invalid", "type=invoice"},
		{"Property not a UUID", "type=rent_payment&property=NotAUUID"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/candidates?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
