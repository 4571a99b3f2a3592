package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/rentledger/backend/internal/controllers/v1"
	"github.com/rentledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func createTestAction(t *testing.T, c v1.ActionEditable, expectedStatus ...int) v1.ActionResponse {
	if c.Kind == "" {
		c.Kind = "payment"
	}

	if c.PropertyID == uuid.Nil {
		c.PropertyID = createTestProperty(t, v1.PropertyEditable{Name: uuid.New().String()}).Data.ID
	}

	if c.CategoryID == uuid.Nil {
		c.CategoryID = createTestCategory(t, v1.CategoryEditable{Name: uuid.New().String(), Kind: c.Kind}).Data.ID
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ActionEditable{
		c,
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/actions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var a v1.ActionCreateResponse
	test.DecodeResponse(t, &r, &a)

	if r.Code == http.StatusCreated {
		return a.Data[0]
	}

	return v1.ActionResponse{}
}

// TestActionOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestActionOptions() {
	tests := []struct {
		name   string
		id     string // path at the /v1/actions endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No action with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Action exists", createTestAction(suite.T(), v1.ActionEditable{Percentage: 60}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/actions", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestActionsCreate() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments"})
	paymentCategory := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Rental Income", Kind: "payment"})
	expenseCategory := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Maintenance", Kind: "expense"})

	tests := []struct {
		name   string
		body   []v1.ActionEditable
		status int
	}{
		{"Valid action", []v1.ActionEditable{{Kind: "payment", PropertyID: property.Data.ID, CategoryID: paymentCategory.Data.ID, Percentage: 60}}, http.StatusCreated},
		{"Invalid kind", []v1.ActionEditable{{Kind: "income", PropertyID: property.Data.ID, CategoryID: paymentCategory.Data.ID, Percentage: 60}}, http.StatusBadRequest},
		{"Percentage above 100", []v1.ActionEditable{{Kind: "payment", PropertyID: property.Data.ID, CategoryID: paymentCategory.Data.ID, Percentage: 101}}, http.StatusBadRequest},
		{"Category from wrong vocabulary", []v1.ActionEditable{{Kind: "payment", PropertyID: property.Data.ID, CategoryID: expenseCategory.Data.ID, Percentage: 60}}, http.StatusBadRequest},
		{"Unknown property", []v1.ActionEditable{{Kind: "payment", PropertyID: uuid.New(), CategoryID: paymentCategory.Data.ID, Percentage: 60}}, http.StatusNotFound},
		{"Unknown category", []v1.ActionEditable{{Kind: "payment", PropertyID: property.Data.ID, CategoryID: uuid.New(), Percentage: 60}}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/actions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestActionsGetFilter() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments"})
	other := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Harbor View"})

	_ = createTestAction(suite.T(), v1.ActionEditable{Kind: "payment", PropertyID: property.Data.ID, Percentage: 60})
	_ = createTestAction(suite.T(), v1.ActionEditable{Kind: "payment", PropertyID: other.Data.ID, Percentage: 20})
	_ = createTestAction(suite.T(), v1.ActionEditable{Kind: "expense", PropertyID: property.Data.ID, Percentage: 10})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Payments", "kind=payment", 2},
		{"By property", fmt.Sprintf("property=%s", property.Data.ID), 2},
		{"By percentage", "percentage=60", 1},
		{"Invalid property UUID", "property=NotAUUID", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/actions?%s", tt.query), "")

			if tt.name == "Invalid property UUID" {
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				return
			}

			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ActionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Wrong number of actions for query %s", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestActionsUpdate() {
	action := createTestAction(suite.T(), v1.ActionEditable{Percentage: 60})

	// A sparse update keeps kind and targets
	r := test.Request(suite.T(), http.MethodPatch, action.Data.Links.Self, map[string]any{
		"percentage": 40,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ActionResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), 40, updated.Data.Percentage)
	assert.Equal(suite.T(), action.Data.CategoryID, updated.Data.CategoryID)

	// An update out of range fails
	r = test.Request(suite.T(), http.MethodPatch, action.Data.Links.Self, map[string]any{
		"percentage": 120,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestActionsDelete() {
	action := createTestAction(suite.T(), v1.ActionEditable{Percentage: 60})

	r := test.Request(suite.T(), http.MethodDelete, action.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, action.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
