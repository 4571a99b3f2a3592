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

func createTestProperty(t *testing.T, c v1.PropertyEditable, expectedStatus ...int) v1.PropertyResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.PropertyEditable{
		c,
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/properties", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var a v1.PropertyCreateResponse
	test.DecodeResponse(t, &r, &a)

	if r.Code == http.StatusCreated {
		return a.Data[0]
	}

	return v1.PropertyResponse{}
}

// TestPropertiesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestPropertiesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestProperty(t, v1.PropertyEditable{Name: "Sunset Apartments"}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/properties", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
				assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), "an error occurred on the server")
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestPropertyOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestPropertyOptions() {
	tests := []struct {
		name   string
		id     string // path at the /v1/properties endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No property with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Property exists", createTestProperty(suite.T(), v1.PropertyEditable{Name: "Harbor View"}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/properties", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestPropertiesGetSingle verifies that requests for the resource endpoints
// are handled correctly.
func (suite *TestSuiteStandard) TestPropertiesGetSingle() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Cedar Court"})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing property", property.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No property with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/properties/%s", tt.id), "")

			var property v1.PropertyResponse
			test.DecodeResponse(t, &recorder, &property)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestPropertiesCreate() {
	_ = createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments", Note: "12 units"})

	tests := []struct {
		name     string
		body     any
		status   int
		errIndex *int // index of the response item that must carry the error, nil for top level
	}{
		{"Duplicate name", []v1.PropertyEditable{{Name: "Sunset Apartments"}}, http.StatusBadRequest, func() *int { i := 0; return &i }()},
		{"Broken body", `{ "name": 2" }`, http.StatusBadRequest, nil},
		{"No body", "", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/properties", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.PropertyCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.errIndex == nil {
				assert.NotNil(t, response.Error)
			} else {
				assert.NotNil(t, response.Data[*tt.errIndex].Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestPropertiesGetFilter() {
	_ = createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments", Note: "built 1987"})
	_ = createTestProperty(suite.T(), v1.PropertyEditable{Name: "Harbor View"})
	_ = createTestProperty(suite.T(), v1.PropertyEditable{Name: "Cedar Court", Note: "built 2003"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name single", "name=Harbor", 1},
		{"Name fragment", "name=r", 3},
		{"Note", "note=built", 2},
		{"Empty note", "note=", 1},
		{"No results", "name=Nonexisting", 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/properties?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PropertyListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.len, len(response.Data), "Wrong number of properties for query %s", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestPropertiesUpdate() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments"})

	r := test.Request(suite.T(), http.MethodPatch, property.Data.Links.Self, map[string]string{
		"note": "sold in 2024",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The note is updated, the name stays
	r = test.Request(suite.T(), http.MethodGet, property.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.PropertyResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Sunset Apartments", updated.Data.Name)
	assert.Equal(suite.T(), "sold in 2024", updated.Data.Note)
}

func (suite *TestSuiteStandard) TestPropertiesUpdateDuplicateName() {
	_ = createTestProperty(suite.T(), v1.PropertyEditable{Name: "Harbor View"})
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Cedar Court"})

	r := test.Request(suite.T(), http.MethodPatch, property.Data.Links.Self, v1.PropertyEditable{
		Name: "Harbor View",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPropertiesDelete() {
	property := createTestProperty(suite.T(), v1.PropertyEditable{Name: "Sunset Apartments"})

	r := test.Request(suite.T(), http.MethodDelete, property.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, property.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
