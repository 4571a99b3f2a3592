package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/reconcile"
)

type CandidateLinks struct {
	Property string `json:"property" example:"https://example.com/api/v1/properties/8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // The property the candidate belongs to
	Category string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"` // The category a match against this candidate books under
}

// Candidate is the representation of a candidate record in API v1. It
// carries the fields manual matching needs to present and commit a
// match, independent of the candidate's variant.
type Candidate struct {
	ID         uuid.UUID      `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`         // ID of the candidate record
	Type       string         `json:"type" example:"rent_payment"`                               // Variant of the candidate record
	PropertyID uuid.UUID      `json:"propertyId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the property
	CategoryID uuid.UUID      `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category a match books under
	EntryKind  string         `json:"entryKind" example:"payment" enums:"payment,expense"`       // The ledger entry kind a match produces
	Links      CandidateLinks `json:"links"`
}

// newCandidate returns the API v1 representation of the resource
func newCandidate(c *gin.Context, candidate reconcile.Candidate) Candidate {
	url := c.GetString(string(models.DBContextURL))

	return Candidate{
		ID:         candidate.CandidateID(),
		Type:       string(candidate.Kind()),
		PropertyID: candidate.Property(),
		CategoryID: candidate.Category(),
		EntryKind:  string(candidate.Entry()),
		Links: CandidateLinks{
			Property: fmt.Sprintf("%s/v1/properties/%s", url, candidate.Property()),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, candidate.Category()),
		},
	}
}

type CandidateListResponse struct {
	Data  []Candidate `json:"data"`                                                // List of candidates
	Error *string     `json:"error" example:"the specified candidate type is invalid"` // The error, if any occurred
}

type CandidateQueryFilter struct {
	Type       string `form:"type"`     // The candidate variant to search
	Filter     string `form:"filter"`   // Free-text filter
	PropertyID string `form:"property"` // Narrow the search to one property
}
