package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// MatchEditable is the request body for manual matching.
type MatchEditable struct {
	CandidateID   string `json:"candidateId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`                          // ID of the candidate record to match against
	CandidateType string `json:"candidateType" example:"rent_payment" enums:"rent_payment,expense,security_deposit,other_income"` // Variant of the candidate record
}

// Allocation is the representation of an Allocation in API v1.
type Allocation struct {
	PropertyID uuid.UUID       `json:"propertyId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the property the amount is booked against
	CategoryID uuid.UUID       `json:"categoryId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the category the amount is booked under
	Kind       string          `json:"kind" example:"payment" enums:"payment,expense"`            // The ledger entry kind
	Amount     decimal.Decimal `json:"amount" example:"1850.00"`                                  // The allocated amount
}

type MatchResultLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/match-results/d430d7c3-d14c-4712-9336-ee56965a6673"`       // The match result itself
	Transaction string `json:"transaction" example:"https://example.com/api/v1/transactions/8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // The matched transaction
}

// MatchResult is the representation of a MatchResult in API v1.
type MatchResult struct {
	models.DefaultModel
	TransactionID uuid.UUID        `json:"transactionId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the matched transaction
	Mode          string           `json:"mode" example:"manual" enums:"manual,automatic"`               // How the match was produced
	MatchedAt     time.Time        `json:"matchedAt" example:"2024-03-15T17:30:00Z"`                     // When the match was committed
	Allocations   []Allocation     `json:"allocations"`                                                  // The resolved allocations
	Links         MatchResultLinks `json:"links"`
}

// newMatchResult returns the API v1 representation of the resource
func newMatchResult(c *gin.Context, model models.MatchResult) MatchResult {
	url := c.GetString(string(models.DBContextURL))

	allocations := make([]Allocation, 0, len(model.Allocations))
	for _, allocation := range model.Allocations {
		allocations = append(allocations, Allocation{
			PropertyID: allocation.PropertyID,
			CategoryID: allocation.CategoryID,
			Kind:       allocation.Kind,
			Amount:     allocation.Amount,
		})
	}

	return MatchResult{
		DefaultModel:  model.DefaultModel,
		TransactionID: model.TransactionID,
		Mode:          model.Mode,
		MatchedAt:     model.MatchedAt,
		Allocations:   allocations,
		Links: MatchResultLinks{
			Self:        fmt.Sprintf("%s/v1/match-results/%s", url, model.ID),
			Transaction: fmt.Sprintf("%s/v1/transactions/%s", url, model.TransactionID),
		},
	}
}

type MatchResultListResponse struct {
	Data       []MatchResult `json:"data"`                                                          // List of match results
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type MatchResultResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *MatchResult `json:"data"`                                                          // The Match Result data
}

type MatchResultQueryFilter struct {
	TransactionID string `form:"transaction"`                // Filter by transaction ID
	Mode          string `form:"mode"`                       // Filter by mode
	Offset        uint   `form:"offset" filterField:"false"` // The offset of the first Match Result returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`  // Maximum number of Match Results to return. Defaults to 50.
}

func (f MatchResultQueryFilter) model() (models.MatchResult, error) {
	transactionID, err := httputil.UUIDFromString(f.TransactionID)
	if err != nil {
		return models.MatchResult{}, err
	}

	return models.MatchResult{
		TransactionID: transactionID,
		Mode:          f.Mode,
	}, nil
}
