package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
)

type ActionEditable struct {
	Kind       string    `json:"kind" example:"payment" enums:"payment,expense"`            // The ledger entry kind this action produces
	PropertyID uuid.UUID `json:"propertyId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the property the percentage is booked against
	CategoryID uuid.UUID `json:"categoryId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // ID of the category, must come from the vocabulary for the action's kind
	Percentage int       `json:"percentage" example:"60" minimum:"0" maximum:"100"`         // Percentage of the transaction amount, 0 to 100
}

// model returns the database resource for the API representation of the editable fields
func (editable ActionEditable) model() models.Action {
	return models.Action{
		Kind:       editable.Kind,
		PropertyID: editable.PropertyID,
		CategoryID: editable.CategoryID,
		Percentage: editable.Percentage,
	}
}

type ActionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/actions/d430d7c3-d14c-4712-9336-ee56965a6673"`       // The action itself
	Property string `json:"property" example:"https://example.com/api/v1/properties/8e16b456-a719-48ce-9fec-e115cfa7cbcc"` // The property the action books against
	Category string `json:"category" example:"https://example.com/api/v1/categories/2649c965-7999-4873-ae16-89d5d5fa972e"` // The category the action books under
}

// Action is the representation of an Action in API v1.
type Action struct {
	models.DefaultModel
	ActionEditable
	Links ActionLinks `json:"links"`
}

// newAction returns the API v1 representation of the resource
func newAction(c *gin.Context, model models.Action) Action {
	url := c.GetString(string(models.DBContextURL))

	return Action{
		DefaultModel: model.DefaultModel,
		ActionEditable: ActionEditable{
			Kind:       model.Kind,
			PropertyID: model.PropertyID,
			CategoryID: model.CategoryID,
			Percentage: model.Percentage,
		},
		Links: ActionLinks{
			Self:     fmt.Sprintf("%s/v1/actions/%s", url, model.ID),
			Property: fmt.Sprintf("%s/v1/properties/%s", url, model.PropertyID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type ActionListResponse struct {
	Data       []Action    `json:"data"`                                                          // List of actions
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ActionCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ActionResponse `json:"data"`                                                          // List of created Actions
}

func (r *ActionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ActionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	if status(err) > currentStatus {
		currentStatus = status(err)
	}

	return currentStatus
}

type ActionResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this action
	Data  *Action `json:"data"`                                                          // The Action data, if creation was successful
}

type ActionQueryFilter struct {
	Kind       string `form:"kind"`                       // Filter by kind
	PropertyID string `form:"property"`                   // Filter by property ID
	CategoryID string `form:"category"`                   // Filter by category ID
	Percentage int    `form:"percentage"`                 // Filter by percentage
	Offset     uint   `form:"offset" filterField:"false"` // The offset of the first Action returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`  // Maximum number of Actions to return. Defaults to 50.
}

func (f ActionQueryFilter) model() (models.Action, error) {
	propertyID, err := httputil.UUIDFromString(f.PropertyID)
	if err != nil {
		return models.Action{}, err
	}

	categoryID, err := httputil.UUIDFromString(f.CategoryID)
	if err != nil {
		return models.Action{}, err
	}

	return models.Action{
		Kind:       f.Kind,
		PropertyID: propertyID,
		CategoryID: categoryID,
		Percentage: f.Percentage,
	}, nil
}
