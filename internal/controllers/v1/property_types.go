package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/models"
)

type PropertyEditable struct {
	Name string `json:"name" example:"Sunset Apartments" default:""` // Name of the property
	Note string `json:"note" example:"12 units, built 1987" default:""` // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable PropertyEditable) model() models.Property {
	return models.Property{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type PropertyLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/properties/d430d7c3-d14c-4712-9336-ee56965a6673"` // The property itself
}

// Property is the representation of a Property in API v1.
type Property struct {
	models.DefaultModel
	PropertyEditable
	Links PropertyLinks `json:"links"`
}

// newProperty returns the API v1 representation of the resource
func newProperty(c *gin.Context, model models.Property) Property {
	url := c.GetString(string(models.DBContextURL))

	return Property{
		DefaultModel: model.DefaultModel,
		PropertyEditable: PropertyEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: PropertyLinks{
			Self: fmt.Sprintf("%s/v1/properties/%s", url, model.ID),
		},
	}
}

type PropertyListResponse struct {
	Data       []Property  `json:"data"`                                                          // List of properties
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PropertyCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PropertyResponse `json:"data"`                                                          // List of created Properties
}

func (p *PropertyCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PropertyResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	if status(err) > currentStatus {
		currentStatus = status(err)
	}

	return currentStatus
}

type PropertyResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this property
	Data  *Property `json:"data"`                                                          // The Property data, if creation was successful
}

type PropertyQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Filter by name
	Note   string `form:"note" filterField:"false"`   // Filter by note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Property returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Properties to return. Defaults to 50.
}
