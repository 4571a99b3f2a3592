package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/models"
)

type CategoryEditable struct {
	Name string `json:"name" example:"Rental Income" default:""`          // Name of the category
	Kind string `json:"kind" example:"payment" enums:"payment,expense"`   // The vocabulary this category belongs to
	Note string `json:"note" example:"Monthly rent collections" default:""` // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
		Kind: editable.Kind,
		Note: editable.Note,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/d430d7c3-d14c-4712-9336-ee56965a6673"` // The category itself
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
			Kind: model.Kind,
			Note: model.Note,
		},
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created Categories
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	if status(err) > currentStatus {
		currentStatus = status(err)
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                                          // The Category data, if creation was successful
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Filter by name
	Kind   string `form:"kind"`                       // Filter by kind
	Note   string `form:"note" filterField:"false"`   // Filter by note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}
