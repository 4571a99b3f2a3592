package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/models"
)

type RuleEditable struct {
	Name      string `json:"name" example:"Rent payments" default:""`                                                                    // Name of the rule
	Field     string `json:"field" example:"description" enums:"description,amount,date,category,accountName"`                           // The transaction field the condition reads
	Condition string `json:"condition" example:"contains" enums:"contains,equals,starts_with,ends_with,greater_than,less_than"`          // The comparison
	Value     string `json:"value" example:"rent"`                                                                                       // The comparison value. Must be numeric for greater_than and less_than
	Enabled   bool   `json:"enabled" example:"true" default:"false"`                                                                     // Whether the rule participates in automatic matching
	Priority  uint   `json:"priority" example:"1" default:"0"`                                                                           // Evaluation priority, lower numbers are evaluated first
}

// model returns the database resource for the API representation of the editable fields
func (editable RuleEditable) model() models.Rule {
	return models.Rule{
		Name:      editable.Name,
		Field:     editable.Field,
		Condition: editable.Condition,
		Value:     editable.Value,
		Enabled:   editable.Enabled,
		Priority:  editable.Priority,
	}
}

type RuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/rules/d430d7c3-d14c-4712-9336-ee56965a6673"` // The rule itself
}

// Rule is the representation of a Rule in API v1.
type Rule struct {
	models.DefaultModel
	RuleEditable
	Links RuleLinks `json:"links"`
}

// newRule returns the API v1 representation of the resource
func newRule(c *gin.Context, model models.Rule) Rule {
	url := c.GetString(string(models.DBContextURL))

	return Rule{
		DefaultModel: model.DefaultModel,
		RuleEditable: RuleEditable{
			Name:      model.Name,
			Field:     model.Field,
			Condition: model.Condition,
			Value:     model.Value,
			Enabled:   model.Enabled,
			Priority:  model.Priority,
		},
		Links: RuleLinks{
			Self: fmt.Sprintf("%s/v1/rules/%s", url, model.ID),
		},
	}
}

type RuleListResponse struct {
	Data       []Rule      `json:"data"`                                                          // List of rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type RuleCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RuleResponse `json:"data"`                                                          // List of created Rules
}

func (r *RuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	if status(err) > currentStatus {
		currentStatus = status(err)
	}

	return currentStatus
}

type RuleResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this rule
	Data  *Rule   `json:"data"`                                                          // The Rule data, if creation was successful
}

// RuleValidationResponse is the result of a static rule set validation.
type RuleValidationResponse struct {
	Error  *string  `json:"error" example:"the request body must not be empty"` // The error, if the request itself failed
	Valid  bool     `json:"valid" example:"false"`                              // Whether the submitted configuration is valid
	Errors []string `json:"errors" example:"percentages of all actions sum to 120, must not exceed 100"` // All validation errors in the submitted configuration
}

type RuleQueryFilter struct {
	Name      string `form:"name" filterField:"false"`   // Filter by name
	Field     string `form:"field"`                      // Filter by transaction field
	Condition string `form:"condition"`                  // Filter by condition
	Value     string `form:"value"`                      // Filter by comparison value
	Enabled   bool   `form:"enabled"`                    // Filter by enabled state
	Priority  uint   `form:"priority"`                   // Filter by priority
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first Rule returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of Rules to return. Defaults to 50.
}
