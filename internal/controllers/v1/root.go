package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Properties   string `json:"properties" example:"https://example.com/api/v1/properties"`      // URL of Property collection endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`      // URL of Category collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"`  // URL of Transaction collection endpoint
	Rules        string `json:"rules" example:"https://example.com/api/v1/rules"`                // URL of Rule collection endpoint
	Actions      string `json:"actions" example:"https://example.com/api/v1/actions"`            // URL of Action collection endpoint
	Candidates   string `json:"candidates" example:"https://example.com/api/v1/candidates"`      // URL of the candidate search endpoint
	MatchResults string `json:"matchResults" example:"https://example.com/api/v1/match-results"` // URL of Match Result collection endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/export"`              // URL of the export endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Properties:   url + "/v1/properties",
			Categories:   url + "/v1/categories",
			Transactions: url + "/v1/transactions",
			Rules:        url + "/v1/rules",
			Actions:      url + "/v1/actions",
			Candidates:   url + "/v1/candidates",
			MatchResults: url + "/v1/match-results",
			Export:       url + "/v1/export",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// The order is important here since there are foreign keys to consider!
	resources := []models.Model{
		models.Allocation{},
		models.MatchResult{},
		models.RentPayment{},
		models.Expense{},
		models.SecurityDeposit{},
		models.OtherIncome{},
		models.Action{},
		models.Rule{},
		models.Transaction{},
		models.Category{},
		models.Property{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
