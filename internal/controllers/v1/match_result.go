package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterMatchResultRoutes registers the routes for match results with
// the RouterGroup that is passed.
//
// Match results are created through the matching endpoints and are
// read-only here: the audit trail must not be editable.
func RegisterMatchResultRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMatchResults)
		r.GET("", GetMatchResults)
	}

	// MatchResult with ID
	{
		r.OPTIONS("/:id", OptionsMatchResultDetail)
		r.GET("/:id", GetMatchResult)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MatchResults
// @Success		204
// @Router			/v1/match-results [options]
func OptionsMatchResults(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			MatchResults
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/match-results/{id} [options]
func OptionsMatchResultDetail(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var result models.MatchResult
	err = models.DB.First(&result, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get match results
// @Description	Returns a list of match results
// @Tags			MatchResults
// @Produce		json
// @Success		200	{object}	MatchResultListResponse
// @Failure		400	{object}	MatchResultListResponse
// @Failure		500	{object}	MatchResultListResponse
// @Router			/v1/match-results [get]
// @Param			transaction	query	string	false	"Filter by transaction ID"
// @Param			mode		query	string	false	"Filter by mode, either 'manual' or 'automatic'"
// @Param			offset		query	uint	false	"The offset of the first Match Result returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Match Results to return. Defaults to 50."
func GetMatchResults(c *gin.Context) {
	var filter MatchResultQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, MatchResultListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.
		Order("datetime(matched_at) DESC").
		Preload("Allocations").
		Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 match results and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var results []models.MatchResult
	err = q.Find(&results).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultListResponse{
			Error: &e,
		})
		return
	}

	data := make([]MatchResult, 0)
	for _, result := range results {
		data = append(data, newMatchResult(c, result))
	}

	c.JSON(http.StatusOK, MatchResultListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get match result
// @Description	Returns a specific match result
// @Tags			MatchResults
// @Produce		json
// @Success		200	{object}	MatchResultResponse
// @Failure		400	{object}	MatchResultResponse
// @Failure		404	{object}	MatchResultResponse
// @Failure		500	{object}	MatchResultResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/match-results/{id} [get]
func GetMatchResult(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	var result models.MatchResult
	err = models.DB.Preload("Allocations").First(&result, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	data := newMatchResult(c, result)
	c.JSON(http.StatusOK, MatchResultResponse{Data: &data})
}
