package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/rentledger/backend/internal/registry"
)

// RegisterCandidateRoutes registers the routes for the candidate search
// with the RouterGroup that is passed.
func RegisterCandidateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCandidates)
	r.GET("", GetCandidates)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Candidates
// @Success		204
// @Router			/v1/candidates [options]
func OptionsCandidates(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Search candidates
// @Description	Returns the unmatched candidate records of the requested type whose text matches the filter. This is the list manual matching picks from.
// @Tags			Candidates
// @Produce		json
// @Success		200	{object}	CandidateListResponse
// @Failure		400	{object}	CandidateListResponse
// @Failure		500	{object}	CandidateListResponse
// @Router			/v1/candidates [get]
// @Param			type		query	string	true	"Candidate type"	Enums(rent_payment, expense, security_deposit, other_income)
// @Param			filter		query	string	false	"Free-text filter, matched case-insensitively"
// @Param			property	query	string	false	"Narrow the search to one property ID"
func GetCandidates(c *gin.Context) {
	var filter CandidateQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, CandidateListResponse{
			Error: &s,
		})
		return
	}

	kind := reconcile.CandidateKind(filter.Type)
	if !kind.Valid() {
		e := errCandidateTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, CandidateListResponse{
			Error: &e,
		})
		return
	}

	propertyID, err := httputil.UUIDFromString(filter.PropertyID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CandidateListResponse{
			Error: &e,
		})
		return
	}

	candidates, err := registry.New(models.DB).Search(kind, filter.Filter, propertyID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CandidateListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		data = append(data, newCandidate(c, candidate))
	}

	c.JSON(http.StatusOK, CandidateListResponse{Data: data})
}
