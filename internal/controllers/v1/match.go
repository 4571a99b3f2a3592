package v1

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/audit"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/reconcile"
	"github.com/rentledger/backend/internal/registry"
	"gorm.io/gorm"
)

var (
	matcherMu sync.Mutex
	matcherDB *gorm.DB
	matcher   *reconcile.Matcher
)

// getMatcher returns the matcher for the current database connection.
// The matcher holds the per-transaction locks, so it has to live across
// requests and is only rebuilt when the connection changes.
func getMatcher() *reconcile.Matcher {
	matcherMu.Lock()
	defer matcherMu.Unlock()

	if matcher == nil || matcherDB != models.DB {
		matcher = reconcile.NewMatcher(registry.New(models.DB), audit.New(models.DB))
		matcherDB = models.DB
	}

	return matcher
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Matching
// @Success		204
// @Router			/v1/transactions/{id}/match [options]
func OptionsTransactionMatch(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Matching
// @Success		204
// @Router			/v1/transactions/{id}/match/automatic [options]
func OptionsTransactionMatchAutomatic(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Match transaction manually
// @Description	Matches the transaction against a candidate record the user picked. The full transaction amount is allocated to the candidate's property and category.
// @Tags			Matching
// @Accept			json
// @Produce		json
// @Success		201		{object}	MatchResultResponse
// @Failure		400		{object}	MatchResultResponse
// @Failure		404		{object}	MatchResultResponse
// @Failure		409		{object}	MatchResultResponse
// @Failure		500		{object}	MatchResultResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			match	body		MatchEditable	true	"Match"
// @Router			/v1/transactions/{id}/match [post]
func MatchTransactionManually(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	var editable MatchEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	kind := reconcile.CandidateKind(editable.CandidateType)
	if !kind.Valid() {
		e := errCandidateTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, MatchResultResponse{
			Error: &e,
		})
		return
	}

	candidateID, err := httputil.UUIDFromString(editable.CandidateID)
	if err != nil || candidateID == uuid.Nil {
		e := errCandidateIDNotSet.Error()
		if err != nil {
			e = err.Error()
		}
		c.JSON(http.StatusBadRequest, MatchResultResponse{
			Error: &e,
		})
		return
	}

	value := transaction.Reconcile()
	_, err = getMatcher().MatchManually(c.Request.Context(), &value, kind, candidateID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	respondWithMatchResult(c, transaction.ID, http.StatusCreated)
}

// @Summary		Match transaction automatically
// @Description	Runs the configured rule set against the transaction. When a rule fires, the transaction amount is allocated according to the configured actions. Returns 204 when no rule fires.
// @Tags			Matching
// @Produce		json
// @Success		201	{object}	MatchResultResponse
// @Success		204
// @Failure		400	{object}	MatchResultResponse
// @Failure		404	{object}	MatchResultResponse
// @Failure		409	{object}	MatchResultResponse
// @Failure		500	{object}	MatchResultResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id}/match/automatic [post]
func MatchTransactionAutomatically(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	set, err := loadRuleSet()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	value := transaction.Reconcile()
	_, err = getMatcher().MatchAutomatically(c.Request.Context(), &value, set)
	if err != nil {
		// No rule firing is a valid terminal outcome, the caller falls
		// back to manual matching
		if errors.Is(err, reconcile.ErrNoMatch) {
			c.JSON(http.StatusNoContent, nil)
			return
		}

		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	respondWithMatchResult(c, transaction.ID, http.StatusCreated)
}

// loadRuleSet builds the engine rule set from the configured rules and
// actions. Rules are ordered by priority with creation time as the tie
// breaker so evaluation is deterministic.
func loadRuleSet() (reconcile.RuleSet, error) {
	var rules []models.Rule
	err := models.DB.Order("priority ASC, datetime(created_at) ASC").Find(&rules).Error
	if err != nil {
		return reconcile.RuleSet{}, err
	}

	var actions []models.Action
	err = models.DB.Order("datetime(created_at) ASC").Find(&actions).Error
	if err != nil {
		return reconcile.RuleSet{}, err
	}

	set := reconcile.RuleSet{}
	for _, rule := range rules {
		set.Rules = append(set.Rules, rule.Reconcile())
	}
	for _, action := range actions {
		set.Actions = append(set.Actions, action.Reconcile())
	}

	return set, nil
}

// respondWithMatchResult returns the persisted match result for the
// transaction.
func respondWithMatchResult(c *gin.Context, transactionID uuid.UUID, code int) {
	var record models.MatchResult
	err := models.DB.Preload("Allocations").First(&record, "transaction_id = ?", transactionID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MatchResultResponse{
			Error: &e,
		})
		return
	}

	data := newMatchResult(c, record)
	c.JSON(code, MatchResultResponse{Data: &data})
}
