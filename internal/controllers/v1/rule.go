package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"github.com/rentledger/backend/internal/reconcile"
	"golang.org/x/exp/slices"
)

// RegisterRuleRoutes registers the routes for rules with
// the RouterGroup that is passed.
func RegisterRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRules)
		r.GET("", GetRules)
		r.POST("", CreateRules)
	}

	// Static rule set validation
	{
		r.OPTIONS("/validate", OptionsRuleValidation)
		r.POST("/validate", ValidateRuleSet)
	}

	// Rule with ID
	{
		r.OPTIONS("/:id", OptionsRuleDetail)
		r.GET("/:id", GetRule)
		r.PATCH("/:id", UpdateRule)
		r.DELETE("/:id", DeleteRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Router			/v1/rules [options]
func OptionsRules(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Router			/v1/rules/validate [options]
func OptionsRuleValidation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/rules/{id} [options]
func OptionsRuleDetail(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create rules
// @Description	Creates rules from the list of submitted rule data. The response code is the highest response code number that a single rule creation would have caused. If it is not equal to 201, at least one rule has an error.
// @Tags			Rules
// @Produce		json
// @Success		201		{object}	RuleCreateResponse
// @Failure		400		{object}	RuleCreateResponse
// @Failure		500		{object}	RuleCreateResponse
// @Param			rules	body		[]RuleEditable	true	"Rules"
// @Router			/v1/rules [post]
func CreateRules(c *gin.Context) {
	var editables []RuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()
		err := models.DB.Create(&rule).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRule(c, rule)
		r.Data = append(r.Data, RuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Validate rule configuration
// @Description	Statically validates a rule set configuration: the percentage constraints of the submitted actions are checked without matching any transaction. Use this before committing rule edits.
// @Tags			Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	RuleValidationResponse
// @Failure		400		{object}	RuleValidationResponse
// @Param			actions	body		[]ActionEditable	true	"Actions"
// @Router			/v1/rules/validate [post]
func ValidateRuleSet(c *gin.Context) {
	var editables []ActionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleValidationResponse{
			Error: &e,
		})
		return
	}

	actions := make([]reconcile.Action, 0, len(editables))
	for _, editable := range editables {
		actions = append(actions, editable.model().Reconcile())
	}

	errs := reconcile.ValidateActions(actions)

	response := RuleValidationResponse{
		Valid:  len(errs) == 0,
		Errors: make([]string, 0, len(errs)),
	}
	for _, err := range errs {
		response.Errors = append(response.Errors, err.Error())
	}

	c.JSON(http.StatusOK, response)
}

// @Summary		Get rules
// @Description	Returns a list of rules
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	RuleListResponse
// @Failure		400	{object}	RuleListResponse
// @Failure		500	{object}	RuleListResponse
// @Router			/v1/rules [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			field		query	string	false	"Filter by transaction field"
// @Param			condition	query	string	false	"Filter by condition"
// @Param			value		query	string	false	"Filter by comparison value"
// @Param			enabled		query	bool	false	"Filter by enabled state"
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			offset		query	uint	false	"The offset of the first Rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Rules to return. Defaults to 50."
func GetRules(c *gin.Context) {
	var filter RuleQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, RuleListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("priority ASC, datetime(created_at) ASC").Where(&models.Rule{
		Field:     filter.Field,
		Condition: filter.Condition,
		Value:     filter.Value,
		Enabled:   filter.Enabled,
		Priority:  filter.Priority,
	}, queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.Rule
	err := q.Find(&rules).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Rule, 0)
	for _, rule := range rules {
		data = append(data, newRule(c, rule))
	}

	c.JSON(http.StatusOK, RuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get rule
// @Description	Returns a specific rule
// @Tags			Rules
// @Produce		json
// @Success		200	{object}	RuleResponse
// @Failure		400	{object}	RuleResponse
// @Failure		404	{object}	RuleResponse
// @Failure		500	{object}	RuleResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/rules/{id} [get]
func GetRule(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	data := newRule(c, rule)
	c.JSON(http.StatusOK, RuleResponse{Data: &data})
}

// @Summary		Update rule
// @Description	Updates an existing rule. Only values to be updated need to be specified.
// @Tags			Rules
// @Accept			json
// @Produce		json
// @Success		200		{object}	RuleResponse
// @Failure		400		{object}	RuleResponse
// @Failure		404		{object}	RuleResponse
// @Failure		500		{object}	RuleResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			rule	body		RuleEditable	true	"Rule"
// @Router			/v1/rules/{id} [patch]
func UpdateRule(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, RuleEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	var update RuleEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	// Unset enum fields in a sparse update keep the stored values so
	// that the validation in BeforeSave checks the effective rule
	if update.Field == "" {
		update.Field = rule.Field
	}
	if update.Condition == "" {
		update.Condition = rule.Condition
	}
	if update.Value == "" {
		update.Value = rule.Value
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RuleResponse{
			Error: &e,
		})
		return
	}

	data := newRule(c, rule)
	c.JSON(http.StatusOK, RuleResponse{Data: &data})
}

// @Summary		Delete rule
// @Description	Deletes a rule
// @Tags			Rules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/rules/{id} [delete]
func DeleteRule(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.Rule
	err = models.DB.First(&rule, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
