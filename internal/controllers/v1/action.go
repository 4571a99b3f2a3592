package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterActionRoutes registers the routes for actions with
// the RouterGroup that is passed.
func RegisterActionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsActions)
		r.GET("", GetActions)
		r.POST("", CreateActions)
	}

	// Action with ID
	{
		r.OPTIONS("/:id", OptionsActionDetail)
		r.GET("/:id", GetAction)
		r.PATCH("/:id", UpdateAction)
		r.DELETE("/:id", DeleteAction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Actions
// @Success		204
// @Router			/v1/actions [options]
func OptionsActions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Actions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/actions/{id} [options]
func OptionsActionDetail(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var action models.Action
	err = models.DB.First(&action, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create actions
// @Description	Creates actions from the list of submitted action data. The response code is the highest response code number that a single action creation would have caused. If it is not equal to 201, at least one action has an error.
// @Tags			Actions
// @Produce		json
// @Success		201		{object}	ActionCreateResponse
// @Failure		400		{object}	ActionCreateResponse
// @Failure		404		{object}	ActionCreateResponse
// @Failure		500		{object}	ActionCreateResponse
// @Param			actions	body		[]ActionEditable	true	"Actions"
// @Router			/v1/actions [post]
func CreateActions(c *gin.Context) {
	var editables []ActionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ActionCreateResponse{}

	for _, editable := range editables {
		action := editable.model()
		err := models.DB.Create(&action).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAction(c, action)
		r.Data = append(r.Data, ActionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get actions
// @Description	Returns a list of actions
// @Tags			Actions
// @Produce		json
// @Success		200	{object}	ActionListResponse
// @Failure		400	{object}	ActionListResponse
// @Failure		500	{object}	ActionListResponse
// @Router			/v1/actions [get]
// @Param			kind		query	string	false	"Filter by kind, either 'payment' or 'expense'"
// @Param			property	query	string	false	"Filter by property ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			percentage	query	int		false	"Filter by percentage"
// @Param			offset		query	uint	false	"The offset of the first Action returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Actions to return. Defaults to 50."
func GetActions(c *gin.Context) {
	var filter ActionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ActionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.Order("datetime(created_at) ASC").Where(&model, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 actions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var actions []models.Action
	err = q.Find(&actions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Action, 0)
	for _, action := range actions {
		data = append(data, newAction(c, action))
	}

	c.JSON(http.StatusOK, ActionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get action
// @Description	Returns a specific action
// @Tags			Actions
// @Produce		json
// @Success		200	{object}	ActionResponse
// @Failure		400	{object}	ActionResponse
// @Failure		404	{object}	ActionResponse
// @Failure		500	{object}	ActionResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/actions/{id} [get]
func GetAction(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionResponse{
			Error: &e,
		})
		return
	}

	var action models.Action
	err = models.DB.First(&action, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionResponse{
			Error: &e,
		})
		return
	}

	data := newAction(c, action)
	c.JSON(http.StatusOK, ActionResponse{Data: &data})
}

// @Summary		Update action
// @Description	Updates an existing action. Only values to be updated need to be specified.
// @Tags			Actions
// @Accept			json
// @Produce		json
// @Success		200		{object}	ActionResponse
// @Failure		400		{object}	ActionResponse
// @Failure		404		{object}	ActionResponse
// @Failure		500		{object}	ActionResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			action	body		ActionEditable	true	"Action"
// @Router			/v1/actions/{id} [patch]
func UpdateAction(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionResponse{
			Error: &e,
		})
		return
	}

	var action models.Action
	err = models.DB.First(&action, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ActionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionResponse{
			Error: &e,
		})
		return
	}

	var update ActionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionResponse{
			Error: &e,
		})
		return
	}

	// Unset fields in a sparse update keep the stored values so that
	// the validation in BeforeSave checks the effective action
	updateModel := update.model()
	if update.Kind == "" {
		updateModel.Kind = action.Kind
	}
	if updateModel.CategoryID == uuid.Nil {
		updateModel.CategoryID = action.CategoryID
	}

	err = models.DB.Model(&action).Select("", updateFields...).Updates(updateModel).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActionResponse{
			Error: &e,
		})
		return
	}

	data := newAction(c, action)
	c.JSON(http.StatusOK, ActionResponse{Data: &data})
}

// @Summary		Delete action
// @Description	Deletes an action
// @Tags			Actions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/actions/{id} [delete]
func DeleteAction(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var action models.Action
	err = models.DB.First(&action, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&action).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
