package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/backend/internal/httputil"
	"github.com/rentledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPropertyRoutes registers the routes for properties with
// the RouterGroup that is passed.
func RegisterPropertyRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProperties)
		r.GET("", GetProperties)
		r.POST("", CreateProperties)
	}

	// Property with ID
	{
		r.OPTIONS("/:id", OptionsPropertyDetail)
		r.GET("/:id", GetProperty)
		r.PATCH("/:id", UpdateProperty)
		r.DELETE("/:id", DeleteProperty)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Properties
// @Success		204
// @Router			/v1/properties [options]
func OptionsProperties(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Properties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/properties/{id} [options]
func OptionsPropertyDetail(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create properties
// @Description	Creates properties from the list of submitted property data. The response code is the highest response code number that a single property creation would have caused. If it is not equal to 201, at least one property has an error.
// @Tags			Properties
// @Produce		json
// @Success		201			{object}	PropertyCreateResponse
// @Failure		400			{object}	PropertyCreateResponse
// @Failure		500			{object}	PropertyCreateResponse
// @Param			properties	body		[]PropertyEditable	true	"Properties"
// @Router			/v1/properties [post]
func CreateProperties(c *gin.Context) {
	var editables []PropertyEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PropertyCreateResponse{}

	for _, editable := range editables {
		property := editable.model()
		err := models.DB.Create(&property).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newProperty(c, property)
		r.Data = append(r.Data, PropertyResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get properties
// @Description	Returns a list of properties
// @Tags			Properties
// @Produce		json
// @Success		200	{object}	PropertyListResponse
// @Failure		400	{object}	PropertyListResponse
// @Failure		500	{object}	PropertyListResponse
// @Router			/v1/properties [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			offset	query	uint	false	"The offset of the first Property returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Properties to return. Defaults to 50."
func GetProperties(c *gin.Context) {
	var filter PropertyQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, PropertyListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC")

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 properties and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var properties []models.Property
	err := q.Find(&properties).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Property, 0)
	for _, property := range properties {
		data = append(data, newProperty(c, property))
	}

	c.JSON(http.StatusOK, PropertyListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get property
// @Description	Returns a specific property
// @Tags			Properties
// @Produce		json
// @Success		200	{object}	PropertyResponse
// @Failure		400	{object}	PropertyResponse
// @Failure		404	{object}	PropertyResponse
// @Failure		500	{object}	PropertyResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/properties/{id} [get]
func GetProperty(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	data := newProperty(c, property)
	c.JSON(http.StatusOK, PropertyResponse{Data: &data})
}

// @Summary		Update property
// @Description	Updates an existing property. Only values to be updated need to be specified.
// @Tags			Properties
// @Accept			json
// @Produce		json
// @Success		200			{object}	PropertyResponse
// @Failure		400			{object}	PropertyResponse
// @Failure		404			{object}	PropertyResponse
// @Failure		500			{object}	PropertyResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			property	body		PropertyEditable	true	"Property"
// @Router			/v1/properties/{id} [patch]
func UpdateProperty(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, PropertyEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	var update PropertyEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&property).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PropertyResponse{
			Error: &e,
		})
		return
	}

	data := newProperty(c, property)
	c.JSON(http.StatusOK, PropertyResponse{Data: &data})
}

// @Summary		Delete property
// @Description	Deletes a property
// @Tags			Properties
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/properties/{id} [delete]
func DeleteProperty(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var property models.Property
	err = models.DB.First(&property, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&property).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
