package controllers

import (
	"net/http"

	"github.com/dds-ledger/backend/internal/httputil"
	"github.com/dds-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTypeRoutes registers the routes for types with
// the RouterGroup that is passed.
func RegisterTypeRoutes(r *gin.RouterGroup) {
	registerResourceRoutes[models.Type](r, resourceHandlers{
		List:   GetTypes,
		Create: CreateType,
		Form:   GetTypeForm,
		Get:    GetType,
		Edit:   GetType,
		Update: UpdateType,
		Delete: deleteResource(models.DeleteType, "/type/"),
	})
}

// @Summary		Create type
// @Description	Creates a new type
// @Tags			Types
// @Accept			json
// @Produce		json
// @Success		201		{object}	TypeResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			type	body		TypeEditable	true	"Type"
// @Router			/type/ [post]
// @Router			/type/create/ [post]
func CreateType(c *gin.Context) {
	var editable TypeEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abort(c, err)
		return
	}

	model := editable.model()
	err = models.DB.Create(&model).Error
	if err != nil {
		abort(c, err)
		return
	}

	data, err := newType(c, models.DB, model)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, TypeResponse{Data: data})
}

// @Summary		Type form
// @Description	Returns the default values for a new type
// @Tags			Types
// @Produce		json
// @Success		200	{object}	TypeFormResponse
// @Router			/type/create/ [get]
func GetTypeForm(c *gin.Context) {
	c.JSON(http.StatusOK, TypeFormResponse{})
}

// @Summary		Get types
// @Description	Returns a list of types
// @Tags			Types
// @Produce		json
// @Success		200	{object}	TypeListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/type/ [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first Type returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Types to return. Defaults to all."
func GetTypes(c *gin.Context) {
	var filter TypeQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		abort(c, err)
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := nameFilters(models.DB.Order("name ASC"), setFields, filter.Name, filter.Search)
	q, limit, err := paginate(q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		abort(c, err)
		return
	}

	var types []models.Type
	err = q.Find(&types).Error
	if err != nil {
		abort(c, err)
		return
	}

	var total int64
	err = q.Limit(-1).Offset(-1).Count(&total).Error
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]Type, 0, len(types))
	for _, t := range types {
		apiResource, err := newType(c, models.DB, t)
		if err != nil {
			abort(c, err)
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, TypeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get type
// @Description	Returns a specific type. The edit and delete forms return the same data.
// @Tags			Types
// @Produce		json
// @Success		200	{object}	TypeResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/type/{id}/ [get]
// @Router			/type/{id}/edit/ [get]
// @Router			/type/{id}/delete/ [get]
func GetType(c *gin.Context) {
	model, ok := getResourceByID[models.Type](c)
	if !ok {
		return
	}

	data, err := newType(c, models.DB, model)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, TypeResponse{Data: data})
}

// @Summary		Update type
// @Description	Update an existing type. Only values to be updated need to be specified.
// @Tags			Types
// @Accept			json
// @Produce		json
// @Success		200		{object}	TypeResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			type	body		TypeEditable	true	"Type"
// @Router			/type/{id}/ [post]
// @Router			/type/{id}/edit/ [post]
func UpdateType(c *gin.Context) {
	model, ok := getResourceByID[models.Type](c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TypeEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	var data TypeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	if slices.Contains(updateFields, "Name") {
		model.Name = data.Name
	}

	err = models.DB.Save(&model).Error
	if err != nil {
		abort(c, err)
		return
	}

	r, err := newType(c, models.DB, model)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, TypeResponse{Data: r})
}
