package controllers

import (
	"net/http"

	"github.com/dds-ledger/backend/internal/httputil"
	"github.com/dds-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterStatusRoutes registers the routes for statuses with
// the RouterGroup that is passed.
func RegisterStatusRoutes(r *gin.RouterGroup) {
	registerResourceRoutes[models.Status](r, resourceHandlers{
		List:   GetStatuses,
		Create: CreateStatus,
		Form:   GetStatusForm,
		Get:    GetStatus,
		Edit:   GetStatus,
		Update: UpdateStatus,
		Delete: deleteResource(models.DeleteStatus, "/status/"),
	})
}

// @Summary		Create status
// @Description	Creates a new status
// @Tags			Statuses
// @Accept			json
// @Produce		json
// @Success		201		{object}	StatusResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			status	body		StatusEditable	true	"Status"
// @Router			/status/ [post]
// @Router			/status/create/ [post]
func CreateStatus(c *gin.Context) {
	var editable StatusEditable
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

	c.JSON(http.StatusCreated, StatusResponse{Data: newStatus(c, model)})
}

// @Summary		Status form
// @Description	Returns the default values for a new status
// @Tags			Statuses
// @Produce		json
// @Success		200	{object}	StatusFormResponse
// @Router			/status/create/ [get]
func GetStatusForm(c *gin.Context) {
	c.JSON(http.StatusOK, StatusFormResponse{})
}

// @Summary		Get statuses
// @Description	Returns a list of statuses
// @Tags			Statuses
// @Produce		json
// @Success		200	{object}	StatusListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/status/ [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first Status returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Statuses to return. Defaults to all."
func GetStatuses(c *gin.Context) {
	var filter StatusQueryFilter
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

	var statuses []models.Status
	err = q.Find(&statuses).Error
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

	data := make([]Status, 0, len(statuses))
	for _, s := range statuses {
		data = append(data, newStatus(c, s))
	}

	c.JSON(http.StatusOK, StatusListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get status
// @Description	Returns a specific status. The edit and delete forms return the same data.
// @Tags			Statuses
// @Produce		json
// @Success		200	{object}	StatusResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/status/{id}/ [get]
// @Router			/status/{id}/edit/ [get]
// @Router			/status/{id}/delete/ [get]
func GetStatus(c *gin.Context) {
	model, ok := getResourceByID[models.Status](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Data: newStatus(c, model)})
}

// @Summary		Update status
// @Description	Update an existing status. Only values to be updated need to be specified.
// @Tags			Statuses
// @Accept			json
// @Produce		json
// @Success		200		{object}	StatusResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			status	body		StatusEditable	true	"Status"
// @Router			/status/{id}/ [post]
// @Router			/status/{id}/edit/ [post]
func UpdateStatus(c *gin.Context) {
	model, ok := getResourceByID[models.Status](c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, StatusEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	var data StatusEditable
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

	c.JSON(http.StatusOK, StatusResponse{Data: newStatus(c, model)})
}
