package controllers

import (
	"net/http"

	"github.com/dds-ledger/backend/internal/httputil"
	"github.com/dds-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterSubcategoryRoutes registers the routes for subcategories with
// the RouterGroup that is passed.
func RegisterSubcategoryRoutes(r *gin.RouterGroup) {
	registerResourceRoutes[models.Subcategory](r, resourceHandlers{
		List:   GetSubcategories,
		Create: CreateSubcategory,
		Form:   GetSubcategoryForm,
		Get:    GetSubcategory,
		Edit:   GetSubcategoryEdit,
		Update: UpdateSubcategory,
		Delete: deleteResource(models.DeleteSubcategory, "/subcategory/"),
	})
}

// @Summary		Create subcategory
// @Description	Creates a new subcategory
// @Tags			Subcategories
// @Accept			json
// @Produce		json
// @Success		201			{object}	SubcategoryResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			subcategory	body		SubcategoryEditable	true	"Subcategory"
// @Router			/subcategory/ [post]
// @Router			/subcategory/create/ [post]
func CreateSubcategory(c *gin.Context) {
	var editable SubcategoryEditable
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

	c.JSON(http.StatusCreated, SubcategoryResponse{Data: newSubcategory(c, model)})
}

// @Summary		Subcategory form
// @Description	Returns the default values for a new subcategory and the categories it can belong to
// @Tags			Subcategories
// @Produce		json
// @Success		200	{object}	SubcategoryFormResponse
// @Failure		500	{object}	httpError
// @Router			/subcategory/create/ [get]
func GetSubcategoryForm(c *gin.Context) {
	categories, err := categoryChoices(models.DB)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, SubcategoryFormResponse{
		Choices: Choices{Categories: categories},
	})
}

// @Summary		Get subcategories
// @Description	Returns a list of subcategories
// @Tags			Subcategories
// @Produce		json
// @Success		200	{object}	SubcategoryListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/subcategory/ [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first Subcategory returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Subcategories to return. Defaults to all."
func GetSubcategories(c *gin.Context) {
	var filter SubcategoryQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		abort(c, err)
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = nameFilters(q, setFields, filter.Name, filter.Search)
	q, limit, err := paginate(q, setFields, filter.Offset, filter.Limit)
	if err != nil {
		abort(c, err)
		return
	}

	var subcategories []models.Subcategory
	err = q.Find(&subcategories).Error
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

	data := make([]Subcategory, 0, len(subcategories))
	for _, subcategory := range subcategories {
		data = append(data, newSubcategory(c, subcategory))
	}

	c.JSON(http.StatusOK, SubcategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get subcategory
// @Description	Returns a specific subcategory. The delete form returns the same data.
// @Tags			Subcategories
// @Produce		json
// @Success		200	{object}	SubcategoryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/subcategory/{id}/ [get]
// @Router			/subcategory/{id}/delete/ [get]
func GetSubcategory(c *gin.Context) {
	model, ok := getResourceByID[models.Subcategory](c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SubcategoryResponse{Data: newSubcategory(c, model)})
}

// @Summary		Subcategory edit form
// @Description	Returns a specific subcategory and the categories it can be moved to
// @Tags			Subcategories
// @Produce		json
// @Success		200	{object}	SubcategoryEditResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/subcategory/{id}/edit/ [get]
func GetSubcategoryEdit(c *gin.Context) {
	model, ok := getResourceByID[models.Subcategory](c)
	if !ok {
		return
	}

	categories, err := categoryChoices(models.DB)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, SubcategoryEditResponse{
		Data:    newSubcategory(c, model),
		Choices: Choices{Categories: categories},
	})
}

// @Summary		Update subcategory
// @Description	Update an existing subcategory. Only values to be updated need to be specified.
// @Description	The category can only be changed while no cash flow record uses the subcategory.
// @Tags			Subcategories
// @Accept			json
// @Produce		json
// @Success		200			{object}	SubcategoryResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subcategory	body		SubcategoryEditable	true	"Subcategory"
// @Router			/subcategory/{id}/ [post]
// @Router			/subcategory/{id}/edit/ [post]
func UpdateSubcategory(c *gin.Context) {
	model, ok := getResourceByID[models.Subcategory](c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SubcategoryEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	var data SubcategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	if slices.Contains(updateFields, "Name") {
		model.Name = data.Name
	}

	if slices.Contains(updateFields, "CategoryID") {
		model.CategoryID = data.CategoryID
	}

	err = models.DB.Save(&model).Error
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, SubcategoryResponse{Data: newSubcategory(c, model)})
}
