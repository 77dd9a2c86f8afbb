package controllers

import (
	"net/http"

	"github.com/dds-ledger/backend/internal/httputil"
	"github.com/dds-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	registerResourceRoutes[models.Category](r, resourceHandlers{
		List:   GetCategories,
		Create: CreateCategory,
		Form:   GetCategoryForm,
		Get:    GetCategory,
		Edit:   GetCategoryEdit,
		Update: UpdateCategory,
		Delete: deleteResource(models.DeleteCategory, "/category/"),
	})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/category/ [post]
// @Router			/category/create/ [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
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

	data, err := newCategory(c, models.DB, model)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: data})
}

// @Summary		Category form
// @Description	Returns the default values for a new category and the types it can belong to
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryFormResponse
// @Failure		500	{object}	httpError
// @Router			/category/create/ [get]
func GetCategoryForm(c *gin.Context) {
	types, err := typeChoices(models.DB)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryFormResponse{
		Choices: Choices{Types: types},
	})
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/category/ [get]
// @Param			type	query	string	false	"Filter by type ID"
// @Param			name	query	string	false	"Filter by name"
// @Param			search	query	string	false	"Search for this text in the name"
// @Param			offset	query	uint	false	"The offset of the first Category returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Categories to return. Defaults to all."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	err := httputil.BindQuery(c, &filter)
	if err != nil {
		abort(c, err)
		return
	}

	// Get the fields that we are filtering for
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

	var categories []models.Category
	err = q.Find(&categories).Error
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

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		apiResource, err := newCategory(c, models.DB, category)
		if err != nil {
			abort(c, err)
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category
// @Description	Returns a specific category. The delete form returns the same data.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/category/{id}/ [get]
// @Router			/category/{id}/delete/ [get]
func GetCategory(c *gin.Context) {
	model, ok := getResourceByID[models.Category](c)
	if !ok {
		return
	}

	data, err := newCategory(c, models.DB, model)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: data})
}

// @Summary		Category edit form
// @Description	Returns a specific category and the types it can be moved to
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryEditResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/category/{id}/edit/ [get]
func GetCategoryEdit(c *gin.Context) {
	model, ok := getResourceByID[models.Category](c)
	if !ok {
		return
	}

	data, err := newCategory(c, models.DB, model)
	if err != nil {
		abort(c, err)
		return
	}

	types, err := typeChoices(models.DB)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryEditResponse{
		Data:    data,
		Choices: Choices{Types: types},
	})
}

// @Summary		Update category
// @Description	Update an existing category. Only values to be updated need to be specified.
// @Description	The type can only be changed while no cash flow record uses the category.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/category/{id}/ [post]
// @Router			/category/{id}/edit/ [post]
func UpdateCategory(c *gin.Context) {
	model, ok := getResourceByID[models.Category](c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	var data CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	if slices.Contains(updateFields, "Name") {
		model.Name = data.Name
	}

	if slices.Contains(updateFields, "TypeID") {
		model.TypeID = data.TypeID
	}

	err = models.DB.Save(&model).Error
	if err != nil {
		abort(c, err)
		return
	}

	r, err := newCategory(c, models.DB, model)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Data: r})
}
