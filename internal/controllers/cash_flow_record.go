package controllers

import (
	"net/http"

	"github.com/dds-ledger/backend/internal/httputil"
	"github.com/dds-ledger/backend/internal/models"
	"github.com/dds-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterCashFlowRecordRoutes registers the routes for cash flow records with
// the RouterGroup that is passed.
func RegisterCashFlowRecordRoutes(r *gin.RouterGroup) {
	registerResourceRoutes[models.CashFlowRecord](r, resourceHandlers{
		List:   GetCashFlowRecords,
		Create: CreateCashFlowRecord,
		Form:   GetCashFlowRecordForm,
		Get:    GetCashFlowRecord,
		Edit:   GetCashFlowRecordEdit,
		Update: UpdateCashFlowRecord,
		Delete: deleteResource(models.DeleteRecord, "/cashflow/"),
	})

	r.OPTIONS("/export/", httputil.OptionsGet)
	r.GET("/export/", ExportCashFlowRecords)
}

// withNames preloads the hierarchy resources a record references.
func withNames(db *gorm.DB) *gorm.DB {
	return db.Preload("Status").Preload("Type").Preload("Category").Preload("Subcategory")
}

func loadCashFlowRecord(id uuid.UUID) (models.CashFlowRecord, error) {
	var record models.CashFlowRecord
	err := withNames(models.DB).First(&record, "id = ?", id).Error
	return record, err
}

// getCashFlowRecord loads the record with the ID from the URI together
// with the referenced resources.
func getCashFlowRecord(c *gin.Context) (models.CashFlowRecord, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return models.CashFlowRecord{}, false
	}

	record, err := loadCashFlowRecord(uri.ID.UUID)
	if err != nil {
		abort(c, err)
		return models.CashFlowRecord{}, false
	}

	return record, true
}

// allChoices returns every resource a record can reference.
func allChoices(db *gorm.DB) (choices Choices, err error) {
	choices.Statuses, err = statusChoices(db)
	if err != nil {
		return
	}

	choices.Types, err = typeChoices(db)
	if err != nil {
		return
	}

	choices.Categories, err = categoryChoices(db)
	if err != nil {
		return
	}

	choices.Subcategories, err = subcategoryChoices(db)
	return
}

// @Summary		Create cash flow record
// @Description	Creates a new cash flow record. The category must belong to the type and the
// @Description	subcategory to the category. All violations are reported in the errors object.
// @Tags			Cash flow
// @Accept			json
// @Produce		json
// @Success		201		{object}	CashFlowRecordResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			record	body		CashFlowRecordEditable	true	"Cash flow record"
// @Router			/cashflow/ [post]
// @Router			/cashflow/create/ [post]
func CreateCashFlowRecord(c *gin.Context) {
	var editable CashFlowRecordEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		abort(c, err)
		return
	}

	record, err := models.InsertRecord(models.DB, editable.model())
	if err != nil {
		abort(c, err)
		return
	}

	record, err = loadCashFlowRecord(record.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, CashFlowRecordResponse{Data: newCashFlowRecord(c, record)})
}

// @Summary		Cash flow record form
// @Description	Returns the default values for a new cash flow record and all resources it can reference
// @Tags			Cash flow
// @Produce		json
// @Success		200	{object}	CashFlowRecordFormResponse
// @Failure		500	{object}	httpError
// @Router			/cashflow/create/ [get]
func GetCashFlowRecordForm(c *gin.Context) {
	choices, err := allChoices(models.DB)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CashFlowRecordFormResponse{
		Data:    CashFlowRecordEditable{CreatedAt: types.Today()},
		Choices: choices,
	})
}

// @Summary		Get cash flow records
// @Description	Returns a list of cash flow records, newest first. All filters must match.
// @Tags			Cash flow
// @Produce		json
// @Success		200	{object}	CashFlowRecordListResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/cashflow/ [get]
// @Param			type		query	string	false	"Filter by type ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			subcategory	query	string	false	"Filter by subcategory ID"
// @Param			status		query	string	false	"Filter by status ID"
// @Param			search		query	string	false	"Search for this text in the comment. Numbers also match the exact amount"
// @Param			date_from	query	string	false	"Only records on or after this date, YYYY-MM-DD"
// @Param			date_to		query	string	false	"Only records on or before this date, YYYY-MM-DD"
// @Param			is_deleted	query	bool	false	"Are the records marked as deleted? Records marked as deleted are hidden if unset"
// @Param			offset		query	uint	false	"The offset of the first record returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of records to return. Defaults to all."
func GetCashFlowRecords(c *gin.Context) {
	filter, ok := bindRecordFilter(c)
	if !ok {
		return
	}

	records, err := models.QueryRecords(withNames(models.DB), filter)
	if err != nil {
		abort(c, err)
		return
	}

	total, err := models.CountRecords(models.DB, filter)
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]CashFlowRecord, 0, len(records))
	for _, record := range records {
		data = append(data, newCashFlowRecord(c, record))
	}

	limit := filter.Limit
	if limit < 1 {
		limit = -1
	}

	c.JSON(http.StatusOK, CashFlowRecordListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: uint(filter.Offset),
			Limit:  limit,
		},
	})
}

func bindRecordFilter(c *gin.Context) (models.RecordFilter, bool) {
	var query CashFlowRecordQueryFilter
	err := httputil.BindQuery(c, &query)
	if err != nil {
		abort(c, err)
		return models.RecordFilter{}, false
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, query)
	filter, err := query.model(setFields)
	if err != nil {
		abort(c, err)
		return models.RecordFilter{}, false
	}

	return filter, true
}

// @Summary		Get cash flow record
// @Description	Returns a specific cash flow record. The delete form returns the same data.
// @Tags			Cash flow
// @Produce		json
// @Success		200	{object}	CashFlowRecordResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/cashflow/{id}/ [get]
// @Router			/cashflow/{id}/delete/ [get]
func GetCashFlowRecord(c *gin.Context) {
	record, ok := getCashFlowRecord(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CashFlowRecordResponse{Data: newCashFlowRecord(c, record)})
}

// @Summary		Cash flow record edit form
// @Description	Returns a specific cash flow record and all resources it can reference
// @Tags			Cash flow
// @Produce		json
// @Success		200	{object}	CashFlowRecordEditResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/cashflow/{id}/edit/ [get]
func GetCashFlowRecordEdit(c *gin.Context) {
	record, ok := getCashFlowRecord(c)
	if !ok {
		return
	}

	choices, err := allChoices(models.DB)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CashFlowRecordEditResponse{
		Data:    newCashFlowRecord(c, record),
		Choices: choices,
	})
}

// @Summary		Update cash flow record
// @Description	Update an existing cash flow record. Only values to be updated need to be specified.
// @Description	The resulting record is validated as a whole.
// @Tags			Cash flow
// @Accept			json
// @Produce		json
// @Success		200		{object}	CashFlowRecordResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			record	body		CashFlowRecordEditable	true	"Cash flow record"
// @Router			/cashflow/{id}/ [post]
// @Router			/cashflow/{id}/edit/ [post]
func UpdateCashFlowRecord(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CashFlowRecordEditable{})
	if err != nil {
		abort(c, err)
		return
	}

	var data CashFlowRecordEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		abort(c, err)
		return
	}

	record, err := models.UpdateRecord(models.DB, uri.ID.UUID, data.patch(updateFields))
	if err != nil {
		abort(c, err)
		return
	}

	record, err = loadCashFlowRecord(record.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CashFlowRecordResponse{Data: newCashFlowRecord(c, record)})
}
