package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/dds-ledger/backend/internal/models"
	"github.com/dds-ledger/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// @Summary		Export cash flow records
// @Description	Exports the cash flow records matching the filters as CSV, newest first
// @Tags			Cash flow
// @Produce		text/csv
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Router			/cashflow/export/ [get]
// @Param			type		query	string	false	"Filter by type ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			subcategory	query	string	false	"Filter by subcategory ID"
// @Param			status		query	string	false	"Filter by status ID"
// @Param			search		query	string	false	"Search for this text in the comment. Numbers also match the exact amount"
// @Param			date_from	query	string	false	"Only records on or after this date, YYYY-MM-DD"
// @Param			date_to		query	string	false	"Only records on or before this date, YYYY-MM-DD"
// @Param			is_deleted	query	bool	false	"Are the records marked as deleted? Records marked as deleted are hidden if unset"
func ExportCashFlowRecords(c *gin.Context) {
	filter, ok := bindRecordFilter(c)
	if !ok {
		return
	}

	records, err := models.QueryRecords(withNames(models.DB), filter)
	if err != nil {
		abort(c, err)
		return
	}

	rows := make([]cashFlowRecordRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, newCashFlowRecordRow(record))
	}

	// Marshal into a buffer first so that errors can still be sent as JSON
	var buf bytes.Buffer
	err = gocsv.Marshal(rows, &buf)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		abort(c, models.ErrGeneral)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="cashflow-%s.csv"`, types.Today()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
