package controllers

import (
	"github.com/dds-ledger/backend/internal/models"
	"github.com/dds-ledger/backend/internal/types"
)

// cashFlowRecordRow is a line of the CSV export.
type cashFlowRecordRow struct {
	Date        types.Date `csv:"date"`
	Status      string     `csv:"status"`
	Type        string     `csv:"type"`
	Category    string     `csv:"category"`
	Subcategory string     `csv:"subcategory"`
	Amount      string     `csv:"amount"`
	Comment     string     `csv:"comment"`
}

func newCashFlowRecordRow(record models.CashFlowRecord) cashFlowRecordRow {
	return cashFlowRecordRow{
		Date:        record.CreatedAt,
		Status:      record.Status.Name,
		Type:        record.Type.Name,
		Category:    record.Category.Name,
		Subcategory: record.Subcategory.Name,
		Amount:      record.Amount.Decimal.StringFixed(models.AmountScale),
		Comment:     record.Comment,
	}
}
