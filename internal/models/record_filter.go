package models

import (
	"fmt"
	"strings"

	"github.com/dds-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecordFilter selects cash flow records. Zero values do not filter.
// All set criteria must match.
type RecordFilter struct {
	TypeID        uuid.UUID
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
	StatusID      uuid.UUID

	// Search matches a substring of the comment or, if it is a number,
	// the exact amount.
	Search string

	// DateFrom and DateTo are inclusive bounds on CreatedAt.
	DateFrom types.Date
	DateTo   types.Date

	// IsDeleted selects records by their deleted flag. If nil, records
	// flagged as deleted are excluded.
	IsDeleted *bool

	Offset int
	Limit  int // Values below 1 mean no limit
}

// Apply adds the filter conditions and the ordering to a query.
// Offset and limit are not applied.
func (f RecordFilter) Apply(db *gorm.DB) *gorm.DB {
	q := db.Model(&CashFlowRecord{})

	exact := []struct {
		column string
		id     uuid.UUID
	}{
		{"type_id", f.TypeID},
		{"category_id", f.CategoryID},
		{"subcategory_id", f.SubcategoryID},
		{"status_id", f.StatusID},
	}

	for _, e := range exact {
		if e.id != uuid.Nil {
			q = q.Where(fmt.Sprintf("cash_flow_records.%s = ?", e.column), e.id)
		}
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		comment, pattern := ContainsFold("cash_flow_records.comment", search)
		amount, err := decimal.NewFromString(search)
		if err == nil {
			q = q.Where(fmt.Sprintf("(%s OR cash_flow_records.amount = ?)", comment), pattern, amount)
		} else {
			q = q.Where(comment, pattern)
		}
	}

	if !f.DateFrom.IsZero() {
		q = q.Where("date(cash_flow_records.created_at) >= date(?)", f.DateFrom)
	}

	if !f.DateTo.IsZero() {
		q = q.Where("date(cash_flow_records.created_at) <= date(?)", f.DateTo)
	}

	if f.IsDeleted == nil {
		q = q.Where("NOT cash_flow_records.is_deleted")
	} else {
		q = q.Where("cash_flow_records.is_deleted = ?", *f.IsDeleted)
	}

	return q.Order("cash_flow_records.created_at DESC, cash_flow_records.id DESC")
}

// QueryRecords returns all records matching the filter, newest first.
func QueryRecords(db *gorm.DB, f RecordFilter) ([]CashFlowRecord, error) {
	q := f.Apply(db).Offset(f.Offset)
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	records := make([]CashFlowRecord, 0)
	err := q.Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// CountRecords returns the number of records matching the filter,
// ignoring offset and limit.
func CountRecords(db *gorm.DB, f RecordFilter) (int64, error) {
	var count int64
	err := f.Apply(db).Count(&count).Error
	return count, err
}
