package controllers

import (
	"fmt"
	"time"

	"github.com/dds-ledger/backend/internal/models"
	"github.com/dds-ledger/backend/internal/types"
	dds_uuid "github.com/dds-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CashFlowRecordEditable represents all user configurable parameters
type CashFlowRecordEditable struct {
	CreatedAt     types.Date          `json:"created_at" swaggertype:"string" example:"2024-03-01"`       // Date of the movement. Defaults to today on creation
	StatusID      uuid.UUID           `json:"status" example:"0190163d-8694-739b-aea5-966c26f8ad91"`      // ID of the status
	TypeID        uuid.UUID           `json:"type" example:"0190163d-8694-739b-aea5-966c26f8ad91"`        // ID of the type
	CategoryID    uuid.UUID           `json:"category" example:"0190163d-8694-739b-aea5-966c26f8ad91"`    // ID of the category. Must belong to the type
	SubcategoryID uuid.UUID           `json:"subcategory" example:"0190163d-8694-739b-aea5-966c26f8ad91"` // ID of the subcategory. Must belong to the category
	Amount        decimal.NullDecimal `json:"amount" swaggertype:"string" example:"1000.00"`              // Amount of the movement, with at most two decimal places
	Comment       string              `json:"comment" example:"Rent for March"`                           // Free text comment
	IsDeleted     bool                `json:"is_deleted" example:"false" default:"false"`                 // Records marked as deleted are hidden from lists
}

func (editable CashFlowRecordEditable) model() models.CashFlowRecord {
	return models.CashFlowRecord{
		CreatedAt:     editable.CreatedAt,
		StatusID:      editable.StatusID,
		TypeID:        editable.TypeID,
		CategoryID:    editable.CategoryID,
		SubcategoryID: editable.SubcategoryID,
		Amount:        editable.Amount,
		Comment:       editable.Comment,
		IsDeleted:     editable.IsDeleted,
	}
}

// patch returns the partial update for the fields set in the request.
func (editable CashFlowRecordEditable) patch(updateFields []string) models.RecordPatch {
	var p models.RecordPatch

	for _, field := range updateFields {
		switch field {
		case "CreatedAt":
			p.CreatedAt = &editable.CreatedAt
		case "StatusID":
			p.StatusID = &editable.StatusID
		case "TypeID":
			p.TypeID = &editable.TypeID
		case "CategoryID":
			p.CategoryID = &editable.CategoryID
		case "SubcategoryID":
			p.SubcategoryID = &editable.SubcategoryID
		case "Amount":
			p.Amount = &editable.Amount
		case "Comment":
			p.Comment = &editable.Comment
		case "IsDeleted":
			p.IsDeleted = &editable.IsDeleted
		}
	}

	return p
}

type CashFlowRecordLinks struct {
	Self   string `json:"self" example:"https://example.com/api/cashflow/0190163d-8694-739b-aea5-966c26f8ad91/"`          // The record itself
	Edit   string `json:"edit" example:"https://example.com/api/cashflow/0190163d-8694-739b-aea5-966c26f8ad91/edit/"`     // Form to edit the record
	Delete string `json:"delete" example:"https://example.com/api/cashflow/0190163d-8694-739b-aea5-966c26f8ad91/delete/"` // Delete confirmation for the record
}

// CashFlowRecordNames are the names of the referenced hierarchy resources.
type CashFlowRecordNames struct {
	Status      string `json:"status" example:"Бизнес"`
	Type        string `json:"type" example:"Списание"`
	Category    string `json:"category" example:"Маркетинг"`
	Subcategory string `json:"subcategory" example:"Avito"`
}

type CashFlowRecord struct {
	ID uuid.UUID `json:"id" example:"0190163d-8694-739b-aea5-966c26f8ad91"` // UUID for the resource
	CashFlowRecordEditable
	UpdatedAt time.Time           `json:"updated_at" example:"2024-03-01T19:28:44.491514Z"` // Last time the record was updated
	Names     CashFlowRecordNames `json:"names"`
	Links     CashFlowRecordLinks `json:"links"`
}

// newCashFlowRecord converts a record to its API representation. The
// associations of the record must be loaded for the names to be set.
func newCashFlowRecord(c *gin.Context, model models.CashFlowRecord) CashFlowRecord {
	self := fmt.Sprintf("%s/cashflow/%s/", c.GetString(string(models.DBContextURL)), model.ID)

	return CashFlowRecord{
		ID: model.ID,
		CashFlowRecordEditable: CashFlowRecordEditable{
			CreatedAt:     model.CreatedAt,
			StatusID:      model.StatusID,
			TypeID:        model.TypeID,
			CategoryID:    model.CategoryID,
			SubcategoryID: model.SubcategoryID,
			Amount:        model.Amount,
			Comment:       model.Comment,
			IsDeleted:     model.IsDeleted,
		},
		UpdatedAt: model.UpdatedAt,
		Names: CashFlowRecordNames{
			Status:      model.Status.Name,
			Type:        model.Type.Name,
			Category:    model.Category.Name,
			Subcategory: model.Subcategory.Name,
		},
		Links: CashFlowRecordLinks{
			Self:   self,
			Edit:   self + "edit/",
			Delete: self + "delete/",
		},
	}
}

type CashFlowRecordResponse struct {
	Data CashFlowRecord `json:"data"` // Data for the record
}

type CashFlowRecordEditResponse struct {
	Data    CashFlowRecord `json:"data"`    // Data for the record
	Choices Choices        `json:"choices"` // Resources the record can reference
}

type CashFlowRecordListResponse struct {
	Data       []CashFlowRecord `json:"data"`       // List of records, newest first
	Pagination *Pagination      `json:"pagination"` // Pagination information
}

type CashFlowRecordFormResponse struct {
	Data    CashFlowRecordEditable `json:"data"`    // Default values for a new record
	Choices Choices                `json:"choices"` // Resources a new record can reference
}

type CashFlowRecordQueryFilter struct {
	TypeID        dds_uuid.UUID `form:"type"`                                                // By ID of the Type
	CategoryID    dds_uuid.UUID `form:"category"`                                            // By ID of the Category
	SubcategoryID dds_uuid.UUID `form:"subcategory"`                                         // By ID of the Subcategory
	StatusID      dds_uuid.UUID `form:"status"`                                              // By ID of the Status
	Search        string        `form:"search"`                                              // By string in the comment or exact amount
	DateFrom      types.Date    `form:"date_from" swaggertype:"string" example:"2024-03-01"` // Records on or after this date
	DateTo        types.Date    `form:"date_to" swaggertype:"string" example:"2024-03-31"`   // Records on or before this date
	IsDeleted     bool          `form:"is_deleted"`                                          // Are the records marked as deleted? Unset hides marked records
	Offset        uint          `form:"offset"`                                              // The offset of the first record returned. Defaults to 0.
	Limit         int           `form:"limit"`                                               // Maximum number of records to return. Defaults to all.
}

func (f CashFlowRecordQueryFilter) model(setFields []string) (models.RecordFilter, error) {
	filter := models.RecordFilter{
		TypeID:        f.TypeID.UUID,
		CategoryID:    f.CategoryID.UUID,
		SubcategoryID: f.SubcategoryID.UUID,
		StatusID:      f.StatusID.UUID,
		Search:        f.Search,
		DateFrom:      f.DateFrom,
		DateTo:        f.DateTo,
		Offset:        int(f.Offset),
	}

	if slices.Contains(setFields, "IsDeleted") {
		filter.IsDeleted = &f.IsDeleted
	}

	if slices.Contains(setFields, "Limit") {
		if f.Limit < 1 {
			return models.RecordFilter{}, errLimitInvalid
		}
		filter.Limit = f.Limit
	}

	return filter, nil
}
