package controllers

import (
	"fmt"

	"github.com/dds-ledger/backend/internal/models"
	dds_uuid "github.com/dds-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubcategoryEditable represents all user configurable parameters
type SubcategoryEditable struct {
	Name       string    `json:"name" example:"Avito"`                                    // Name of the subcategory
	CategoryID uuid.UUID `json:"category" example:"0190163d-8694-739b-aea5-966c26f8ad91"` // ID of the category the subcategory belongs to
}

func (editable SubcategoryEditable) model() models.Subcategory {
	return models.Subcategory{
		Name:       editable.Name,
		CategoryID: editable.CategoryID,
	}
}

type SubcategoryLinks struct {
	Self    string `json:"self" example:"https://example.com/api/subcategory/0190163d-8694-739b-aea5-966c26f8ad91/"`             // The subcategory itself
	Edit    string `json:"edit" example:"https://example.com/api/subcategory/0190163d-8694-739b-aea5-966c26f8ad91/edit/"`        // Form to edit the subcategory
	Delete  string `json:"delete" example:"https://example.com/api/subcategory/0190163d-8694-739b-aea5-966c26f8ad91/delete/"`    // Delete confirmation for the subcategory
	Records string `json:"records" example:"https://example.com/api/cashflow/?subcategory=0190163d-8694-739b-aea5-966c26f8ad91"` // Cash flow records in this subcategory
}

type Subcategory struct {
	models.DefaultModel
	SubcategoryEditable
	Links SubcategoryLinks `json:"links"`
}

func newSubcategory(c *gin.Context, model models.Subcategory) Subcategory {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/subcategory/%s/", url, model.ID)

	return Subcategory{
		DefaultModel: model.DefaultModel,
		SubcategoryEditable: SubcategoryEditable{
			Name:       model.Name,
			CategoryID: model.CategoryID,
		},
		Links: SubcategoryLinks{
			Self:    self,
			Edit:    self + "edit/",
			Delete:  self + "delete/",
			Records: fmt.Sprintf("%s/cashflow/?subcategory=%s", url, model.ID),
		},
	}
}

type SubcategoryResponse struct {
	Data Subcategory `json:"data"` // Data for the Subcategory
}

type SubcategoryEditResponse struct {
	Data    Subcategory `json:"data"`    // Data for the Subcategory
	Choices Choices     `json:"choices"` // Categories the subcategory can be moved to
}

type SubcategoryListResponse struct {
	Data       []Subcategory `json:"data"`       // List of Subcategories
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type SubcategoryFormResponse struct {
	Data    SubcategoryEditable `json:"data"`    // Default values for a new Subcategory
	Choices Choices             `json:"choices"` // Categories a new subcategory can belong to
}

type SubcategoryQueryFilter struct {
	CategoryID dds_uuid.UUID `form:"category"`                   // By ID of the Category
	Name       string        `form:"name" filterField:"false"`   // By name
	Search     string        `form:"search" filterField:"false"` // By string in name
	Offset     uint          `form:"offset" filterField:"false"` // The offset of the first Subcategory returned. Defaults to 0.
	Limit      int           `form:"limit" filterField:"false"`  // Maximum number of Subcategories to return. Defaults to all.
}

func (f SubcategoryQueryFilter) model() models.Subcategory {
	return models.Subcategory{
		CategoryID: f.CategoryID.UUID,
	}
}
