package controllers

import (
	"fmt"

	"github.com/dds-ledger/backend/internal/models"
	dds_uuid "github.com/dds-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name   string    `json:"name" example:"Маркетинг"`                            // Name of the category
	TypeID uuid.UUID `json:"type" example:"0190163d-8694-739b-aea5-966c26f8ad91"` // ID of the type the category belongs to
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:   editable.Name,
		TypeID: editable.TypeID,
	}
}

type CategoryLinks struct {
	Self          string `json:"self" example:"https://example.com/api/category/0190163d-8694-739b-aea5-966c26f8ad91/"`                      // The category itself
	Edit          string `json:"edit" example:"https://example.com/api/category/0190163d-8694-739b-aea5-966c26f8ad91/edit/"`                 // Form to edit the category
	Delete        string `json:"delete" example:"https://example.com/api/category/0190163d-8694-739b-aea5-966c26f8ad91/delete/"`             // Delete confirmation for the category
	Subcategories string `json:"subcategories" example:"https://example.com/api/subcategory/?category=0190163d-8694-739b-aea5-966c26f8ad91"` // Subcategories of this category
	Records       string `json:"records" example:"https://example.com/api/cashflow/?category=0190163d-8694-739b-aea5-966c26f8ad91"`          // Cash flow records in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`

	// These fields are computed
	Subcategories []Choice `json:"subcategories"` // Subcategories of the category. Deleting the category deletes them, too.
}

func newCategory(c *gin.Context, db *gorm.DB, model models.Category) (Category, error) {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/category/%s/", url, model.ID)

	subcategories, err := model.Subcategories(db)
	if err != nil {
		return Category{}, err
	}

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:   model.Name,
			TypeID: model.TypeID,
		},
		Links: CategoryLinks{
			Self:          self,
			Edit:          self + "edit/",
			Delete:        self + "delete/",
			Subcategories: fmt.Sprintf("%s/subcategory/?category=%s", url, model.ID),
			Records:       fmt.Sprintf("%s/cashflow/?category=%s", url, model.ID),
		},
		Subcategories: subcategoriesToChoices(subcategories),
	}, nil
}

type CategoryResponse struct {
	Data Category `json:"data"` // Data for the Category
}

type CategoryEditResponse struct {
	Data    Category `json:"data"`    // Data for the Category
	Choices Choices  `json:"choices"` // Types the category can be moved to
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`       // List of Categories
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type CategoryFormResponse struct {
	Data    CategoryEditable `json:"data"`    // Default values for a new Category
	Choices Choices          `json:"choices"` // Types a new category can belong to
}

type CategoryQueryFilter struct {
	TypeID dds_uuid.UUID `form:"type"`                       // By ID of the Type
	Name   string        `form:"name" filterField:"false"`   // By name
	Search string        `form:"search" filterField:"false"` // By string in name
	Offset uint          `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int           `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to all.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		TypeID: f.TypeID.UUID,
	}
}
