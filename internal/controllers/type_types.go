package controllers

import (
	"fmt"

	"github.com/dds-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TypeEditable represents all user configurable parameters
type TypeEditable struct {
	Name string `json:"name" example:"Списание"` // Name of the type
}

func (editable TypeEditable) model() models.Type {
	return models.Type{
		Name: editable.Name,
	}
}

type TypeLinks struct {
	Self       string `json:"self" example:"https://example.com/api/type/0190163d-8694-739b-aea5-966c26f8ad91/"`                // The type itself
	Edit       string `json:"edit" example:"https://example.com/api/type/0190163d-8694-739b-aea5-966c26f8ad91/edit/"`           // Form to edit the type
	Delete     string `json:"delete" example:"https://example.com/api/type/0190163d-8694-739b-aea5-966c26f8ad91/delete/"`       // Delete confirmation for the type
	Categories string `json:"categories" example:"https://example.com/api/category/?type=0190163d-8694-739b-aea5-966c26f8ad91"` // Categories of this type
	Records    string `json:"records" example:"https://example.com/api/cashflow/?type=0190163d-8694-739b-aea5-966c26f8ad91"`    // Cash flow records of this type
}

type Type struct {
	models.DefaultModel
	TypeEditable
	Links TypeLinks `json:"links"`

	// These fields are computed
	Categories []Choice `json:"categories"` // Categories of the type. Deleting the type deletes them, too.
}

func newType(c *gin.Context, db *gorm.DB, model models.Type) (Type, error) {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/type/%s/", url, model.ID)

	categories, err := model.Categories(db)
	if err != nil {
		return Type{}, err
	}

	return Type{
		DefaultModel: model.DefaultModel,
		TypeEditable: TypeEditable{
			Name: model.Name,
		},
		Links: TypeLinks{
			Self:       self,
			Edit:       self + "edit/",
			Delete:     self + "delete/",
			Categories: fmt.Sprintf("%s/category/?type=%s", url, model.ID),
			Records:    fmt.Sprintf("%s/cashflow/?type=%s", url, model.ID),
		},
		Categories: categoriesToChoices(categories),
	}, nil
}

type TypeResponse struct {
	Data Type `json:"data"` // Data for the Type
}

type TypeListResponse struct {
	Data       []Type      `json:"data"`       // List of Types
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type TypeFormResponse struct {
	Data TypeEditable `json:"data"` // Default values for a new Type
}

type TypeQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Search string `form:"search" filterField:"false"` // By string in name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Type returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Types to return. Defaults to all.
}
