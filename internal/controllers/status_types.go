package controllers

import (
	"fmt"

	"github.com/dds-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// StatusEditable represents all user configurable parameters
type StatusEditable struct {
	Name string `json:"name" example:"Бизнес"` // Name of the status
}

func (editable StatusEditable) model() models.Status {
	return models.Status{
		Name: editable.Name,
	}
}

type StatusLinks struct {
	Self    string `json:"self" example:"https://example.com/api/status/0190163d-8694-739b-aea5-966c26f8ad91/"`             // The status itself
	Edit    string `json:"edit" example:"https://example.com/api/status/0190163d-8694-739b-aea5-966c26f8ad91/edit/"`        // Form to edit the status
	Delete  string `json:"delete" example:"https://example.com/api/status/0190163d-8694-739b-aea5-966c26f8ad91/delete/"`    // Delete confirmation for the status
	Records string `json:"records" example:"https://example.com/api/cashflow/?status=0190163d-8694-739b-aea5-966c26f8ad91"` // Cash flow records with this status
}

type Status struct {
	models.DefaultModel
	StatusEditable
	Links StatusLinks `json:"links"`
}

func newStatus(c *gin.Context, model models.Status) Status {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/status/%s/", url, model.ID)

	return Status{
		DefaultModel: model.DefaultModel,
		StatusEditable: StatusEditable{
			Name: model.Name,
		},
		Links: StatusLinks{
			Self:    self,
			Edit:    self + "edit/",
			Delete:  self + "delete/",
			Records: fmt.Sprintf("%s/cashflow/?status=%s", url, model.ID),
		},
	}
}

type StatusResponse struct {
	Data Status `json:"data"` // Data for the Status
}

type StatusListResponse struct {
	Data       []Status    `json:"data"`       // List of Statuses
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type StatusFormResponse struct {
	Data StatusEditable `json:"data"` // Default values for a new Status
}

type StatusQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Search string `form:"search" filterField:"false"` // By string in name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Status returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Statuses to return. Defaults to all.
}
