package controllers

import (
	dds_uuid "github.com/dds-ledger/backend/internal/uuid"
	"github.com/google/uuid"
)

type URIID struct {
	ID dds_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources returned. -1 means no limit
	Total  int64 `json:"total" example:"827"` // The total amount of resources matching the filter
}

// Choice is an option for a reference in a form.
type Choice struct {
	ID     uuid.UUID  `json:"id" example:"0190163d-8694-739b-aea5-966c26f8ad91"`               // ID of the resource
	Name   string     `json:"name" example:"Маркетинг"`                                        // Name of the resource
	Parent *uuid.UUID `json:"parent,omitempty" example:"0190163d-8694-739b-aea5-966c26f8ad91"` // ID of the type for categories, of the category for subcategories
}

// Choices lists the resources a form can reference.
type Choices struct {
	Statuses      []Choice `json:"statuses,omitempty"`      // Available statuses
	Types         []Choice `json:"types,omitempty"`         // Available types
	Categories    []Choice `json:"categories,omitempty"`    // Available categories
	Subcategories []Choice `json:"subcategories,omitempty"` // Available subcategories
}

type DeleteLinks struct {
	List string `json:"list" example:"https://example.com/api/status/"` // The list of the remaining resources
}

type DeleteResponse struct {
	Links DeleteLinks `json:"links"`
}
