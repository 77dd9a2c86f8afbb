package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for the classification hierarchy.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"0190163d-8694-739b-aea5-966c26f8ad91"` // UUID for the resource
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updated_at" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}

// BeforeCreate generates the ID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID()
	if err != nil {
		return err
	}

	m.ID = id
	return nil
}

// newID returns a time-ordered UUID, so that ordering by ID is insertion order.
func newID() (uuid.UUID, error) {
	return uuid.NewV7()
}
