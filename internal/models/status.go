package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is an independent classification of cash flow records,
// e.g. "business" or "personal".
type Status struct {
	DefaultModel
	Name string `gorm:"uniqueIndex;size:50"`
}

func (Status) TableName() string {
	return "statuses"
}

func (s *Status) BeforeSave(_ *gorm.DB) error {
	s.Name = NormalizeName(s.Name)

	if err := validateName(s.Name); err != nil {
		return ValidationError{err.(FieldError)}
	}

	return nil
}

// DeleteStatus deletes a status that no cash flow record references.
func DeleteStatus(db *gorm.DB, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		var status Status
		err := tx.First(&status, "id = ?", id).Error
		if err != nil {
			return err
		}

		err = ensureUnreferenced(tx, subtree{statuses: []uuid.UUID{id}})
		if err != nil {
			return err
		}

		return tx.Delete(&status).Error
	})
}
