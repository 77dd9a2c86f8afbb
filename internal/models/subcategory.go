package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcategory is the leaf of the classification tree.
type Subcategory struct {
	DefaultModel
	Name       string    `gorm:"uniqueIndex:subcategory_category_name;size:50"`
	CategoryID uuid.UUID `gorm:"uniqueIndex:subcategory_category_name"`
	Category   Category  `gorm:"constraint:OnDelete:CASCADE"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}

func (s *Subcategory) BeforeSave(tx *gorm.DB) error {
	s.Name = NormalizeName(s.Name)

	var errs ValidationError
	if err := validateName(s.Name); err != nil {
		errs = append(errs, err.(FieldError))
	}

	err := parentExists(tx, &Category{}, s.CategoryID, "category")
	if err != nil {
		if fe, ok := err.(FieldError); ok {
			errs = append(errs, fe)
		} else {
			return err
		}
	}

	if len(errs) > 0 {
		return errs
	}

	if s.ID != uuid.Nil {
		var stored Subcategory
		err := tx.Session(&gorm.Session{NewDB: true}).First(&stored, "id = ?", s.ID).Error
		if err == nil && stored.CategoryID != s.CategoryID {
			err = ensureUnreferenced(tx, subtree{subcategories: []uuid.UUID{s.ID}})
			if err != nil {
				return fmt.Errorf("the category of the subcategory cannot be changed: %w", err)
			}
		}
	}

	return nil
}

// DeleteSubcategory deletes a subcategory that no cash flow record references.
func DeleteSubcategory(db *gorm.DB, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		var subcategory Subcategory
		err := tx.First(&subcategory, "id = ?", id).Error
		if err != nil {
			return err
		}

		s := subtree{subcategories: []uuid.UUID{id}}
		err = ensureUnreferenced(tx, s)
		if err != nil {
			return err
		}

		return s.delete(tx)
	})
}
