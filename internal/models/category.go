package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups subcategories below a Type.
type Category struct {
	DefaultModel
	Name   string    `gorm:"uniqueIndex:category_type_name;size:50"`
	TypeID uuid.UUID `gorm:"uniqueIndex:category_type_name"`
	Type   Type      `gorm:"constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = NormalizeName(c.Name)

	var errs ValidationError
	if err := validateName(c.Name); err != nil {
		errs = append(errs, err.(FieldError))
	}

	err := parentExists(tx, &Type{}, c.TypeID, "type")
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

	// Moving a category to another type would break the classification
	// of its records
	if c.ID != uuid.Nil {
		var stored Category
		err := tx.Session(&gorm.Session{NewDB: true}).First(&stored, "id = ?", c.ID).Error
		if err == nil && stored.TypeID != c.TypeID {
			err = ensureUnreferenced(tx, subtree{categories: []uuid.UUID{c.ID}})
			if err != nil {
				return fmt.Errorf("the type of the category cannot be changed: %w", err)
			}
		}
	}

	return nil
}

// Subcategories returns all subcategories of the category.
func (c Category) Subcategories(db *gorm.DB) ([]Subcategory, error) {
	var subcategories []Subcategory
	err := db.Where("category_id = ?", c.ID).Order("id ASC").Find(&subcategories).Error
	if err != nil {
		return nil, err
	}

	return subcategories, nil
}

// DeleteCategory deletes a category together with its subcategories.
// It fails if any cash flow record references one of them.
func DeleteCategory(db *gorm.DB, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		var category Category
		err := tx.First(&category, "id = ?", id).Error
		if err != nil {
			return err
		}

		s := subtree{categories: []uuid.UUID{id}}
		err = tx.Model(&Subcategory{}).Where("category_id = ?", id).Pluck("id", &s.subcategories).Error
		if err != nil {
			return err
		}

		err = ensureUnreferenced(tx, s)
		if err != nil {
			return err
		}

		return s.delete(tx)
	})
}
