package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Type is the root of the classification tree, e.g. "income" or "expense".
type Type struct {
	DefaultModel
	Name string `gorm:"uniqueIndex;size:50"`
}

func (Type) TableName() string {
	return "types"
}

func (t *Type) BeforeSave(_ *gorm.DB) error {
	t.Name = NormalizeName(t.Name)

	if err := validateName(t.Name); err != nil {
		return ValidationError{err.(FieldError)}
	}

	return nil
}

// Categories returns all categories of the type.
func (t Type) Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Where("type_id = ?", t.ID).Order("id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// DeleteType deletes a type together with its categories and their
// subcategories. It fails if any cash flow record references one of them.
func DeleteType(db *gorm.DB, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		var t Type
		err := tx.First(&t, "id = ?", id).Error
		if err != nil {
			return err
		}

		s := subtree{types: []uuid.UUID{id}}

		err = tx.Model(&Category{}).Where("type_id = ?", id).Pluck("id", &s.categories).Error
		if err != nil {
			return err
		}

		if len(s.categories) > 0 {
			err = tx.Model(&Subcategory{}).Where("category_id IN ?", s.categories).Pluck("id", &s.subcategories).Error
			if err != nil {
				return err
			}
		}

		err = ensureUnreferenced(tx, s)
		if err != nil {
			return err
		}

		return s.delete(tx)
	})
}
