package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// subtree is the set of hierarchy nodes removed by one delete.
type subtree struct {
	statuses      []uuid.UUID
	types         []uuid.UUID
	categories    []uuid.UUID
	subcategories []uuid.UUID
}

// references returns the number of cash flow records that reference any node
// of the subtree. Records flagged as deleted are counted, too.
func (s subtree) references(tx *gorm.DB) (int64, error) {
	q := tx.Session(&gorm.Session{NewDB: true}).Model(&CashFlowRecord{})

	conditions := []struct {
		column string
		ids    []uuid.UUID
	}{
		{"status_id", s.statuses},
		{"type_id", s.types},
		{"category_id", s.categories},
		{"subcategory_id", s.subcategories},
	}

	var where *gorm.DB
	for _, c := range conditions {
		if len(c.ids) == 0 {
			continue
		}

		clause := fmt.Sprintf("%s IN ?", c.column)
		if where == nil {
			where = tx.Session(&gorm.Session{NewDB: true}).Where(clause, c.ids)
			continue
		}
		where = where.Or(clause, c.ids)
	}

	if where == nil {
		return 0, nil
	}

	var count int64
	err := q.Where(where).Count(&count).Error
	return count, err
}

// delete removes the subtree, leaves first.
func (s subtree) delete(tx *gorm.DB) error {
	steps := []struct {
		model any
		ids   []uuid.UUID
	}{
		{&Subcategory{}, s.subcategories},
		{&Category{}, s.categories},
		{&Type{}, s.types},
		{&Status{}, s.statuses},
	}

	for _, step := range steps {
		if len(step.ids) == 0 {
			continue
		}

		err := tx.Where("id IN ?", step.ids).Delete(step.model).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// ensureUnreferenced returns ErrReferentialIntegrity if any record
// references a node of the subtree.
func ensureUnreferenced(tx *gorm.DB, s subtree) error {
	count, err := s.references(tx)
	if err != nil {
		return err
	}

	if count > 0 {
		return fmt.Errorf("%w: %d record(s) use it", ErrReferentialIntegrity, count)
	}

	return nil
}

// parentExists verifies that the parent referenced by a hierarchy node exists.
func parentExists(tx *gorm.DB, model any, id uuid.UUID, field string) error {
	if id == uuid.Nil {
		return FieldError{Field: field, Err: fmt.Errorf("%w: the %s is required", ErrReferenceNotFound, field)}
	}

	var count int64
	err := tx.Session(&gorm.Session{NewDB: true}).Model(model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return FieldError{Field: field, Err: fmt.Errorf("%w %s matching your query", ErrResourceNotFound, field)}
	}

	return nil
}
