package models

import (
	"errors"
	"fmt"

	"github.com/dds-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Amounts are stored as DECIMAL(12,2).
const (
	AmountScale         = 2
	AmountIntegerDigits = 10
)

var amountLimit = decimal.New(1, AmountIntegerDigits)

// Snapshot holds the hierarchy nodes a cash flow record references.
// A nil entry means that no node exists for the referenced ID.
type Snapshot struct {
	Status      *Status
	Type        *Type
	Category    *Category
	Subcategory *Subcategory
}

// ResolveSnapshot loads the hierarchy nodes referenced by the record.
func ResolveSnapshot(db *gorm.DB, r CashFlowRecord) (Snapshot, error) {
	var s Snapshot
	db = db.Session(&gorm.Session{NewDB: true})

	if r.StatusID != uuid.Nil {
		var status Status
		found, err := find(db, &status, r.StatusID)
		if err != nil {
			return Snapshot{}, err
		}
		if found {
			s.Status = &status
		}
	}

	if r.TypeID != uuid.Nil {
		var t Type
		found, err := find(db, &t, r.TypeID)
		if err != nil {
			return Snapshot{}, err
		}
		if found {
			s.Type = &t
		}
	}

	if r.CategoryID != uuid.Nil {
		var category Category
		found, err := find(db, &category, r.CategoryID)
		if err != nil {
			return Snapshot{}, err
		}
		if found {
			s.Category = &category
		}
	}

	if r.SubcategoryID != uuid.Nil {
		var subcategory Subcategory
		found, err := find(db, &subcategory, r.SubcategoryID)
		if err != nil {
			return Snapshot{}, err
		}
		if found {
			s.Subcategory = &subcategory
		}
	}

	return s, nil
}

func find(db *gorm.DB, dest any, id uuid.UUID) (bool, error) {
	err := db.First(dest, "id = ?", id).Error
	if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	return err == nil, err
}

// ValidateRecord checks a cash flow record against the hierarchy it
// references and against the value constraints for amount and date.
//
// All violations are reported together as ValidationError.
func ValidateRecord(r CashFlowRecord, s Snapshot, today types.Date) error {
	var errs ValidationError

	references := []struct {
		field    string
		id       uuid.UUID
		resolved bool
	}{
		{"status", r.StatusID, s.Status != nil},
		{"type", r.TypeID, s.Type != nil},
		{"category", r.CategoryID, s.Category != nil},
		{"subcategory", r.SubcategoryID, s.Subcategory != nil},
	}

	for _, ref := range references {
		if ref.id == uuid.Nil {
			errs = append(errs, FieldError{Field: ref.field, Err: fmt.Errorf("%w: the %s is required", ErrReferenceNotFound, ref.field)})
			continue
		}

		if !ref.resolved {
			errs = append(errs, FieldError{Field: ref.field, Err: fmt.Errorf("%w: no %s with ID %s", ErrReferenceNotFound, ref.field, ref.id)})
		}
	}

	if s.Category != nil && s.Type != nil && s.Category.TypeID != s.Type.ID {
		errs = append(errs, FieldError{
			Field: "category",
			Err:   fmt.Errorf("%w: category %q does not belong to type %q", ErrHierarchyMismatch, s.Category.Name, s.Type.Name),
		})
	}

	if s.Subcategory != nil && s.Category != nil && s.Subcategory.CategoryID != s.Category.ID {
		errs = append(errs, FieldError{
			Field: "subcategory",
			Err:   fmt.Errorf("%w: subcategory %q does not belong to category %q", ErrHierarchyMismatch, s.Subcategory.Name, s.Category.Name),
		})
	}

	if err := validateAmount(r.Amount); err != nil {
		errs = append(errs, FieldError{Field: "amount", Err: err})
	}

	if r.CreatedAt.IsZero() {
		errs = append(errs, FieldError{Field: "created_at", Err: fmt.Errorf("%w: the date is required", ErrInvalidDate)})
	} else if r.CreatedAt.After(today) {
		errs = append(errs, FieldError{Field: "created_at", Err: fmt.Errorf("%w: %s is in the future", ErrInvalidDate, r.CreatedAt)})
	}

	return errs.orNil()
}

func validateAmount(amount decimal.NullDecimal) error {
	if !amount.Valid {
		return fmt.Errorf("%w: the amount is required", ErrInvalidAmount)
	}

	if amount.Decimal.IsNegative() {
		return fmt.Errorf("%w: the amount must not be negative", ErrInvalidAmount)
	}

	if !amount.Decimal.Equal(amount.Decimal.Round(AmountScale)) {
		return fmt.Errorf("%w: the amount must not have more than %d decimal places", ErrInvalidAmount, AmountScale)
	}

	if amount.Decimal.GreaterThanOrEqual(amountLimit) {
		return fmt.Errorf("%w: the amount must be less than %s", ErrInvalidAmount, amountLimit)
	}

	return nil
}
