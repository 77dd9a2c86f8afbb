package models

import (
	"strings"
	"time"

	"github.com/dds-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashFlowRecord is a single money movement.
type CashFlowRecord struct {
	ID uuid.UUID

	// CreatedAt is the business date of the movement, not the time the row
	// was inserted.
	CreatedAt types.Date `gorm:"index;not null"`
	UpdatedAt time.Time

	StatusID      uuid.UUID
	Status        Status `gorm:"constraint:OnDelete:RESTRICT"`
	TypeID        uuid.UUID
	Type          Type `gorm:"constraint:OnDelete:RESTRICT"`
	CategoryID    uuid.UUID
	Category      Category `gorm:"constraint:OnDelete:RESTRICT"`
	SubcategoryID uuid.UUID
	Subcategory   Subcategory `gorm:"constraint:OnDelete:RESTRICT"`

	Amount    decimal.NullDecimal `gorm:"type:DECIMAL(12,2);not null"`
	Comment   string
	IsDeleted bool `gorm:"index;not null;default:false"`
}

func (CashFlowRecord) TableName() string {
	return "cash_flow_records"
}

func (r *CashFlowRecord) AfterFind(_ *gorm.DB) error {
	r.UpdatedAt = r.UpdatedAt.In(time.UTC)
	return nil
}

func (r *CashFlowRecord) BeforeCreate(_ *gorm.DB) error {
	id, err := newID()
	if err != nil {
		return err
	}

	r.ID = id
	return nil
}

// BeforeSave validates every write of a record.
func (r *CashFlowRecord) BeforeSave(tx *gorm.DB) error {
	r.Comment = strings.TrimSpace(r.Comment)

	snapshot, err := ResolveSnapshot(tx, *r)
	if err != nil {
		return err
	}

	return ValidateRecord(*r, snapshot, types.Today())
}

// RecordPatch holds the fields of a partial update. Nil fields keep
// their stored value.
type RecordPatch struct {
	CreatedAt     *types.Date
	StatusID      *uuid.UUID
	TypeID        *uuid.UUID
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Amount        *decimal.NullDecimal
	Comment       *string
	IsDeleted     *bool
}

func (p RecordPatch) apply(r *CashFlowRecord) {
	if p.CreatedAt != nil {
		r.CreatedAt = *p.CreatedAt
	}
	if p.StatusID != nil {
		r.StatusID = *p.StatusID
	}
	if p.TypeID != nil {
		r.TypeID = *p.TypeID
	}
	if p.CategoryID != nil {
		r.CategoryID = *p.CategoryID
	}
	if p.SubcategoryID != nil {
		r.SubcategoryID = *p.SubcategoryID
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
	if p.IsDeleted != nil {
		r.IsDeleted = *p.IsDeleted
	}
}

// InsertRecord validates and stores a new record. Without a date, the
// record is dated today.
func InsertRecord(db *gorm.DB, r CashFlowRecord) (CashFlowRecord, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = types.Today()
	}

	err := db.Create(&r).Error
	if err != nil {
		return CashFlowRecord{}, err
	}

	return r, nil
}

// UpdateRecord applies the patch to the stored record. The result is
// validated as a whole, using stored values for all fields the patch
// does not set.
func UpdateRecord(db *gorm.DB, id uuid.UUID, patch RecordPatch) (CashFlowRecord, error) {
	var record CashFlowRecord

	err := transaction(db, func(tx *gorm.DB) error {
		err := tx.First(&record, "id = ?", id).Error
		if err != nil {
			return err
		}

		patch.apply(&record)
		return tx.Save(&record).Error
	})
	if err != nil {
		return CashFlowRecord{}, err
	}

	return record, nil
}

// DeleteRecord removes a record.
func DeleteRecord(db *gorm.DB, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		var record CashFlowRecord
		err := tx.First(&record, "id = ?", id).Error
		if err != nil {
			return err
		}

		return tx.Delete(&record).Error
	})
}
