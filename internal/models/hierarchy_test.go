package models_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/dds-ledger/backend/internal/models"
	"github.com/dds-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestHierarchyNameValidation() {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", models.ErrNameEmpty},
		{"Whitespace only", "  \t ", models.ErrNameEmpty},
		{"Too long", strings.Repeat("a", models.NameMaxLength+1), models.ErrNameTooLong},
		{"Cyrillic at limit", strings.Repeat("я", models.NameMaxLength), nil},
		{"Cyrillic too long", strings.Repeat("я", models.NameMaxLength+1), models.ErrNameTooLong},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			status := models.Status{Name: tt.in}
			err := models.DB.Create(&status).Error

			if tt.err == nil {
				assert.Nil(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)

			var validationErr models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields(), "name")
		})
	}
}

func (suite *TestSuiteStandard) TestHierarchyNameNormalization() {
	status := suite.createTestStatus(models.Status{Name: "  Бизнес  "})
	suite.Assert().Equal("Бизнес", status.Name)

	// "й" written as "и" + combining breve is the same name after NFC normalization
	err := models.DB.Create(&models.Status{Name: "Личны\u0438\u0306"}).Error
	suite.Require().Nil(err)

	err = models.DB.Create(&models.Status{Name: "Личны\u0439"}).Error
	suite.Assert().ErrorIs(err, models.ErrNameNotUnique)
}

func (suite *TestSuiteStandard) TestHierarchyDuplicateNames() {
	t1 := suite.createTestType(models.Type{Name: "Списание"})
	t2 := suite.createTestType(models.Type{Name: "Пополнение"})
	category := suite.createTestCategory(models.Category{Name: "Маркетинг", TypeID: t1.ID})
	_ = suite.createTestSubcategory(models.Subcategory{Name: "Avito", CategoryID: category.ID})
	_ = suite.createTestStatus(models.Status{Name: "Налог"})

	tests := []struct {
		name   string
		create func() error
		err    error
	}{
		{"Status", func() error { return models.DB.Create(&models.Status{Name: "Налог"}).Error }, models.ErrStatusNameNotUnique},
		{"Type", func() error { return models.DB.Create(&models.Type{Name: "Списание"}).Error }, models.ErrTypeNameNotUnique},
		{"Category in same type", func() error {
			return models.DB.Create(&models.Category{Name: "Маркетинг", TypeID: t1.ID}).Error
		}, models.ErrCategoryNameNotUnique},
		{"Subcategory in same category", func() error {
			return models.DB.Create(&models.Subcategory{Name: "Avito", CategoryID: category.ID}).Error
		}, models.ErrSubcategoryNameNotUnique},
		{"Category in other type", func() error {
			return models.DB.Create(&models.Category{Name: "Маркетинг", TypeID: t2.ID}).Error
		}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.create()
			if tt.err == nil {
				assert.Nil(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, models.ErrNameNotUnique)
		})
	}
}

func (suite *TestSuiteStandard) TestHierarchyParentNotFound() {
	err := models.DB.Create(&models.Category{Name: "Orphan", TypeID: uuid.New()}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	err = models.DB.Create(&models.Subcategory{Name: "Orphan", CategoryID: uuid.New()}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	err = models.DB.Create(&models.Category{Name: "No parent"}).Error
	suite.Assert().ErrorIs(err, models.ErrReferenceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTypeCascades() {
	t := suite.createTestType(models.Type{})
	c1 := suite.createTestCategory(models.Category{TypeID: t.ID})
	c2 := suite.createTestCategory(models.Category{TypeID: t.ID})
	s1 := suite.createTestSubcategory(models.Subcategory{CategoryID: c1.ID})
	s2 := suite.createTestSubcategory(models.Subcategory{CategoryID: c2.ID})

	// Unrelated nodes survive
	other := suite.createTestSubcategory(models.Subcategory{})

	suite.Require().Nil(models.DeleteType(models.DB, t.ID))

	for _, id := range []uuid.UUID{c1.ID, c2.ID} {
		suite.Assert().ErrorIs(models.DB.First(&models.Category{}, "id = ?", id).Error, models.ErrResourceNotFound)
	}

	for _, id := range []uuid.UUID{s1.ID, s2.ID} {
		suite.Assert().ErrorIs(models.DB.First(&models.Subcategory{}, "id = ?", id).Error, models.ErrResourceNotFound)
	}

	suite.Assert().Nil(models.DB.First(&models.Subcategory{}, "id = ?", other.ID).Error)
}

func (suite *TestSuiteStandard) TestDeleteProtectsReferencedNodes() {
	c := suite.createTestChain()
	record := suite.createTestRecord(c.record("10", types.Today(), ""))

	tests := []struct {
		name   string
		delete func() error
	}{
		{"Status", func() error { return models.DeleteStatus(models.DB, c.Status.ID) }},
		{"Type", func() error { return models.DeleteType(models.DB, c.Type.ID) }},
		{"Category", func() error { return models.DeleteCategory(models.DB, c.Category.ID) }},
		{"Subcategory", func() error { return models.DeleteSubcategory(models.DB, c.Subcategory.ID) }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.delete(), models.ErrReferentialIntegrity)
		})
	}

	// Nothing was removed
	suite.Assert().Nil(models.DB.First(&models.Status{}, "id = ?", c.Status.ID).Error)
	suite.Assert().Nil(models.DB.First(&models.Subcategory{}, "id = ?", c.Subcategory.ID).Error)
	suite.Assert().Nil(models.DB.First(&models.CashFlowRecord{}, "id = ?", record.ID).Error)
}

func (suite *TestSuiteStandard) TestDeleteProtectsSoftDeletedReferences() {
	c := suite.createTestChain()
	record := suite.createTestRecord(c.record("10", types.Today(), ""))

	deleted := true
	_, err := models.UpdateRecord(models.DB, record.ID, models.RecordPatch{IsDeleted: &deleted})
	suite.Require().Nil(err)

	suite.Assert().ErrorIs(models.DeleteStatus(models.DB, c.Status.ID), models.ErrReferentialIntegrity)
}

// TestDeleteTypeConcurrentInsert runs a type delete against a record insert
// into the same subtree. Exactly one of them may succeed and no record may
// reference a deleted node afterwards.
func (suite *TestSuiteStandard) TestDeleteTypeConcurrentInsert() {
	for i := 0; i < 20; i++ {
		c := suite.createTestChain()

		var wg sync.WaitGroup
		var deleteErr, insertErr error
		start := make(chan struct{})

		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			deleteErr = models.DeleteType(models.DB, c.Type.ID)
		}()
		go func() {
			defer wg.Done()
			<-start
			_, insertErr = models.InsertRecord(models.DB, c.record("10", types.Today(), "race"))
		}()

		close(start)
		wg.Wait()

		if deleteErr == nil {
			suite.Assert().Error(insertErr, "record inserted into a deleted type in round %d", i)
		} else {
			suite.Assert().ErrorIs(deleteErr, models.ErrReferentialIntegrity, "round %d", i)
			suite.Assert().Nil(insertErr, "round %d", i)
		}

		var orphans int64
		err := models.DB.Model(&models.CashFlowRecord{}).
			Joins("LEFT JOIN types ON types.id = cash_flow_records.type_id").
			Joins("LEFT JOIN categories ON categories.id = cash_flow_records.category_id").
			Joins("LEFT JOIN subcategories ON subcategories.id = cash_flow_records.subcategory_id").
			Where("types.id IS NULL OR categories.id IS NULL OR subcategories.id IS NULL").
			Count(&orphans).Error
		suite.Require().Nil(err)
		suite.Assert().Zero(orphans, "round %d", i)
	}
}

func (suite *TestSuiteStandard) TestDeleteUnreferencedLeaves() {
	status := suite.createTestStatus(models.Status{})
	subcategory := suite.createTestSubcategory(models.Subcategory{})

	suite.Require().Nil(models.DeleteStatus(models.DB, status.ID))
	suite.Require().Nil(models.DeleteSubcategory(models.DB, subcategory.ID))

	// The category of the subcategory is kept
	suite.Assert().Nil(models.DB.First(&models.Category{}, "id = ?", subcategory.CategoryID).Error)
}

func (suite *TestSuiteStandard) TestDeleteNotFound() {
	suite.Assert().ErrorIs(models.DeleteStatus(models.DB, uuid.New()), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(models.DeleteType(models.DB, uuid.New()), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(models.DeleteCategory(models.DB, uuid.New()), models.ErrResourceNotFound)
	suite.Assert().ErrorIs(models.DeleteSubcategory(models.DB, uuid.New()), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestReparentProtection() {
	c := suite.createTestChain()
	otherType := suite.createTestType(models.Type{})
	otherCategory := suite.createTestCategory(models.Category{TypeID: c.Type.ID})

	// Unreferenced nodes can move
	free := suite.createTestCategory(models.Category{TypeID: c.Type.ID})
	free.TypeID = otherType.ID
	suite.Require().Nil(models.DB.Save(&free).Error)

	_ = suite.createTestRecord(c.record("5", types.Today(), ""))

	category := c.Category
	category.TypeID = otherType.ID
	suite.Assert().ErrorIs(models.DB.Save(&category).Error, models.ErrReferentialIntegrity)

	subcategory := c.Subcategory
	subcategory.CategoryID = otherCategory.ID
	suite.Assert().ErrorIs(models.DB.Save(&subcategory).Error, models.ErrReferentialIntegrity)

	// Renaming is always possible
	category = c.Category
	category.Name = "Renamed"
	suite.Assert().Nil(models.DB.Save(&category).Error)
}

func (suite *TestSuiteStandard) TestChildrenLists() {
	t := suite.createTestType(models.Type{})
	c1 := suite.createTestCategory(models.Category{TypeID: t.ID})
	c2 := suite.createTestCategory(models.Category{TypeID: t.ID})
	s := suite.createTestSubcategory(models.Subcategory{CategoryID: c1.ID})

	categories, err := t.Categories(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 2)
	suite.Assert().Equal(c1.ID, categories[0].ID)
	suite.Assert().Equal(c2.ID, categories[1].ID)

	subcategories, err := c1.Subcategories(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(subcategories, 1)
	suite.Assert().Equal(s.ID, subcategories[0].ID)
}
