package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/dds-ledger/backend/internal/controllers"
	"github.com/dds-ledger/backend/internal/models"
	"github.com/dds-ledger/backend/internal/types"
	"github.com/dds-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	income := createTestType(suite.T(), controllers.TypeEditable{Name: "Пополнение"})
	expense := createTestType(suite.T(), controllers.TypeEditable{Name: "Списание"})

	category := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Инфраструктура", TypeID: income.Data.ID})
	assert.Equal(suite.T(), income.Data.ID, category.Data.TypeID)
	assert.Empty(suite.T(), category.Data.Subcategories)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/subcategory/?category=%s", category.Data.ID), category.Data.Links.Subcategories)

	tests := []struct {
		name   string
		body   any
		status int
		fields []string // Fields expected in the errors object
	}{
		{"Same name, other type", controllers.CategoryEditable{Name: "Инфраструктура", TypeID: expense.Data.ID}, http.StatusCreated, nil},
		{"Same name, same type", controllers.CategoryEditable{Name: "Инфраструктура", TypeID: income.Data.ID}, http.StatusBadRequest, []string{"name"}},
		{"No type", controllers.CategoryEditable{Name: "Маркетинг"}, http.StatusBadRequest, []string{"type"}},
		{"No type, no name", map[string]any{"name": ""}, http.StatusBadRequest, []string{"name", "type"}},
		{"Type does not exist", controllers.CategoryEditable{Name: "Маркетинг", TypeID: uuid.New()}, http.StatusNotFound, []string{"type"}},
		{"Type is not a UUID", map[string]any{"name": "Маркетинг", "type": "expense"}, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/category/", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if len(tt.fields) > 0 {
				e := decodeError(t, &r)
				assert.Len(t, e.Errors, len(tt.fields), "errors: %v", e.Errors)
				for _, field := range tt.fields {
					assert.Contains(t, e.Errors, field)
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesFormAndEdit() {
	ty := createTestType(suite.T(), controllers.TypeEditable{Name: "Списание"})
	_ = createTestType(suite.T(), controllers.TypeEditable{Name: "Пополнение"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/category/create/", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var form controllers.CategoryFormResponse
	test.DecodeResponse(suite.T(), &r, &form)
	require.Len(suite.T(), form.Choices.Types, 2)
	assert.Equal(suite.T(), "Пополнение", form.Choices.Types[0].Name)
	assert.Equal(suite.T(), "Списание", form.Choices.Types[1].Name)
	assert.Empty(suite.T(), form.Choices.Statuses)

	category := createTestCategory(suite.T(), controllers.CategoryEditable{TypeID: ty.Data.ID})
	sub := createTestSubcategory(suite.T(), controllers.SubcategoryEditable{Name: "Avito", CategoryID: category.Data.ID})

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Edit, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var edit controllers.CategoryEditResponse
	test.DecodeResponse(suite.T(), &r, &edit)
	assert.Equal(suite.T(), category.Data.ID, edit.Data.ID)
	assert.Len(suite.T(), edit.Choices.Types, 2)
	require.Len(suite.T(), edit.Data.Subcategories, 1)
	assert.Equal(suite.T(), sub.Data.ID, edit.Data.Subcategories[0].ID)
	assert.Equal(suite.T(), "Avito", edit.Data.Subcategories[0].Name)
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	t1 := createTestType(suite.T(), controllers.TypeEditable{})
	t2 := createTestType(suite.T(), controllers.TypeEditable{})

	_ = createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Маркетинг", TypeID: t1.Data.ID})
	_ = createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Инфраструктура", TypeID: t1.Data.ID})
	_ = createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Инфраструктура", TypeID: t2.Data.ID})

	tests := []struct {
		name   string
		query  string
		len    int
		total  int64
		status int
	}{
		{"All", "", 3, 3, http.StatusOK},
		{"Type 1", fmt.Sprintf("type=%s", t1.Data.ID), 2, 2, http.StatusOK},
		{"Type 2", fmt.Sprintf("type=%s", t2.Data.ID), 1, 1, http.StatusOK},
		{"Type does not exist", fmt.Sprintf("type=%s", uuid.New()), 0, 0, http.StatusOK},
		{"Type and name", fmt.Sprintf("type=%s&name=Маркетинг", t1.Data.ID), 1, 1, http.StatusOK},
		{"Name in both types", "name=Инфраструктура", 2, 2, http.StatusOK},
		{"Search", "search=рук", 2, 2, http.StatusOK},
		{"Limit", "limit=2", 2, 3, http.StatusOK},
		{"Type not a UUID", "type=expense", 0, 0, http.StatusBadRequest},
		{"Limit 0", "limit=0", 0, 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/category/?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var list controllers.CategoryListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
			assert.Equal(t, tt.total, list.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	t1 := createTestType(suite.T(), controllers.TypeEditable{})
	t2 := createTestType(suite.T(), controllers.TypeEditable{})
	category := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Маркетинг", TypeID: t1.Data.ID})
	_ = createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Реклама", TypeID: t2.Data.ID})

	// Rename only, the type stays
	r := test.Request(suite.T(), http.MethodPost, category.Data.Links.Self, map[string]any{"name": "Продвижение"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Продвижение", response.Data.Name)
	assert.Equal(suite.T(), t1.Data.ID, response.Data.TypeID)

	// Moving an unused category is allowed
	r = test.Request(suite.T(), http.MethodPost, category.Data.Links.Edit, map[string]any{"type": t2.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), t2.Data.ID, response.Data.TypeID)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Name taken in the type", map[string]any{"name": "Реклама"}, http.StatusBadRequest},
		{"Type removed", map[string]any{"type": uuid.Nil}, http.StatusBadRequest},
		{"Type does not exist", map[string]any{"type": uuid.New()}, http.StatusNotFound},
		{"Name too long", map[string]any{"name": strings.Repeat("x", models.NameMaxLength+1)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, category.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestCategoriesUpdateReferenced verifies that a category used by a record
// can be renamed, but not moved to another type.
func (suite *TestSuiteStandard) TestCategoriesUpdateReferenced() {
	c := createTestChain(suite.T())
	_ = createTestRecord(suite.T(), c.record("99.99", types.Today(), ""))
	other := createTestType(suite.T(), controllers.TypeEditable{})

	path := fmt.Sprintf("http://example.com/category/%s/", c.Category)

	r := test.Request(suite.T(), http.MethodPost, path, map[string]any{"type": other.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	assert.Contains(suite.T(), decodeError(suite.T(), &r).Error, "the type of the category cannot be changed")

	r = test.Request(suite.T(), http.MethodPost, path, map[string]any{"name": "Новое имя"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), c.Type, response.Data.TypeID)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})
	sub := createTestSubcategory(suite.T(), controllers.SubcategoryEditable{CategoryID: category.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, category.Data.Links.Delete, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, category.Data.Links.Delete, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.DeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "http://example.com/category/", response.Links.List)

	r = test.Request(suite.T(), http.MethodGet, sub.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The type is not affected
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/type/%s/", category.Data.TypeID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoriesDeleteReferenced() {
	c := createTestChain(suite.T())
	_ = createTestRecord(suite.T(), c.record("1", types.Today(), ""))

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/category/%s/delete/", c.Category), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/subcategory/%s/", c.Subcategory), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	category := createTestCategory(suite.T(), controllers.CategoryEditable{})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"List", "http://example.com/category/", http.StatusNoContent},
		{"Detail", category.Data.Links.Self, http.StatusNoContent},
		{"Edit", category.Data.Links.Edit, http.StatusNoContent},
		{"Delete", category.Data.Links.Delete, http.StatusNoContent},
		{"Unknown", fmt.Sprintf("http://example.com/category/%s/edit/", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
