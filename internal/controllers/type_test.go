package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dds-ledger/backend/internal/controllers"
	"github.com/dds-ledger/backend/internal/models"
	"github.com/dds-ledger/backend/internal/types"
	"github.com/dds-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTypesCreate() {
	ty := createTestType(suite.T(), controllers.TypeEditable{Name: "Списание"})
	assert.Equal(suite.T(), "Списание", ty.Data.Name)
	assert.Empty(suite.T(), ty.Data.Categories)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/category/?type=%s", ty.Data.ID), ty.Data.Links.Categories)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/cashflow/?type=%s", ty.Data.ID), ty.Data.Links.Records)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/type/create/", controllers.TypeEditable{Name: "Списание"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrTypeNameNotUnique.Error(), decodeError(suite.T(), &r).Errors["name"])

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/type/", `{"name": ""}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrNameEmpty.Error(), decodeError(suite.T(), &r).Errors["name"])
}

func (suite *TestSuiteStandard) TestTypesForm() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/type/create/", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/type/create/", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestTypesGetSingle() {
	ty := createTestType(suite.T(), controllers.TypeEditable{})
	c1 := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Маркетинг", TypeID: ty.Data.ID})
	c2 := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Инфраструктура", TypeID: ty.Data.ID})

	for _, path := range []string{ty.Data.Links.Self, ty.Data.Links.Edit, ty.Data.Links.Delete} {
		r := test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var response controllers.TypeResponse
		test.DecodeResponse(suite.T(), &r, &response)
		require.Len(suite.T(), response.Data.Categories, 2)

		// Categories are listed in creation order
		assert.Equal(suite.T(), c1.Data.ID, response.Data.Categories[0].ID)
		assert.Equal(suite.T(), c2.Data.ID, response.Data.Categories[1].ID)
		assert.Equal(suite.T(), ty.Data.ID, *response.Data.Categories[0].Parent)
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/type/%s/", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/type/income/", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTypesGetFilter() {
	_ = createTestType(suite.T(), controllers.TypeEditable{Name: "Пополнение"})
	_ = createTestType(suite.T(), controllers.TypeEditable{Name: "Списание"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 2},
		{"Name", "name=Списание", 1},
		{"Search", "search=ние", 2},
		{"Search one", "search=Спис", 1},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 1},
		{"Offset past end", "offset=5", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/type/?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list controllers.TypeListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTypesUpdate() {
	ty := createTestType(suite.T(), controllers.TypeEditable{Name: "Списание"})
	_ = createTestType(suite.T(), controllers.TypeEditable{Name: "Пополнение"})

	r := test.Request(suite.T(), http.MethodPost, ty.Data.Links.Edit, map[string]any{"name": "Расход"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.TypeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Расход", response.Data.Name)
	assert.Equal(suite.T(), ty.Data.ID, response.Data.ID)

	r = test.Request(suite.T(), http.MethodPost, ty.Data.Links.Self, map[string]any{"name": "Пополнение"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), decodeError(suite.T(), &r).Errors, "name")

	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/type/%s/", uuid.New()), map[string]any{"name": "Доход"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTypesDeleteCascade verifies that deleting a type removes its categories
// and their subcategories.
func (suite *TestSuiteStandard) TestTypesDeleteCascade() {
	ty := createTestType(suite.T(), controllers.TypeEditable{})
	category := createTestCategory(suite.T(), controllers.CategoryEditable{TypeID: ty.Data.ID})
	subcategory := createTestSubcategory(suite.T(), controllers.SubcategoryEditable{CategoryID: category.Data.ID})

	other := createTestCategory(suite.T(), controllers.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodPost, ty.Data.Links.Delete, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.DeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "http://example.com/type/", response.Links.List)

	for _, path := range []string{ty.Data.Links.Self, category.Data.Links.Self, subcategory.Data.Links.Self} {
		r = test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	}

	r = test.Request(suite.T(), http.MethodGet, other.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

// TestTypesDeleteProtected verifies that a type is not deleted while a
// record uses anything below it.
func (suite *TestSuiteStandard) TestTypesDeleteProtected() {
	c := createTestChain(suite.T())
	unused := createTestCategory(suite.T(), controllers.CategoryEditable{TypeID: c.Type})
	_ = createTestRecord(suite.T(), c.record("150.50", types.Today(), "Hosting"))

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/type/%s/delete/", c.Type), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	assert.Contains(suite.T(), decodeError(suite.T(), &r).Error, models.ErrReferentialIntegrity.Error())

	// Nothing of the subtree is deleted
	for _, path := range []string{
		fmt.Sprintf("http://example.com/type/%s/", c.Type),
		fmt.Sprintf("http://example.com/category/%s/", c.Category),
		fmt.Sprintf("http://example.com/subcategory/%s/", c.Subcategory),
		unused.Data.Links.Self,
	} {
		r = test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}
}
