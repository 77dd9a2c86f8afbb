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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listRecords(t *testing.T, query string, expectedStatus ...int) controllers.CashFlowRecordListResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusOK}
	}

	r := test.Request(t, http.MethodGet, "http://example.com/cashflow/?"+query, "")
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var list controllers.CashFlowRecordListResponse
	if r.Code == http.StatusOK {
		test.DecodeResponse(t, &r, &list)
	}

	return list
}

func recordIDs(records []controllers.CashFlowRecord) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

func (suite *TestSuiteStandard) TestCashFlowRecordsCreate() {
	status := createTestStatus(suite.T(), controllers.StatusEditable{Name: "Бизнес"})
	ty := createTestType(suite.T(), controllers.TypeEditable{Name: "Списание"})
	category := createTestCategory(suite.T(), controllers.CategoryEditable{Name: "Маркетинг", TypeID: ty.Data.ID})
	sub := createTestSubcategory(suite.T(), controllers.SubcategoryEditable{Name: "Avito", CategoryID: category.Data.ID})

	date := types.Today().AddDays(-3)
	record := createTestRecord(suite.T(), controllers.CashFlowRecordEditable{
		CreatedAt:     date,
		StatusID:      status.Data.ID,
		TypeID:        ty.Data.ID,
		CategoryID:    category.Data.ID,
		SubcategoryID: sub.Data.ID,
		Amount:        decimal.NewNullDecimal(decimal.RequireFromString("1000.00")),
		Comment:       "  Размещение объявлений ",
	})

	assert.NotEqual(suite.T(), uuid.Nil, record.Data.ID)
	assert.Equal(suite.T(), date.String(), record.Data.CreatedAt.String())
	assert.True(suite.T(), record.Data.Amount.Valid)
	assert.True(suite.T(), record.Data.Amount.Decimal.Equal(decimal.NewFromInt(1000)), "amount is %s", record.Data.Amount.Decimal)
	assert.Equal(suite.T(), "Размещение объявлений", record.Data.Comment)
	assert.False(suite.T(), record.Data.IsDeleted)
	assert.Equal(suite.T(), controllers.CashFlowRecordNames{
		Status:      "Бизнес",
		Type:        "Списание",
		Category:    "Маркетинг",
		Subcategory: "Avito",
	}, record.Data.Names)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/cashflow/%s/", record.Data.ID), record.Data.Links.Self)

	r := test.Request(suite.T(), http.MethodGet, record.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stored controllers.CashFlowRecordResponse
	test.DecodeResponse(suite.T(), &r, &stored)
	assert.Equal(suite.T(), record.Data.ID, stored.Data.ID)
	assert.Equal(suite.T(), record.Data.Names, stored.Data.Names)
}

func (suite *TestSuiteStandard) TestCashFlowRecordsCreateDefaultsToToday() {
	c := createTestChain(suite.T())

	record := createTestRecord(suite.T(), c.record("0", types.Date{}, ""))
	assert.Equal(suite.T(), types.Today().String(), record.Data.CreatedAt.String())
	assert.True(suite.T(), record.Data.Amount.Decimal.IsZero())

	// Via the form endpoint, with the amount as a JSON number
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/cashflow/create/", map[string]any{
		"status":      c.Status,
		"type":        c.Type,
		"category":    c.Category,
		"subcategory": c.Subcategory,
		"amount":      12.5,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.CashFlowRecordResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), types.Today().String(), response.Data.CreatedAt.String())
	assert.True(suite.T(), response.Data.Amount.Decimal.Equal(decimal.RequireFromString("12.5")))
}

// TestCashFlowRecordsCreateInvalid verifies that invalid records are rejected
// with all violations and that nothing is stored.
func (suite *TestSuiteStandard) TestCashFlowRecordsCreateInvalid() {
	c := createTestChain(suite.T())
	other := createTestChain(suite.T())

	tests := []struct {
		name   string
		modify func(*controllers.CashFlowRecordEditable)
		fields []string // Fields expected in the errors object
	}{
		{"Category of other type", func(r *controllers.CashFlowRecordEditable) {
			r.CategoryID = other.Category
		}, []string{"category", "subcategory"}},
		{"Subcategory of other category", func(r *controllers.CashFlowRecordEditable) {
			r.SubcategoryID = other.Subcategory
		}, []string{"subcategory"}},
		{"Negative amount", func(r *controllers.CashFlowRecordEditable) {
			r.Amount = decimal.NewNullDecimal(decimal.RequireFromString("-0.01"))
		}, []string{"amount"}},
		{"Three decimal places", func(r *controllers.CashFlowRecordEditable) {
			r.Amount = decimal.NewNullDecimal(decimal.RequireFromString("0.001"))
		}, []string{"amount"}},
		{"Amount too large", func(r *controllers.CashFlowRecordEditable) {
			r.Amount = decimal.NewNullDecimal(decimal.RequireFromString("10000000000"))
		}, []string{"amount"}},
		{"Missing amount", func(r *controllers.CashFlowRecordEditable) {
			r.Amount = decimal.NullDecimal{}
		}, []string{"amount"}},
		{"Tomorrow", func(r *controllers.CashFlowRecordEditable) {
			r.CreatedAt = types.Today().AddDays(1)
		}, []string{"created_at"}},
		{"Missing status", func(r *controllers.CashFlowRecordEditable) {
			r.StatusID = uuid.Nil
		}, []string{"status"}},
		{"Unknown status", func(r *controllers.CashFlowRecordEditable) {
			r.StatusID = uuid.New()
		}, []string{"status"}},
		{"Everything wrong", func(r *controllers.CashFlowRecordEditable) {
			r.StatusID = uuid.Nil
			r.TypeID = other.Type
			r.Amount = decimal.NewNullDecimal(decimal.NewFromInt(-1))
			r.CreatedAt = types.Today().AddDays(10)
		}, []string{"status", "category", "amount", "created_at"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			record := c.record("100", types.Today(), "")
			tt.modify(&record)

			r := test.Request(t, http.MethodPost, "http://example.com/cashflow/", record)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			e := decodeError(t, &r)
			assert.Equal(t, "the submitted data is invalid", e.Error)

			fields := make([]string, 0, len(e.Errors))
			for field := range e.Errors {
				fields = append(fields, field)
			}
			assert.ElementsMatch(t, tt.fields, fields, "errors: %v", e.Errors)
		})
	}

	list := listRecords(suite.T(), "")
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestCashFlowRecordsCreateBrokenBody() {
	c := createTestChain(suite.T())

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Not JSON", "amount=5"},
		{"Date format", map[string]any{"created_at": "01.03.2024", "status": c.Status}},
		{"Amount not a number", map[string]any{"amount": "a lot", "status": c.Status}},
		{"Status not a UUID", map[string]any{"amount": "5", "status": "business"}},
		{"Deleted not a bool", map[string]any{"amount": "5", "is_deleted": "no"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/cashflow/", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Empty(t, decodeError(t, &r).Errors)
		})
	}
}

// TestCashFlowRecordsFilterComposition verifies that all filters must match
// and that the search matches comments and exact amounts.
func (suite *TestSuiteStandard) TestCashFlowRecordsFilterComposition() {
	c1 := createTestChain(suite.T())
	c2 := createTestChain(suite.T())
	today := types.Today()

	r1 := createTestRecord(suite.T(), c1.record("100", today, "rent"))
	r2 := createTestRecord(suite.T(), c1.record("200", today.AddDays(-1), "salary"))
	r3 := createTestRecord(suite.T(), c2.record("100", today.AddDays(-2), "rent"))

	tests := []struct {
		name     string
		query    string
		expected []uuid.UUID // In order
	}{
		{"No filter, newest first", "", []uuid.UUID{r1.Data.ID, r2.Data.ID, r3.Data.ID}},
		{"Type and search", fmt.Sprintf("type=%s&search=rent", c1.Type), []uuid.UUID{r1.Data.ID}},
		{"Amount search", "search=100", []uuid.UUID{r1.Data.ID, r3.Data.ID}},
		{"Amount search with decimals", "search=200.00", []uuid.UUID{r2.Data.ID}},
		{"Amount is matched exactly", "search=10", []uuid.UUID{}},
		{"Comment search", "search=SAL", []uuid.UUID{r2.Data.ID}},
		{"Type 2", fmt.Sprintf("type=%s", c2.Type), []uuid.UUID{r3.Data.ID}},
		{"Category", fmt.Sprintf("category=%s", c1.Category), []uuid.UUID{r1.Data.ID, r2.Data.ID}},
		{"Subcategory", fmt.Sprintf("subcategory=%s", c2.Subcategory), []uuid.UUID{r3.Data.ID}},
		{"Status", fmt.Sprintf("status=%s", c1.Status), []uuid.UUID{r1.Data.ID, r2.Data.ID}},
		{"Status of other chain and type", fmt.Sprintf("status=%s&type=%s", c2.Status, c1.Type), []uuid.UUID{}},
		{"Date from", fmt.Sprintf("date_from=%s", today.AddDays(-1)), []uuid.UUID{r1.Data.ID, r2.Data.ID}},
		{"Date to", fmt.Sprintf("date_to=%s", today.AddDays(-1)), []uuid.UUID{r2.Data.ID, r3.Data.ID}},
		{"Single day", fmt.Sprintf("date_from=%s&date_to=%s", today.AddDays(-1), today.AddDays(-1)), []uuid.UUID{r2.Data.ID}},
		{"Empty range", fmt.Sprintf("date_from=%s&date_to=%s", today, today.AddDays(-1)), []uuid.UUID{}},
		{"Offset", "offset=1", []uuid.UUID{r2.Data.ID, r3.Data.ID}},
		{"Limit", "limit=2", []uuid.UUID{r1.Data.ID, r2.Data.ID}},
		{"Offset and limit", "offset=1&limit=1", []uuid.UUID{r2.Data.ID}},
		{"Search with LIKE wildcard", "search=%25", []uuid.UUID{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			list := listRecords(t, tt.query)
			assert.Equal(t, tt.expected, recordIDs(list.Data))
		})
	}

	list := listRecords(suite.T(), "offset=1&limit=1")
	assert.Equal(suite.T(), controllers.Pagination{Count: 1, Offset: 1, Limit: 1, Total: 3}, *list.Pagination)

	list = listRecords(suite.T(), "")
	assert.Equal(suite.T(), controllers.Pagination{Count: 3, Offset: 0, Limit: -1, Total: 3}, *list.Pagination)
}

func (suite *TestSuiteStandard) TestCashFlowRecordsFilterErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"Type not a UUID", "type=expense"},
		{"Date not a date", "date_from=yesterday"},
		{"Date in other format", "date_to=01.03.2024"},
		{"Deleted not a bool", "is_deleted=maybe"},
		{"Limit 0", "limit=0"},
		{"Limit negative", "limit=-3"},
		{"Offset negative", "offset=-1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = listRecords(t, tt.query, http.StatusBadRequest)
		})
	}
}

// TestCashFlowRecordsDeletedFlag verifies that records marked as deleted are
// hidden unless requested.
func (suite *TestSuiteStandard) TestCashFlowRecordsDeletedFlag() {
	c := createTestChain(suite.T())

	visible := createTestRecord(suite.T(), c.record("1", types.Today(), ""))
	hiddenRecord := c.record("2", types.Today(), "")
	hiddenRecord.IsDeleted = true
	hidden := createTestRecord(suite.T(), hiddenRecord)
	assert.True(suite.T(), hidden.Data.IsDeleted)

	assert.Equal(suite.T(), []uuid.UUID{visible.Data.ID}, recordIDs(listRecords(suite.T(), "").Data))
	assert.Equal(suite.T(), []uuid.UUID{visible.Data.ID}, recordIDs(listRecords(suite.T(), "is_deleted=false").Data))
	assert.Equal(suite.T(), []uuid.UUID{hidden.Data.ID}, recordIDs(listRecords(suite.T(), "is_deleted=true").Data))

	// Marked records are still available directly
	r := test.Request(suite.T(), http.MethodGet, hidden.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Restoring a record
	r = test.Request(suite.T(), http.MethodPost, hidden.Data.Links.Self, map[string]any{"is_deleted": false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Len(suite.T(), listRecords(suite.T(), "").Data, 2)
}

// TestCashFlowRecordsListOnce verifies that every record is listed exactly once.
func (suite *TestSuiteStandard) TestCashFlowRecordsListOnce() {
	c := createTestChain(suite.T())

	created := make(map[uuid.UUID]bool)
	for i := 0; i < 12; i++ {
		record := createTestRecord(suite.T(), c.record(fmt.Sprintf("%d.%02d", i, i), types.Today().AddDays(-(i%4)), ""))
		created[record.Data.ID] = true
	}

	list := listRecords(suite.T(), "")
	require.Len(suite.T(), list.Data, len(created))

	seen := make(map[uuid.UUID]bool)
	for i, record := range list.Data {
		assert.True(suite.T(), created[record.ID], "unknown record %s", record.ID)
		assert.False(suite.T(), seen[record.ID], "record %s listed twice", record.ID)
		seen[record.ID] = true

		if i > 0 {
			assert.False(suite.T(), record.CreatedAt.After(list.Data[i-1].CreatedAt), "records are not ordered newest first")
		}
	}

	// Paging through the list gives the same records
	var paged []uuid.UUID
	for offset := 0; offset < len(created); offset += 5 {
		paged = append(paged, recordIDs(listRecords(suite.T(), fmt.Sprintf("offset=%d&limit=5", offset)).Data)...)
	}
	assert.Equal(suite.T(), recordIDs(list.Data), paged)
}

func (suite *TestSuiteStandard) TestCashFlowRecordsUpdate() {
	c := createTestChain(suite.T())
	other := createTestChain(suite.T())
	record := createTestRecord(suite.T(), c.record("100", types.Today().AddDays(-1), "rent"))

	// Only the amount changes
	r := test.Request(suite.T(), http.MethodPost, record.Data.Links.Self, map[string]any{"amount": "250.75"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CashFlowRecordResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Decimal.Equal(decimal.RequireFromString("250.75")))
	assert.Equal(suite.T(), "rent", response.Data.Comment)
	assert.Equal(suite.T(), record.Data.CreatedAt.String(), response.Data.CreatedAt.String())
	assert.Equal(suite.T(), record.Data.Names, response.Data.Names)

	// Moving to another classification needs the whole chain
	r = test.Request(suite.T(), http.MethodPost, record.Data.Links.Edit, map[string]any{"category": other.Category})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	e := decodeError(suite.T(), &r)
	assert.Contains(suite.T(), e.Errors, "category")
	assert.Contains(suite.T(), e.Errors, "subcategory")

	r = test.Request(suite.T(), http.MethodPost, record.Data.Links.Edit, map[string]any{
		"status":      other.Status,
		"type":        other.Type,
		"category":    other.Category,
		"subcategory": other.Subcategory,
		"comment":     "moved",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), other.Category, response.Data.CategoryID)
	assert.Equal(suite.T(), "moved", response.Data.Comment)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Future date", record.Data.Links.Self, map[string]any{"created_at": types.Today().AddDays(1)}, http.StatusBadRequest},
		{"Removed amount", record.Data.Links.Self, map[string]any{"amount": nil}, http.StatusBadRequest},
		{"Negative amount", record.Data.Links.Self, map[string]any{"amount": "-5"}, http.StatusBadRequest},
		{"Broken body", record.Data.Links.Self, `{"amount": `, http.StatusBadRequest},
		{"Empty body", record.Data.Links.Self, "", http.StatusBadRequest},
		{"Unknown ID", fmt.Sprintf("http://example.com/cashflow/%s/", uuid.New()), map[string]any{"amount": "5"}, http.StatusNotFound},
		{"Invalid ID", "http://example.com/cashflow/rent/", map[string]any{"amount": "5"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Failed updates did not change anything
	r = test.Request(suite.T(), http.MethodGet, record.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Decimal.Equal(decimal.RequireFromString("250.75")))
	assert.Equal(suite.T(), other.Subcategory, response.Data.SubcategoryID)
}

func (suite *TestSuiteStandard) TestCashFlowRecordsDelete() {
	c := createTestChain(suite.T())
	record := createTestRecord(suite.T(), c.record("5", types.Today(), ""))

	r := test.Request(suite.T(), http.MethodGet, record.Data.Links.Delete, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, record.Data.Links.Delete, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.DeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "http://example.com/cashflow/", response.Links.List)

	r = test.Request(suite.T(), http.MethodGet, record.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Contains(suite.T(), decodeError(suite.T(), &r).Error, "cash flow record")

	// The hierarchy can be deleted now
	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/type/%s/delete/", c.Type), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCashFlowRecordsFormAndEdit() {
	c := createTestChain(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/cashflow/create/", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var form controllers.CashFlowRecordFormResponse
	test.DecodeResponse(suite.T(), &r, &form)
	assert.Equal(suite.T(), types.Today().String(), form.Data.CreatedAt.String())
	assert.Len(suite.T(), form.Choices.Statuses, 1)
	assert.Len(suite.T(), form.Choices.Types, 1)
	require.Len(suite.T(), form.Choices.Categories, 1)
	require.Len(suite.T(), form.Choices.Subcategories, 1)
	assert.Equal(suite.T(), c.Type, *form.Choices.Categories[0].Parent)
	assert.Equal(suite.T(), c.Category, *form.Choices.Subcategories[0].Parent)

	record := createTestRecord(suite.T(), c.record("5", types.Today(), ""))

	r = test.Request(suite.T(), http.MethodGet, record.Data.Links.Edit, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var edit controllers.CashFlowRecordEditResponse
	test.DecodeResponse(suite.T(), &r, &edit)
	assert.Equal(suite.T(), record.Data.ID, edit.Data.ID)
	assert.Equal(suite.T(), c.Status, edit.Choices.Statuses[0].ID)
	assert.Equal(suite.T(), c.Subcategory, edit.Choices.Subcategories[0].ID)
}

func (suite *TestSuiteStandard) TestCashFlowRecordsOptions() {
	c := createTestChain(suite.T())
	record := createTestRecord(suite.T(), c.record("5", types.Today(), ""))

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "http://example.com/cashflow/", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Form", "http://example.com/cashflow/create/", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Export", "http://example.com/cashflow/export/", http.StatusNoContent, "OPTIONS, GET"},
		{"Detail", record.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Unknown", fmt.Sprintf("http://example.com/cashflow/%s/", uuid.New()), http.StatusNotFound, ""},
		{"Invalid", "http://example.com/cashflow/rent/delete/", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCashFlowRecordsDBClosed() {
	c := createTestChain(suite.T())
	record := createTestRecord(suite.T(), c.record("5", types.Today(), ""))

	suite.CloseDB()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"Create", http.MethodPost, "http://example.com/cashflow/", c.record("1", types.Today(), "")},
		{"List", http.MethodGet, "http://example.com/cashflow/", ""},
		{"Form", http.MethodGet, "http://example.com/cashflow/create/", ""},
		{"Get", http.MethodGet, record.Data.Links.Self, ""},
		{"Update", http.MethodPost, record.Data.Links.Self, map[string]any{"comment": "x"}},
		{"Delete", http.MethodPost, record.Data.Links.Delete, ""},
		{"Export", http.MethodGet, "http://example.com/cashflow/export/", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Equal(t, models.ErrGeneral.Error(), decodeError(t, &r).Error)
		})
	}
}
