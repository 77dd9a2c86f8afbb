package controllers

import (
	"net/http"

	"github.com/dds-ledger/backend/internal/httputil"
	"github.com/dds-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type resourceModel interface {
	models.Status | models.Type | models.Category | models.Subcategory | models.CashFlowRecord
}

// resourceHandlers are the handlers for the endpoints every resource has.
type resourceHandlers struct {
	List   gin.HandlerFunc // List, with filters
	Create gin.HandlerFunc // Create from a form
	Form   gin.HandlerFunc // Empty form with the choices for references
	Get    gin.HandlerFunc // Single resource
	Edit   gin.HandlerFunc // Single resource with the choices for references
	Update gin.HandlerFunc // Partial update
	Delete gin.HandlerFunc // Delete
}

// registerResourceRoutes registers the endpoints for a resource:
//
//	/            GET: list, POST: create
//	/create/     GET: form, POST: create
//	/:id/        GET: detail, POST: update
//	/:id/edit/   GET: detail with choices, POST: update
//	/:id/delete/ GET: detail, POST: delete
func registerResourceRoutes[R resourceModel](r *gin.RouterGroup, h resourceHandlers) {
	r.OPTIONS("/", httputil.OptionsGetPost)
	r.GET("/", h.List)
	r.POST("/", h.Create)

	r.OPTIONS("/create/", httputil.OptionsGetPost)
	r.GET("/create/", h.Form)
	r.POST("/create/", h.Create)

	r.OPTIONS("/:id/", optionsDetail[R])
	r.GET("/:id/", h.Get)
	r.POST("/:id/", h.Update)

	r.OPTIONS("/:id/edit/", optionsDetail[R])
	r.GET("/:id/edit/", h.Edit)
	r.POST("/:id/edit/", h.Update)

	r.OPTIONS("/:id/delete/", optionsDetail[R])
	r.GET("/:id/delete/", h.Get)
	r.POST("/:id/delete/", h.Delete)
}

// optionsDetail returns the allowed HTTP methods for an existing resource.
func optionsDetail[R resourceModel](c *gin.Context) {
	_, ok := getResourceByID[R](c)
	if !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

// getResourceByID loads the resource with the ID from the URI.
//
// If the ID is not a valid UUID, an HTTP 400 is sent. If no resource
// exists for the ID, an HTTP 404 is sent.
func getResourceByID[R resourceModel](c *gin.Context) (resource R, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		abort(c, err)
		return
	}

	err = models.DB.First(&resource, "id = ?", uri.ID.UUID).Error
	if err != nil {
		abort(c, err)
		return
	}

	return resource, true
}

// nameFilters adds the filters for the name of hierarchy resources.
// name matches exactly, search matches any part of the name.
func nameFilters(q *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if slices.Contains(setFields, "Name") {
		q = q.Where("name = ?", name)
	}

	if search != "" {
		condition, pattern := models.ContainsFold("name", search)
		q = q.Where(condition, pattern)
	}

	return q
}

// paginate sets offset and limit. Without a limit, all resources are returned.
func paginate(q *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int, error) {
	if !slices.Contains(setFields, "Limit") {
		limit = -1
	} else if limit < 1 {
		return nil, 0, errLimitInvalid
	}

	return q.Offset(int(offset)).Limit(limit), limit, nil
}

func statusChoices(db *gorm.DB) ([]Choice, error) {
	var statuses []models.Status
	err := db.Order("name ASC").Find(&statuses).Error
	if err != nil {
		return nil, err
	}

	choices := make([]Choice, 0, len(statuses))
	for _, s := range statuses {
		choices = append(choices, Choice{ID: s.ID, Name: s.Name})
	}

	return choices, nil
}

func typeChoices(db *gorm.DB) ([]Choice, error) {
	var types []models.Type
	err := db.Order("name ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}

	choices := make([]Choice, 0, len(types))
	for _, t := range types {
		choices = append(choices, Choice{ID: t.ID, Name: t.Name})
	}

	return choices, nil
}

func categoryChoices(db *gorm.DB) ([]Choice, error) {
	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categoriesToChoices(categories), nil
}

func categoriesToChoices(categories []models.Category) []Choice {
	choices := make([]Choice, 0, len(categories))
	for _, category := range categories {
		choices = append(choices, Choice{ID: category.ID, Name: category.Name, Parent: ptr(category.TypeID)})
	}

	return choices
}

func subcategoryChoices(db *gorm.DB) ([]Choice, error) {
	var subcategories []models.Subcategory
	err := db.Order("name ASC").Find(&subcategories).Error
	if err != nil {
		return nil, err
	}

	return subcategoriesToChoices(subcategories), nil
}

func subcategoriesToChoices(subcategories []models.Subcategory) []Choice {
	choices := make([]Choice, 0, len(subcategories))
	for _, subcategory := range subcategories {
		choices = append(choices, Choice{ID: subcategory.ID, Name: subcategory.Name, Parent: ptr(subcategory.CategoryID)})
	}

	return choices
}

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}

// deleteResource returns a handler that deletes the resource with the ID
// from the URI and links to the list at listPath.
func deleteResource(del func(*gorm.DB, uuid.UUID) error, listPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri URIID
		err := c.ShouldBindUri(&uri)
		if err != nil {
			abort(c, err)
			return
		}

		err = del(models.DB, uri.ID.UUID)
		if err != nil {
			abort(c, err)
			return
		}

		c.JSON(http.StatusOK, DeleteResponse{
			Links: DeleteLinks{
				List: c.GetString(string(models.DBContextURL)) + listPath,
			},
		})
	}
}
