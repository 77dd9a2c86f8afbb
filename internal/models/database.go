package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type DDSContext string

const (
	DBContextURL DDSContext = "dds-backend-url"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	// Migration with foreign keys disabled since sqlite copies and
	// recreates tables when columns change
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all transactions. This prevents SQLITE_BUSY
	// and makes the reference check in hierarchy deletes atomic with the delete.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "dds:after_query", queryCallback},
		{db.Callback().Query().After("*"), "dds:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "dds:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "dds:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "dds:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "dds:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "dds:after_delete", deleteCallback},
		{db.Callback().Delete().After("*"), "dds:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "dds:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	return nil
}

// resourceNames maps table names to the name used in error messages.
var resourceNames = map[string]string{
	"statuses":          "status",
	"types":             "type",
	"categories":        "category",
	"subcategories":     "subcategory",
	"cash_flow_records": "cash flow record",
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		name, ok := resourceNames[db.Statement.Table]
		if !ok {
			name = strings.ReplaceAll(db.Statement.Table, "_", " ")
		}

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueConstraints maps the tables with unique names to the error
// returned when the constraint is violated.
var uniqueConstraints = map[string]error{
	"statuses":      ErrStatusNameNotUnique,
	"types":         ErrTypeNameNotUnique,
	"categories":    ErrCategoryNameNotUnique,
	"subcategories": ErrSubcategoryNameNotUnique,
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	message := db.Error.Error()
	for table, err := range uniqueConstraints {
		if strings.Contains(message, fmt.Sprintf("UNIQUE constraint failed: %s.", table)) {
			db.Error = ValidationError{{Field: "name", Err: err}}
			return
		}
	}

	if strings.Contains(message, "FOREIGN KEY constraint failed") {
		db.Error = ErrReferenceNotFound
	}
}

// deleteCallback turns foreign key violations into referential integrity errors.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "FOREIGN KEY constraint failed") {
		db.Error = ErrReferentialIntegrity
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if isGeneralError(db.Error) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// isGeneralError reports if the error is a fault of the database itself.
func isGeneralError(err error) bool {
	// "sql: database is closed" is hard-coded in the sql module
	return err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{})
}

// transaction runs fn in a transaction. Errors beginning or committing the
// transaction do not pass gorm's callbacks and are translated here.
func transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.Transaction(fn)
	if err != nil && isGeneralError(err) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Status{}, Type{}, Category{}, Subcategory{}, CashFlowRecord{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
