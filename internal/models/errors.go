package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrGeneral              = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound     = errors.New("there is no")
	ErrReferentialIntegrity = errors.New("the resource is still referenced by cash flow records")

	ErrNameEmpty     = errors.New("the name must not be empty")
	ErrNameTooLong   = fmt.Errorf("the name must not be longer than %d characters", NameMaxLength)
	ErrNameNotUnique = errors.New("the name is already in use")

	ErrStatusNameNotUnique      = fmt.Errorf("%w: status names must be unique", ErrNameNotUnique)
	ErrTypeNameNotUnique        = fmt.Errorf("%w: type names must be unique", ErrNameNotUnique)
	ErrCategoryNameNotUnique    = fmt.Errorf("%w: category names must be unique per type", ErrNameNotUnique)
	ErrSubcategoryNameNotUnique = fmt.Errorf("%w: subcategory names must be unique per category", ErrNameNotUnique)

	ErrReferenceNotFound = errors.New("there is no resource with the referenced ID")
	ErrHierarchyMismatch = errors.New("the classification is inconsistent")
	ErrInvalidAmount     = errors.New("the amount is invalid")
	ErrInvalidDate       = errors.New("the date is invalid")
)

// FieldError is an error for a single field of a resource.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError collects all field errors found for a resource.
type ValidationError []FieldError

func (v ValidationError) Error() string {
	messages := make([]string, 0, len(v))
	for _, e := range v {
		messages = append(messages, e.Error())
	}

	return strings.Join(messages, "; ")
}

// Unwrap makes errors.Is and errors.As match every contained field error.
func (v ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, e := range v {
		errs = append(errs, e)
	}

	return errs
}

// Fields returns the error messages keyed by field name.
func (v ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, e := range v {
		if existing, ok := fields[e.Field]; ok {
			fields[e.Field] = existing + "; " + e.Err.Error()
			continue
		}
		fields[e.Field] = e.Err.Error()
	}

	return fields
}

// FieldNames returns the sorted names of all fields with errors.
func (v ValidationError) FieldNames() []string {
	names := make([]string, 0, len(v))
	for name := range v.Fields() {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// orNil returns nil for an empty ValidationError so that callers can
// return it directly as error.
func (v ValidationError) orNil() error {
	if len(v) == 0 {
		return nil
	}

	return v
}
