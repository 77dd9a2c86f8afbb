// Package seed creates a classification hierarchy from a YAML file.
//
// The file lists statuses and a tree of types, categories and
// subcategories:
//
//	statuses:
//	  - Business
//	  - Personal
//	types:
//	  - name: Expense
//	    categories:
//	      - name: Marketing
//	        subcategories: [Avito, Farpost]
//
// Entries that already exist are left untouched, so the same file can be
// applied on every start.
package seed

import (
	"fmt"
	"os"

	"github.com/dds-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type File struct {
	Statuses []string `yaml:"statuses"`
	Types    []Type   `yaml:"types"`
}

type Type struct {
	Name       string     `yaml:"name"`
	Categories []Category `yaml:"categories"`
}

type Category struct {
	Name          string   `yaml:"name"`
	Subcategories []string `yaml:"subcategories"`
}

// Result counts the entries that were created.
type Result struct {
	Statuses      int
	Types         int
	Categories    int
	Subcategories int
}

func (r Result) Total() int {
	return r.Statuses + r.Types + r.Categories + r.Subcategories
}

// Load reads and parses a seed file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("error reading seed file: %w", err)
	}

	var f File
	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return File{}, fmt.Errorf("error parsing seed file %s: %w", path, err)
	}

	return f, nil
}

// Apply creates all entries of the file that do not exist yet.
// Either all missing entries are created or none.
func Apply(db *gorm.DB, f File) (Result, error) {
	var result Result

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, name := range f.Statuses {
			created, err := findOrCreate(tx, &models.Status{Name: name}, "name = ?", models.NormalizeName(name))
			if err != nil {
				return fmt.Errorf("status %q: %w", name, err)
			}
			if created {
				result.Statuses++
			}
		}

		for _, t := range f.Types {
			typeModel := models.Type{Name: t.Name}
			created, err := findOrCreate(tx, &typeModel, "name = ?", models.NormalizeName(t.Name))
			if err != nil {
				return fmt.Errorf("type %q: %w", t.Name, err)
			}
			if created {
				result.Types++
			}

			for _, c := range t.Categories {
				category := models.Category{Name: c.Name, TypeID: typeModel.ID}
				created, err := findOrCreate(tx, &category, "name = ? AND type_id = ?", models.NormalizeName(c.Name), typeModel.ID)
				if err != nil {
					return fmt.Errorf("category %q of type %q: %w", c.Name, t.Name, err)
				}
				if created {
					result.Categories++
				}

				for _, name := range c.Subcategories {
					subcategory := models.Subcategory{Name: name, CategoryID: category.ID}
					created, err := findOrCreate(tx, &subcategory, "name = ? AND category_id = ?", models.NormalizeName(name), category.ID)
					if err != nil {
						return fmt.Errorf("subcategory %q of category %q: %w", name, c.Name, err)
					}
					if created {
						result.Subcategories++
					}
				}
			}
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

// LoadFile loads the seed file at path and applies it.
func LoadFile(db *gorm.DB, path string) error {
	f, err := Load(path)
	if err != nil {
		return err
	}

	result, err := Apply(db, f)
	if err != nil {
		return fmt.Errorf("error applying seed file %s: %w", path, err)
	}

	log.Info().
		Str("file", path).
		Int("statuses", result.Statuses).
		Int("types", result.Types).
		Int("categories", result.Categories).
		Int("subcategories", result.Subcategories).
		Msg("seed applied")

	return nil
}

// findOrCreate loads the first row matching the query into model. If there
// is none, model is created.
func findOrCreate(tx *gorm.DB, model any, query string, args ...any) (bool, error) {
	// Find does not fail when nothing matches, First would
	result := tx.Where(query, args...).Limit(1).Find(model)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected > 0 {
		return false, nil
	}

	err := tx.Create(model).Error
	if err != nil {
		return false, err
	}

	return true, nil
}
