package order

import (
	"fmt"

	"haulix/internal/pkg/errs"
)

// PackageCategory classifies the declared contents of a package.
// The set is fixed; free-text categories are rejected.
type PackageCategory string

const (
	CategoryElectronics PackageCategory = "electronics"
	CategoryClothing    PackageCategory = "clothing"
	CategoryBooks       PackageCategory = "books"
	CategoryDocuments   PackageCategory = "documents"
	CategoryGifts       PackageCategory = "gifts"
	CategoryHome        PackageCategory = "home"
	CategorySports      PackageCategory = "sports"
	CategoryHealth      PackageCategory = "health"
	CategoryAutomotive  PackageCategory = "automotive"
	CategoryOther       PackageCategory = "other"
)

func getValidCategories() map[PackageCategory]struct{} {
	return map[PackageCategory]struct{}{
		CategoryElectronics: {},
		CategoryClothing:    {},
		CategoryBooks:       {},
		CategoryDocuments:   {},
		CategoryGifts:       {},
		CategoryHome:        {},
		CategorySports:      {},
		CategoryHealth:      {},
		CategoryAutomotive:  {},
		CategoryOther:       {},
	}
}

// PackageCategoryFromString parses and validates a category.
func PackageCategoryFromString(s string) (PackageCategory, error) {
	c := PackageCategory(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate checks membership in the fixed category set.
func (c PackageCategory) Validate() error {
	if _, ok := getValidCategories()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category", fmt.Errorf("%q is not a valid package category", string(c)))
	}
	return nil
}

// String returns the wire representation of the category.
func (c PackageCategory) String() string {
	return string(c)
}
