package order

import (
	"errors"
	"fmt"

	"haulix/internal/pkg/errs"
)

// ErrPackageDetailsIsNotConstructed is returned when PackageDetails were not
// created via NewPackageDetails.
var ErrPackageDetailsIsNotConstructed = errors.New(
	"PackageDetails must be created via NewPackageDetails constructor")

// PackageDetails describes the physical package of a shipment: weight in
// grams, dimensions in centimeters, a content description, the declared
// value and a category. Image references are optional.
type PackageDetails struct {
	weightGrams   int
	lengthCm      int
	widthCm       int
	heightCm      int
	description   string
	declaredValue int64
	category      PackageCategory
	images        []string

	isConstructed bool
}

// NewPackageDetails creates validated package details. Weight, dimensions
// and declared value must be positive, the description non-empty and the
// category a member of the fixed set.
func NewPackageDetails(
	weightGrams, lengthCm, widthCm, heightCm int,
	description string,
	declaredValue int64,
	category PackageCategory,
	images []string,
) (PackageDetails, error) {
	p := PackageDetails{isConstructed: true}

	if err := errors.Join(
		p.setWeight(weightGrams),
		p.setDimension("dimensions.length", lengthCm, &p.lengthCm),
		p.setDimension("dimensions.width", widthCm, &p.widthCm),
		p.setDimension("dimensions.height", heightCm, &p.heightCm),
		requireField("description", description, &p.description),
		p.setDeclaredValue(declaredValue),
		p.setCategory(category),
	); err != nil {
		return PackageDetails{}, err
	}

	p.images = append([]string(nil), images...)
	return p, nil
}

// Validate ensures the PackageDetails were created through NewPackageDetails.
func (p PackageDetails) Validate() error {
	if !p.isConstructed {
		return ErrPackageDetailsIsNotConstructed
	}
	return nil
}

// WeightGrams returns the package weight in grams.
func (p PackageDetails) WeightGrams() int { return p.weightGrams }

// LengthCm returns the package length in centimeters.
func (p PackageDetails) LengthCm() int { return p.lengthCm }

// WidthCm returns the package width in centimeters.
func (p PackageDetails) WidthCm() int { return p.widthCm }

// HeightCm returns the package height in centimeters.
func (p PackageDetails) HeightCm() int { return p.heightCm }

// Description returns the declared content description.
func (p PackageDetails) Description() string { return p.description }

// DeclaredValue returns the declared value of the contents.
func (p PackageDetails) DeclaredValue() int64 { return p.declaredValue }

// Category returns the package category.
func (p PackageDetails) Category() PackageCategory { return p.category }

// Images returns a copy of the attached image references.
func (p PackageDetails) Images() []string {
	return append([]string(nil), p.images...)
}

func (p *PackageDetails) setWeight(weightGrams int) error {
	if weightGrams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%d is not greater than 0", weightGrams))
	}
	p.weightGrams = weightGrams
	return nil
}

func (p *PackageDetails) setDimension(name string, value int, target *int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%d is not greater than 0", value))
	}
	*target = value
	return nil
}

func (p *PackageDetails) setDeclaredValue(value int64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("value",
			fmt.Errorf("%d is not greater than 0", value))
	}
	p.declaredValue = value
	return nil
}

func (p *PackageDetails) setCategory(category PackageCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
