package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// FoodType classifies a line item for dietary filtering.
type FoodType string

const (
	FoodTypeVeg    FoodType = "veg"
	FoodTypeNonVeg FoodType = "non-veg"
)

// Validate checks that the food type is one of the known values.
func (f FoodType) Validate() error {
	if f != FoodTypeVeg && f != FoodTypeNonVeg {
		return errs.NewValueIsInvalidErrorWithCause(
			"foodType is invalid",
			fmt.Errorf("%q is not a valid food type", string(f)),
		)
	}
	return nil
}

// Item is a single priced line of a shop order. Immutable value object.
type Item struct {
	name     string
	price    float64
	quantity int
	imageURL string
	foodType FoodType
}

// NewItem creates a validated line item.
func NewItem(name string, price float64, quantity int, imageURL string, foodType FoodType) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"price is invalid", fmt.Errorf("%f is negative", price))
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := foodType.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		name:     name,
		price:    price,
		quantity: quantity,
		imageURL: imageURL,
		foodType: foodType,
	}, nil
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// ImageURL returns the catalog image reference, empty when absent.
func (i Item) ImageURL() string {
	return i.imageURL
}

// FoodType returns the dietary classification.
func (i Item) FoodType() FoodType {
	return i.foodType
}

// Total returns price multiplied by quantity.
func (i Item) Total() float64 {
	return i.price * float64(i.quantity)
}
