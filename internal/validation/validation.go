package validation

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tacocloud/taco-api/internal/models"
)

// Validator checks composed tacos and submitted orders against the field
// rules of the order flow. All violations of a candidate are collected in a
// single pass; validation never short-circuits and has no side effects.
type Validator struct {
	validate *validator.Validate

	// allowEmptyOrders controls whether an order with no tacos passes
	// validation. Off by default: an order without items is not useful.
	allowEmptyOrders bool
}

// New builds a Validator with the expiration rule registered.
func New(allowEmptyOrders bool) *Validator {
	v := validator.New()

	// Report fields by their json names so error payloads match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("cc_exp", func(fl validator.FieldLevel) bool {
		return ExpirationValid(fl.Field().String(), time.Now())
	})

	return &Validator{validate: v, allowEmptyOrders: allowEmptyOrders}
}

// ValidateTaco enforces the structural rules on a single composed taco: a
// non-empty name and at least one ingredient.
func (v *Validator) ValidateTaco(taco models.Taco) models.ValidationResult {
	return v.collect(v.validate.Struct(taco))
}

// ValidateOrder enforces the delivery and payment field rules on a submitted
// order. The card is checked syntactically only; no issuer is ever contacted.
func (v *Validator) ValidateOrder(order models.TacoOrder) models.ValidationResult {
	result := v.collect(v.validate.Struct(order))
	if !v.allowEmptyOrders && len(order.Tacos) == 0 {
		result.Add("tacos", "An order must contain at least one taco")
	}
	return result
}

// collect translates validator violations into field-scoped messages.
func (v *Validator) collect(err error) models.ValidationResult {
	var result models.ValidationResult
	if err == nil {
		return result
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Add("", err.Error())
		return result
	}

	for _, violation := range violations {
		result.Add(violation.Field(), message(violation))
	}
	return result
}

// message maps a violated rule to the text the UI shows next to the field.
func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "Name is required"
	case "ingredients":
		return "You must choose at least 1 ingredient"
	case "deliveryName":
		return "Delivery name is required"
	case "deliveryStreet":
		return "Street is required"
	case "deliveryCity":
		return "City is required"
	case "deliveryState":
		return "State is required"
	case "deliveryZip":
		if fe.Tag() == "required" {
			return "Zip code is required"
		}
		return "Zip code must be numeric"
	case "ccNumber":
		if fe.Tag() == "required" {
			return "Credit card number is required"
		}
		return "Not a valid credit card number"
	case "ccExpiration":
		return "Must be formatted MM/YY and not be expired"
	case "ccCVV":
		return "Invalid CVV"
	}
	return "Invalid value"
}

// ExpirationValid reports whether exp is a well-formed MM/YY card expiration
// that is not in the past relative to now. The expiration month itself still
// counts as valid; only a month strictly before the current one fails.
func ExpirationValid(exp string, now time.Time) bool {
	parts := strings.Split(exp, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}
	year += 2000

	if year != now.Year() {
		return year > now.Year()
	}
	return time.Month(month) >= now.Month()
}
