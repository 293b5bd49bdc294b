package checkout

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"stayhub/models"
)

// GuestFormFields lists the field keys surfaced on the guest form, in the
// order the form renders them.
var GuestFormFields = []string{
	"firstName", "lastName", "email", "countryCode", "phone",
	"specialRequests", "termsAgreed",
}

var guestValidate = newGuestValidator()

func newGuestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the json field names the form uses.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateGuestInfo checks the guest form and returns a per-field error map
// keyed by json field name. Absence of an entry means the field is valid.
func ValidateGuestInfo(g models.GuestInfo) map[string]string {
	errs := make(map[string]string)
	err := guestValidate.Struct(g)
	if err == nil {
		return errs
	}
	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range valErrs {
		errs[fe.Field()] = guestFieldMessage(fe)
	}
	return errs
}

func guestFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "firstName":
		return "first name must be at least 2 characters"
	case "lastName":
		return "last name must be at least 2 characters"
	case "email":
		if fe.Tag() == "required" {
			return "email is required"
		}
		return "enter a valid email address"
	case "countryCode":
		return "country code is required"
	case "phone":
		if fe.Tag() == "required" {
			return "phone number is required"
		}
		return "phone number must be 10 to 15 digits"
	case "specialRequests":
		return "special requests must be 500 characters or fewer"
	case "termsAgreed":
		return "you must agree to the terms and conditions"
	default:
		return "invalid value"
	}
}
