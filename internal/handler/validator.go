package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("return_condition", func(fl validator.FieldLevel) bool {
		return domain.ReturnCondition(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("deployment_type", func(fl validator.FieldLevel) bool {
		return domain.DeploymentType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("category_type", func(fl validator.FieldLevel) bool {
		return domain.CategoryType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("serial_status", func(fl validator.FieldLevel) bool {
		return domain.SerializedItemStatus(fl.Field().String()).Valid()
	})

	// Report json names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by json field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "return_condition":
			errs[field] = "Must be one of GOOD, FAIR, DAMAGED, LOST"
		case "deployment_type":
			errs[field] = "Must be one of EMERGENCY, TRAINING, MAINTENANCE, RELIEF_OPERATION"
		case "category_type":
			errs[field] = "Must be one of EQUIPMENT, SUPPLIES, RELIEF_GOODS, VEHICLES, COMMUNICATION_DEVICES"
		case "serial_status":
			errs[field] = "Invalid status"
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
