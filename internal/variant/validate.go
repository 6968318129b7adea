package variant

import (
	stdErrors "errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	axisIDPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	optionKeyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
)

// validatorInstance returns the validator with the variant tags registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("axis_id", func(fl validator.FieldLevel) bool {
			return axisIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("option_key", func(fl validator.FieldLevel) bool {
			return optionKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// validateDefinition collects every structural violation of def.
func validateDefinition(def Definition) []error {
	var errs error

	if err := validatorInstance().Struct(def); err != nil {
		errs = multierr.Append(errs, convertValidationErrors(err))
	}

	seenAxes := make(map[string]int, len(def.Axes))
	for i, axis := range def.Axes {
		if axis.ID != "" {
			if first, dup := seenAxes[axis.ID]; dup {
				errs = multierr.Append(errs, stylekiterrors.NewValidationError(
					fieldForAxis(i, "id"),
					fmt.Sprintf("duplicate axis id %q (first declared at axes[%d])", axis.ID, first),
					nil,
				))
			} else {
				seenAxes[axis.ID] = i
			}
		}

		seenOptions := make(map[string]struct{}, len(axis.Options))
		for j, opt := range axis.Options {
			if opt.Key == "" {
				continue
			}
			if _, dup := seenOptions[opt.Key]; dup {
				errs = multierr.Append(errs, stylekiterrors.NewValidationError(
					fmt.Sprintf("%s[%d].key", fieldForAxis(i, "options"), j),
					fmt.Sprintf("duplicate option key %q", opt.Key),
					nil,
				))
			}
			seenOptions[opt.Key] = struct{}{}
		}

		if len(axis.Options) == 0 || axis.Default == "" {
			continue
		}
		if _, ok := axis.Option(axis.Default); !ok {
			errs = multierr.Append(errs, stylekiterrors.NewValidationError(
				fieldForAxis(i, "default"),
				fmt.Sprintf("default option %q is not one of [%s]", axis.Default, strings.Join(axis.Keys(), ", ")),
				nil,
			))
		}
	}

	return multierr.Errors(errs)
}

// convertValidationErrors turns every validator field error into a ValidationError.
func convertValidationErrors(err error) error {
	var ves validator.ValidationErrors
	if !stdErrors.As(err, &ves) {
		return stylekiterrors.NewValidationError("definition", err.Error(), err)
	}

	var out error
	for _, fe := range ves {
		field := fieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		switch fe.Tag() {
		case "min":
			if fe.Kind().String() == "slice" {
				msg = "option set is empty"
			}
		case "required":
			msg = "value is required"
		case "axis_id":
			msg = fmt.Sprintf("axis id %q must start with a letter and contain only letters, digits, '-' or '_'", fe.Value())
		case "option_key":
			msg = fmt.Sprintf("option key %q contains unsupported characters", fe.Value())
		}
		out = multierr.Append(out, stylekiterrors.NewValidationError(field, msg, nil))
	}
	return out
}

// fieldName renders "Definition.Axes[0].Options" as "axes[0].options".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForAxis(index int, field string) string {
	return fmt.Sprintf("axes[%d].%s", index, field)
}
