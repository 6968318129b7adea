package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return stylekiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.DefaultTheme != "" && !slices.Contains(cfg.Themes, cfg.DefaultTheme) {
		return stylekiterrors.NewValidationError("default_theme", fmt.Sprintf("%q is not one of the configured themes", cfg.DefaultTheme), nil)
	}

	return nil
}

// convertValidationError normalizes the first validator error into a ValidationError.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return stylekiterrors.NewValidationError(field, msg, err)
	}

	return stylekiterrors.NewValidationError("config", err.Error(), err)
}

var fieldNames = map[string]string{
	"loglevel":     "log_level",
	"humanlogs":    "human_logs",
	"defaulttheme": "default_theme",
	"themestate":   "theme_state",
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		lowered := strings.ToLower(part)
		if mapped, ok := fieldNames[lowered]; ok {
			lowered = mapped
		}
		parts[i] = lowered
	}
	return strings.Join(parts, ".")
}
