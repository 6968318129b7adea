package catalog

import (
	stdErrors "errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stylekit/internal/component"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex        = regexp.MustCompile(`line (\d+)`)
	componentNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	elementPattern       = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("html_element", func(fl validator.FieldLevel) bool {
			return elementPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Parse decodes and schema-validates a catalog document.
func Parse(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, stylekiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&doc); err != nil {
		return nil, stylekiterrors.NewParseError(path, 0, convertValidationError(err))
	}
	return &doc, nil
}

// Build turns every component of doc into a definition. Errors of all
// components are combined; no definitions are returned when any fails.
func Build(path string, doc *Document) ([]*component.Definition, error) {
	var (
		defs []*component.Definition
		errs error
	)

	for _, spec := range doc.Components {
		def, err := buildDefinition(spec)
		if err != nil {
			errs = multierr.Append(errs, stylekiterrors.NewParseError(path, spec.Line(), err))
			continue
		}
		defs = append(defs, def)
	}

	if errs != nil {
		return nil, errs
	}
	return defs, nil
}

// LoadFile reads, parses and builds a catalog file.
func LoadFile(path string) ([]*component.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stylekiterrors.NewParseError(path, 0, err)
	}

	doc, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	return Build(path, doc)
}

// LoadInto loads every catalog file and registers its components into lib.
func LoadInto(lib *component.Library, log *logger.Logger, paths ...string) error {
	for _, path := range paths {
		fileLog := log.WithFields(map[string]any{"catalog": path})

		defs, err := LoadFile(path)
		if err != nil {
			fileLog.Error(err, "catalog rejected")
			return err
		}
		if err := lib.Register(defs...); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fileLog.Info(fmt.Sprintf("loaded %d components", len(defs)))
	}
	return nil
}

func buildDefinition(spec ComponentSpec) (*component.Definition, error) {
	var violations []error

	declared := make(map[string]struct{}, len(spec.Variants))
	axes := make([]variant.Axis, 0, len(spec.Variants))
	for _, vs := range spec.Variants {
		declared[vs.Axis] = struct{}{}

		options := make([]variant.Option, 0, len(vs.Options))
		for _, opt := range vs.Options {
			options = append(options, variant.Opt(opt.Key, opt.Classes))
		}
		axes = append(axes, variant.NewAxis(vs.Axis, spec.Defaults[vs.Axis], options...))
	}

	var unknown []string
	for axis := range spec.Defaults {
		if _, ok := declared[axis]; !ok {
			unknown = append(unknown, axis)
		}
	}
	sort.Strings(unknown)
	for _, axis := range unknown {
		violations = append(violations, stylekiterrors.NewValidationError("defaults."+axis, "default given for undeclared axis", nil))
	}

	def := variant.Definition{Name: spec.Name, Base: spec.Base, Axes: axes}
	if spec.Merge {
		def.Merger = variant.DefaultMerger()
	}

	table, err := variant.NewTable(def)
	if err != nil {
		var tableErr *stylekiterrors.InvalidVariantTableError
		if !stdErrors.As(err, &tableErr) {
			return nil, err
		}
		violations = append(violations, tableErr.Violations...)
	}
	if len(violations) > 0 {
		return nil, stylekiterrors.NewInvalidVariantTableError(spec.Name, violations)
	}

	element := spec.Element
	if element == "" {
		element = "div"
	}
	return component.Define(spec.Name, element, table).Describe(spec.Description), nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !stdErrors.As(err, &ves) {
		return stylekiterrors.NewValidationError("catalog", err.Error(), err)
	}

	var out error
	for _, fe := range ves {
		field := yamlishFieldName(fe)
		out = multierr.Append(out, stylekiterrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), nil))
	}
	return out
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
