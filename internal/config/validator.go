package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/themecss/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	modeNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("mode_name", func(fl validator.FieldLevel) bool {
			return modeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateTheme performs schema and scale-shape validation on a theme file.
func ValidateTheme(file *ThemeFile) error {
	if file == nil {
		return themeerrors.NewValidationError("theme", "theme file is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	for _, name := range sortedStrings(keys(file.Theme)) {
		if strings.TrimSpace(name) == "" {
			return themeerrors.NewValidationError("theme", "scale names must not be blank", nil)
		}
		if strings.Contains(name, ".") {
			return themeerrors.NewValidationError(fmt.Sprintf("theme.%s", name), "scale names must not contain '.'", nil)
		}
	}

	for _, mode := range file.ModeNames() {
		if len(file.Modes[mode].Roles()) == 0 {
			return themeerrors.NewValidationError(fmt.Sprintf("modes.%s", mode), "color mode defines no colors", nil)
		}
	}

	return nil
}

// ValidateStyle performs schema validation on a style file. Property names are not
// checked: unknown properties are passed through by the resolver.
func ValidateStyle(file *StyleFile) error {
	if file == nil {
		return themeerrors.NewValidationError("style", "style file is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
