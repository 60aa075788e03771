package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/themekit/internal/style"
	themekiterrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	languagePattern = regexp.MustCompile(`^[A-Za-z]{2,8}(-[A-Za-z0-9]{2,8})?$`)
	hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
	ansiPattern     = regexp.MustCompile(`^([0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])$`)
	tokenPattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	refPattern      = regexp.MustCompile(`^\$[A-Za-z][A-Za-z0-9_]*$`)
)

// builtinTokens cannot be redefined as custom modifiers without shadowing
// the built-in text colour.
var builtinTokens = map[string]struct{}{"default": {}}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("language_code", func(fl validator.FieldLevel) bool {
			return languagePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return IsColor(fl.Field().String())
		})

		_ = v.RegisterValidation("color_ref", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return IsColor(value) || refPattern.MatchString(value)
		})

		validateInst = v
	})

	return validateInst
}

// knowsTheme reports whether name is declared in the file or built in.
func (c *Config) knowsTheme(name string) bool {
	if _, ok := c.Themes[name]; ok {
		return true
	}
	return style.IsBuiltinTheme(name)
}

// IsColor reports whether value is a hex colour or an ANSI 256 colour index.
func IsColor(value string) bool {
	return hexColorPattern.MatchString(value) || ansiPattern.MatchString(value)
}

// ValidateConfig performs schema and cross-field validation.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return themekiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if !cfg.knowsTheme(cfg.Theme) {
		return themekiterrors.NewValidationError("theme", fmt.Sprintf("references unknown palette %q", cfg.Theme), nil)
	}
	for i, name := range cfg.Toggles.Themes {
		if !cfg.knowsTheme(name) {
			return themekiterrors.NewValidationError(fmt.Sprintf("toggles.themes[%d]", i), fmt.Sprintf("references unknown palette %q", name), nil)
		}
	}

	for lang := range cfg.Strings {
		if !languagePattern.MatchString(lang) {
			return themekiterrors.NewValidationError("strings."+lang, "is not a language code", nil)
		}
	}

	for token := range cfg.Modifiers {
		if !tokenPattern.MatchString(token) {
			return themekiterrors.NewValidationError("modifiers."+token, "modifier names must be a single word", nil)
		}
		if _, reserved := builtinTokens[token]; reserved {
			return themekiterrors.NewValidationError("modifiers."+token, "is reserved", nil)
		}
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
		return themekiterrors.NewValidationError(field, msg, err)
	}

	return themekiterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
