package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	sliderrors "github.com/alexisbeaulieu97/originslider/pkg/errors"
)

// ValidateScene performs schema and cross-slider validation on a scene.
func ValidateScene(scene *Scene) error {
	if scene == nil {
		return sliderrors.NewValidationError("scene", "scene is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(scene); err != nil {
		return convertValidationError(err)
	}

	ids := make(map[string]int, len(scene.Sliders))
	bindings := make(map[string]int, len(scene.Sliders))

	for i, cfg := range scene.Sliders {
		if _, exists := ids[cfg.ID]; exists {
			return sliderrors.NewValidationError(fieldForSlider(i, "id"), fmt.Sprintf("duplicate slider id %q", cfg.ID), nil)
		}
		ids[cfg.ID] = i

		if _, err := cfg.Style.Resolve(); err != nil {
			return sliderrors.NewValidationError(fieldForSlider(i, "style"), err.Error(), err)
		}

		first, shared := bindings[cfg.BindName()]
		if !shared {
			bindings[cfg.BindName()] = i
			continue
		}

		owner := scene.Sliders[first]
		if owner.Value != cfg.Value {
			return sliderrors.NewValidationError(fieldForSlider(i, "value"),
				fmt.Sprintf("binding %q starts at %g in %s", cfg.BindName(), owner.Value, fieldForSlider(first, "value")), nil)
		}
		if scene.ClampWriteBack && (owner.Min != cfg.Min || owner.Max != cfg.Max) {
			return sliderrors.NewValidationError(fieldForSlider(i, "bind"),
				fmt.Sprintf("binding %q is shared by sliders with different ranges while clamp_write_back is enabled", cfg.BindName()), nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return sliderrors.NewValidationError(field, msg, err)
	}

	return sliderrors.NewValidationError("scene", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

// toSnake turns a Go field name such as "GuideBarHeight" or "Sliders[2]" into
// its YAML spelling.
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fieldForSlider(index int, field string) string {
	return fmt.Sprintf("sliders[%d].%s", index, field)
}
