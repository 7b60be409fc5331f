package config

import (
	"math"
	"reflect"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/originslider/internal/slider"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	sliderIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slider_id", func(fl validator.FieldLevel) bool {
			return sliderIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slider_color", func(fl validator.FieldLevel) bool {
			_, err := slider.ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.Float64 && field.Kind() != reflect.Float32 {
				return false
			}
			f := field.Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
