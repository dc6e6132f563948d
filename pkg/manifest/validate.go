package manifest

import (
	"reflect"
	"strings"
	"sync"

	"github.com/arthur-debert/linkdot/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field names in errors use
// the manifest spelling (link[0].source) instead of Go field names.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("toml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

func validateRaw(raw *rawManifest) error {
	err := validatorInstance().Struct(raw)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := manifestFieldName(ve)
		if field == "link" {
			return errors.New(errors.ErrManifestInvalid, "manifest declares no links").
				WithDetail("field", field)
		}
		return errors.Newf(errors.ErrManifestInvalid, "%s is %s", field, describeTag(ve.Tag())).
			WithDetail("field", field)
	}

	return errors.Wrap(err, errors.ErrManifestInvalid, "manifest validation failed")
}

// manifestFieldName drops the root struct name from the namespace
func manifestFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "required"
	default:
		return "invalid (" + tag + ")"
	}
}
