package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fieldKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("field_key", func(fl validator.FieldLevel) bool {
			return fieldKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the definition and fills in generated row keys when
// GenerateKeys is set.
func Validate(def *Definition) error {
	if def == nil {
		return tkerrors.NewValidationError("", "definition is nil", nil)
	}

	if err := validatorInstance().Struct(def); err != nil {
		return convertValidationError(err)
	}

	seenFields := make(map[string]int, len(def.Fields))
	for i, f := range def.Fields {
		if f.Key == RowKeyField {
			return tkerrors.NewValidationError(fieldForColumn(i, "key"), fmt.Sprintf("%q is reserved for row keys", RowKeyField), nil)
		}
		if first, exists := seenFields[f.Key]; exists {
			return tkerrors.NewValidationError(fieldForColumn(i, "key"), fmt.Sprintf("duplicate field key %q (first at fields[%d])", f.Key, first), nil)
		}
		seenFields[f.Key] = i
	}

	seenRows := make(map[string]int, len(def.Data))
	for i, entry := range def.Data {
		if entry == nil {
			return tkerrors.NewValidationError(fieldForRow(i), "row is empty", tkerrors.NewRowError(i, "", "empty row"))
		}

		key := strings.TrimSpace(rowKey(entry))
		if key == "" {
			if !def.GenerateKeys {
				return tkerrors.NewValidationError(fieldForRow(i), "row has no key", tkerrors.NewRowError(i, "", "missing key"))
			}
			key = uuid.NewString()
			entry[RowKeyField] = key
		}

		if first, exists := seenRows[key]; exists {
			return tkerrors.NewValidationError(fieldForRow(i), fmt.Sprintf("duplicate row key (first at data[%d])", first), tkerrors.NewRowError(i, key, "duplicate key"))
		}
		seenRows[key] = i
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
		return tkerrors.NewValidationError(field, msg, err)
	}

	return tkerrors.NewValidationError("definition", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// paths like fields[0].key.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldForColumn(index int, field string) string {
	return fmt.Sprintf("fields[%d].%s", index, field)
}

func fieldForRow(index int) string {
	return fmt.Sprintf("data[%d].%s", index, RowKeyField)
}
