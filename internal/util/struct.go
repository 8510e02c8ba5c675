package util

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNotAStruct = errors.New("value is not a struct")

// IsStructInitialized checks that every exported field of the given struct (or pointer to struct)
// is non-zero. Fields tagged `wire:"-"` are skipped as they get initialized separately.
func IsStructInitialized(s any) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return ErrNotAStruct
	}

	t := v.Type()
	for i := range v.NumField() {
		field := t.Field(i)
		if !field.IsExported() || field.Tag.Get("wire") == "-" {
			continue
		}

		if v.Field(i).IsZero() {
			return fmt.Errorf("struct field %q is not initialized", field.Name)
		}
	}

	return nil
}
