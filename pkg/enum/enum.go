package enum

import (
	"fmt"
	"reflect"
)

type enum[T comparable] struct {
	toEnum   map[string]T
	toString map[T]string
}

var enumManager = map[string]any{}

// New registers a value as a member of its enum type. The string
// representation of the value is used as its wire name.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	t := v.Type()
	if _, ok := enumManager[t.Name()]; !ok {
		enumManager[t.Name()] = enum[T]{
			toEnum:   make(map[string]T),
			toString: make(map[T]string),
		}
	}

	name := fmt.Sprintf("%v", value)
	enumManager[t.Name()].(enum[T]).toEnum[name] = value
	enumManager[t.Name()].(enum[T]).toString[value] = name
	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// ToString returns the registered name of value, or an empty string if the
// value was never registered with New.
func ToString[T comparable](value T) string {
	e, ok := enumManager[reflect.TypeOf(value).Name()]
	if !ok {
		return ""
	}

	return e.(enum[T]).toString[value]
}
