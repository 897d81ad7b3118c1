package rail

import (
	"reflect"
)

// IsNil reports whether i is nil, including typed nils boxed in an interface
// (pointers, maps, slices, channels, funcs and interfaces).
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens err into its parts: an empty slice for nil, the joined
// errors for an errors.Join aggregate, or a single-element slice otherwise.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
