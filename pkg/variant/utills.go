package variant

import "reflect"

// IsNil reports whether i is a nil interface or a typed nil pointer wrapped
// in an interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
